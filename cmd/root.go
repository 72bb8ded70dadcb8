// =============================================================================
// NZFCC Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Every other command
// is attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (nzfcc)
//   ├── generateCmd (nzfcc generate)
//   ├── exportCmd   (nzfcc export)
//   ├── lookupCmd   (nzfcc lookup)
//   └── versionCmd  (nzfcc version)
//
// The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Loading the configuration file
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/ginjaninja78/nzfcc/internal/config"
	"github.com/ginjaninja78/nzfcc/internal/logger"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
var cfgFile string

// verbose forces debug logging.
var verbose bool

// cfg and log are set by the root PersistentPreRunE before any subcommand
// runs.
var (
	cfg *config.Config
	log *logger.Logger
)

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "nzfcc",
	Short: "NZFCC enum generator - Go enumerations for the NZ Financial Category Codes",
	Long: `nzfcc turns a snapshot of the New Zealand Financial Category Codes
(categories.json) into two Go enumerations: CategoryGroup and NzfccCode.

Each code carries its stable ID, display name and personal-finance group,
and every group can list its codes. The output is deterministic: the same
snapshot always produces byte-identical files.

Example Usage:
  nzfcc generate                          # Regenerate pkg/nzfcc from categories.json
  nzfcc generate --snapshot new.json      # Use another snapshot
  nzfcc export                            # Write the taxonomy to an XLSX workbook
  nzfcc lookup --group Lifestyle          # List the codes of one group`,

	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},

	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			log.Sync()
		}
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultPath,
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}

// setup loads the configuration and builds the logger. Every log line of
// one invocation carries the same run_id.
func setup(cmd *cobra.Command) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	level := loaded.LogLevel
	if verbose {
		level = "debug"
	}

	base, err := logger.New(logger.Options{
		Level:  level,
		Format: loaded.LogFormat,
	})
	if err != nil {
		return err
	}

	cfg = loaded
	log = base.With("run_id", uuid.NewString(), "command", cmd.Name())
	log.Debug("configuration loaded", "config", cfgFile)
	return nil
}
