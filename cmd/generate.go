// =============================================================================
// NZFCC Generator - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, which regenerates the Go
// enumerations from a categories.json snapshot.
//
// COMMAND USAGE:
//   nzfcc generate [flags]
//
// FLAGS:
//   --snapshot    : Path to categories.json (overrides snapshot_path)
//   --output-dir  : Directory of the generated package (overrides output_dir)
//   --package     : Package name of the generated files (overrides package_name)
//   --dry-run     : Render and check the output without writing it
//
// PROCESSING PIPELINE:
//   1. Apply flag overrides to the configuration
//   2. Run the converter (load, synthesize, write)
//   3. Print a summary
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/ginjaninja78/nzfcc/internal/converter"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	snapshotPath string
	outputDir    string
	packageName  string
	dryRun       bool
)

// =============================================================================
// GENERATE COMMAND DEFINITION
// =============================================================================

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the CategoryGroup and NzfccCode enumerations",
	Long: `The generate command reads a categories.json snapshot and writes two Go
source files: one for CategoryGroup and one for NzfccCode.

Variants keep snapshot order. Identifiers are derived from display names;
a name that yields an empty or duplicate identifier aborts generation.

Nothing is written unless the whole snapshot was read and both files were
rendered successfully.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Path to the categories.json snapshot")
	generateCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory to write the generated files to")
	generateCmd.Flags().StringVar(&packageName, "package", "", "Package name of the generated files")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render the files without writing them")
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

func runGenerate(cmd *cobra.Command) error {
	// =========================================================================
	// STEP 1: APPLY OVERRIDES
	// =========================================================================

	if snapshotPath != "" {
		cfg.SnapshotPath = snapshotPath
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if packageName != "" {
		cfg.PackageName = packageName
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	// =========================================================================
	// STEP 2: RUN CONVERTER
	// =========================================================================

	conv := converter.New(cfg, log)
	conv.DryRun = dryRun

	result := conv.Run()
	if result.Error != nil {
		log.Error("generation failed", "snapshot", result.SnapshotPath, "error", result.Error)
		return result.Error
	}

	// =========================================================================
	// STEP 3: PRINT SUMMARY
	// =========================================================================

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Snapshot:       %s\n", result.SnapshotPath)
	fmt.Fprintf(out, "Groups:         %d\n", result.Stats.Groups)
	fmt.Fprintf(out, "Codes:          %d\n", result.Stats.Codes)
	for _, f := range result.OutputFiles {
		if dryRun {
			fmt.Fprintf(out, "Would write:    %s\n", f)
		} else {
			fmt.Fprintf(out, "Wrote:          %s\n", f)
		}
	}
	fmt.Fprintf(out, "Time elapsed:   %s\n", result.Stats.ProcessingTime)

	return nil
}
