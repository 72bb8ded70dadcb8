// =============================================================================
// NZFCC Generator - Export Command
// =============================================================================
//
// This file defines the 'export' command, which writes a snapshot to an XLSX
// workbook for review.
//
// COMMAND USAGE:
//   nzfcc export [--snapshot categories.json] [--output-dir reports]
//                [--file-name "nzfcc_{date}.xlsx"]
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/ginjaninja78/nzfcc/internal/export"
	"github.com/ginjaninja78/nzfcc/internal/taxonomy"
	"github.com/ginjaninja78/nzfcc/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	exportSnapshot  string
	exportOutputDir string
	exportFileName  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the taxonomy to an XLSX workbook",
	Long: `The export command loads a categories.json snapshot and writes it to an
XLSX workbook with a "Groups" and a "Codes" sheet. Each row shows the
derived Go identifier, which makes naming collisions easy to spot before
running generate.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportSnapshot, "snapshot", "", "Path to the categories.json snapshot")
	exportCmd.Flags().StringVar(&exportOutputDir, "output-dir", "", "Directory to write the workbook to")
	exportCmd.Flags().StringVar(&exportFileName, "file-name", "", "Workbook file name; supports {uuid}, {timestamp}, {date} and {snapshot}")
}

func runExport(cmd *cobra.Command) error {
	if exportSnapshot != "" {
		cfg.SnapshotPath = exportSnapshot
	}
	if exportOutputDir != "" {
		cfg.Export.OutputDir = exportOutputDir
	}
	if exportFileName != "" {
		cfg.Export.FileNameFormat = exportFileName
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	snap, err := taxonomy.LoadFile(cfg.SnapshotPath, taxonomy.Options{
		GroupIDPrefix: cfg.GroupIDPrefix,
		CodeIDPrefix:  cfg.CodeIDPrefix,
	})
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	fm := utils.NewFileManager(cfg.Export.OutputDir)
	if err := fm.EnsureDirectories(); err != nil {
		return err
	}

	name := utils.GenerateOutputFileName(cfg.Export.FileNameFormat, map[string]string{
		"snapshot": trimExt(filepath.Base(cfg.SnapshotPath)),
	})
	path := filepath.Join(cfg.Export.OutputDir, name)

	if err := export.WriteWorkbook(snap, path); err != nil {
		return err
	}

	log.Info("workbook written", "path", path, "groups", len(snap.Groups), "codes", len(snap.Categories))
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
