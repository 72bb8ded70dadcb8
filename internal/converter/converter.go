// =============================================================================
// NZFCC Generator - Converter Module
// =============================================================================
//
// This module orchestrates one generation pass, from the categories.json
// snapshot to the generated Go package.
//
// CONVERSION PIPELINE:
//   1. Load and validate the snapshot
//   2. Derive identifiers and build both enumerations
//   3. Render and gofmt the generated sources
//   4. Write both files into the output directory (all or nothing)
//
// The pass either succeeds completely or fails at the first problem;
// nothing is written unless steps 1-3 succeeded.
//
// =============================================================================

package converter

import (
	"fmt"
	"time"

	"github.com/ginjaninja78/nzfcc/internal/codegen"
	"github.com/ginjaninja78/nzfcc/internal/config"
	"github.com/ginjaninja78/nzfcc/internal/taxonomy"
	"github.com/ginjaninja78/nzfcc/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one generation pass.
type Result struct {
	// SnapshotPath is the snapshot that was read.
	SnapshotPath string

	// OutputFiles are the written (or, in dry-run mode, planned) files.
	OutputFiles []string

	// Success indicates whether the pass succeeded.
	Success bool

	// Error contains the error if the pass failed.
	Error error

	// Stats contains generation statistics.
	Stats GenerationStats
}

// GenerationStats contains statistics about a generation pass.
type GenerationStats struct {
	// Groups is the number of CategoryGroup variants.
	Groups int

	// Codes is the number of NzfccCode variants.
	Codes int

	// Bytes is the total size of the generated sources.
	Bytes int

	// ProcessingTime is the time taken by the pass.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Logger is the logging interface used by the converter.
// *logger.Logger satisfies it.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Converter runs one generation pass.
type Converter struct {
	cfg    *config.Config
	logger Logger

	// DryRun renders the sources but does not write them.
	DryRun bool
}

// =============================================================================
// CONSTRUCTOR
// =============================================================================

// New creates a new Converter.
//
// PARAMETERS:
//   - cfg: The validated configuration.
//   - logger: Where progress is reported.
//
// RETURNS:
//   - A new Converter instance.
func New(cfg *config.Config, logger Logger) *Converter {
	return &Converter{
		cfg:    cfg,
		logger: logger,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the generation pipeline.
func (c *Converter) Run() Result {
	startTime := time.Now()
	result := Result{
		SnapshotPath: c.cfg.SnapshotPath,
	}

	// =========================================================================
	// STEP 1: LOAD SNAPSHOT
	// =========================================================================

	c.logger.Debug("loading snapshot", "path", c.cfg.SnapshotPath)

	snap, err := taxonomy.LoadFile(c.cfg.SnapshotPath, taxonomy.Options{
		GroupIDPrefix: c.cfg.GroupIDPrefix,
		CodeIDPrefix:  c.cfg.CodeIDPrefix,
	})
	if err != nil {
		result.Error = fmt.Errorf("failed to load snapshot: %w", err)
		return result
	}

	c.logger.Info("snapshot loaded",
		"path", c.cfg.SnapshotPath,
		"categories", len(snap.Categories),
		"groups", len(snap.Groups))

	// =========================================================================
	// STEP 2: SYNTHESIZE ENUMERATIONS
	// =========================================================================

	out, err := codegen.Synthesize(snap, codegen.Options{
		Package: c.cfg.PackageName,
		Source:  c.cfg.SnapshotPath,
	})
	if err != nil {
		result.Error = fmt.Errorf("failed to generate enums: %w", err)
		return result
	}

	result.Stats.Groups = len(out.Model.Groups)
	result.Stats.Codes = len(out.Model.Codes)
	result.Stats.Bytes = len(out.Groups) + len(out.Codes)

	c.logger.Debug("rendered sources",
		"package", c.cfg.PackageName,
		"bytes", result.Stats.Bytes)

	// =========================================================================
	// STEP 3: WRITE OUTPUT FILES
	// =========================================================================

	files := []utils.OutputFile{
		{Name: c.cfg.GroupsFile, Data: out.Groups},
		{Name: c.cfg.CodesFile, Data: out.Codes},
	}

	if c.DryRun {
		for _, f := range files {
			result.OutputFiles = append(result.OutputFiles, f.Name)
		}
		c.logger.Info("dry run, nothing written", "files", result.OutputFiles)
	} else {
		fm := utils.NewFileManager(c.cfg.OutputDir)
		paths, err := fm.WriteFiles(files...)
		if err != nil {
			result.Error = fmt.Errorf("failed to write output: %w", err)
			return result
		}
		result.OutputFiles = paths

		for _, p := range paths {
			c.logger.Info("wrote generated file", "path", p)
		}
	}

	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)

	return result
}
