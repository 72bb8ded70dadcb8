// =============================================================================
// NZFCC Generator - Enum Synthesizer
// =============================================================================
//
// This module renders the two generated Go source files:
//
//   category_groups_gen.go  - CategoryGroup constants + categoryGroupTable
//   nzfcc_codes_gen.go      - NzfccCode constants + nzfccCodeTable
//
// The files only hold constants and flat tables. The cross-reference between
// codes and groups is carried by each code's table entry (its group constant)
// and indexed once at package initialization by the hand-written runtime.
//
// DETERMINISM:
//   Output depends only on the snapshot content, the package name and the
//   snapshot file name. Variants are emitted in snapshot order and the
//   result is passed through go/format.
//
// =============================================================================

package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"text/template"

	"github.com/ginjaninja78/nzfcc/internal/taxonomy"
)

// =============================================================================
// OPTIONS AND OUTPUT
// =============================================================================

// Options controls source generation.
type Options struct {
	// Package is the Go package name of the generated files.
	// Default: "nzfcc"
	Package string

	// Source names the snapshot in the generated header. Only the base name
	// is used so output does not depend on the working directory.
	// Default: the snapshot's Source, or "snapshot" when that is empty.
	Source string
}

// Output holds the formatted generated sources.
type Output struct {
	Groups []byte
	Codes  []byte

	// Model is kept for reporting (variant counts).
	Model *Model
}

// =============================================================================
// SYNTHESIS
// =============================================================================

// Synthesize builds both enumerations for snap.
//
// PARAMETERS:
//   - snap: A loaded snapshot.
//   - opts: Package and header options.
//
// RETURNS:
//   - The two formatted sources.
//   - A naming error from BuildModel, or a rendering error.
func Synthesize(snap *taxonomy.Snapshot, opts Options) (*Output, error) {
	if opts.Package == "" {
		opts.Package = "nzfcc"
	}
	source := opts.Source
	if source == "" {
		source = snap.Source
	}
	if source == "" {
		source = "snapshot"
	}

	model, err := BuildModel(snap, opts.Package, filepath.Base(source))
	if err != nil {
		return nil, err
	}

	groups, err := render(groupsTemplate, model)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", EnumCategoryGroup, err)
	}

	codes, err := render(codesTemplate, model)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", EnumNzfccCode, err)
	}

	return &Output{Groups: groups, Codes: codes, Model: model}, nil
}

func render(tmpl *template.Template, model *Model) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, model); err != nil {
		return nil, err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated source does not parse: %w", err)
	}
	return src, nil
}
