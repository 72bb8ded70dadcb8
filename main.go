// =============================================================================
// NZFCC Enum Generator - Main Entry Point
// =============================================================================
//
// USAGE:
//   nzfcc generate   - Regenerate pkg/nzfcc from categories.json
//   nzfcc export     - Write the taxonomy to an XLSX workbook
//   nzfcc lookup     - Query the compiled-in enumerations
//   nzfcc version    - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : snapshot loading, identifier derivation, code generation
//   - pkg/nzfcc  : the generated enumerations and their runtime
//   - pkg/utils  : file helpers
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/nzfcc/cmd"
)

func main() {
	cmd.Execute()
}
