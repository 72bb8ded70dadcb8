// =============================================================================
// NZFCC Generator - Version Command
// =============================================================================
//
// COMMAND USAGE:
//   nzfcc version
//
// OUTPUT:
//   NZFCC Enum Generator
//   Version:    1.0.0
//   Build Date: 2024-01-01
//   Go Version: go1.24.0
//   Taxonomy:   10 groups, 40 codes
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"

	"github.com/ginjaninja78/nzfcc/pkg/nzfcc"
	"github.com/spf13/cobra"
)

// Version and BuildDate are set at build time:
//   go build -ldflags "-X 'github.com/ginjaninja78/nzfcc/cmd.Version=1.0.0'"
var (
	Version   = "1.0.0"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Long:  `Display the application version, build date, Go runtime version and the size of the compiled-in taxonomy.`,

	// version does not need a configuration file.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },

	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "NZFCC Enum Generator")
		fmt.Fprintf(out, "Version:    %s\n", Version)
		fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
		fmt.Fprintf(out, "Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "Taxonomy:   %d groups, %d codes\n",
			len(nzfcc.CategoryGroupValues()), len(nzfcc.NzfccCodeValues()))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
