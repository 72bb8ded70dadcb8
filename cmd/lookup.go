// =============================================================================
// NZFCC Generator - Lookup Command
// =============================================================================
//
// This file defines the 'lookup' command, which queries the compiled-in
// enumerations of pkg/nzfcc.
//
// COMMAND USAGE:
//   nzfcc lookup                       # List every group
//   nzfcc lookup --group Lifestyle     # List the codes of a group
//   nzfcc lookup --code "Cafes and restaurants"
//   nzfcc lookup --id nzfcc_...        # Resolve a stable code or group ID
//
// --group and --code accept a display name, a stable ID or a variant name.
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ginjaninja78/nzfcc/pkg/nzfcc"
	"github.com/spf13/cobra"
)

var (
	lookupGroup nzfcc.CategoryGroup
	lookupCode  nzfcc.NzfccCode
	lookupID    string
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Look up NZFCC groups and codes",
	Long: `The lookup command answers questions about the generated enumerations
compiled into this binary: which codes belong to a group, which group a
code belongs to, and what a stable ID refers to.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)

	lookupCmd.Flags().Var(&lookupGroup, "group", "Group to list codes for")
	lookupCmd.Flags().Var(&lookupCode, "code", "Code to describe")
	lookupCmd.Flags().StringVar(&lookupID, "id", "", "Stable code or group ID to resolve")
	lookupCmd.MarkFlagsMutuallyExclusive("group", "code", "id")
}

func runLookup(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	switch {
	case lookupGroup.IsValid():
		writeGroup(tw, lookupGroup)

	case lookupCode.IsValid():
		writeCode(tw, lookupCode)

	case lookupID != "":
		if c, ok := nzfcc.NzfccCodeByID(lookupID); ok {
			writeCode(tw, c)
			return nil
		}
		if g, ok := nzfcc.CategoryGroupByID(lookupID); ok {
			writeGroup(tw, g)
			return nil
		}
		return fmt.Errorf("no code or group with ID %q", lookupID)

	default:
		fmt.Fprintln(tw, "GROUP\tID\tCODES")
		for _, g := range nzfcc.CategoryGroupValues() {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", g, g.ID(), len(g.Codes()))
		}
	}

	log.Debug("lookup complete")
	return nil
}

func writeGroup(w io.Writer, g nzfcc.CategoryGroup) {
	fmt.Fprintf(w, "Group:\t%s\n", g)
	fmt.Fprintf(w, "ID:\t%s\n", g.ID())
	fmt.Fprintf(w, "Variant:\tGroup%s\n", g.VariantName())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "CODE\tID")
	for _, c := range g.Codes() {
		fmt.Fprintf(w, "%s\t%s\n", c, c.ID())
	}
}

func writeCode(w io.Writer, c nzfcc.NzfccCode) {
	fmt.Fprintf(w, "Code:\t%s\n", c)
	fmt.Fprintf(w, "ID:\t%s\n", c.ID())
	fmt.Fprintf(w, "Variant:\tCode%s\n", c.VariantName())
	fmt.Fprintf(w, "Group:\t%s (%s)\n", c.Group(), c.Group().ID())
}
