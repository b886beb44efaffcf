package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"owl/internal/diagfmt"
	"owl/internal/driver"
)

var astCmd = &cobra.Command{
	Use:   "ast <file.ow>",
	Short: "Dump the syntax tree of a single file",
	Long:  `Parse one file with error recovery and print the resulting tree; partial trees are printed even when the parse reported errors`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAST,
}

func init() {
	astCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	astCmd.SilenceUsage = true
}

func runAST(cmd *cobra.Command, args []string) error {
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	res, err := driver.Parse(args[0], maxDiagnostics)
	if err != nil {
		return err
	}

	if res.Bag.HasErrors() || res.Bag.HasWarnings() {
		res.Bag.Sort()
		diagfmt.Pretty(cmd.ErrOrStderr(), res.Bag, res.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowHints: true,
			ShowNotes: true,
		})
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "pretty":
		return diagfmt.FormatASTPretty(cmd.OutOrStdout(), res.Builder, res.FileID, res.FileSet)
	case "json":
		return diagfmt.FormatASTJSON(cmd.OutOrStdout(), res.Builder, res.FileID)
	default:
		return fmt.Errorf("unknown format %q (want pretty or json)", format)
	}
}
