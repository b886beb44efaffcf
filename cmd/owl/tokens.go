package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"owl/internal/diagfmt"
	"owl/internal/driver"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file.ow>",
	Short: "Dump the token stream of a single file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokensCmd.SilenceUsage = true
}

func runTokens(cmd *cobra.Command, args []string) error {
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	res, err := driver.Tokenize(args[0], maxDiagnostics)
	if err != nil {
		return err
	}

	// лексические ошибки не мешают дампу: поток токенов есть всегда
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
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), res.Tokens, res.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), res.Tokens)
	default:
		return fmt.Errorf("unknown format %q (want pretty or json)", format)
	}
}
