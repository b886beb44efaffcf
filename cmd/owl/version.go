package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"owl/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the owl version",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	versionCmd.Flags().Bool("full", false, "include commit hash and build date")
	versionCmd.SilenceUsage = true
}

func runVersion(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	full, _ := cmd.Flags().GetBool("full")

	switch format {
	case "pretty":
		rendered := version.Version
		if useColor(cmd, os.Stdout) {
			rendered = version.Colored()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "owl %s\n", rendered)
		if full {
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", version.GitCommit)
			fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", version.BuildDate)
		}
		return nil
	case "json":
		payload := map[string]string{"version": version.Version}
		if full {
			payload["commit"] = version.GitCommit
			payload["date"] = version.BuildDate
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	default:
		return fmt.Errorf("unknown format %q (want pretty or json)", format)
	}
}
