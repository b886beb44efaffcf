package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"owl/internal/prof"
	"owl/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "owl",
	Short: "Owl language checker and toolchain",
	Long:  `Owl is a statically typed scripting language; this tool lexes, parses and type-checks .ow sources`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if path, _ := cmd.Root().PersistentFlags().GetString("cpuprofile"); path != "" {
			if err := prof.StartCPU(path); err != nil {
				return err
			}
		}
		if path, _ := cmd.Root().PersistentFlags().GetString("traceprofile"); path != "" {
			if err := prof.StartTrace(path); err != nil {
				return err
			}
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
		prof.StopCPU()
		prof.StopTrace()
		if path, _ := cmd.Root().PersistentFlags().GetString("memprofile"); path != "" {
			return prof.WriteMem(path)
		}
		return nil
	},
}

// exitCode carries the check outcome past cobra: 0 — чисто, 1 — есть
// ошибки, 2 — предупреждения при --deny-warnings.
var exitCode int

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(astCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().Int("jobs", 0, "number of files checked in parallel (0 = all CPUs)")
	rootCmd.PersistentFlags().String("cpuprofile", "", "write a CPU profile to the given file")
	rootCmd.PersistentFlags().String("memprofile", "", "write a heap profile to the given file")
	rootCmd.PersistentFlags().String("traceprofile", "", "write a runtime trace to the given file")
	_ = rootCmd.PersistentFlags().MarkHidden("cpuprofile")
	_ = rootCmd.PersistentFlags().MarkHidden("memprofile")
	_ = rootCmd.PersistentFlags().MarkHidden("traceprofile")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color tri-state against the stream the output
// actually goes to.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	switch colorFlag {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}
