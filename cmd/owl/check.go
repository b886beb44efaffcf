package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"owl/internal/diag"
	"owl/internal/diagfmt"
	"owl/internal/driver"
	"owl/internal/observ"
	"owl/internal/project"
	"owl/internal/source"
	"owl/internal/ui"
	"owl/internal/version"
)

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Lex, parse and type-check Owl sources",
	Long:  `Check a single .ow file or every .ow file under a directory; diagnostics go to stderr, machine output to stdout`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().BoolP("deny-warnings", "W", false, "treat warnings as fatal (exit code 2)")
	checkCmd.Flags().Bool("no-warnings", false, "hide warnings entirely")
	checkCmd.Flags().Bool("json", false, "emit the diagnostics report as JSON on stdout")
	checkCmd.Flags().String("progress", "auto", "per-file progress display (auto|on|off)")
	checkCmd.Flags().Bool("no-cache", false, "disable the content-addressed check cache")
	checkCmd.Flags().Bool("timings", false, "print per-phase timings to stderr")
	checkCmd.SilenceUsage = true
}

// checkSettings are the effective options after merging flags over the
// manifest: явный флаг всегда сильнее owl.toml.
type checkSettings struct {
	maxDiagnostics int
	denyWarnings   bool
	noWarnings     bool
	jobs           int
}

func resolveSettings(cmd *cobra.Command, manifest *project.Manifest) checkSettings {
	s := checkSettings{}
	s.maxDiagnostics, _ = cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	s.jobs, _ = cmd.Root().PersistentFlags().GetInt("jobs")
	s.denyWarnings, _ = cmd.Flags().GetBool("deny-warnings")
	s.noWarnings, _ = cmd.Flags().GetBool("no-warnings")

	if manifest == nil {
		return s
	}
	if !cmd.Root().PersistentFlags().Changed("max-diagnostics") && manifest.SetMaxDiagnostics {
		s.maxDiagnostics = manifest.MaxDiagnostics
	}
	if !cmd.Flags().Changed("deny-warnings") && manifest.SetDenyWarnings {
		s.denyWarnings = manifest.DenyWarnings
	}
	if !cmd.Flags().Changed("no-warnings") && manifest.SetNoWarnings {
		s.noWarnings = manifest.NoWarnings
	}
	return s
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot check %s: %w", path, err)
	}

	startDir := path
	if !info.IsDir() {
		startDir = filepath.Dir(path)
	}
	manifest, err := project.Discover(startDir)
	if err != nil {
		return err
	}
	settings := resolveSettings(cmd, manifest)

	timer := observ.NewTimer()
	checkPhase := timer.Begin("check")

	var (
		fileSet *source.FileSet
		results []driver.FileCheckResult
	)
	if info.IsDir() {
		fileSet, results, err = checkDirectory(cmd, path, settings)
	} else {
		fileSet, results, err = checkSingle(path, settings)
	}
	if err != nil {
		return err
	}
	timer.End(checkPhase, fmt.Sprintf("%d files", len(results)))

	renderPhase := timer.Begin("render")
	renderErr := renderCheck(cmd, fileSet, results, settings)
	timer.End(renderPhase, "")

	if timings, _ := cmd.Flags().GetBool("timings"); timings {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}
	return renderErr
}

func checkSingle(path string, settings checkSettings) (*source.FileSet, []driver.FileCheckResult, error) {
	res, err := driver.Check(path, settings.maxDiagnostics)
	if err != nil {
		return nil, nil, err
	}
	result := driver.FileCheckResult{Path: path, FileID: res.File.ID, Bag: res.Bag}
	return res.FileSet, []driver.FileCheckResult{result}, nil
}

func checkDirectory(cmd *cobra.Command, dir string, settings checkSettings) (*source.FileSet, []driver.FileCheckResult, error) {
	opts := driver.DirOptions{
		MaxDiagnostics: settings.maxDiagnostics,
		Jobs:           settings.jobs,
	}

	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
		// кеш — ускорение, а не обязательство: без него просто медленнее
		if cache, err := driver.OpenCheckCache("owl"); err == nil {
			opts.Cache = cache
		}
	}

	if !wantProgress(cmd) {
		return driver.CheckDir(context.Background(), dir, opts)
	}

	files, err := driver.ListOwlFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return driver.CheckDir(context.Background(), dir, opts)
	}

	type outcome struct {
		fileSet *source.FileSet
		results []driver.FileCheckResult
		err     error
	}

	events := make(chan driver.Event, 256)
	done := make(chan outcome, 1)
	opts.Progress = func(ev driver.Event) {
		events <- ev
	}

	go func() {
		fileSet, results, err := driver.CheckDir(context.Background(), dir, opts)
		close(events)
		done <- outcome{fileSet: fileSet, results: results, err: err}
	}()

	model := ui.NewProgressModel("owl check", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	if _, err := program.Run(); err != nil {
		// TUI упал — прогон всё равно дорабатывает, просто без экрана
		for range events {
		}
	}

	out := <-done
	return out.fileSet, out.results, out.err
}

func wantProgress(cmd *cobra.Command) bool {
	mode, _ := cmd.Flags().GetString("progress")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	asJSON, _ := cmd.Flags().GetBool("json")
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return !quiet && !asJSON && isTerminal(os.Stdout)
	}
}

func renderCheck(cmd *cobra.Command, fileSet *source.FileSet, results []driver.FileCheckResult, settings checkSettings) error {
	merged := diag.NewBag(settings.maxDiagnostics * max(len(results), 1))
	var clean []string
	for _, res := range results {
		if res.Bag == nil {
			continue
		}
		bag := filterBag(res.Bag, settings.noWarnings)
		merged.Merge(bag)
		if !bag.HasErrors() && !bag.HasWarnings() {
			clean = append(clean, res.Path)
		}
	}
	merged.Sort()

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	asJSON, _ := cmd.Flags().GetBool("json")

	if asJSON {
		report := diagfmt.BuildReport(merged, fileSet, diagfmt.JSONOpts{
			Version: version.Version,
			Max:     settings.maxDiagnostics,
		})
		for _, path := range clean {
			report.AddCleanFile(path)
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		prettyOpts := diagfmt.PrettyOpts{
			Color:        useColor(cmd, os.Stderr),
			DenyWarnings: settings.denyWarnings,
			ShowHints:    true,
			ShowNotes:    true,
		}
		diagfmt.Pretty(cmd.ErrOrStderr(), merged, fileSet, prettyOpts)
		if !quiet {
			diagfmt.Summary(cmd.ErrOrStderr(), len(results), merged.ErrorCount(), merged.WarningCount(), prettyOpts)
		}
	}

	switch {
	case merged.HasErrors():
		exitCode = 1
	case merged.HasWarnings() && settings.denyWarnings:
		exitCode = 2
	}
	return nil
}

// filterBag drops warnings when asked; errors pass through untouched.
func filterBag(bag *diag.Bag, noWarnings bool) *diag.Bag {
	if !noWarnings {
		return bag
	}
	filtered := diag.NewBag(int(bag.Cap()))
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevError {
			filtered.Add(d)
		}
	}
	return filtered
}
