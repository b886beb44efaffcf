package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"owl/internal/diag"
	"owl/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	error[E0301]: type mismatch: expected Int, found String
//	  --> main.ow:3:9
//	   |
//	 3 | let x: Int = "str"
//	   |              ^^^^^
//	   = hint: ...
//
// Подчёркивание выравнивается по экранной ширине символов, не по байтам.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printDiagnostic(w, &d, fs, opts)
	}
}

func printDiagnostic(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	head := severityColor(d.Severity, opts)
	fmt.Fprintf(w, "%s: %s\n", head.Sprintf("%s[%s]", d.Severity.Label(), d.Code.ID()), d.Message)

	if d.HasSpan() && fs != nil {
		printFrame(w, d.Primary, fs, opts, head)
	}
	if opts.ShowHints {
		for _, hint := range d.Hints {
			fmt.Fprintf(w, "  = hint: %s\n", hint)
		}
	}
	if opts.ShowNotes {
		for _, note := range d.Notes {
			fmt.Fprintf(w, "  = note: %s\n", note)
		}
	}
}

// printFrame печатает строку-источник с указателем под спаном.
func printFrame(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts, head *color.Color) {
	f := fs.Get(span.File)
	if f == nil {
		return
	}
	start, end := fs.Resolve(span)
	path := formatPath(f, fs, opts.PathMode)
	fmt.Fprintf(w, "  --> %s:%d:%d\n", path, start.Line, start.Col)

	line := f.GetLine(start.Line)
	gutter := fmt.Sprintf("%d", start.Line)
	pad := strings.Repeat(" ", len(gutter))

	fmt.Fprintf(w, " %s |\n", pad)
	fmt.Fprintf(w, " %s | %s\n", gutter, strings.TrimRight(line, "\r"))

	// колонки 1-based; для многострочных спанов подчёркиваем хвост
	// первой строки
	startCol := int(start.Col)
	endCol := int(end.Col)
	if end.Line != start.Line || endCol <= startCol {
		endCol = runewidth.StringWidth(line) + 1
	}
	if startCol < 1 {
		startCol = 1
	}
	lead := prefixWidth(line, startCol-1)
	markers := prefixWidth(line, endCol-1) - lead
	if markers < 1 {
		markers = 1
	}
	fmt.Fprintf(w, " %s | %s%s\n", pad,
		strings.Repeat(" ", lead),
		head.Sprint(strings.Repeat("^", markers)))
}

// prefixWidth возвращает экранную ширину первых runeCount рун строки.
func prefixWidth(line string, runeCount int) int {
	width := 0
	for _, r := range line {
		if runeCount <= 0 {
			break
		}
		runeCount--
		width += runewidth.RuneWidth(r)
	}
	return width
}

func severityColor(sev diag.Severity, opts PrettyOpts) *color.Color {
	var c *color.Color
	switch {
	case sev == diag.SevError, sev == diag.SevWarning && opts.DenyWarnings:
		c = color.New(color.FgRed, color.Bold)
	case sev == diag.SevWarning:
		c = color.New(color.FgYellow, color.Bold)
	default:
		c = color.New(color.FgCyan)
	}
	if !opts.Color {
		c.DisableColor()
	}
	return c
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", fs.BaseDir())
	}
}

// Summary prints the closing line of a check run, e.g.
// "2 files checked: 1 error, 3 warnings". Счётчики группируются
// локалезависимым принтером, чтобы большие числа читались.
func Summary(w io.Writer, files, errors, warnings int, opts PrettyOpts) {
	p := message.NewPrinter(language.English)

	parts := make([]string, 0, 2)
	if errors > 0 {
		head := severityColor(diag.SevError, opts)
		parts = append(parts, head.Sprint(p.Sprintf("%d %s", errors, pluralWord(errors, "error"))))
	}
	if warnings > 0 {
		head := severityColor(diag.SevWarning, opts)
		parts = append(parts, head.Sprint(p.Sprintf("%d %s", warnings, pluralWord(warnings, "warning"))))
	}
	status := "no problems found"
	if len(parts) > 0 {
		status = strings.Join(parts, ", ")
	}
	p.Fprintf(w, "%d %s checked: %s\n", files, pluralWord(files, "file"), status)
}

func pluralWord(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
