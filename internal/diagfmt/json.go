package diagfmt

import (
	"encoding/json"
	"io"
	"sort"

	"owl/internal/diag"
	"owl/internal/source"
)

// DiagnosticJSON представляет одну диагностику в JSON формате.
// Line/Column — 1-based позиция начала спана.
type DiagnosticJSON struct {
	Severity string   `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	File     string   `json:"file"`
	Line     uint32   `json:"line"`
	Column   uint32   `json:"column"`
	Hints    []string `json:"hints,omitempty"`
	Notes    []string `json:"notes,omitempty"`
}

// FileReportJSON группирует диагностики одного файла.
type FileReportJSON struct {
	File     string           `json:"file"`
	Success  bool             `json:"success"`
	Errors   []DiagnosticJSON `json:"errors"`
	Warnings []DiagnosticJSON `json:"warnings"`
}

// SummaryJSON агрегирует счётчики по всему прогону.
type SummaryJSON struct {
	TotalFiles      int `json:"total_files"`
	FilesWithErrors int `json:"files_with_errors"`
	TotalErrors     int `json:"total_errors"`
	TotalWarnings   int `json:"total_warnings"`
}

// ReportJSON представляет корневую структуру JSON вывода.
type ReportJSON struct {
	Version string           `json:"version"`
	Files   []FileReportJSON `json:"files"`
	Summary SummaryJSON      `json:"summary"`
}

// BuildReport формирует структуру JSON-вывода без сериализации.
// Диагностики группируются по файлам; файлы идут в отсортированном
// порядке путей, внутри файла сохраняется порядок bag.Sort().
func BuildReport(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) ReportJSON {
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}

	byFile := make(map[string]*FileReportJSON)
	var order []string
	for i := range items {
		d := &items[i]
		dj := makeDiagnosticJSON(d, fs, opts.PathMode)
		report, ok := byFile[dj.File]
		if !ok {
			report = &FileReportJSON{
				File:     dj.File,
				Success:  true,
				Errors:   []DiagnosticJSON{},
				Warnings: []DiagnosticJSON{},
			}
			byFile[dj.File] = report
			order = append(order, dj.File)
		}
		switch d.Severity {
		case diag.SevError:
			report.Errors = append(report.Errors, dj)
			report.Success = false
		default:
			report.Warnings = append(report.Warnings, dj)
		}
	}
	sort.Strings(order)

	out := ReportJSON{
		Version: opts.Version,
		Files:   make([]FileReportJSON, 0, len(order)),
	}
	for _, path := range order {
		report := byFile[path]
		out.Files = append(out.Files, *report)
		out.Summary.TotalFiles++
		if !report.Success {
			out.Summary.FilesWithErrors++
		}
		out.Summary.TotalErrors += len(report.Errors)
		out.Summary.TotalWarnings += len(report.Warnings)
	}
	return out
}

// AddCleanFile records a file that produced no diagnostics, so the report
// still lists it and счётчик total_files остаётся честным.
func (r *ReportJSON) AddCleanFile(path string) {
	for i := range r.Files {
		if r.Files[i].File == path {
			return
		}
	}
	r.Files = append(r.Files, FileReportJSON{
		File:     path,
		Success:  true,
		Errors:   []DiagnosticJSON{},
		Warnings: []DiagnosticJSON{},
	})
	sort.Slice(r.Files, func(i, j int) bool { return r.Files[i].File < r.Files[j].File })
	r.Summary.TotalFiles++
}

func makeDiagnosticJSON(d *diag.Diagnostic, fs *source.FileSet, mode PathMode) DiagnosticJSON {
	dj := DiagnosticJSON{
		Severity: d.Severity.Label(),
		Code:     d.Code.ID(),
		Message:  d.Message,
	}
	if len(d.Hints) > 0 {
		dj.Hints = append([]string(nil), d.Hints...)
	}
	if len(d.Notes) > 0 {
		dj.Notes = append([]string(nil), d.Notes...)
	}
	if d.HasSpan() && fs != nil {
		if f := fs.Get(d.Primary.File); f != nil {
			dj.File = formatPath(f, fs, mode)
			start, _ := fs.Resolve(d.Primary)
			dj.Line = start.Line
			dj.Column = start.Col
		}
	}
	return dj
}

// JSON форматирует диагностики в JSON формат с группировкой по файлам.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	output := BuildReport(bag, fs, opts)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
