package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"owl/internal/diag"
	"owl/internal/source"
)

func TestJSONReportShape(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.AddVirtual("main.ow", []byte("let x: Int = \"str\"\n"))
	bag := testBag(t, fs, file)

	var sb strings.Builder
	if err := JSON(&sb, bag, fs, JSONOpts{Version: "0.1.0"}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var report ReportJSON
	if err := json.Unmarshal([]byte(sb.String()), &report); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, sb.String())
	}

	if report.Version != "0.1.0" {
		t.Errorf("version = %q, want %q", report.Version, "0.1.0")
	}
	if len(report.Files) != 1 {
		t.Fatalf("files count = %d, want 1", len(report.Files))
	}
	fr := report.Files[0]
	if fr.File != "main.ow" {
		t.Errorf("file = %q, want main.ow", fr.File)
	}
	if fr.Success {
		t.Error("file with errors must have success=false")
	}
	if len(fr.Errors) != 1 || len(fr.Warnings) != 1 {
		t.Fatalf("errors=%d warnings=%d, want 1/1", len(fr.Errors), len(fr.Warnings))
	}

	e := fr.Errors[0]
	if e.Severity != "error" || e.Code != "E0301" {
		t.Errorf("error diagnostic = %+v", e)
	}
	if e.Line != 1 || e.Column != 14 {
		t.Errorf("position = %d:%d, want 1:14", e.Line, e.Column)
	}
	w := fr.Warnings[0]
	if w.Severity != "warning" || w.Code != "W0101" {
		t.Errorf("warning diagnostic = %+v", w)
	}
	if len(w.Hints) != 1 {
		t.Errorf("warning hints = %v, want one", w.Hints)
	}

	s := report.Summary
	if s.TotalFiles != 1 || s.FilesWithErrors != 1 || s.TotalErrors != 1 || s.TotalWarnings != 1 {
		t.Errorf("summary = %+v", s)
	}
}

func TestJSONCleanFileListed(t *testing.T) {
	fs := source.NewFileSet()
	bag := diag.NewBag(4)

	report := BuildReport(bag, fs, JSONOpts{Version: "0.1.0"})
	report.AddCleanFile("util.ow")
	report.AddCleanFile("app.ow")
	report.AddCleanFile("app.ow") // повторная регистрация не дублирует

	if len(report.Files) != 2 {
		t.Fatalf("files = %d, want 2", len(report.Files))
	}
	if report.Files[0].File != "app.ow" || report.Files[1].File != "util.ow" {
		t.Errorf("files must be sorted by path: %+v", report.Files)
	}
	for _, fr := range report.Files {
		if !fr.Success {
			t.Errorf("clean file %s must have success=true", fr.File)
		}
		if fr.Errors == nil || fr.Warnings == nil {
			t.Errorf("errors/warnings must serialize as [], not null")
		}
	}
	if report.Summary.TotalFiles != 2 {
		t.Errorf("total_files = %d, want 2", report.Summary.TotalFiles)
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.AddVirtual("main.ow", []byte("let x = 1\nlet y = 2\nlet z = 3\n"))

	bag := diag.NewBag(16)
	reporter := &diag.BagReporter{Bag: bag}
	for _, span := range []source.Span{
		{File: file, Start: 4, End: 5},
		{File: file, Start: 14, End: 15},
		{File: file, Start: 24, End: 25},
	} {
		diag.ReportWarning(reporter, diag.WarnUnusedVariable, span, "variable is never used").Emit()
	}
	bag.Sort()

	report := BuildReport(bag, fs, JSONOpts{Max: 2})
	if report.Summary.TotalWarnings != 2 {
		t.Errorf("truncated warnings = %d, want 2", report.Summary.TotalWarnings)
	}
}
