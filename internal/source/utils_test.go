package source

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestToLineCol(t *testing.T) {
	// Индекс для "ab\ncd\nef"
	lineIdx := []uint32{2, 5}

	tests := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{name: "start of file", off: 0, want: LineCol{Line: 1, Col: 1}},
		{name: "before first newline", off: 1, want: LineCol{Line: 1, Col: 2}},
		{name: "first newline itself", off: 2, want: LineCol{Line: 1, Col: 3}},
		{name: "first byte after newline", off: 3, want: LineCol{Line: 2, Col: 1}},
		{name: "second line interior", off: 4, want: LineCol{Line: 2, Col: 2}},
		{name: "second newline itself", off: 5, want: LineCol{Line: 2, Col: 3}},
		{name: "third line start", off: 6, want: LineCol{Line: 3, Col: 1}},
		{name: "past last newline", off: 7, want: LineCol{Line: 3, Col: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toLineCol(lineIdx, tt.off); got != tt.want {
				t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
			}
		})
	}
}

func TestToLineColSingleLine(t *testing.T) {
	// Файл без переводов строк — всё на первой строке
	for _, off := range []uint32{0, 1, 5, 100} {
		got := toLineCol(nil, off)
		want := LineCol{Line: 1, Col: off + 1}
		if got != want {
			t.Errorf("toLineCol(nil, %d) = %+v, want %+v", off, got, want)
		}
	}
}

func TestBuildLineIndex(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []uint32
	}{
		{name: "empty", content: "", want: nil},
		{name: "no newlines", content: "hello", want: nil},
		{name: "single newline", content: "\n", want: []uint32{0}},
		{name: "two lines", content: "a\nb\n", want: []uint32{1, 3}},
		{name: "consecutive newlines", content: "a\n\nb", want: []uint32{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildLineIndex([]byte(tt.content))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildLineIndex(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestNormalizeCRLF(t *testing.T) {
	got, changed := normalizeCRLF([]byte("a\r\nb\r\n"))
	if !changed {
		t.Error("Expected CRLF normalization to be reported")
	}
	if string(got) != "a\nb\n" {
		t.Errorf("normalizeCRLF = %q, want %q", got, "a\nb\n")
	}

	// Одиночный \r без \n остаётся как есть
	got, changed = normalizeCRLF([]byte("a\rb"))
	if changed {
		t.Error("Lone \\r must not count as a CRLF replacement")
	}
	if string(got) != "a\rb" {
		t.Errorf("normalizeCRLF = %q, want %q", got, "a\rb")
	}

	if _, changed = normalizeCRLF([]byte("plain\n")); changed {
		t.Error("Content without \\r must be returned unchanged")
	}
}

func TestRemoveBOM(t *testing.T) {
	got, had := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x'})
	if !had {
		t.Error("Expected BOM to be detected")
	}
	if string(got) != "x" {
		t.Errorf("removeBOM = %q, want %q", got, "x")
	}

	// Короткий файл из одного байта BOM-а не является BOM-ом
	if _, had = removeBOM([]byte{0xEF}); had {
		t.Error("Partial BOM prefix must not be stripped")
	}
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	target := filepath.Join(baseDir, "nested", "file.ow")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}

	want := normalizePath(filepath.Join("nested", "file.ow"))
	if got != want {
		t.Fatalf("expected relative path %q, got %q", want, got)
	}
}

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	otherDir := filepath.Join(tmp, "other")
	for _, dir := range []string{baseDir, otherDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("failed to create dir %s: %v", dir, err)
		}
	}

	target := filepath.Join(otherDir, "file.ow")

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}

	want := normalizePath(target)
	if got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}
}

func TestBaseName(t *testing.T) {
	if got := BaseName(filepath.Join("a", "b", "file.ow")); got != "file.ow" {
		t.Errorf("BaseName = %q, want %q", got, "file.ow")
	}
}
