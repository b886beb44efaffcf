package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	// Первая версия файла
	id1 := fs.Add("main.ow", []byte("let x = 1"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	latest, ok := fs.GetLatest("main.ow")
	if !ok {
		t.Fatal("Expected file to exist after Add")
	}
	if latest != id1 {
		t.Errorf("Expected latest ID %d, got %d", id1, latest)
	}

	// Вторая версия того же пути получает новый ID
	id2 := fs.Add("main.ow", []byte("let x = 2"), 0)
	if id2 == id1 {
		t.Error("Expected a fresh FileID for the second Add")
	}

	latest, ok = fs.GetLatest("main.ow")
	if !ok {
		t.Fatal("Expected file to exist after second Add")
	}
	if latest != id2 {
		t.Errorf("Expected latest ID %d, got %d", id2, latest)
	}

	// Старая версия остаётся доступной по своему ID
	if got := string(fs.Get(id1).Content); got != "let x = 1" {
		t.Errorf("Expected first version content %q, got %q", "let x = 1", got)
	}
	if got := string(fs.Get(id2).Content); got != "let x = 2" {
		t.Errorf("Expected second version content %q, got %q", "let x = 2", got)
	}
	if fs.Get(id1).Path != fs.Get(id2).Path {
		t.Error("Expected both versions to share the same path")
	}
	if fs.Len() != 2 {
		t.Errorf("Expected 2 stored versions, got %d", fs.Len())
	}
}

func TestGetStableAcrossAdds(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("a.ow", []byte("fn main() {}"))
	before := fs.Get(id)

	// Указатель не должен протухать после роста внутреннего слайса
	for i := 0; i < 64; i++ {
		fs.AddVirtual("b.ow", []byte("let y = 0"))
	}

	after := fs.Get(id)
	if before != after {
		t.Error("Expected Get to return a stable pointer across later Adds")
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()

	// "a\nb\n" → переводы строк на позициях 1 и 3
	id := fs.AddVirtual("a.ow", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, want := range expected {
		if file.LineIdx[i] != want {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, want, file.LineIdx[i])
		}
	}

	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestResolveMultiLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("multi.ow", []byte("ab\ncd\nef"))

	tests := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{name: "first byte", off: 0, want: LineCol{Line: 1, Col: 1}},
		{name: "middle of first line", off: 1, want: LineCol{Line: 1, Col: 2}},
		{name: "newline belongs to the line it ends", off: 2, want: LineCol{Line: 1, Col: 3}},
		{name: "start of second line", off: 3, want: LineCol{Line: 2, Col: 1}},
		{name: "middle of second line", off: 4, want: LineCol{Line: 2, Col: 2}},
		{name: "start of third line", off: 6, want: LineCol{Line: 3, Col: 1}},
		{name: "end of file", off: 8, want: LineCol{Line: 3, Col: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
			if start != tt.want {
				t.Errorf("Resolve(off=%d) = %+v, want %+v", tt.off, start, tt.want)
			}
		})
	}
}

// Колонки считаются в байтах: двухбайтовая α сдвигает следующую позицию на 2.
func TestResolveUTF8(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("utf8.ow", []byte("α\n"))

	start, end := fs.Resolve(Span{File: id, Start: 0, End: 1})
	if want := (LineCol{Line: 1, Col: 1}); start != want {
		t.Errorf("Expected start %+v, got %+v", want, start)
	}
	if want := (LineCol{Line: 1, Col: 2}); end != want {
		t.Errorf("Expected end %+v, got %+v", want, end)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("lines.ow", []byte("first\nsecond\nthird"))
	file := fs.Get(id)

	tests := []struct {
		name string
		line uint32
		want string
	}{
		{name: "first line", line: 1, want: "first"},
		{name: "middle line", line: 2, want: "second"},
		{name: "last line without newline", line: 3, want: "third"},
		{name: "line zero", line: 0, want: ""},
		{name: "past the end", line: 4, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := file.GetLine(tt.line); got != tt.want {
				t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestGetLineTrailingNewline(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("trail.ow", []byte("only\n"))
	file := fs.Get(id)

	if got := file.GetLine(1); got != "only" {
		t.Errorf("GetLine(1) = %q, want %q", got, "only")
	}
	// Строка после завершающего \n пуста
	if got := file.GetLine(2); got != "" {
		t.Errorf("GetLine(2) = %q, want empty", got)
	}
}

func TestEmptyAndNewlineOnlyFiles(t *testing.T) {
	fs := NewFileSet()

	empty := fs.Get(fs.AddVirtual("empty.ow", []byte{}))
	if len(empty.LineIdx) != 0 {
		t.Errorf("Expected empty LineIdx for empty file, got %v", empty.LineIdx)
	}

	plain := fs.Get(fs.AddVirtual("plain.ow", []byte("hello")))
	if len(plain.LineIdx) != 0 {
		t.Errorf("Expected empty LineIdx for file without newlines, got %v", plain.LineIdx)
	}

	nl := fs.Get(fs.AddVirtual("nl.ow", []byte("\n")))
	if len(nl.LineIdx) != 1 || nl.LineIdx[0] != 0 {
		t.Errorf("Expected LineIdx [0] for newline-only file, got %v", nl.LineIdx)
	}
}

func TestLoadNormalizesBOMAndCRLF(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name        string
		raw         string
		wantContent string
		wantFlags   FileFlags
	}{
		{
			name:        "plain file",
			raw:         "a\nb\n",
			wantContent: "a\nb\n",
			wantFlags:   0,
		},
		{
			name:        "utf8 bom",
			raw:         "\xEF\xBB\xBFa\nb\n",
			wantContent: "a\nb\n",
			wantFlags:   FileHadBOM,
		},
		{
			name:        "crlf endings",
			raw:         "a\r\nb\r\n",
			wantContent: "a\nb\n",
			wantFlags:   FileNormalizedCRLF,
		},
		{
			name:        "bom and crlf",
			raw:         "\xEF\xBB\xBFa\r\nb\r\n",
			wantContent: "a\nb\n",
			wantFlags:   FileHadBOM | FileNormalizedCRLF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".ow")
			if err := os.WriteFile(path, []byte(tt.raw), 0o644); err != nil {
				t.Fatalf("Failed to write temp file: %v", err)
			}

			fs := NewFileSet()
			id, err := fs.Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}

			file := fs.Get(id)
			if string(file.Content) != tt.wantContent {
				t.Errorf("Expected content %q, got %q", tt.wantContent, string(file.Content))
			}
			if file.Flags != tt.wantFlags {
				t.Errorf("Expected flags %b, got %b", tt.wantFlags, file.Flags)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "missing.ow")); err == nil {
		t.Fatal("Expected error when loading a missing file")
	}
}
