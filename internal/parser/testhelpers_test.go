package parser

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"owl/internal/ast"
	"owl/internal/diag"
	"owl/internal/lexer"
	"owl/internal/source"
)

// parseSource прогоняет исходник через лексер и парсер целиком и
// возвращает арены, корневой файл и сумку диагностик.
func parseSource(t *testing.T, input string) (*ast.Builder, ast.FileID, *diag.Bag) {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ow", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	reporter := &diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	arenas := ast.NewBuilder(ast.Hints{})

	res := ParseFile(context.Background(), fs, lx, arenas, Options{
		MaxErrors: 100,
		Reporter:  reporter,
	})
	// Result.Bag — та же сумка, что стоит за reporter'ом.
	return arenas, res.File, res.Bag
}

// parseClean — как parseSource, но падает при любой диагностике.
func parseClean(t *testing.T, input string) (*ast.Builder, ast.FileID) {
	t.Helper()

	arenas, file, bag := parseSource(t, input)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	return arenas, file
}

// parseDump возвращает текстовый дамп дерева — основной способ проверять
// форму разбора.
func parseDump(t *testing.T, input string) (string, *diag.Bag) {
	t.Helper()

	arenas, file, bag := parseSource(t, input)
	return ast.DumpString(arenas, file), bag
}

// fileItems — элементы верхнего уровня разобранного файла.
func fileItems(arenas *ast.Builder, file ast.FileID) []ast.ItemID {
	return arenas.Files.Get(file).Items
}

// containsLine проверяет, что дамп содержит строку целиком, включая
// отступ и перевод строки.
func containsLine(dump, line string) bool {
	return strings.Contains(dump, line)
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

// requireSingleError проверяет, что в bag ровно одна ошибка с нужным кодом.
func requireSingleError(t *testing.T, bag *diag.Bag, code diag.Code) diag.Diagnostic {
	t.Helper()

	if bag.ErrorCount() != 1 {
		t.Fatalf("want exactly 1 error, got %d: %s", bag.ErrorCount(), diagnosticsSummary(bag))
	}
	var found *diag.Diagnostic
	for _, d := range bag.Items() {
		if d.Severity == diag.SevError {
			tmp := d
			found = &tmp
			break
		}
	}
	if found.Code != code {
		t.Fatalf("error code = %s, want %s (%s)", found.Code.ID(), code.ID(), diagnosticsSummary(bag))
	}
	return *found
}
