package parser

import (
	"context"
	"testing"

	"owl/internal/ast"
	"owl/internal/diag"
	"owl/internal/lexer"
	"owl/internal/source"
)

func TestParseFile_Empty(t *testing.T) {
	arenas, file := parseClean(t, "")

	if items := fileItems(arenas, file); len(items) != 0 {
		t.Fatalf("empty input produced %d items, want 0", len(items))
	}
}

// Верхний уровень — скриптовый: операторы без обёртки в функцию.
func TestParseFile_ScriptStatements(t *testing.T) {
	arenas, file := parseClean(t, `
let x = 1
print(x)
`)

	items := fileItems(arenas, file)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	for i, id := range items {
		if kind := arenas.Items.Get(id).Kind; kind != ast.ItemStmt {
			t.Errorf("items[%d].Kind = %v, want ItemStmt", i, kind)
		}
	}
}

func TestParseFile_Golden(t *testing.T) {
	dump, bag := parseDump(t, `
from python import math

fn add(x: Int, y: Int) -> Int {
    return x + y
}

fn main() {
    let mut total = 0
    for n in [1, 2, 3] {
        total = total + n
    }
    print(add(total, 1))
}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
	}

	want := `File:
  Import: python (math)
  Fn: add(x: Int, y: Int) -> Int
    Block:
      Return:
        Binary: +
          Ident: x
          Ident: y
  Fn: main()
    Block:
      Let: mut total =
        Int: 0
      For: n in
        List:
          Int: 1
          Int: 2
          Int: 3
        Body:
          Block:
            Assign: total =
              Binary: +
                Ident: total
                Ident: n
      ExprStmt:
        Call:
          Ident: print
          Args:
            Call:
              Ident: add
              Args:
                Ident: total
                Int: 1
`
	if dump != want {
		t.Errorf("dump mismatch:\ngot:\n%s\nwant:\n%s", dump, want)
	}
}

func TestParseFile_BareImport(t *testing.T) {
	arenas, file, bag := parseSource(t, `
import math
let x = 1
`)

	requireSingleError(t, bag, diag.ImportInvalid)

	// Повреждённый item стал Bad, следующий разобрался как обычно.
	items := fileItems(arenas, file)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if kind := arenas.Items.Get(items[0]).Kind; kind != ast.ItemBad {
		t.Errorf("items[0].Kind = %v, want ItemBad", kind)
	}
	if kind := arenas.Items.Get(items[1]).Kind; kind != ast.ItemStmt {
		t.Errorf("items[1].Kind = %v, want ItemStmt", kind)
	}
}

// Одна сломанная конструкция — ровно одна диагностика, остальное
// разбирается дальше.
func TestParseFile_TopLevelRecovery(t *testing.T) {
	arenas, file, bag := parseSource(t, `
let = 5
let y = 2
`)

	d := requireSingleError(t, bag, diag.SynMissingToken)
	if d.Message != "Expected variable name after 'let'" {
		t.Errorf("message = %q", d.Message)
	}

	items := fileItems(arenas, file)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if kind := arenas.Items.Get(items[0]).Kind; kind != ast.ItemBad {
		t.Errorf("items[0].Kind = %v, want ItemBad", kind)
	}
	stmtID, ok := arenas.Items.Stmt(items[1])
	if !ok {
		t.Fatalf("items[1] is not a statement item")
	}
	letData, ok := arenas.Stmts.Let(stmtID)
	if !ok {
		t.Fatalf("items[1] is not a let statement")
	}
	if got := arenas.Lookup(letData.Name); got != "y" {
		t.Errorf("recovered let name = %q, want %q", got, "y")
	}
}

func TestParseFile_StrayTokenRecovery(t *testing.T) {
	arenas, file, bag := parseSource(t, `
+
let x = 1
`)

	d := requireSingleError(t, bag, diag.SynUnexpectedToken)
	if d.Message != `Unexpected token: "+"` {
		t.Errorf("message = %q", d.Message)
	}

	items := fileItems(arenas, file)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if kind := arenas.Items.Get(items[1]).Kind; kind != ast.ItemStmt {
		t.Errorf("items[1].Kind = %v, want ItemStmt", kind)
	}
}

func TestParseFile_UnclosedBlock(t *testing.T) {
	_, _, bag := parseSource(t, `fn main() {
    let x = 1`)

	d := requireSingleError(t, bag, diag.SynMissingBrace)
	if d.Message != "Expected '}' to close block" {
		t.Errorf("message = %q", d.Message)
	}
}

// MaxErrors глушит диагностики после лимита, но разбор продолжается.
func TestParseFile_MaxErrors(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ow", []byte("let = 1\nlet = 2"))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	arenas := ast.NewBuilder(ast.Hints{})

	res := ParseFile(context.Background(), fs, lx, arenas, Options{
		MaxErrors: 1,
		Reporter:  reporter,
	})

	if bag.Len() != 1 {
		t.Fatalf("bag has %d diagnostics, want 1: %s", bag.Len(), diagnosticsSummary(bag))
	}
	// Оба сломанных item'а всё равно в дереве.
	if items := fileItems(arenas, res.File); len(items) != 2 {
		t.Errorf("got %d items, want 2", len(items))
	}
}

// Отмена контекста обрывает разбор: частичный файл без диагностик.
func TestParseFile_ContextCancel(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ow", []byte("let x = 1"))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	arenas := ast.NewBuilder(ast.Hints{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := ParseFile(ctx, fs, lx, arenas, Options{MaxErrors: 100, Reporter: reporter})

	if items := fileItems(arenas, res.File); len(items) != 0 {
		t.Errorf("cancelled parse produced %d items, want 0", len(items))
	}
	if bag.Len() != 0 {
		t.Errorf("cancelled parse produced diagnostics: %s", diagnosticsSummary(bag))
	}
}

func TestParseFile_ResultBag(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ow", []byte("let x = 1"))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	arenas := ast.NewBuilder(ast.Hints{})

	res := ParseFile(context.Background(), fs, lx, arenas, Options{MaxErrors: 100, Reporter: reporter})

	// Парсер достаёт сумку из BagReporter'а, чтобы вызывающему не
	// приходилось таскать её отдельно от Result.
	if res.Bag != bag {
		t.Fatal("Result.Bag is not the reporter's bag")
	}
}
