package parser

import (
	"testing"

	"owl/internal/ast"
	"owl/internal/diag"
)

// parseMatchString разбирает исходник из одного match-выражения.
func parseMatchString(t *testing.T, input string) (*ast.Builder, *ast.ExprMatchData) {
	t.Helper()

	arenas, exprID := parseExprString(t, input)
	matchData, ok := arenas.Exprs.Match(exprID)
	if !ok {
		t.Fatalf("expression is not a match")
	}
	return arenas, matchData
}

func TestParseMatch_Golden(t *testing.T) {
	dump, bag := parseDump(t, `
match opt {
    Some(x) => x + 1,
    None => 0
}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
	}

	want := `File:
  ExprStmt:
    Match:
      Subject:
        Ident: opt
      Arm: Some(x) =>
        Binary: +
          Ident: x
          Int: 1
      Arm: None =>
        Int: 0
`
	if dump != want {
		t.Errorf("dump mismatch:\ngot:\n%s\nwant:\n%s", dump, want)
	}
}

func TestParseMatch_ResultArms(t *testing.T) {
	arenas, matchData := parseMatchString(t, "match parse(s) { Ok(v) => v, Err(e) => fallback }")

	if len(matchData.Arms) != 2 {
		t.Fatalf("got %d arms, want 2", len(matchData.Arms))
	}

	first := arenas.Exprs.Arm(matchData.Arms[0])
	if first.Pattern != ast.PatternOk {
		t.Errorf("arms[0].Pattern = %v, want PatternOk", first.Pattern)
	}
	if got := arenas.Lookup(first.Binder); got != "v" {
		t.Errorf("arms[0].Binder = %q, want %q", got, "v")
	}

	second := arenas.Exprs.Arm(matchData.Arms[1])
	if second.Pattern != ast.PatternErr {
		t.Errorf("arms[1].Pattern = %v, want PatternErr", second.Pattern)
	}
	if got := arenas.Lookup(second.Binder); got != "e" {
		t.Errorf("arms[1].Binder = %q, want %q", got, "e")
	}
}

// Запятые между ветками опциональны: с ними, без них и с хвостовой —
// одно и то же дерево.
func TestParseMatch_OptionalCommas(t *testing.T) {
	inputs := map[string]string{
		"newlines": "match x {\n    Some(v) => v\n    None => 0\n}",
		"commas":   "match x { Some(v) => v, None => 0 }",
		"trailing": "match x { Some(v) => v, None => 0, }",
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			_, matchData := parseMatchString(t, input)
			if len(matchData.Arms) != 2 {
				t.Errorf("got %d arms, want 2", len(matchData.Arms))
			}
		})
	}
}

// Неизвестное имя конструктора — не синтаксическая ошибка: ветка
// сохраняется как PatternUnknown, о смысле сообщит sema.
func TestParseMatch_UnknownPattern(t *testing.T) {
	t.Run("bare name", func(t *testing.T) {
		arenas, matchData := parseMatchString(t, "match x { Whatever => 1 }")
		if len(matchData.Arms) != 1 {
			t.Fatalf("got %d arms, want 1", len(matchData.Arms))
		}
		arm := arenas.Exprs.Arm(matchData.Arms[0])
		if arm.Pattern != ast.PatternUnknown {
			t.Errorf("Pattern = %v, want PatternUnknown", arm.Pattern)
		}
		if got := arenas.Lookup(arm.Name); got != "Whatever" {
			t.Errorf("Name = %q, want %q", got, "Whatever")
		}
		if arm.Binder.IsValid() {
			t.Error("binder must be absent")
		}
	})

	t.Run("with binder", func(t *testing.T) {
		arenas, matchData := parseMatchString(t, "match x { Custom(y) => y }")
		arm := arenas.Exprs.Arm(matchData.Arms[0])
		if arm.Pattern != ast.PatternUnknown {
			t.Errorf("Pattern = %v, want PatternUnknown", arm.Pattern)
		}
		if got := arenas.Lookup(arm.Binder); got != "y" {
			t.Errorf("Binder = %q, want %q", got, "y")
		}
	})
}

// Пустой match — валидный синтаксис; полноту веток проверяет sema.
func TestParseMatch_EmptyParses(t *testing.T) {
	_, matchData := parseMatchString(t, "match x { }")

	if len(matchData.Arms) != 0 {
		t.Errorf("got %d arms, want 0", len(matchData.Arms))
	}
}

func TestParseMatch_AsLetValue(t *testing.T) {
	arenas, stmtID := parseStmtString(t, "let label = match n { Ok(v) => v, Err(e) => e }")

	letData, ok := arenas.Stmts.Let(stmtID)
	if !ok {
		t.Fatal("statement is not a let")
	}
	if kind := arenas.Exprs.Get(letData.Value).Kind; kind != ast.ExprMatch {
		t.Errorf("value kind = %v, want ExprMatch", kind)
	}
}

// Сломанная ветка выкидывается до запятой, остальные продолжают жить.
func TestParseMatch_ArmRecovery(t *testing.T) {
	arenas, file, bag := parseSource(t, `
match x {
    Some => 1,
    None => 0
}
`)

	d := requireSingleError(t, bag, diag.SynMalformedMatch)
	if d.Message != "Expected '(' after Some" {
		t.Errorf("message = %q", d.Message)
	}

	items := fileItems(arenas, file)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	stmtID, ok := arenas.Items.Stmt(items[0])
	if !ok {
		t.Fatal("items[0] is not a statement item")
	}
	exprData, ok := arenas.Stmts.Expr(stmtID)
	if !ok {
		t.Fatal("statement is not an expression statement")
	}
	matchData, ok := arenas.Exprs.Match(exprData.Expr)
	if !ok {
		t.Fatal("expression is not a match")
	}
	if len(matchData.Arms) != 1 {
		t.Fatalf("got %d arms, want 1", len(matchData.Arms))
	}
	if arm := arenas.Exprs.Arm(matchData.Arms[0]); arm.Pattern != ast.PatternNone {
		t.Errorf("surviving arm pattern = %v, want PatternNone", arm.Pattern)
	}
}

func TestParseMatch_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode diag.Code
		wantMsg  string
	}{
		{
			name:     "some without binder",
			input:    "match x { Some => 1 }",
			wantCode: diag.SynMalformedMatch,
			wantMsg:  "Expected '(' after Some",
		},
		{
			name:     "missing arrow",
			input:    "match x { Some(v) 1 }",
			wantCode: diag.SynMalformedMatch,
			wantMsg:  "Expected '=>' after pattern",
		},
		{
			name:     "none with stray body",
			input:    "match x { None 0 }",
			wantCode: diag.SynMalformedMatch,
			wantMsg:  "Expected '=>' after pattern",
		},
		{
			name:     "number as pattern",
			input:    "match x { 5 => 1 }",
			wantCode: diag.SynMalformedMatch,
			wantMsg:  "Expected pattern (Some, None, Ok, or Err)",
		},
		{
			name:     "missing brace",
			input:    "match x Some(v) => v",
			wantCode: diag.SynMissingBrace,
			wantMsg:  "Expected '{' after match expression",
		},
		{
			name:     "unclosed binder",
			input:    "match x { Ok(v => v }",
			wantCode: diag.SynMalformedMatch,
			wantMsg:  "Expected ')' after binding",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, bag := parseSource(t, tt.input)
			d := requireSingleError(t, bag, tt.wantCode)
			if d.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", d.Message, tt.wantMsg)
			}
		})
	}
}
