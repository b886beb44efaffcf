package parser

import (
	"testing"

	"owl/internal/ast"
	"owl/internal/diag"
)

// parseExprString разбирает исходник из одного выражения-оператора и
// возвращает его ExprID.
func parseExprString(t *testing.T, input string) (*ast.Builder, ast.ExprID) {
	t.Helper()

	arenas, stmtID := parseStmtString(t, input)
	exprData, ok := arenas.Stmts.Expr(stmtID)
	if !ok {
		t.Fatalf("statement is not an expression statement")
	}
	return arenas, exprData.Expr
}

func TestParseExpr_Literals(t *testing.T) {
	dump, bag := parseDump(t, `[1, 3.14, "hi", true, false]`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
	}

	// Литералы хранят сырой текст токена; строки — вместе с кавычками.
	want := `File:
  ExprStmt:
    List:
      Int: 1
      Float: 3.14
      String: "hi"
      Bool: true
      Bool: false
`
	if dump != want {
		t.Errorf("dump mismatch:\ngot:\n%s\nwant:\n%s", dump, want)
	}
}

func TestParseExpr_Precedence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "multiplication binds tighter",
			input: "1 + 2 * 3",
			want: `File:
  ExprStmt:
    Binary: +
      Int: 1
      Binary: *
        Int: 2
        Int: 3
`,
		},
		{
			name:  "grouping overrides",
			input: "(1 + 2) * 3",
			want: `File:
  ExprStmt:
    Binary: *
      Group:
        Binary: +
          Int: 1
          Int: 2
      Int: 3
`,
		},
		{
			name:  "subtraction is left associative",
			input: "10 - 2 - 3",
			want: `File:
  ExprStmt:
    Binary: -
      Binary: -
        Int: 10
        Int: 2
      Int: 3
`,
		},
		{
			name:  "modulo with addition",
			input: "a % b + c",
			want: `File:
  ExprStmt:
    Binary: +
      Binary: %
        Ident: a
        Ident: b
      Ident: c
`,
		},
		{
			name:  "comparison above equality",
			input: "a + b < c * d == true",
			want: `File:
  ExprStmt:
    Binary: ==
      Binary: <
        Binary: +
          Ident: a
          Ident: b
        Binary: *
          Ident: c
          Ident: d
      Bool: true
`,
		},
		{
			name:  "two comparisons under inequality",
			input: "x <= y != y >= z",
			want: `File:
  ExprStmt:
    Binary: !=
      Binary: <=
        Ident: x
        Ident: y
      Binary: >=
        Ident: y
        Ident: z
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dump, bag := parseDump(t, tt.input)
			if bag.HasErrors() {
				t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
			}
			if dump != tt.want {
				t.Errorf("dump mismatch:\ngot:\n%s\nwant:\n%s", dump, tt.want)
			}
		})
	}
}

func TestParseExpr_Unary(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "negation binds tighter than multiplication",
			input: "-x * 3",
			want: `File:
  ExprStmt:
    Binary: *
      Unary: -
        Ident: x
      Int: 3
`,
		},
		{
			name:  "not binds tighter than equality",
			input: "!ready == done",
			want: `File:
  ExprStmt:
    Binary: ==
      Unary: !
        Ident: ready
      Ident: done
`,
		},
		{
			name:  "stacked prefixes",
			input: "--x",
			want: `File:
  ExprStmt:
    Unary: -
      Unary: -
        Ident: x
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dump, bag := parseDump(t, tt.input)
			if bag.HasErrors() {
				t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
			}
			if dump != tt.want {
				t.Errorf("dump mismatch:\ngot:\n%s\nwant:\n%s", dump, tt.want)
			}
		})
	}
}

func TestParseExpr_Postfix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "chained field access",
			input: "user.name.len",
			want: `File:
  ExprStmt:
    Field: .len
      Field: .name
        Ident: user
`,
		},
		{
			name:  "chained calls",
			input: "f(1)(2)",
			want: `File:
  ExprStmt:
    Call:
      Call:
        Ident: f
        Args:
          Int: 1
      Args:
        Int: 2
`,
		},
		{
			name:  "try on call result",
			input: "get(xs, 0)?",
			want: `File:
  ExprStmt:
    Try:
      Call:
        Ident: get
        Args:
          Ident: xs
          Int: 0
`,
		},
		{
			name:  "try inside chain",
			input: "config.load()?.path",
			want: `File:
  ExprStmt:
    Field: .path
      Try:
        Call:
          Field: .load
            Ident: config
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dump, bag := parseDump(t, tt.input)
			if bag.HasErrors() {
				t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
			}
			if dump != tt.want {
				t.Errorf("dump mismatch:\ngot:\n%s\nwant:\n%s", dump, tt.want)
			}
		})
	}
}

// Висячая запятая допустима в списке и запрещена в вызове.
func TestParseExpr_TrailingComma(t *testing.T) {
	t.Run("list keeps the flag", func(t *testing.T) {
		arenas, exprID := parseExprString(t, "[1, 2,]")
		list, ok := arenas.Exprs.List(exprID)
		if !ok {
			t.Fatal("expression is not a list")
		}
		if len(list.Elements) != 2 {
			t.Errorf("got %d elements, want 2", len(list.Elements))
		}
		if !list.HasTrailingComma {
			t.Error("trailing comma flag must be set")
		}
	})

	t.Run("list without", func(t *testing.T) {
		arenas, exprID := parseExprString(t, "[1, 2]")
		list, _ := arenas.Exprs.List(exprID)
		if list.HasTrailingComma {
			t.Error("trailing comma flag must be clear")
		}
	})

	t.Run("empty list", func(t *testing.T) {
		arenas, exprID := parseExprString(t, "[]")
		list, ok := arenas.Exprs.List(exprID)
		if !ok {
			t.Fatal("expression is not a list")
		}
		if len(list.Elements) != 0 {
			t.Errorf("got %d elements, want 0", len(list.Elements))
		}
	})

	t.Run("call rejects it", func(t *testing.T) {
		_, _, bag := parseSource(t, "f(1,)")
		d := requireSingleError(t, bag, diag.SynUnexpectedToken)
		if d.Message != "Expected expression in argument list" {
			t.Errorf("message = %q", d.Message)
		}
	})
}

func TestParseExpr_IfValue(t *testing.T) {
	dump, bag := parseDump(t, "let g = if ok { 1 } else { 2 }")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
	}

	want := `File:
  Let: g =
    IfExpr:
      If:
        Cond:
          Ident: ok
        Then:
          Block:
            ExprStmt:
              Int: 1
        Else:
          Block:
            ExprStmt:
              Int: 2
`
	if dump != want {
		t.Errorf("dump mismatch:\ngot:\n%s\nwant:\n%s", dump, want)
	}
}

// Неудача внутри выражения даёт ровно одну диагностику.
func TestParseExpr_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode diag.Code
		wantMsg  string
	}{
		{
			name:     "missing right operand",
			input:    "1 + ",
			wantCode: diag.SynUnexpectedToken,
			wantMsg:  "Expected expression after '+'",
		},
		{
			name:     "unclosed group",
			input:    "(1",
			wantCode: diag.SynMissingParen,
			wantMsg:  "Expected ')' after expression",
		},
		{
			name:     "empty group",
			input:    "()",
			wantCode: diag.SynUnexpectedToken,
			wantMsg:  "Expected expression after '('",
		},
		{
			name:     "unclosed list",
			input:    "[1, 2",
			wantCode: diag.SynMissingToken,
			wantMsg:  "Expected ']' after list elements",
		},
		{
			name:     "unclosed call",
			input:    "f(1",
			wantCode: diag.SynMissingParen,
			wantMsg:  "Expected ')' after arguments",
		},
		{
			name:     "missing field name",
			input:    "user.",
			wantCode: diag.SynMissingToken,
			wantMsg:  "Expected field name after '.'",
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
