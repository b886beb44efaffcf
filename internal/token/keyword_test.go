package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"fn":       KwFn,
		"let":      KwLet,
		"mut":      KwMut,
		"loop":     KwLoop,
		"match":    KwMatch,
		"return":   KwReturn,
		"from":     KwFrom,
		"import":   KwImport,
		"as":       KwAs,
		"true":     KwTrue,
		"false":    KwFalse,
		"continue": KwContinue,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// Заведомо НЕ ключевые слова
	notKw := []string{
		"Fn", "LET", "Match", // регистр важен
		"Int", "Float", "String", "Bool", "Void", // имена типов — Ident
		"Some", "None", "Ok", "Err", // конструкторы — Ident
		"python",                // корень импорта — тоже Ident
		"identifier", "main", "_",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}
