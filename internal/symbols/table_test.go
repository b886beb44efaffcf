package symbols

import (
	"testing"

	"owl/internal/source"
)

func TestTableFileRootReuse(t *testing.T) {
	table := NewTable(Hints{}, nil)
	file := source.FileID(1)
	span := source.Span{File: file}

	first := table.FileRoot(file, span)
	second := table.FileRoot(file, span)

	if !first.IsValid() {
		t.Fatalf("expected valid scope ID")
	}
	if first != second {
		t.Fatalf("expected FileRoot to reuse existing scope, got %v and %v", first, second)
	}

	if err := table.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestTableLookupWalksParents(t *testing.T) {
	table := NewTable(Hints{}, nil)
	file := source.FileID(1)
	root := table.FileRoot(file, source.Span{File: file})

	res := NewResolver(table, root, ResolverOptions{})
	name := table.Strings.Intern("value")
	id, _ := res.Declare(Symbol{
		Name: name,
		Kind: SymbolVar,
		Span: source.Span{File: file},
	})
	if !id.IsValid() {
		t.Fatalf("declare failed")
	}

	inner := res.Enter(ScopeBlock, ScopeOwner{Kind: ScopeOwnerStmt}, source.Span{File: file})

	if got := table.LookupIn(inner, name); got.IsValid() {
		t.Fatalf("LookupIn должен смотреть только в свой scope, нашёл %v", got)
	}
	if got := table.Lookup(inner, name); got != id {
		t.Fatalf("Lookup должен дойти до родителя: ожидали %v, получили %v", id, got)
	}
	if got := table.Lookup(root, name); got != id {
		t.Fatalf("Lookup из корня: ожидали %v, получили %v", id, got)
	}

	res.Leave(inner)
	if err := table.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestTableLookupNewestWins(t *testing.T) {
	table := NewTable(Hints{}, nil)
	file := source.FileID(1)
	root := table.FileRoot(file, source.Span{File: file})

	res := NewResolver(table, root, ResolverOptions{})
	name := table.Strings.Intern("x")

	first, _ := res.Declare(Symbol{Name: name, Kind: SymbolVar})
	second, conflict := res.Declare(Symbol{Name: name, Kind: SymbolVar})

	if conflict.Prev != first {
		t.Fatalf("ожидали конфликт с первым объявлением %v, получили %v", first, conflict.Prev)
	}
	// После переобъявления видимой остаётся новая привязка.
	if got := table.LookupIn(root, name); got != second {
		t.Fatalf("видимый символ: ожидали %v, получили %v", second, got)
	}
	if table.Symbols.Len() != 2 {
		t.Fatalf("оба символа должны остаться в арене, Len=%d", table.Symbols.Len())
	}
}
