package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"owl/internal/source"
)

// Hints provide optional capacity suggestions for the symbol table arenas.
type Hints struct{ Scopes, Symbols uint }

// Table aggregates symbol-related arenas and shared resources.
type Table struct {
	Scopes   *Scopes
	Symbols  *Symbols
	Strings  *source.Interner
	fileRoot map[source.FileID]ScopeID
}

// NewTable builds a fresh table with optional capacity hints.
// If strings is nil, a fresh interner is allocated.
func NewTable(h Hints, strings *source.Interner) *Table {
	scopeCap, err := safecast.Conv[uint32](h.Scopes)
	if err != nil {
		panic(fmt.Errorf("scope capacity overflow: %w", err))
	}
	symCap, err := safecast.Conv[uint32](h.Symbols)
	if err != nil {
		panic(fmt.Errorf("symbol capacity overflow: %w", err))
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	return &Table{
		Scopes:   NewScopes(scopeCap),
		Symbols:  NewSymbols(symCap),
		Strings:  strings,
		fileRoot: make(map[source.FileID]ScopeID),
	}
}

// FileRoot returns (and creates if needed) a file-level scope for the given file.
func (t *Table) FileRoot(file source.FileID, span source.Span) ScopeID {
	if scope, ok := t.fileRoot[file]; ok {
		return scope
	}
	scope := t.Scopes.New(ScopeFile, NoScopeID, ScopeOwner{Kind: ScopeOwnerFile}, span)
	t.fileRoot[file] = scope
	return scope
}

// LookupIn returns the newest symbol bound to name directly in the given
// scope, ignoring enclosing scopes.
func (t *Table) LookupIn(scope ScopeID, name source.StringID) SymbolID {
	sc := t.Scopes.Get(scope)
	if sc == nil {
		return NoSymbolID
	}
	if ids := sc.NameIndex[name]; len(ids) > 0 {
		return ids[len(ids)-1]
	}
	return NoSymbolID
}

// Lookup walks the scope chain from the given scope towards the root and
// returns the nearest visible symbol with that name.
func (t *Table) Lookup(scope ScopeID, name source.StringID) SymbolID {
	for scope.IsValid() {
		if id := t.LookupIn(scope, name); id.IsValid() {
			return id
		}
		sc := t.Scopes.Get(scope)
		if sc == nil {
			break
		}
		scope = sc.Parent
	}
	return NoSymbolID
}
