package symbols

import (
	"fmt"

	"owl/internal/source"
	"owl/internal/types"
)

// ResolverOptions configures resolver construction.
type ResolverOptions struct {
	Prelude []PreludeEntry
}

// PreludeEntry describes a built-in symbol injected into the root scope
// before source traversal.
type PreludeEntry struct {
	Name      string
	Type      types.TypeID
	Signature *types.Signature
}

// Conflict reports what a fresh declaration collides with. Prev is an
// earlier declaration of the same name in the same scope; Outer is the
// nearest binding the new symbol shadows in an enclosing scope. At most one
// of the two is set, Prev taking precedence.
type Conflict struct {
	Prev  SymbolID
	Outer SymbolID
}

// Resolver drives scope management and declaration/lookup routines. It does
// not report anything itself: redefinition and shadowing policy stays with
// the caller, which receives the conflicting symbol and decides on severity.
type Resolver struct {
	table *Table
	stack []ScopeID
}

// NewResolver wires a resolver to an existing scope tree. If root is valid
// it becomes the current scope and receives the prelude entries; otherwise
// scope-sensitive operations are no-ops.
func NewResolver(table *Table, root ScopeID, opts ResolverOptions) *Resolver {
	r := &Resolver{
		table: table,
		stack: make([]ScopeID, 0, 8),
	}
	if root.IsValid() {
		r.stack = append(r.stack, root)
		if len(opts.Prelude) > 0 {
			r.installPrelude(root, opts.Prelude)
		}
	}
	return r
}

// CurrentScope returns the scope at the top of the stack.
func (r *Resolver) CurrentScope() ScopeID {
	if len(r.stack) == 0 {
		return NoScopeID
	}
	return r.stack[len(r.stack)-1]
}

// Enter creates a child scope, pushes it onto the stack, and returns its ID.
func (r *Resolver) Enter(kind ScopeKind, owner ScopeOwner, span source.Span) ScopeID {
	parent := r.CurrentScope()
	scope := r.table.Scopes.New(kind, parent, owner, span)
	r.stack = append(r.stack, scope)
	return scope
}

// Leave pops the current scope. The expected ID guards against unbalanced
// Enter/Leave pairs; a mismatch is a walker bug, not an input condition.
func (r *Resolver) Leave(expected ScopeID) {
	if len(r.stack) == 0 {
		return
	}
	top := r.stack[len(r.stack)-1]
	if expected.IsValid() && top != expected {
		panic(fmt.Sprintf("symbols: leaving scope %d while %d is on top", expected, top))
	}
	r.stack = r.stack[:len(r.stack)-1]
}

// Declare installs a symbol into the current scope and reports what it
// conflicts with. The symbol is installed even when it conflicts, so after
// a redefinition the newest binding wins for later lookups. Scope is filled
// in from the stack.
func (r *Resolver) Declare(sym Symbol) (SymbolID, Conflict) {
	scopeID := r.CurrentScope()
	scope := r.table.Scopes.Get(scopeID)
	if scope == nil {
		return NoSymbolID, Conflict{}
	}

	var conflict Conflict
	if existing := scope.NameIndex[sym.Name]; len(existing) > 0 {
		conflict.Prev = existing[len(existing)-1]
	} else if outer := r.table.Lookup(scope.Parent, sym.Name); outer.IsValid() {
		conflict.Outer = outer
	}

	sym.Scope = scopeID
	id := r.table.Symbols.New(&sym)
	scope.Symbols = append(scope.Symbols, id)
	scope.NameIndex[sym.Name] = append(scope.NameIndex[sym.Name], id)
	return id, conflict
}

// Lookup walks the scope chain searching for a symbol with the given name.
func (r *Resolver) Lookup(name source.StringID) (SymbolID, bool) {
	id := r.table.Lookup(r.CurrentScope(), name)
	return id, id.IsValid()
}

// installPrelude declares prelude entries into scope as builtin symbols.
// Builtins carry no span: diagnostics about them point at the use site.
func (r *Resolver) installPrelude(scopeID ScopeID, entries []PreludeEntry) {
	scope := r.table.Scopes.Get(scopeID)
	if scope == nil {
		return
	}
	for _, entry := range entries {
		nameID := r.table.Strings.Intern(entry.Name)
		sym := Symbol{
			Name:      nameID,
			Kind:      SymbolBuiltin,
			Scope:     scopeID,
			Type:      entry.Type,
			Signature: entry.Signature,
		}
		id := r.table.Symbols.New(&sym)
		scope.Symbols = append(scope.Symbols, id)
		scope.NameIndex[nameID] = append(scope.NameIndex[nameID], id)
	}
}
