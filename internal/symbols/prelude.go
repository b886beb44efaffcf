package symbols

import (
	"owl/internal/types"
)

// BuiltinPrelude returns the built-in functions as prelude entries, so every
// root scope starts with print, len and friends already declared. Entries
// follow the registration order of types.BuiltinNames to keep symbol IDs
// stable between runs.
func BuiltinPrelude(in *types.Interner) []PreludeEntry {
	funcs := types.BuiltinFuncs(in)
	names := types.BuiltinNames()
	entries := make([]PreludeEntry, 0, len(names))
	for _, name := range names {
		sig := funcs[name]
		entries = append(entries, PreludeEntry{
			Name:      name,
			Signature: &sig,
		})
	}
	return entries
}
