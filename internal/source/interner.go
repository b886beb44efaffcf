package source

import (
	"slices"
	"strings"
)

// StringID is a handle to an interned string.
type StringID uint32

// NoStringID is the zero handle; it always resolves to the empty string.
const NoStringID StringID = 0

// IsValid reports whether the handle refers to a real (non-empty) string.
func (id StringID) IsValid() bool {
	return id != NoStringID
}

// Interner deduplicates identifier and literal text so the AST can carry
// compact uint32 handles instead of strings. Not safe for concurrent use;
// each compilation unit owns its own Interner.
type Interner struct {
	byID  []string            // ID -> строка, byID[0] зарезервирован под NoStringID
	index map[string]StringID // строка -> ID
}

// NewInterner creates an interner pre-seeded with the empty string at
// NoStringID.
func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": NoStringID},
	}
}

// Intern returns the ID for s, inserting it on first use. The string is
// copied, so callers may pass slices of a shared buffer.
func (in *Interner) Intern(s string) StringID {
	if id, ok := in.index[s]; ok {
		return id
	}
	cpy := strings.Clone(s)
	id := StringID(len(in.byID))
	in.byID = append(in.byID, cpy)
	in.index[cpy] = id
	return id
}

// InternBytes interns the string form of b.
func (in *Interner) InternBytes(b []byte) StringID {
	return in.Intern(string(b))
}

// Lookup returns the string for id, or ("", false) for unknown IDs.
func (in *Interner) Lookup(id StringID) (string, bool) {
	if !in.Has(id) {
		return "", false
	}
	return in.byID[id], true
}

// MustLookup returns the string for id and panics on unknown IDs.
// Используется там, где ID получен из этого же интернера.
func (in *Interner) MustLookup(id StringID) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic("source: invalid string ID")
	}
	return s
}

// Has reports whether id is a valid handle in this interner.
func (in *Interner) Has(id StringID) bool {
	return int(id) < len(in.byID)
}

// Len returns the number of interned strings, counting NoStringID.
func (in *Interner) Len() int {
	return len(in.byID)
}

// Snapshot returns a copy of all interned strings indexed by ID.
func (in *Interner) Snapshot() []string {
	return slices.Clone(in.byID)
}
