package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for the pre-seeded primitive and sentinel types.
type Builtins struct {
	Invalid TypeID
	Void    TypeID
	Int     TypeID
	Float   TypeID
	String  TypeID
	Bool    TypeID
	Any     TypeID
	Unknown TypeID
}

// Interner provides stable TypeIDs by hashing structural descriptors.
// Не потокобезопасен; каждая проверка файла владеет своим интернером.
type Interner struct {
	types    []Type
	index    map[Type]TypeID
	builtins Builtins
}

// NewInterner constructs an interner seeded with built-in primitives.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[Type]TypeID, 32),
	}
	in.builtins.Invalid = in.internRaw(Type{Kind: KindInvalid})
	in.builtins.Void = in.Intern(Type{Kind: KindVoid})
	in.builtins.Int = in.Intern(Type{Kind: KindInt})
	in.builtins.Float = in.Intern(Type{Kind: KindFloat})
	in.builtins.String = in.Intern(Type{Kind: KindString})
	in.builtins.Bool = in.Intern(Type{Kind: KindBool})
	in.builtins.Any = in.Intern(Type{Kind: KindAny})
	in.builtins.Unknown = in.Intern(Type{Kind: KindUnknown})
	return in
}

// Builtins returns TypeIDs for primitive types.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern ensures the provided descriptor has a stable TypeID.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	if id, ok := in.index[t]; ok {
		return id
	}
	return in.internRaw(t)
}

// internRaw adds the descriptor to the storage without consulting the map.
func (in *Interner) internRaw(t Type) TypeID {
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(lenTypes)
	in.types = append(in.types, t)
	in.index[t] = id
	return id
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

// Option interns Option[inner].
func (in *Interner) Option(inner TypeID) TypeID {
	return in.Intern(MakeOption(inner))
}

// Result interns Result[ok, err].
func (in *Interner) Result(ok, err TypeID) TypeID {
	return in.Intern(MakeResult(ok, err))
}

// List interns List[elem].
func (in *Interner) List(elem TypeID) TypeID {
	return in.Intern(MakeList(elem))
}

// Kind returns the kind for a TypeID, or KindInvalid for unknown IDs.
func (in *Interner) Kind(id TypeID) Kind {
	tt, ok := in.Lookup(id)
	if !ok {
		return KindInvalid
	}
	return tt.Kind
}

// String renders a type the way diagnostics spell it: primitives by name,
// parameterized types as Name[Args].
func (in *Interner) String(id TypeID) string {
	tt, ok := in.Lookup(id)
	if !ok {
		return "?"
	}
	switch tt.Kind {
	case KindOption:
		return fmt.Sprintf("Option[%s]", in.String(tt.Elem))
	case KindResult:
		return fmt.Sprintf("Result[%s, %s]", in.String(tt.Elem), in.String(tt.Err))
	case KindList:
		return fmt.Sprintf("List[%s]", in.String(tt.Elem))
	default:
		return tt.Kind.String()
	}
}
