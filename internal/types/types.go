package types

import "fmt"

// TypeID uniquely identifies a type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// Kind enumerates all supported kinds of types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindVoid
	KindInt
	KindFloat
	KindString
	KindBool
	// KindAny is the interop escape hatch: python imports and their members
	// are typed Any, and Any is compatible with everything.
	KindAny
	// KindUnknown is the inference-failure sentinel; it suppresses cascading
	// diagnostics downstream of an already reported error.
	KindUnknown
	KindOption
	KindResult
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindVoid:
		return "Void"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindBool:
		return "Bool"
	case KindAny:
		return "Any"
	case KindUnknown:
		return "Unknown"
	case KindOption:
		return "Option"
	case KindResult:
		return "Result"
	case KindList:
		return "List"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// IsParameterized reports whether the kind carries type arguments.
func (k Kind) IsParameterized() bool {
	return k == KindOption || k == KindResult || k == KindList
}

// Type is a compact descriptor for any supported type. Elem несёт
// параметр Option/List и Ok-тип Result; Err занят только у Result.
type Type struct {
	Kind Kind
	Elem TypeID
	Err  TypeID
}

// Descriptor helpers ---------------------------------------------------------

// MakeOption describes Option[inner].
func MakeOption(inner TypeID) Type {
	return Type{Kind: KindOption, Elem: inner}
}

// MakeResult describes Result[ok, err].
func MakeResult(ok, err TypeID) Type {
	return Type{Kind: KindResult, Elem: ok, Err: err}
}

// MakeList describes List[elem].
func MakeList(elem TypeID) Type {
	return Type{Kind: KindList, Elem: elem}
}
