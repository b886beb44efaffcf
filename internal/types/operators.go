package types

import "owl/internal/ast"

// FamilyMask describes broad categories of types an operator accepts.
type FamilyMask uint32

const (
	FamilyNone FamilyMask = 0
	FamilyAny  FamilyMask = 1 << iota
	FamilyBool
	FamilyInt
	FamilyFloat
	FamilyString
	FamilyOption
	FamilyResult
	FamilyList
)

const FamilyNumeric = FamilyInt | FamilyFloat

// Accepts reports whether the mask admits the family. FamilyAny as a mask
// admits every family.
func (m FamilyMask) Accepts(family FamilyMask) bool {
	if m == FamilyAny {
		return true
	}
	return m&family != 0
}

// FamilyOf maps a type kind to its operator family.
func FamilyOf(k Kind) FamilyMask {
	switch k {
	case KindBool:
		return FamilyBool
	case KindInt:
		return FamilyInt
	case KindFloat:
		return FamilyFloat
	case KindString:
		return FamilyString
	case KindOption:
		return FamilyOption
	case KindResult:
		return FamilyResult
	case KindList:
		return FamilyList
	case KindAny, KindUnknown:
		return FamilyAny
	default:
		return FamilyNone
	}
}

// BinaryResult describes how to derive the result type for an operator.
type BinaryResult uint8

const (
	BinaryResultUnknown BinaryResult = iota
	// BinaryResultLeft keeps the left operand's type (string concatenation).
	BinaryResultLeft
	// BinaryResultBool is for comparisons.
	BinaryResultBool
	// BinaryResultNumeric is Float if either operand is Float, else Int.
	BinaryResultNumeric
)

// BinaryFlags annotate special handling for binary operators.
type BinaryFlags uint8

const (
	BinaryFlagNone BinaryFlags = 0
	// BinaryFlagSameType requires the operands to be interchangeable
	// (equality on mixed types is rejected even when both are numeric).
	BinaryFlagSameType BinaryFlags = 1 << iota
)

// BinarySpec lists operand families and expected result for an operation.
type BinarySpec struct {
	Left   FamilyMask
	Right  FamilyMask
	Result BinaryResult
	Flags  BinaryFlags
}

// UnaryResult indicates how to derive the resulting type.
type UnaryResult uint8

const (
	UnaryResultUnknown UnaryResult = iota
	// UnaryResultSame keeps the operand type (numeric negation).
	UnaryResultSame
	UnaryResultBool
)

// UnarySpec describes operand expectations for unary operators.
type UnarySpec struct {
	Operand FamilyMask
	Result  UnaryResult
}

var binarySpecTable = map[ast.ExprBinaryOp][]BinarySpec{
	ast.ExprBinaryAdd: {
		{Left: FamilyNumeric, Right: FamilyNumeric, Result: BinaryResultNumeric},
		{Left: FamilyString, Right: FamilyString, Result: BinaryResultLeft},
	},
	ast.ExprBinarySub: {
		{Left: FamilyNumeric, Right: FamilyNumeric, Result: BinaryResultNumeric},
	},
	ast.ExprBinaryMul: {
		{Left: FamilyNumeric, Right: FamilyNumeric, Result: BinaryResultNumeric},
	},
	ast.ExprBinaryDiv: {
		{Left: FamilyNumeric, Right: FamilyNumeric, Result: BinaryResultNumeric},
	},
	ast.ExprBinaryMod: {
		{Left: FamilyNumeric, Right: FamilyNumeric, Result: BinaryResultNumeric},
	},
	ast.ExprBinaryEq: {
		{Left: FamilyAny, Right: FamilyAny, Result: BinaryResultBool, Flags: BinaryFlagSameType},
	},
	ast.ExprBinaryNotEq: {
		{Left: FamilyAny, Right: FamilyAny, Result: BinaryResultBool, Flags: BinaryFlagSameType},
	},
	ast.ExprBinaryLess: {
		{Left: FamilyNumeric, Right: FamilyNumeric, Result: BinaryResultBool},
	},
	ast.ExprBinaryLessEq: {
		{Left: FamilyNumeric, Right: FamilyNumeric, Result: BinaryResultBool},
	},
	ast.ExprBinaryGreater: {
		{Left: FamilyNumeric, Right: FamilyNumeric, Result: BinaryResultBool},
	},
	ast.ExprBinaryGreaterEq: {
		{Left: FamilyNumeric, Right: FamilyNumeric, Result: BinaryResultBool},
	},
}

var unarySpecTable = map[ast.ExprUnaryOp]UnarySpec{
	ast.ExprUnaryNeg: {Operand: FamilyNumeric, Result: UnaryResultSame},
	ast.ExprUnaryNot: {Operand: FamilyBool, Result: UnaryResultBool},
}

// BinarySpecs returns operand rules for the given operator.
func BinarySpecs(op ast.ExprBinaryOp) []BinarySpec {
	return binarySpecTable[op]
}

// UnarySpecFor returns operand/result hints for unary operators.
func UnarySpecFor(op ast.ExprUnaryOp) (UnarySpec, bool) {
	spec, ok := unarySpecTable[op]
	return spec, ok
}
