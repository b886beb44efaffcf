package ast

import (
	"owl/internal/source"
)

// ExprKind enumerates the different kinds of expressions.
type ExprKind uint8

const (
	// ExprIdent represents an identifier expression.
	ExprIdent ExprKind = iota
	// ExprLit represents a literal expression.
	ExprLit
	// ExprUnary represents a unary expression.
	ExprUnary
	// ExprBinary represents a binary expression.
	ExprBinary
	// ExprCall represents a function call expression.
	ExprCall
	// ExprField represents a field access expression.
	ExprField
	// ExprList represents a list literal expression.
	ExprList
	// ExprGroup represents a parenthesized expression.
	ExprGroup
	// ExprIf represents an if in value position.
	ExprIf
	// ExprMatch represents a match expression.
	ExprMatch
	// ExprTry represents a postfix `?` expression.
	ExprTry
	// ExprBad marks a malformed expression produced by recovery.
	ExprBad
)

// Expr represents an expression node in the AST.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprBinaryOp enumerates binary operator kinds.
type ExprBinaryOp uint8

const (
	// Арифметические

	// ExprBinaryAdd represents the addition operator (+).
	ExprBinaryAdd ExprBinaryOp = iota
	// ExprBinarySub represents the subtraction operator (-).
	ExprBinarySub
	// ExprBinaryMul represents the multiplication operator (*).
	ExprBinaryMul
	// ExprBinaryDiv represents the division operator (/).
	ExprBinaryDiv
	// ExprBinaryMod represents the modulo operator (%).
	ExprBinaryMod

	// Сравнения

	// ExprBinaryEq represents the equality operator (==).
	ExprBinaryEq
	ExprBinaryNotEq
	ExprBinaryLess
	ExprBinaryLessEq
	ExprBinaryGreater
	ExprBinaryGreaterEq
)

// String returns the symbol representation of a binary operator.
func (op ExprBinaryOp) String() string {
	switch op {
	case ExprBinaryAdd:
		return "+"
	case ExprBinarySub:
		return "-"
	case ExprBinaryMul:
		return "*"
	case ExprBinaryDiv:
		return "/"
	case ExprBinaryMod:
		return "%"
	case ExprBinaryEq:
		return "=="
	case ExprBinaryNotEq:
		return "!="
	case ExprBinaryLess:
		return "<"
	case ExprBinaryLessEq:
		return "<="
	case ExprBinaryGreater:
		return ">"
	case ExprBinaryGreaterEq:
		return ">="
	default:
		return "?"
	}
}

// IsComparison reports whether the operator yields a Bool.
func (op ExprBinaryOp) IsComparison() bool {
	return op >= ExprBinaryEq
}

// ExprUnaryOp enumerates unary operator kinds.
type ExprUnaryOp uint8

const (
	// ExprUnaryNeg represents the arithmetic negation operator (-).
	ExprUnaryNeg ExprUnaryOp = iota
	// ExprUnaryNot represents the logical NOT operator (!).
	ExprUnaryNot
)

// String returns the symbol representation of a unary operator.
func (op ExprUnaryOp) String() string {
	switch op {
	case ExprUnaryNeg:
		return "-"
	case ExprUnaryNot:
		return "!"
	default:
		return "?"
	}
}

// ExprLitKind enumerates literal kinds.
type ExprLitKind uint8

const (
	// ExprLitInt represents an integer literal.
	ExprLitInt ExprLitKind = iota
	// ExprLitFloat represents a floating-point literal.
	ExprLitFloat
	// ExprLitString represents a string literal.
	ExprLitString
	// ExprLitTrue represents a true boolean literal.
	ExprLitTrue
	// ExprLitFalse represents a false boolean literal.
	ExprLitFalse
)

// ExprIdentData holds identifier expression details.
type ExprIdentData struct {
	Name source.StringID
}

// ExprLiteralData holds literal expression details.
type ExprLiteralData struct {
	Kind  ExprLitKind
	Value source.StringID // сырое значение для sema
}

// ExprUnaryData holds unary operation expression details.
type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

// ExprBinaryData holds binary operation expression details.
type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

// ExprCallData holds function call expression details.
type ExprCallData struct {
	Target ExprID
	Args   []ExprID
}

// ExprFieldData holds field access expression details.
type ExprFieldData struct {
	Target    ExprID
	Field     source.StringID
	FieldSpan source.Span
}

// ExprListData holds list literal expression details.
type ExprListData struct {
	Elements         []ExprID
	HasTrailingComma bool
}

// ExprGroupData holds parenthesized group expression details.
type ExprGroupData struct {
	Inner ExprID
}

// ExprIfData wraps an if statement used in value position. Ветки и
// else-if цепочка живут в самом StmtIf; sema типизирует его как значение.
type ExprIfData struct {
	If StmtID
}

// PatternKind enumerates match arm patterns.
type PatternKind uint8

const (
	// PatternSome is `Some(binding)`.
	PatternSome PatternKind = iota
	// PatternNone is a bare `None`.
	PatternNone
	// PatternOk is `Ok(binding)`.
	PatternOk
	// PatternErr is `Err(binding)`.
	PatternErr
	// PatternUnknown is a syntactically valid pattern with an unrecognized
	// constructor name; sema reports it against the subject type.
	PatternUnknown
)

// String returns the constructor name of the pattern kind.
func (k PatternKind) String() string {
	switch k {
	case PatternSome:
		return "Some"
	case PatternNone:
		return "None"
	case PatternOk:
		return "Ok"
	case PatternErr:
		return "Err"
	default:
		return "Unknown"
	}
}

// MatchArm is a single `pattern => body` arm. Name хранит имя
// конструктора как оно написано (нужно для диагностик про неизвестные
// образцы); Binder — введённая связка для Some/Ok/Err.
type MatchArm struct {
	Pattern     PatternKind
	Name        source.StringID
	Binder      source.StringID
	BinderSpan  source.Span
	PatternSpan source.Span
	Body        ExprID
	Span        source.Span
}

// MatchArmSpec is the parser-side shape of an arm before allocation.
type MatchArmSpec struct {
	Pattern     PatternKind
	Name        source.StringID
	Binder      source.StringID
	BinderSpan  source.Span
	PatternSpan source.Span
	Body        ExprID
	Span        source.Span
}

// ExprMatchData holds match expression details.
type ExprMatchData struct {
	Subject ExprID
	Arms    []ArmID
}

// ExprTryData holds the operand of a postfix `?` expression.
type ExprTryData struct {
	Operand ExprID
}
