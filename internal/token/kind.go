package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwMut represents the 'mut' keyword.
	KwMut // mut
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwLoop represents the 'loop' keyword.
	KwLoop // loop
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwMatch represents the 'match' keyword.
	KwMatch // match
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwFrom represents the 'from' keyword.
	KwFrom // from
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwAs represents the 'as' keyword.
	KwAs // as

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token.
	FloatLit
	// StringLit represents a string literal token.
	StringLit

	Plus     // +
	Minus    // -
	Star     // *
	Slash    // /
	Percent  // %
	Assign   // =
	EqEq     // ==
	Bang     // !
	BangEq   // !=
	Lt       // <
	LtEq     // <=
	Gt       // >
	GtEq     // >=
	Question // ?
	Arrow    // ->
	FatArrow // =>
	Colon    // :
	Comma    // ,
	Dot      // .
	LParen   // (
	RParen   // )
	LBrace   // {
	RBrace   // }
	LBracket // [
	RBracket // ]
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Ident:      "Ident",
	KwFn:       "KwFn",
	KwLet:      "KwLet",
	KwMut:      "KwMut",
	KwIf:       "KwIf",
	KwElse:     "KwElse",
	KwWhile:    "KwWhile",
	KwFor:      "KwFor",
	KwIn:       "KwIn",
	KwLoop:     "KwLoop",
	KwBreak:    "KwBreak",
	KwContinue: "KwContinue",
	KwReturn:   "KwReturn",
	KwMatch:    "KwMatch",
	KwTrue:     "KwTrue",
	KwFalse:    "KwFalse",
	KwFrom:     "KwFrom",
	KwImport:   "KwImport",
	KwAs:       "KwAs",
	IntLit:     "IntLit",
	FloatLit:   "FloatLit",
	StringLit:  "StringLit",
	Plus:       "Plus",
	Minus:      "Minus",
	Star:       "Star",
	Slash:      "Slash",
	Percent:    "Percent",
	Assign:     "Assign",
	EqEq:       "EqEq",
	Bang:       "Bang",
	BangEq:     "BangEq",
	Lt:         "Lt",
	LtEq:       "LtEq",
	Gt:         "Gt",
	GtEq:       "GtEq",
	Question:   "Question",
	Arrow:      "Arrow",
	FatArrow:   "FatArrow",
	Colon:      "Colon",
	Comma:      "Comma",
	Dot:        "Dot",
	LParen:     "LParen",
	RParen:     "RParen",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
	LBracket:   "LBracket",
	RBracket:   "RBracket",
}

// String returns the kind's name for token dumps and test failures.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// symbols maps punctuation kinds to their source spelling, used when
// diagnostics quote an expected token.
var symbols = map[Kind]string{
	Plus:     "+",
	Minus:    "-",
	Star:     "*",
	Slash:    "/",
	Percent:  "%",
	Assign:   "=",
	EqEq:     "==",
	Bang:     "!",
	BangEq:   "!=",
	Lt:       "<",
	LtEq:     "<=",
	Gt:       ">",
	GtEq:     ">=",
	Question: "?",
	Arrow:    "->",
	FatArrow: "=>",
	Colon:    ":",
	Comma:    ",",
	Dot:      ".",
	LParen:   "(",
	RParen:   ")",
	LBrace:   "{",
	RBrace:   "}",
	LBracket: "[",
	RBracket: "]",
}

// Symbol returns the source spelling of a punctuation or operator kind,
// falling back to the kind name for everything else.
func (k Kind) Symbol() string {
	if s, ok := symbols[k]; ok {
		return s
	}
	return k.String()
}
