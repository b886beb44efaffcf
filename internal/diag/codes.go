package diag

import (
	"fmt"
)

// Code identifies a diagnostic in the stable catalog. Codes are never
// reassigned; gaps in the numbering are historical and stay gaps.
//
// Внутреннее представление: ошибки хранятся под своим номером
// (E0101 → 101), предупреждения — со смещением warnBase (W0101 → 1101).
// Наружу уходит только строковая форма из ID().
type Code uint16

// warnBase — смещение кодов предупреждений относительно ошибок.
const warnBase Code = 1000

const (
	// Неизвестный код — страховка для нулевого значения.
	UnknownCode Code = 0

	// Лексические (E01xx)
	LexUnexpectedChar      Code = 101
	LexUnterminatedString  Code = 102
	LexInvalidNumber       Code = 103 // зарезервирован: лексер откатывает точку вместо ошибки
	LexUnterminatedComment Code = 104

	// Синтаксические (E02xx)
	SynUnexpectedToken Code = 201
	SynMissingToken    Code = 202
	SynInvalidSyntax   Code = 203
	SynMissingBrace    Code = 204
	SynMissingParen    Code = 205
	SynMalformedMatch  Code = 206

	// Типы (E030x-E031x)
	SemaTypeMismatch       Code = 301
	SemaUndefinedVariable  Code = 302
	SemaUndefinedFunction  Code = 303
	SemaInvalidOperation   Code = 304
	SemaIncompatibleTypes  Code = 305
	SemaReturnTypeMismatch Code = 306
	SemaBranchTypeMismatch Code = 307
	SemaWrongArgCount      Code = 308
	SemaConditionNotBool   Code = 309
	SemaCannotNegate       Code = 310
	SemaTryNotResult       Code = 311
	SemaTryOutsideResultFn Code = 312
	SemaTryErrorMismatch   Code = 313
	SemaWrongTypeArity     Code = 314
	SemaUnknownType        Code = 315
	SemaAnyAnnotation      Code = 316
	SemaInvalidPattern     Code = 317

	// Области видимости (E032x)
	SemaRedefinition        Code = 320
	SemaUseBeforeDefinition Code = 321 // зарезервирован
	SemaIllegalShadowing    Code = 322
	SemaAssignImmutable     Code = 323
	SemaConstWithoutValue   Code = 324 // зарезервирован

	// Импорты (E04xx)
	ImportNotFound Code = 401 // зарезервирован за хостом
	ImportInvalid  Code = 402

	// Поток управления (E05xx)
	FlowMissingReturn       Code = 501
	FlowUnreachable         Code = 502 // зарезервирован: выдаётся W0201
	FlowNonExhaustiveMatch  Code = 503
	FlowBreakOutsideLoop    Code = 505
	FlowContinueOutsideLoop Code = 506

	// Ввод-вывод (E06xx) — ошибки хоста при загрузке исходников
	IOFailed Code = 601

	// Неиспользуемые объявления (W01xx)
	WarnUnusedVariable  Code = warnBase + 101
	WarnUnusedParameter Code = warnBase + 102
	WarnNeverMutated    Code = warnBase + 103

	// Мёртвый код (W02xx)
	WarnUnreachableCode Code = warnBase + 201
	WarnUnusedFunction  Code = warnBase + 202
	WarnRedundantReturn Code = warnBase + 203
	WarnLoopNoExit      Code = warnBase + 204

	// Стилистика (W03xx)
	WarnRedundantMatch    Code = warnBase + 301 // зарезервирован
	WarnTrivialIf         Code = warnBase + 302 // зарезервирован
	WarnUnnecessaryElse   Code = warnBase + 303
	WarnResultIgnored     Code = warnBase + 304
	WarnOptionIgnored     Code = warnBase + 305
	WarnConstantCondition Code = warnBase + 306

	// Затенение (W04xx)
	WarnVariableShadows Code = warnBase + 401
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown diagnostic",

	LexUnexpectedChar:      "Unexpected character in source",
	LexUnterminatedString:  "String literal not closed",
	LexInvalidNumber:       "Invalid numeric literal",
	LexUnterminatedComment: "Block comment not closed",

	SynUnexpectedToken: "Unexpected token",
	SynMissingToken:    "Expected token not found",
	SynInvalidSyntax:   "Invalid syntax",
	SynMissingBrace:    "Missing brace",
	SynMissingParen:    "Missing parenthesis",
	SynMalformedMatch:  "Malformed match expression",

	SemaTypeMismatch:       "Type mismatch",
	SemaUndefinedVariable:  "Variable not defined",
	SemaUndefinedFunction:  "Function not defined",
	SemaInvalidOperation:   "Invalid operation for operand types",
	SemaIncompatibleTypes:  "Incompatible types",
	SemaReturnTypeMismatch: "Return value does not match declared return type",
	SemaBranchTypeMismatch: "Branches produce different types",
	SemaWrongArgCount:      "Wrong number of arguments",
	SemaConditionNotBool:   "Condition must be Bool",
	SemaCannotNegate:       "Operand cannot be negated",
	SemaTryNotResult:       "'?' applied to a non-Result value",
	SemaTryOutsideResultFn: "'?' used outside a Result-returning function",
	SemaTryErrorMismatch:   "'?' error type does not match the function's",
	SemaWrongTypeArity:     "Wrong number of type arguments",
	SemaUnknownType:        "Unknown type name",
	SemaAnyAnnotation:      "'Any' is not allowed in annotations",
	SemaInvalidPattern:     "Invalid match pattern",

	SemaRedefinition:        "Name already defined in this scope",
	SemaUseBeforeDefinition: "Use before definition",
	SemaIllegalShadowing:    "Illegal shadowing",
	SemaAssignImmutable:     "Cannot assign to immutable variable",
	SemaConstWithoutValue:   "Constant declared without a value",

	ImportNotFound: "Imported module not found",
	ImportInvalid:  "Invalid import",

	FlowMissingReturn:       "Function must return a value on all paths",
	FlowUnreachable:         "Unreachable code",
	FlowNonExhaustiveMatch:  "Match does not cover all cases",
	FlowBreakOutsideLoop:    "'break' outside of a loop",
	FlowContinueOutsideLoop: "'continue' outside of a loop",

	IOFailed: "Source file could not be read",

	WarnUnusedVariable:  "Variable declared but never used",
	WarnUnusedParameter: "Parameter declared but never used",
	WarnNeverMutated:    "Variable declared as mutable but never mutated",

	WarnUnreachableCode: "Code after this point will never execute",
	WarnUnusedFunction:  "Function declared but never called",
	WarnRedundantReturn: "Redundant return at end of function",
	WarnLoopNoExit:      "Loop has no break",

	WarnRedundantMatch:    "Match expression with single case is redundant",
	WarnTrivialIf:         "Branch on a literal condition is trivial",
	WarnUnnecessaryElse:   "Unnecessary else after a branch that always returns",
	WarnResultIgnored:     "Result value is ignored",
	WarnOptionIgnored:     "Option value is ignored",
	WarnConstantCondition: "Condition is always true or always false",

	WarnVariableShadows: "Variable shadows a variable in outer scope",
}

// ID returns the stable external form, e.g. "E0301" or "W0101".
func (c Code) ID() string {
	if c >= warnBase {
		return fmt.Sprintf("W%04d", int(c-warnBase))
	}
	return fmt.Sprintf("E%04d", int(c))
}

// Severity returns the severity class the code belongs to: every W-code
// is a warning, everything else blocks compilation.
func (c Code) Severity() Severity {
	if c >= warnBase {
		return SevWarning
	}
	return SevError
}

// Title returns the human-readable catalog description.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
