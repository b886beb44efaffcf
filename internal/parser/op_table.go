package parser

import (
	"owl/internal/ast"
	"owl/internal/token"
)

// Таблица приоритетов для бинарных операторов
// Чем больше число, тем выше приоритет
const (
	precEquality       = 1 // == !=
	precComparison     = 2 // < <= > >=
	precAdditive       = 3 // + -
	precMultiplicative = 4 // * / %
)

// getBinaryOperatorPrec возвращает приоритет и ассоциативность оператора.
// Возвращает (приоритет, правоассоциативный); (-1, false) для не-бинарных
// токенов. Правоассоциативных операторов в языке сейчас нет, но
// Pratt-циклу удобен общий контракт.
func (p *Parser) getBinaryOperatorPrec(kind token.Kind) (int, bool) {
	switch kind {
	// Операторы равенства
	case token.EqEq, token.BangEq:
		return precEquality, false

	// Операторы сравнения
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precComparison, false

	// Арифметические операторы
	case token.Plus, token.Minus:
		return precAdditive, false
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative, false

	default:
		return -1, false // не бинарный оператор
	}
}

// tokenKindToBinaryOp преобразует токен в тип бинарного оператора
func (p *Parser) tokenKindToBinaryOp(kind token.Kind) ast.ExprBinaryOp {
	switch kind {
	// Арифметические
	case token.Plus:
		return ast.ExprBinaryAdd
	case token.Minus:
		return ast.ExprBinarySub
	case token.Star:
		return ast.ExprBinaryMul
	case token.Slash:
		return ast.ExprBinaryDiv
	case token.Percent:
		return ast.ExprBinaryMod

	// Сравнения
	case token.EqEq:
		return ast.ExprBinaryEq
	case token.BangEq:
		return ast.ExprBinaryNotEq
	case token.Lt:
		return ast.ExprBinaryLess
	case token.LtEq:
		return ast.ExprBinaryLessEq
	case token.Gt:
		return ast.ExprBinaryGreater
	case token.GtEq:
		return ast.ExprBinaryGreaterEq

	default:
		// Это не должно случаться, если таблица приоритетов корректна
		return ast.ExprBinaryAdd // fallback
	}
}

// getUnaryOperator возвращает тип унарного оператора для токена
func (p *Parser) getUnaryOperator(kind token.Kind) (ast.ExprUnaryOp, bool) {
	switch kind {
	case token.Minus:
		return ast.ExprUnaryNeg, true
	case token.Bang:
		return ast.ExprUnaryNot, true
	default:
		return ast.ExprUnaryNeg, false // не унарный оператор
	}
}
