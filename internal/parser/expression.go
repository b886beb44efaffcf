package parser

import (
	"owl/internal/ast"
	"owl/internal/diag"
	"owl/internal/source"
	"owl/internal/token"
)

// parseExpr - главная точка входа для парсинга выражений
// Возвращает ExprID и флаг успеха
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinaryExpr(0) // минимальный приоритет = 0
}

// parseBinaryExpr реализует Pratt parsing для бинарных операторов
// minPrec - минимальный приоритет для текущего уровня
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	// Парсим левую часть (унарные операторы + primary)
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	// Обрабатываем бинарные операторы в цикле
	for {
		tok := p.lx.Peek()

		// Проверяем, является ли токен бинарным оператором
		prec, isRightAssoc := p.getBinaryOperatorPrec(tok.Kind)
		if prec < minPrec {
			break // приоритет слишком низкий
		}

		// Съедаем оператор
		opTok := p.advance()

		// Вычисляем приоритет для правой части
		nextMinPrec := prec + 1
		if isRightAssoc {
			nextMinPrec = prec
		}

		// Парсим правую часть
		before := p.opts.CurrentErrors
		right, rightOK := p.parseBinaryExpr(nextMinPrec)
		if !rightOK {
			if p.opts.CurrentErrors == before {
				p.err(diag.SynUnexpectedToken, "Expected expression after '"+opTok.Text+"'")
			}
			return ast.NoExprID, false
		}

		// Создаем узел бинарного выражения
		op := p.tokenKindToBinaryOp(opTok.Kind)
		finalSpan := p.exprSpan(left).Cover(p.exprSpan(right))
		left = p.arenas.Exprs.NewBinary(finalSpan, op, left, right)
	}

	return left, true
}

// parseUnaryExpr обрабатывает унарные операторы (префиксы)
func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	type prefixOp struct {
		op   ast.ExprUnaryOp
		span source.Span
	}

	var prefixes []prefixOp

	// Собираем все префиксы
	for {
		op, isUnary := p.getUnaryOperator(p.lx.Peek().Kind)
		if !isUnary {
			break
		}
		opTok := p.advance()
		prefixes = append(prefixes, prefixOp{op: op, span: opTok.Span})
	}

	// Парсим базовое выражение
	expr, ok := p.parsePostfixExpr()
	if !ok {
		return ast.NoExprID, false
	}

	// Применяем префиксы справа налево
	for i := len(prefixes) - 1; i >= 0; i-- {
		finalSpan := prefixes[i].span.Cover(p.exprSpan(expr))
		expr = p.arenas.Exprs.NewUnary(finalSpan, prefixes[i].op, expr)
	}

	return expr, true
}

// parsePostfixExpr обрабатывает постфиксы: вызов, доступ к полю и '?'
func (p *Parser) parsePostfixExpr() (ast.ExprID, bool) {
	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		switch p.lx.Peek().Kind {
		case token.LParen:
			expr, ok = p.parseCallArgs(expr)
		case token.Dot:
			expr, ok = p.parseFieldAccess(expr)
		case token.Question:
			qTok := p.advance()
			span := p.exprSpan(expr).Cover(qTok.Span)
			expr = p.arenas.Exprs.NewTry(span, expr)
			ok = true
		default:
			return expr, true
		}
		if !ok {
			return ast.NoExprID, false
		}
	}
}

// parseCallArgs — аргументы вызова; '(' ещё не съета.
// Висячая запятая в вызове запрещена, в отличие от списковых литералов.
func (p *Parser) parseCallArgs(target ast.ExprID) (ast.ExprID, bool) {
	p.advance() // (

	var args []ast.ExprID
	if !p.at(token.RParen) {
		for {
			arg, argOK := p.parseExprChecked("Expected expression in argument list")
			if !argOK {
				return ast.NoExprID, false
			}
			args = append(args, arg)

			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}

	closeTok, ok := p.expect(token.RParen, diag.SynMissingParen, "Expected ')' after arguments")
	if !ok {
		return ast.NoExprID, false
	}

	span := p.exprSpan(target).Cover(closeTok.Span)
	return p.arenas.Exprs.NewCall(span, target, args), true
}

// parseFieldAccess — '.' уже на входе; имя поля обязательно.
func (p *Parser) parseFieldAccess(target ast.ExprID) (ast.ExprID, bool) {
	p.advance() // .

	fieldTok, ok := p.expect(token.Ident, diag.SynMissingToken, "Expected field name after '.'")
	if !ok {
		return ast.NoExprID, false
	}

	span := p.exprSpan(target).Cover(fieldTok.Span)
	return p.arenas.Exprs.NewField(span, target, p.arenas.Intern(fieldTok.Text), fieldTok.Span), true
}
