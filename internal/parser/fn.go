package parser

import (
	"owl/internal/ast"
	"owl/internal/diag"
	"owl/internal/token"
)

// parseFnItem — объявление функции:
//
//	fn name(param: Type, other) -> Type { ... }
//
// Аннотации параметров и возвращаемого типа необязательны: без них
// параметр получает Any, функция — Void. Тело — всегда блок.
func (p *Parser) parseFnItem() (ast.ItemID, bool) {
	fnTok := p.advance() // fn

	nameTok, ok := p.expect(token.Ident, diag.SynMissingToken, "Expected function name after 'fn'")
	if !ok {
		return ast.NoItemID, false
	}
	nameID := p.arenas.Intern(nameTok.Text)

	if _, parenOK := p.expect(token.LParen, diag.SynMissingParen, "Expected '(' after function name"); !parenOK {
		return ast.NoItemID, false
	}

	params, ok := p.parseFnParams()
	if !ok {
		return ast.NoItemID, false
	}

	if _, parenOK := p.expect(token.RParen, diag.SynMissingParen, "Expected ')' after parameters"); !parenOK {
		return ast.NoItemID, false
	}

	returnType := ast.NoTypeID
	if p.at(token.Arrow) {
		p.advance()
		typeID, typeOK := p.parseTypeExpr()
		if !typeOK {
			return ast.NoItemID, false
		}
		returnType = typeID
	}

	body, ok := p.parseBlock()
	if !ok {
		return ast.NoItemID, false
	}

	itemSpan := fnTok.Span.Cover(p.stmtSpan(body))
	return p.arenas.Items.NewFn(nameID, nameTok.Span, params, returnType, body, itemSpan), true
}

// parseFnParams — список параметров до закрывающей скобки. Скобку не
// съедает: это забота вызывающего, чтобы диагностика встала на неё.
func (p *Parser) parseFnParams() ([]ast.FnParamSpec, bool) {
	var params []ast.FnParamSpec
	if p.at(token.RParen) {
		return params, true
	}

	for {
		nameTok, ok := p.expect(token.Ident, diag.SynMissingToken, "Expected parameter name")
		if !ok {
			return nil, false
		}

		param := ast.FnParamSpec{
			Name:     p.arenas.Intern(nameTok.Text),
			NameSpan: nameTok.Span,
			Type:     ast.NoTypeID,
			Span:     nameTok.Span,
		}
		if p.at(token.Colon) {
			p.advance()
			typeID, typeOK := p.parseTypeExpr()
			if !typeOK {
				return nil, false
			}
			param.Type = typeID
			param.Span = nameTok.Span.Cover(p.arenas.Types.Get(typeID).Span)
		}
		params = append(params, param)

		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	return params, true
}
