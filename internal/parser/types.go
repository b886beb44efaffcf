package parser

import (
	"owl/internal/ast"
	"owl/internal/diag"
	"owl/internal/token"
)

// parseTypeExpr — аннотация типа:
//
//	Int                  → TypeName
//	Option[Int]          → TypeGeneric c одним аргументом
//	Result[Int, String]  → TypeGeneric c двумя
//
// Имена типов — обычные идентификаторы, не ключевые слова; известен ли
// тип и сходится ли арность, решает sema, парсеру важна только форма.
func (p *Parser) parseTypeExpr() (ast.TypeID, bool) {
	nameTok, ok := p.expect(token.Ident, diag.SynMissingToken, "Expected type name")
	if !ok {
		return ast.NoTypeID, false
	}
	nameID := p.arenas.Intern(nameTok.Text)

	if !p.at(token.LBracket) {
		return p.arenas.Types.NewName(nameTok.Span, nameID), true
	}

	p.advance() // [
	var args []ast.TypeID
	for {
		arg, argOK := p.parseTypeExpr()
		if !argOK {
			return ast.NoTypeID, false
		}
		args = append(args, arg)

		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}

	closeTok, closeOK := p.expect(token.RBracket, diag.SynMissingToken, "Expected ']' after type parameters")
	if !closeOK {
		return ast.NoTypeID, false
	}

	span := nameTok.Span.Cover(closeTok.Span)
	return p.arenas.Types.NewGeneric(span, nameID, nameTok.Span, args), true
}
