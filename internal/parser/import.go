package parser

import (
	"owl/internal/ast"
	"owl/internal/diag"
	"owl/internal/source"
	"owl/internal/token"
)

// parseImportItem распознаёт формы:
//
//	from python import math                // Module пуст
//	from python import math as m, os      // алиасы через as
//	from python.os.path import join       // сегменты после python
//
// Корень пути обязан быть `python`: это не ключевое слово, а обычный
// идентификатор, поэтому проверяем текст. Сам корень в AST не попадает.
func (p *Parser) parseImportItem() (ast.ItemID, bool) {
	fromTok := p.advance() // from

	rootTok, ok := p.expect(token.Ident, diag.ImportInvalid, "Expected 'python' after 'from'")
	if !ok {
		return ast.NoItemID, false
	}
	if rootTok.Text != "python" {
		p.errAt(diag.ImportInvalid, rootTok.Span,
			"Expected 'python' after 'from', got \""+rootTok.Text+"\"",
			"only the Python host namespace can be imported")
		return ast.NoItemID, false
	}

	moduleSpan := rootTok.Span
	var module []source.StringID
	for p.at(token.Dot) {
		p.advance()
		segTok, segOK := p.expect(token.Ident, diag.SynMissingToken, "Expected module name after '.'")
		if !segOK {
			return ast.NoItemID, false
		}
		module = append(module, p.arenas.Intern(segTok.Text))
		moduleSpan = moduleSpan.Cover(segTok.Span)
	}

	if _, impOK := p.expect(token.KwImport, diag.SynMissingToken, "Expected 'import' after module path"); !impOK {
		return ast.NoItemID, false
	}

	var names []ast.ImportName
	for {
		nameTok, nameOK := p.expect(token.Ident, diag.SynMissingToken, "Expected import name")
		if !nameOK {
			return ast.NoItemID, false
		}
		name := ast.ImportName{
			Name:     p.arenas.Intern(nameTok.Text),
			NameSpan: nameTok.Span,
			Alias:    source.NoStringID,
			Span:     nameTok.Span,
		}
		if p.at(token.KwAs) {
			p.advance()
			aliasTok, aliasOK := p.expect(token.Ident, diag.SynMissingToken, "Expected alias name after 'as'")
			if !aliasOK {
				return ast.NoItemID, false
			}
			name.Alias = p.arenas.Intern(aliasTok.Text)
			name.AliasSpan = aliasTok.Span
			name.Span = nameTok.Span.Cover(aliasTok.Span)
		}
		names = append(names, name)

		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}

	itemSpan := fromTok.Span.Cover(names[len(names)-1].Span)
	return p.arenas.Items.NewImport(itemSpan, module, moduleSpan, names), true
}
