package parser

import (
	"owl/internal/ast"
	"owl/internal/diag"
	"owl/internal/source"
	"owl/internal/token"
)

func (p *Parser) parseBlock() (ast.StmtID, bool) {
	openTok, ok := p.expect(token.LBrace, diag.SynMissingBrace, "Expected '{'")
	if !ok {
		return ast.NoStmtID, false
	}

	var stmtIDs []ast.StmtID
	for !p.at(token.EOF) && !p.at(token.RBrace) {
		startTok := p.lx.Peek()
		stmtID, stmtOK := p.parseStmt()
		if stmtOK {
			stmtIDs = append(stmtIDs, stmtID)
			continue
		}

		// Ошибка при парсинге statement — восстанавливаемся до следующего
		// и оставляем Bad-узел: sema его пропустит, а соседние операторы
		// всё равно будут проверены.
		p.resyncStatement(startTok.Span)
		stmtIDs = append(stmtIDs, p.arenas.Stmts.NewBad(p.badSpanFrom(startTok.Span)))
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynMissingBrace, "Expected '}' to close block")
	if !ok {
		return ast.NoStmtID, false
	}

	blockSpan := openTok.Span.Cover(closeTok.Span)
	return p.arenas.Stmts.NewBlock(blockSpan, stmtIDs), true
}

func (p *Parser) parseStmt() (ast.StmtID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwLet:
		return p.parseLetStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwFor:
		return p.parseForStmt()
	case token.KwLoop:
		return p.parseLoopStmt()
	case token.KwBreak:
		return p.parseBreakStmt()
	case token.KwContinue:
		return p.parseContinueStmt()
	default:
		return p.parseExprOrAssignStmt()
	}
}

func (p *Parser) parseLetStmt() (ast.StmtID, bool) {
	letTok := p.advance() // let

	mut := false
	var mutSpan source.Span
	if p.at(token.KwMut) {
		mutTok := p.advance()
		mut = true
		mutSpan = mutTok.Span
	}

	nameTok, ok := p.expect(token.Ident, diag.SynMissingToken, "Expected variable name after 'let'")
	if !ok {
		return ast.NoStmtID, false
	}
	nameID := p.arenas.Intern(nameTok.Text)

	typeID := ast.NoTypeID
	if p.at(token.Colon) {
		p.advance()
		annot, typeOK := p.parseTypeExpr()
		if !typeOK {
			return ast.NoStmtID, false
		}
		typeID = annot
	}

	if _, eqOK := p.expect(token.Assign, diag.SynMissingToken, "Expected '=' after variable name"); !eqOK {
		return ast.NoStmtID, false
	}

	value, ok := p.parseExprChecked("Expected expression after '='")
	if !ok {
		return ast.NoStmtID, false
	}

	stmtSpan := letTok.Span.Cover(p.exprSpan(value))
	return p.arenas.Stmts.NewLet(stmtSpan, nameID, nameTok.Span, mut, mutSpan, typeID, value), true
}

func (p *Parser) parseReturnStmt() (ast.StmtID, bool) {
	returnTok := p.advance() // return

	// Пустой return только перед '}': переносов строк в грамматике нет,
	// поэтому любой другой токен дальше — это выражение-значение.
	if p.at(token.RBrace) {
		return p.arenas.Stmts.NewReturn(returnTok.Span, ast.NoExprID), true
	}

	value, ok := p.parseExprChecked("Expected expression after 'return'")
	if !ok {
		return ast.NoStmtID, false
	}

	stmtSpan := returnTok.Span.Cover(p.exprSpan(value))
	return p.arenas.Stmts.NewReturn(stmtSpan, value), true
}

// parseExprOrAssignStmt — statement, начинающийся с выражения. Если после
// выражения стоит '=', это присваивание: цель обязана быть простым именем.
func (p *Parser) parseExprOrAssignStmt() (ast.StmtID, bool) {
	peek := p.lx.Peek()
	msg := "Unexpected token: \"" + peek.Text + "\""
	if peek.Kind == token.EOF {
		msg = "Unexpected end of file"
	}
	expr, ok := p.parseExprChecked(msg)
	if !ok {
		return ast.NoStmtID, false
	}

	if !p.at(token.Assign) {
		span := p.exprSpan(expr)
		return p.arenas.Stmts.NewExpr(span, expr), true
	}

	eqTok := p.advance() // =
	ident, isIdent := p.arenas.Exprs.Ident(expr)
	if !isIdent {
		p.errAt(diag.SynInvalidSyntax, eqTok.Span, "Invalid assignment target",
			"only simple names can be assigned to")
		return ast.NoStmtID, false
	}

	value, ok := p.parseExprChecked("Expected expression after '='")
	if !ok {
		return ast.NoStmtID, false
	}

	nameSpan := p.exprSpan(expr)
	stmtSpan := nameSpan.Cover(p.exprSpan(value))
	return p.arenas.Stmts.NewAssign(stmtSpan, ident.Name, nameSpan, value), true
}
