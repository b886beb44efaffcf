package parser

import (
	"owl/internal/ast"
	"owl/internal/diag"
	"owl/internal/token"
)

func (p *Parser) parseBreakStmt() (ast.StmtID, bool) {
	breakTok := p.advance()
	return p.arenas.Stmts.NewBreak(breakTok.Span), true
}

func (p *Parser) parseContinueStmt() (ast.StmtID, bool) {
	continueTok := p.advance()
	return p.arenas.Stmts.NewContinue(continueTok.Span), true
}

// parseIfStmt — if с опциональной else-веткой; `else if` разворачивается
// в вложенный StmtIf. Эта же форма служит if-выражением: primary-парсер
// оборачивает её в ExprIf, когда if стоит в позиции значения.
func (p *Parser) parseIfStmt() (ast.StmtID, bool) {
	ifTok := p.advance() // if

	condExpr, ok := p.parseExprChecked("Expected condition expression after 'if'")
	if !ok {
		return ast.NoStmtID, false
	}

	thenStmt, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}

	stmtSpan := ifTok.Span.Cover(p.stmtSpan(thenStmt))

	elseStmt := ast.NoStmtID
	if p.at(token.KwElse) {
		p.advance()
		switch p.lx.Peek().Kind {
		case token.KwIf:
			elseStmt, ok = p.parseIfStmt()
		case token.LBrace:
			elseStmt, ok = p.parseBlock()
		default:
			p.err(diag.SynUnexpectedToken, "Expected 'if' or block after 'else'")
			return ast.NoStmtID, false
		}
		if !ok {
			return ast.NoStmtID, false
		}
		stmtSpan = stmtSpan.Cover(p.stmtSpan(elseStmt))
	}

	return p.arenas.Stmts.NewIf(stmtSpan, condExpr, thenStmt, elseStmt), true
}

func (p *Parser) parseWhileStmt() (ast.StmtID, bool) {
	whileTok := p.advance() // while

	condExpr, ok := p.parseExprChecked("Expected condition expression after 'while'")
	if !ok {
		return ast.NoStmtID, false
	}

	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}

	stmtSpan := whileTok.Span.Cover(p.stmtSpan(body))
	return p.arenas.Stmts.NewWhile(stmtSpan, condExpr, body), true
}

func (p *Parser) parseForStmt() (ast.StmtID, bool) {
	forTok := p.advance() // for

	nameTok, ok := p.expect(token.Ident, diag.SynMissingToken, "Expected loop variable after 'for'")
	if !ok {
		return ast.NoStmtID, false
	}
	nameID := p.arenas.Intern(nameTok.Text)

	if _, inOK := p.expect(token.KwIn, diag.SynMissingToken, "Expected 'in' after loop variable"); !inOK {
		return ast.NoStmtID, false
	}

	iterable, ok := p.parseExprChecked("Expected expression after 'in'")
	if !ok {
		return ast.NoStmtID, false
	}

	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}

	stmtSpan := forTok.Span.Cover(p.stmtSpan(body))
	return p.arenas.Stmts.NewFor(stmtSpan, nameID, nameTok.Span, iterable, body), true
}

func (p *Parser) parseLoopStmt() (ast.StmtID, bool) {
	loopTok := p.advance() // loop

	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}

	stmtSpan := loopTok.Span.Cover(p.stmtSpan(body))
	return p.arenas.Stmts.NewLoop(stmtSpan, body), true
}
