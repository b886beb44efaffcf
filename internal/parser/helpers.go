package parser

import (
	"owl/internal/ast"
	"owl/internal/diag"
	"owl/internal/source"
	"owl/internal/token"
)

// advance — съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// getDiagnosticSpan — возвращает лучший span для диагностики.
// Для EOF и пустых Invalid-токенов точка сразу после lastSpan читается
// лучше, чем нулевой span в конце файла (хвостовые пробелы и комментарии
// не попадают под каретку).
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if (peek.Kind == token.EOF || peek.Kind == token.Invalid) && peek.Span.Empty() {
		if p.lastSpan.End > 0 {
			return source.Span{
				File:  p.lastSpan.File,
				Start: p.lastSpan.End,
				End:   p.lastSpan.End,
			}
		}
	}
	return peek.Span
}

// expect — ожидаем конкретный токен. Если нет — репортим и возвращаем (Invalid, false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.errAt(code, diagSpan, msg)
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.lx.Peek().Text}, false
}

// err — репортует ошибку в позиции текущего токена.
func (p *Parser) err(code diag.Code, msg string, hints ...string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg, hints...)
}

// errAt — репортует ошибку с явным span.
func (p *Parser) errAt(code diag.Code, sp source.Span, msg string, hints ...string) bool {
	return p.report(code, diag.SevError, sp, msg, hints...)
}

// report — единственная точка отправки диагностик парсера: считает
// ошибки для MaxErrors и строит диагностику через общий builder-путь.
func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string, hints ...string) bool {
	if p.opts.Reporter == nil {
		return false // нет reporter - ничего не записали
	}
	if p.opts.Enough() {
		return false // достигли максимального количества ошибок
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	b := diag.NewReportBuilder(p.opts.Reporter, sev, code, sp, msg)
	for _, h := range hints {
		b.WithHint(h)
	}
	b.Emit()
	return true
}

// parseExprChecked — как parseExpr, но гарантирует ровно одну диагностику
// на неудачу: если вложенный разбор уже сообщил об ошибке, второй раз не
// репортим, иначе используем msg.
func (p *Parser) parseExprChecked(msg string) (ast.ExprID, bool) {
	before := p.opts.CurrentErrors
	expr, ok := p.parseExpr()
	if !ok && p.opts.CurrentErrors == before {
		p.err(diag.SynUnexpectedToken, msg)
	}
	return expr, ok
}

// exprSpan — span уже построенного выражения.
func (p *Parser) exprSpan(id ast.ExprID) source.Span {
	return p.arenas.Exprs.Get(id).Span
}

// stmtSpan — span уже построенного оператора.
func (p *Parser) stmtSpan(id ast.StmtID) source.Span {
	return p.arenas.Stmts.Get(id).Span
}
