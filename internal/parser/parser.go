package parser

import (
	"context"
	"slices"

	"owl/internal/ast"
	"owl/internal/diag"
	"owl/internal/lexer"
	"owl/internal/source"
	"owl/internal/token"
)

// Options управляет разбором одного файла.
type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser — состояние парсера на один файл
type Parser struct {
	ctx      context.Context
	lx       *lexer.Lexer    // поток токенов (Peek/Next)
	arenas   *ast.Builder    // построитель аренных узлов
	file     ast.FileID      // текущий FileID (в AST)
	fs       *source.FileSet // нужен только для спанов/путей при надобности
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseFile — входная точка для разбора одного файла.
// Требует уже созданный lexer (на основе source.File).
func ParseFile(
	ctx context.Context,
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	first := lx.Peek()
	p := Parser{
		ctx:      ctx,
		lx:       lx,
		arenas:   arenas,
		file:     arenas.NewFile(first.Span),
		fs:       fs,
		opts:     opts,
		lastSpan: first.Span,
	}

	p.parseItems()
	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		File: p.file,
		Bag:  bag,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) at_or(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}

// parseItems — основной цикл верхнего уровня: пока не EOF — parseItem.
// Отмена контекста просто обрывает цикл: частичный AST — валидный
// результат, решение остаётся за вызывающей стороной.
func (p *Parser) parseItems() {
	startSpan := p.lx.Peek().Span
	for !p.at(token.EOF) {
		if p.ctx != nil && p.ctx.Err() != nil {
			break
		}
		startTok := p.lx.Peek()
		itemID, ok := p.parseItem()
		if !ok {
			p.resyncTop(startTok.Span)
			itemID = p.arenas.Items.NewBad(p.badSpanFrom(startTok.Span))
		}
		p.arenas.PushItem(p.file, itemID)
	}
	p.arenas.Files.Get(p.file).Span = startSpan.Cover(p.lx.Peek().Span)
}

// parseItem выбирает по первому токену нужный распознаватель top-level
// конструкции: import, fn или statement (скриптовый режим).
func (p *Parser) parseItem() (ast.ItemID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwFrom:
		return p.parseImportItem()
	case token.KwImport:
		// Голая форма `import x` грамматикой не предусмотрена:
		// импорт существует только как `from python ... import ...`.
		p.err(diag.ImportInvalid, "Bare 'import' is not supported",
			"write `from python import name` instead")
		return ast.NoItemID, false
	case token.KwFn:
		return p.parseFnItem()
	default:
		stmtID, ok := p.parseStmt()
		if !ok {
			return ast.NoItemID, false
		}
		span := p.arenas.Stmts.Get(stmtID).Span
		return p.arenas.Items.NewStmtItem(span, stmtID), true
	}
}

// stmtStarters — токены, с которых может начинаться конструкция;
// на них останавливается восстановление после ошибки.
var stmtStarters = []token.Kind{
	token.KwFn, token.KwFrom, token.KwLet, token.KwIf, token.KwWhile,
	token.KwFor, token.KwLoop, token.KwReturn, token.KwBreak,
	token.KwContinue, token.KwMatch,
}

// resyncTop — восстановление после ошибки на верхнем уровне:
// прокручиваем до стартового токена следующей конструкции или EOF.
// from — позиция, с которой начинался сломанный item: если после
// прокрутки мы всё ещё там, съедаем токен принудительно, иначе цикл
// разбора не сдвинется с места.
func (p *Parser) resyncTop(from source.Span) {
	p.resyncUntil(stmtStarters...)
	if !p.at(token.EOF) && p.lx.Peek().Span == from {
		p.advance()
	}
}

// resyncStatement — то же самое внутри блока: дополнительно
// останавливаемся на '}', чтобы не выезжать за границу блока.
func (p *Parser) resyncStatement(from source.Span) {
	stop := make([]token.Kind, 0, len(stmtStarters)+1)
	stop = append(stop, stmtStarters...)
	stop = append(stop, token.RBrace)
	p.resyncUntil(stop...)
	if !p.at(token.EOF) && !p.at(token.RBrace) && p.lx.Peek().Span == from {
		p.advance()
	}
}

// resyncUntil — прокручивает вперёд до одного из stop-токенов или EOF.
func (p *Parser) resyncUntil(stop ...token.Kind) {
	for !p.at(token.EOF) && !p.at_or(stop...) {
		p.advance()
	}
}

// badSpanFrom — span Bad-узла после восстановления: от начала сломанной
// конструкции до последнего съеденного токена.
func (p *Parser) badSpanFrom(start source.Span) source.Span {
	out := start
	if p.lastSpan.End > out.End {
		out.End = p.lastSpan.End
	}
	return out
}
