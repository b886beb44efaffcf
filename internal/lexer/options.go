package lexer

import (
	"owl/internal/diag"
	"owl/internal/source"
)

// Options настраивает лексер. Reporter может быть nil — тогда ошибки
// игнорируются, но лексер продолжает выдавать токены.
type Options struct {
	Reporter diag.Reporter
}

// errLex отправляет лексическую ошибку через единый builder-путь.
func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string, hints ...string) {
	if lx.opts.Reporter == nil {
		return
	}
	b := diag.ReportError(lx.opts.Reporter, code, sp, msg)
	for _, h := range hints {
		b.WithHint(h)
	}
	b.Emit()
}
