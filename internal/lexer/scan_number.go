package lexer

import (
	"owl/internal/token"
)

// Целые: [0-9]+. Вещественные: [0-9]+ '.' [0-9]+ — цифра после точки
// обязательна, иначе точка в число не входит ("1." — это IntLit и Dot).
// Ни экспонент, ни подчёркиваний, ни других систем счисления нет.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	// целая часть
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// дробная часть только при цифре сразу после точки
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FloatLit
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
