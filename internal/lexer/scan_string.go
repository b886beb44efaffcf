package lexer

import (
	"owl/internal/diag"
	"owl/internal/token"
)

// Строки: "..." в одну строку. Escape-последовательность — '\' плюс любой
// байт; здесь её не валидируем и не раскрываем, Token.Text остаётся сырым
// срезом исходника. Перевод строки и EOF внутри строки — E0102, токен
// деградирует в Invalid, а лексер продолжает с места обрыва.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if b == '\n' {
			// перевод строки не потребляем — он уйдёт в trivia следующего токена
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp,
				"Unterminated string (newline in string literal)",
				"strings cannot span multiple lines; use \\n for newlines")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if b == '\\' {
			// '\' и следующий байт, каким бы он ни был
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		lx.cursor.Bump()
	}
	// EOF без закрывающей кавычки
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp,
		"Unterminated string",
		"did you forget to close the string with '\"'?")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
