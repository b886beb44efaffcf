package token

import "owl/internal/source"

// TriviaKind classifies whitespace and comments attached to tokens.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

var triviaNames = [...]string{
	TriviaSpace:        "Space",
	TriviaNewline:      "Newline",
	TriviaLineComment:  "LineComment",
	TriviaBlockComment: "BlockComment",
}

func (k TriviaKind) String() string {
	if int(k) < len(triviaNames) {
		return triviaNames[k]
	}
	return "Trivia(?)"
}

// Trivia is a piece of whitespace or comment text preserved for tooling.
// Trivia никогда не попадает в основной поток токенов.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
