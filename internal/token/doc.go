// Package token defines lexical token kinds and trivia for the Owl compiler.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Comments and whitespace are leading Trivia and never appear in the
//     main token stream.
//   - Type names (Int, Float, String, ...) and the Option/Result
//     constructors (Some, None, Ok, Err) are identifiers. They are
//     recognized by the semantic layer, not the lexer.
package token
