// Package token defines lexical token kinds and trivia for Python source.
// Invariants:
//   - Token.Text is exactly the source slice covered by Token.Span.
//   - String literals are single StringLit tokens including any prefix
//     letters and both delimiters; f-string interpolations are not split
//     into sub-tokens.
//   - Comments, spaces, and backslash line-continuations never appear in
//     the main token stream; they are leading Trivia.
//   - Newline tokens are physical line breaks. Logical statement
//     termination (outside brackets) is decided by consumers.
package token
