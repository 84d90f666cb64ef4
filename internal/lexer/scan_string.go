package lexer

import (
	"litlint/internal/diag"
	"litlint/internal/token"
)

// scanString scans a string literal. The cursor sits on the opening quote;
// start marks the beginning of the token including any prefix letters.
// Backslash always consumes the following byte — CPython tokenizes raw
// literals the same way, so r'\'' is a single valid token.
func (lx *Lexer) scanString(start Mark) token.Token {
	q := lx.cursor.Peek()

	width := 1
	if b0, b1, b2, ok := lx.cursor.Peek3(); ok && b0 == q && b1 == q && b2 == q {
		width = 3
		lx.cursor.Bump()
		lx.cursor.Bump()
		lx.cursor.Bump()
	} else {
		lx.cursor.Bump()
	}

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == q {
			if width == 1 {
				lx.cursor.Bump()
				sp := lx.cursor.SpanFrom(start)
				return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			}
			if lx.try3(q, q, q) {
				sp := lx.cursor.SpanFrom(start)
				return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			}
			lx.cursor.Bump()
			continue
		}

		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}

		if b == '\n' && width == 1 {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}

		lx.cursor.Bump()
	}

	// EOF before the closing delimiter.
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
