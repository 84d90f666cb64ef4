package lexer

import (
	"litlint/internal/token"
)

// collectLeadingTrivia gathers consecutive trivia before a significant token:
//   - spaces, tabs, form feeds, and lone carriage returns coalesce into one
//     TriviaSpace
//   - '#' up to (not including) the newline -> TriviaComment
//   - backslash immediately followed by a newline -> TriviaLineContinuation
//
// Newlines are significant tokens in Python and are not consumed here.
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' || b == '\f' || b == '\r' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' && b2 != '\f' && b2 != '\r' {
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		if b == '#' {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaComment,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		if b == '\\' {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '\\' && b1 == '\n' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				sp := lx.cursor.SpanFrom(start)
				lx.hold = append(lx.hold, token.Trivia{
					Kind: token.TriviaLineContinuation,
					Span: sp,
					Text: string(lx.file.Content[sp.Start:sp.End]),
				})
				continue
			}
			// A stray backslash is not trivia; scanOperatorOrPunct reports it.
			break
		}

		break
	}
}
