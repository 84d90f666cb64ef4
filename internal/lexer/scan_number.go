package lexer

import (
	"litlint/internal/diag"
	"litlint/internal/token"
)

// scanNumber scans int, float, and imaginary literals, including underscore
// digit separators. The goal is to step over any numeric lexeme correctly;
// fine-grained validation belongs to a real compiler front end.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	// 0x / 0o / 0b
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X' || b1 == 'o' || b1 == 'O' || b1 == 'b' || b1 == 'B') {
		lx.cursor.Bump()
		base := lx.cursor.Bump()
		digits := 0
		for {
			b := lx.cursor.Peek()
			if b == '_' {
				lx.cursor.Bump()
				continue
			}
			switch base {
			case 'x', 'X':
				if !isHex(b) {
					goto doneRadix
				}
			case 'o', 'O':
				if !isOct(b) {
					goto doneRadix
				}
			default:
				if !isBin(b) {
					goto doneRadix
				}
			}
			digits++
			lx.cursor.Bump()
		}
	doneRadix:
		sp := lx.cursor.SpanFrom(start)
		text := string(lx.file.Content[sp.Start:sp.End])
		if digits == 0 {
			lx.errLex(diag.LexBadNumber, sp, "radix literal without digits")
			return token.Token{Kind: token.Invalid, Span: sp, Text: text}
		}
		return token.Token{Kind: token.IntLit, Span: sp, Text: text}
	}

	eatDigits := func() {
		for {
			b := lx.cursor.Peek()
			if !isDec(b) && b != '_' {
				return
			}
			lx.cursor.Bump()
		}
	}

	eatDigits()

	// Fraction ('.5' arrives here with the dot still pending).
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FloatLit
		lx.cursor.Bump()
		eatDigits()
	} else if lx.cursor.Peek() == '.' {
		// trailing dot, "1." is a float
		kind = token.FloatLit
		lx.cursor.Bump()
	}

	// Exponent.
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		save := lx.cursor.Mark()
		lx.cursor.Bump()
		if b2 := lx.cursor.Peek(); b2 == '+' || b2 == '-' {
			lx.cursor.Bump()
		}
		if isDec(lx.cursor.Peek()) {
			kind = token.FloatLit
			eatDigits()
		} else {
			// "1e" alone: back off, 'e' starts an identifier
			lx.cursor.Reset(save)
		}
	}

	// Imaginary suffix.
	if b := lx.cursor.Peek(); b == 'j' || b == 'J' {
		kind = token.ImagLit
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
