package lexer

import (
	"litlint/internal/token"
)

// scanIdentOrKeyword scans an identifier and checks LookupKeyword. When the
// lexeme is a valid string prefix sitting directly on a quote, scanning
// continues into the string literal so the prefix becomes part of the token.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: ""}
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
		for {
			b := lx.cursor.Peek()
			if b >= utf8RuneSelf {
				// switch to the Unicode path for the rest
				r2, sz2 := lx.peekRune()
				if sz2 == 0 || !isIdentContinueRune(r2) {
					break
				}
				lx.bumpRune()
				continue
			}
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
		}
	} else {
		if !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		lx.bumpRune()
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				break
			}
			if r2 < utf8RuneSelf && !isIdentContinueByte(byte(r2)) {
				break
			}
			lx.bumpRune()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lex := lx.file.Content[sp.Start:sp.End]
	text := string(lex)

	// r'...', b"...", f'''...''' and friends: the letters are a string prefix.
	if b := lx.cursor.Peek(); (b == '\'' || b == '"') && isStringPrefix(text) {
		return lx.scanString(start)
	}

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}

	// CPython NFKC-normalizes non-ASCII identifiers.
	return token.Token{Kind: token.Ident, Span: sp, Text: normalizeIdent(text)}
}
