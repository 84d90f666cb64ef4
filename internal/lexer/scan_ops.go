package lexer

import (
	"litlint/internal/diag"
	"litlint/internal/token"
)

// scanOperatorOrPunct scans operators and delimiters, longest match first.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	mk := func(kind token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	// three-byte operators
	switch {
	case lx.try3('*', '*', '='):
		return mk(token.StarStarEq)
	case lx.try3('/', '/', '='):
		return mk(token.DblSlashEq)
	case lx.try3('<', '<', '='):
		return mk(token.ShlAssign)
	case lx.try3('>', '>', '='):
		return mk(token.ShrAssign)
	case lx.try3('.', '.', '.'):
		return mk(token.Ellipsis)
	}

	// two-byte operators
	switch {
	case lx.try2('*', '*'):
		return mk(token.StarStar)
	case lx.try2('/', '/'):
		return mk(token.SlashSlash)
	case lx.try2('<', '<'):
		return mk(token.Shl)
	case lx.try2('>', '>'):
		return mk(token.Shr)
	case lx.try2('<', '='):
		return mk(token.LtEq)
	case lx.try2('>', '='):
		return mk(token.GtEq)
	case lx.try2('=', '='):
		return mk(token.EqEq)
	case lx.try2('!', '='):
		return mk(token.BangEq)
	case lx.try2('+', '='):
		return mk(token.PlusAssign)
	case lx.try2('-', '='):
		return mk(token.MinusAssign)
	case lx.try2('*', '='):
		return mk(token.StarAssign)
	case lx.try2('/', '='):
		return mk(token.SlashAssign)
	case lx.try2('%', '='):
		return mk(token.PercentEq)
	case lx.try2('@', '='):
		return mk(token.AtAssign)
	case lx.try2('&', '='):
		return mk(token.AmpAssign)
	case lx.try2('|', '='):
		return mk(token.PipeAssign)
	case lx.try2('^', '='):
		return mk(token.CaretAssign)
	case lx.try2('-', '>'):
		return mk(token.Arrow)
	case lx.try2(':', '='):
		return mk(token.Walrus)
	}

	b := lx.cursor.Bump()
	switch b {
	case '+':
		return mk(token.Plus)
	case '-':
		return mk(token.Minus)
	case '*':
		return mk(token.Star)
	case '/':
		return mk(token.Slash)
	case '%':
		return mk(token.Percent)
	case '@':
		return mk(token.At)
	case '&':
		return mk(token.Amp)
	case '|':
		return mk(token.Pipe)
	case '^':
		return mk(token.Caret)
	case '~':
		return mk(token.Tilde)
	case '<':
		return mk(token.Lt)
	case '>':
		return mk(token.Gt)
	case '=':
		return mk(token.Assign)
	case '(':
		return mk(token.LParen)
	case ')':
		return mk(token.RParen)
	case '[':
		return mk(token.LBracket)
	case ']':
		return mk(token.RBracket)
	case '{':
		return mk(token.LBrace)
	case '}':
		return mk(token.RBrace)
	case ',':
		return mk(token.Comma)
	case ':':
		return mk(token.Colon)
	case '.':
		return mk(token.Dot)
	case ';':
		return mk(token.Semicolon)
	case '!':
		return mk(token.Bang)
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, "unknown character")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
