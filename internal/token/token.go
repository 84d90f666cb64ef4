package token

import (
	"litlint/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, ImagLit, StringLit:
		return true
	default:
		return false
	}
}

// IsString reports whether the token is a string literal.
func (t Token) IsString() bool { return t.Kind == StringLit }

// IsKeyword reports whether the token is a Python keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwFalse && t.Kind <= KwYield
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= Plus && t.Kind <= Bang
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// OpensBracket reports whether the token increases bracket depth.
func (t Token) OpensBracket() bool {
	switch t.Kind {
	case LParen, LBracket, LBrace:
		return true
	default:
		return false
	}
}

// ClosesBracket reports whether the token decreases bracket depth.
func (t Token) ClosesBracket() bool {
	switch t.Kind {
	case RParen, RBracket, RBrace:
		return true
	default:
		return false
	}
}
