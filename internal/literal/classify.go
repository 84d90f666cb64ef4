package literal

import (
	"litlint/internal/source"
	"litlint/internal/token"
)

// Unit is one or more adjacent string literals forming a single logical
// value via implicit concatenation. Docstrings and multiline literals are
// always singleton units, so a unit's role is uniform across its members.
type Unit struct {
	Role    Role
	Members []Literal
}

// First returns the unit's first member.
func (u Unit) First() Literal {
	return u.Members[0]
}

// QuoteChar returns the quote character of the first member, the group's
// reference quote for consistency checks.
func (u Unit) QuoteChar() byte {
	return u.Members[0].Quote
}

// Span returns the span of the unit's first member.
func (u Unit) Span() source.Span {
	return u.Members[0].Span()
}

// FindDocstrings locates docstring tokens: string expression statements
// that come first in a module, class, or function body. The structural pass
// tracks only what it needs — a class/def header followed by a colon at
// bracket depth zero opens a body; consecutive leading string statements
// all count; any other token cancels the expectation.
//
// The returned set is keyed by token span start.
func FindDocstrings(tokens []token.Token) map[uint32]struct{} {
	docstrings := make(map[uint32]struct{})
	expectDocstring := true
	expectColon := false
	depth := 0

	for _, t := range tokens {
		switch t.Kind {
		case token.Newline, token.EOF:
			continue

		case token.StringLit:
			if expectDocstring {
				docstrings[t.Span.Start] = struct{}{}
			}

		case token.KwClass, token.KwDef:
			expectDocstring = false
			expectColon = true
			depth = 0

		case token.Colon:
			expectDocstring = false
			if depth == 0 {
				if expectColon {
					expectDocstring = true
				}
				expectColon = false
			}

		case token.LParen, token.LBracket, token.LBrace:
			expectDocstring = false
			depth++

		case token.RParen, token.RBracket, token.RBrace:
			expectDocstring = false
			depth--

		default:
			expectDocstring = false
		}
	}
	return docstrings
}

// Classify groups string tokens into literal units. Strings separated only
// by trivia within one statement join a concatenation group; a statement
// boundary (newline at bracket depth zero), any non-string token, a
// docstring, or a multiline literal closes the open group.
func Classify(tokens []token.Token) []Unit {
	docstrings := FindDocstrings(tokens)

	var units []Unit
	var group []Literal
	depth := 0

	flush := func() {
		if len(group) > 0 {
			units = append(units, Unit{Role: RoleInline, Members: group})
			group = nil
		}
	}

	for _, t := range tokens {
		switch t.Kind {
		case token.StringLit:
			lit := Parse(t)
			if _, isDoc := docstrings[t.Span.Start]; isDoc {
				flush()
				units = append(units, Unit{Role: RoleDocstring, Members: []Literal{lit}})
			} else if lit.Multiline() {
				flush()
				units = append(units, Unit{Role: RoleMultiline, Members: []Literal{lit}})
			} else {
				group = append(group, lit)
			}

		case token.Newline:
			if depth == 0 {
				flush()
			}

		case token.EOF:
			flush()

		default:
			flush()
			if t.OpensBracket() {
				depth++
			} else if t.ClosesBracket() && depth > 0 {
				depth--
			}
		}
	}
	flush()
	return units
}
