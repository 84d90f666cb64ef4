package literal

import (
	"strings"

	"litlint/internal/source"
	"litlint/internal/token"
)

// Quote is a configurable quote style.
type Quote uint8

const (
	Single Quote = iota
	Double
)

// Char returns the quote character.
func (q Quote) Char() byte {
	if q == Single {
		return '\''
	}
	return '"'
}

// Other returns the opposite quote style.
func (q Quote) Other() Quote {
	if q == Single {
		return Double
	}
	return Single
}

func (q Quote) String() string {
	if q == Single {
		return "single"
	}
	return "double"
}

// QuoteFromChar maps a quote character to its style.
func QuoteFromChar(c byte) Quote {
	if c == '\'' {
		return Single
	}
	return Double
}

// QuoteFromString parses "single" or "double" (case-insensitive).
func QuoteFromString(value string) (Quote, bool) {
	switch strings.ToLower(value) {
	case "single":
		return Single, true
	case "double":
		return Double, true
	}
	return Single, false
}

// Role classifies a literal unit.
type Role uint8

const (
	RoleInline Role = iota
	RoleMultiline
	RoleDocstring
)

func (r Role) String() string {
	switch r {
	case RoleInline:
		return "inline"
	case RoleMultiline:
		return "multiline"
	case RoleDocstring:
		return "docstring"
	}
	return "role(?)"
}

// Literal is one parsed string token: prefix letters, quote character, quote
// width, and the raw (undecoded) body between the delimiters.
type Literal struct {
	Tok    token.Token
	Prefix string // lowercased prefix letters ("", "r", "b", "fr", ...)
	Quote  byte   // '\'' or '"'
	Width  int    // 1 or 3
	Body   string
}

// Parse splits a StringLit token into its lexical parts.
func Parse(tok token.Token) Literal {
	text := tok.Text
	i := strings.IndexAny(text, `'"`)
	if i < 0 {
		return Literal{Tok: tok}
	}
	q := text[i]
	prefix := strings.ToLower(text[:i])

	width := 1
	rest := text[i:]
	if len(rest) >= 6 && rest[1] == q && rest[2] == q {
		width = 3
	}
	body := rest[width : len(rest)-width]

	return Literal{
		Tok:    tok,
		Prefix: prefix,
		Quote:  q,
		Width:  width,
		Body:   body,
	}
}

// IsRaw reports whether the literal carries a raw prefix.
func (l Literal) IsRaw() bool {
	return strings.ContainsRune(l.Prefix, 'r')
}

// IsFString reports whether the literal carries a format prefix.
func (l Literal) IsFString() bool {
	return strings.ContainsRune(l.Prefix, 'f')
}

// IsBytes reports whether the literal carries a bytes prefix.
func (l Literal) IsBytes() bool {
	return strings.ContainsRune(l.Prefix, 'b')
}

// Multiline reports whether the literal is triple-quoted or its body spans
// more than one source line.
func (l Literal) Multiline() bool {
	return l.Width == 3 || strings.ContainsRune(l.Body, '\n')
}

// Span returns the token span.
func (l Literal) Span() source.Span {
	return l.Tok.Span
}

// QuoteCounts returns how many quote characters of each kind occur in the
// literal's value, i.e. how many would need escaping were that character the
// delimiter. Escape sequences contribute the character they denote.
func (l Literal) QuoteCounts() (single, double int) {
	body := l.Body
	raw := l.IsRaw()
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\\' && !raw {
			i++
			if i >= len(body) {
				break
			}
			c = body[i]
		}
		switch c {
		case '\'':
			single++
		case '"':
			double++
		}
	}
	return single, double
}

// CountQuote returns the value count for one quote character.
func (l Literal) CountQuote(q byte) int {
	single, double := l.QuoteCounts()
	if q == '\'' {
		return single
	}
	return double
}

// HasEscaped reports whether the body contains a backslash-escaped
// occurrence of q. Raw literals never count.
func (l Literal) HasEscaped(q byte) bool {
	if l.IsRaw() {
		return false
	}
	body := l.Body
	for i := 0; i+1 < len(body); i++ {
		if body[i] != '\\' {
			continue
		}
		if body[i+1] == q {
			return true
		}
		i++ // skip the escaped character, whatever it is
	}
	return false
}

// BackslashProfile reports whether the body contains doubled backslashes
// (escaped backslash characters) and whether it contains any backslash that
// is not part of a doubled pair.
func (l Literal) BackslashProfile() (pairs, stray bool) {
	body := l.Body
	for i := 0; i < len(body); i++ {
		if body[i] != '\\' {
			continue
		}
		if i+1 < len(body) && body[i+1] == '\\' {
			pairs = true
			i++
		} else {
			stray = true
		}
	}
	return pairs, stray
}

// TrailingBackslashPairs counts how many doubled backslashes end the body.
// A raw literal cannot end in an odd number of backslashes, so callers use
// the parity of this count.
func (l Literal) TrailingBackslashPairs() int {
	body := l.Body
	n := 0
	for strings.HasSuffix(body, `\\`) {
		body = body[:len(body)-2]
		n++
	}
	return n
}
