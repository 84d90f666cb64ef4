package literal_test

import (
	"testing"

	"litlint/internal/lexer"
	"litlint/internal/literal"
	"litlint/internal/source"
	"litlint/internal/token"
)

func tokenize(t *testing.T, input string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.py", []byte(input))
	file := fs.Get(fileID)

	lx := lexer.New(file, lexer.Options{})
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func parseOne(t *testing.T, input string) literal.Literal {
	t.Helper()
	tokens := tokenize(t, input)
	if tokens[0].Kind != token.StringLit {
		t.Fatalf("input %q did not lex to a string, got %v", input, tokens[0].Kind)
	}
	return literal.Parse(tokens[0])
}

func TestParse(t *testing.T) {
	tests := []struct {
		input  string
		prefix string
		quote  byte
		width  int
		body   string
	}{
		{`'hello'`, "", '\'', 1, "hello"},
		{`"hello"`, "", '"', 1, "hello"},
		{`''`, "", '\'', 1, ""},
		{`r'\d+'`, "r", '\'', 1, `\d+`},
		{`Rb'\x00'`, "rb", '\'', 1, `\x00`},
		{`f"val {x}"`, "f", '"', 1, "val {x}"},
		{`'''doc'''`, "", '\'', 3, "doc"},
		{`"""doc"""`, "", '"', 3, "doc"},
		{`""""""`, "", '"', 3, ""},
		{`B"""data"""`, "b", '"', 3, "data"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lit := parseOne(t, tt.input)
			if lit.Prefix != tt.prefix {
				t.Errorf("prefix: expected %q, got %q", tt.prefix, lit.Prefix)
			}
			if lit.Quote != tt.quote {
				t.Errorf("quote: expected %c, got %c", tt.quote, lit.Quote)
			}
			if lit.Width != tt.width {
				t.Errorf("width: expected %d, got %d", tt.width, lit.Width)
			}
			if lit.Body != tt.body {
				t.Errorf("body: expected %q, got %q", tt.body, lit.Body)
			}
		})
	}
}

func TestPrefixPredicates(t *testing.T) {
	lit := parseOne(t, `Rb'\x00'`)
	if !lit.IsRaw() || !lit.IsBytes() || lit.IsFString() {
		t.Errorf("Rb prefix: IsRaw=%v IsBytes=%v IsFString=%v", lit.IsRaw(), lit.IsBytes(), lit.IsFString())
	}

	lit = parseOne(t, `f'{x}'`)
	if lit.IsRaw() || !lit.IsFString() {
		t.Errorf("f prefix: IsRaw=%v IsFString=%v", lit.IsRaw(), lit.IsFString())
	}
}

func TestMultiline(t *testing.T) {
	if !parseOne(t, `'''x'''`).Multiline() {
		t.Error("triple-quoted literal should be multiline")
	}
	if parseOne(t, `'x'`).Multiline() {
		t.Error("plain inline literal should not be multiline")
	}
	if !parseOne(t, "'''a\nb'''").Multiline() {
		t.Error("literal spanning lines should be multiline")
	}
}

func TestQuoteCounts(t *testing.T) {
	tests := []struct {
		input  string
		single int
		double int
	}{
		{`'plain'`, 0, 0},
		{`"don't"`, 1, 0},
		{`'aren\'t escapes great?'`, 1, 0},
		{`'say "hi" and \'bye\''`, 2, 2},
		{`r'\''`, 1, 0}, // raw: the backslash is literal, the quote still counts
		{`'\\'`, 0, 0},  // escaped backslash hides nothing
		{`'\n'`, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lit := parseOne(t, tt.input)
			single, double := lit.QuoteCounts()
			if single != tt.single || double != tt.double {
				t.Errorf("expected (%d, %d), got (%d, %d)", tt.single, tt.double, single, double)
			}
		})
	}
}

func TestHasEscaped(t *testing.T) {
	lit := parseOne(t, `'aren\'t'`)
	if !lit.HasEscaped('\'') {
		t.Error("expected escaped single quote to be detected")
	}
	if lit.HasEscaped('"') {
		t.Error("no escaped double quote present")
	}

	// \\' is an escaped backslash followed by the delimiter, not \'
	lit = literal.Parse(token.Token{Kind: token.StringLit, Text: `"a\\'b"`})
	if lit.HasEscaped('\'') {
		t.Error(`\\' must not read as an escaped quote`)
	}

	lit = parseOne(t, `r'\''`)
	if lit.HasEscaped('\'') {
		t.Error("raw literal never has escapes")
	}
}

func TestBackslashProfile(t *testing.T) {
	tests := []struct {
		input string
		pairs bool
		stray bool
	}{
		{`'plain'`, false, false},
		{`'a\\b'`, true, false},
		{`'a\nb'`, false, true},
		{`'a\\b\nc'`, true, true},
		{`'\\\\'`, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lit := parseOne(t, tt.input)
			pairs, stray := lit.BackslashProfile()
			if pairs != tt.pairs || stray != tt.stray {
				t.Errorf("expected pairs=%v stray=%v, got pairs=%v stray=%v",
					tt.pairs, tt.stray, pairs, stray)
			}
		})
	}
}

func TestTrailingBackslashPairs(t *testing.T) {
	if n := parseOne(t, `'dir\\'`).TrailingBackslashPairs(); n != 1 {
		t.Errorf("expected 1 trailing pair, got %d", n)
	}
	if n := parseOne(t, `'dir\\\\'`).TrailingBackslashPairs(); n != 2 {
		t.Errorf("expected 2 trailing pairs, got %d", n)
	}
	if n := parseOne(t, `'dir\\x'`).TrailingBackslashPairs(); n != 0 {
		t.Errorf("expected 0 trailing pairs, got %d", n)
	}
}
