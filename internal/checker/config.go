package checker

import (
	"litlint/internal/literal"
)

// Name is the analyzer name appended to messages when IncludeName is set.
const Name = "litlint"

// Config holds the quoting policy for one analysis run. It is read-only
// once built, so a single Config may be shared across concurrent per-file
// checks.
type Config struct {
	InlineQuote    literal.Quote
	MultilineQuote literal.Quote
	DocstringQuote literal.Quote
	AvoidEscape    bool
	IncludeName    bool
}

// DefaultConfig returns the stock policy: single quotes for code strings,
// double for docstrings, escape avoidance on, analyzer name included in
// messages.
func DefaultConfig() Config {
	return Config{
		InlineQuote:    literal.Single,
		MultilineQuote: literal.Single,
		DocstringQuote: literal.Double,
		AvoidEscape:    true,
		IncludeName:    true,
	}
}
