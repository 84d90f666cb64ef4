package checker

import (
	"litlint/internal/diag"
	"litlint/internal/literal"
)

// Checker applies the quote-style and raw-prefix policy to literal units
// and reports violations through a diag.Reporter.
type Checker struct {
	cfg      Config
	reporter diag.Reporter
}

func New(cfg Config, reporter diag.Reporter) *Checker {
	return &Checker{cfg: cfg, reporter: reporter}
}

// Check runs every rule over the classified units.
func (c *Checker) Check(units []literal.Unit) {
	for _, u := range units {
		c.checkQuotes(u)
		c.checkRaw(u)
	}
}

func (c *Checker) checkQuotes(u literal.Unit) {
	switch u.Role {
	case literal.RoleDocstring:
		c.checkDocstring(u)
	case literal.RoleMultiline:
		c.checkMultiline(u)
	default:
		c.checkInline(u)
	}
}

func (c *Checker) checkDocstring(u literal.Unit) {
	lit := u.First()
	want := c.cfg.DocstringQuote

	if lit.Quote != want.Char() {
		c.report(docstringUseQuoteCode[want], lit.Span())
	}
	// Triple quoting is required independently of quote correctness.
	if lit.Width != 3 {
		c.report(docstringTripleCode[want], lit.Span())
	}
}

func (c *Checker) checkMultiline(u literal.Unit) {
	lit := u.First()
	want := c.cfg.MultilineQuote

	if lit.Quote != want.Char() {
		c.report(multilineUseQuoteCode[want], lit.Span())
	}
}

// checkInline decides the effective target quote for the unit, compares the
// actual quote against it, and checks group consistency and unnecessary
// escapes. For concatenation groups the effective target derives from the
// first member's body; later members are held to the first member's quote.
func (c *Checker) checkInline(u literal.Unit) {
	first := u.First()
	preferred := c.cfg.InlineQuote

	effective := preferred
	if c.cfg.AvoidEscape && !first.IsRaw() {
		needP := first.CountQuote(preferred.Char())
		needOpp := first.CountQuote(preferred.Other().Char())
		// Strictly more escapes under the preferred quote: switch.
		// Equal counts never override the configured preference.
		if needP > needOpp {
			effective = preferred.Other()
		}
	}

	actual := literal.QuoteFromChar(first.Quote)
	if actual != effective {
		if effective != preferred {
			// The mismatch exists only because escape avoidance
			// recommends the opposite quote.
			c.report(switchToCode[effective], u.Span())
		} else {
			c.report(useQuoteCode[preferred], u.Span())
		}
	}

	// Group consistency: every member must match the first member's quote.
	for _, m := range u.Members[1:] {
		if m.Quote != first.Quote {
			c.report(continuationCode[actual], m.Span())
		}
	}

	for _, m := range u.Members {
		c.checkUnnecessaryEscape(m)
	}
}

// checkUnnecessaryEscape flags escaped quotes the literal does not need.
func (c *Checker) checkUnnecessaryEscape(m literal.Literal) {
	if m.IsRaw() {
		return
	}
	delim := literal.QuoteFromChar(m.Quote)
	other := delim.Other()
	nDelim := m.CountQuote(delim.Char())
	nOther := m.CountQuote(other.Char())

	if c.cfg.AvoidEscape {
		// With both quote kinds present no switch helps, and the escapes
		// that exist are the best the literal can do.
		if nDelim > 0 && nOther > 0 {
			return
		}
		if m.HasEscaped(other.Char()) {
			c.report(unnecessaryEscapeCode[other], m.Span())
		}
		return
	}

	// Escape avoidance disabled: an escaped delimiter is still provably
	// unnecessary when switching quotes would need no escape of that kind
	// and no more escapes overall.
	if m.HasEscaped(delim.Char()) && nOther <= nDelim {
		c.report(unnecessaryEscapeCode[delim], m.Span())
	}
}
