package checker

import (
	"strings"

	"litlint/internal/diag"
	"litlint/internal/literal"
)

// checkRaw inspects each member token for raw-prefix defects. The checks
// are per token and independent of quote-style decisions. Docstrings are
// exempt.
func (c *Checker) checkRaw(u literal.Unit) {
	if u.Role == literal.RoleDocstring {
		return
	}
	for _, m := range u.Members {
		c.checkRawToken(m)
	}
}

func (c *Checker) checkRawToken(m literal.Literal) {
	if m.IsRaw() {
		if !strings.ContainsRune(m.Body, '\\') {
			c.report(diag.RawRemove, m.Span())
		}
		return
	}

	pairs, stray := m.BackslashProfile()
	if !pairs || stray {
		// Either nothing to gain, or a non-backslash escape the raw form
		// could not express.
		return
	}
	// A raw literal cannot end in an odd number of backslashes.
	if m.TrailingBackslashPairs()%2 != 0 {
		return
	}
	c.report(diag.RawAdd, m.Span())
}
