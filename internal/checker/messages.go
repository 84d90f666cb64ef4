package checker

import (
	"litlint/internal/diag"
	"litlint/internal/literal"
	"litlint/internal/source"
)

var messageText = map[diag.Code]string{
	diag.QuoteUseSingle:          "Use single quotes for string",
	diag.QuoteUseDouble:          "Use double quotes for string",
	diag.MultilineUseSingle:      "Use single quotes for multiline string",
	diag.MultilineUseDouble:      "Use double quotes for multiline string",
	diag.DocstringUseSingle:      "Use single quotes for docstring",
	diag.DocstringUseDouble:      "Use double quotes for docstring",
	diag.DocstringTripleSingle:   "Use triple single quotes for docstring",
	diag.DocstringTripleDouble:   "Use triple double quotes for docstring",
	diag.SwitchToDouble:          "Use double quotes for string to avoid escaped single quote",
	diag.SwitchToSingle:          "Use single quotes for string to avoid escaped double quote",
	diag.UnnecessaryEscapeSingle: "Escaped single quote is not necessary",
	diag.UnnecessaryEscapeDouble: "Escaped double quote is not necessary",
	diag.ContinuationUseDouble:   "Use double quotes for continuation strings to match",
	diag.ContinuationUseSingle:   "Use single quotes for continuation strings to match",
	diag.RawRemove:               "Remove raw prefix when not using escapes",
	diag.RawAdd:                  "Use raw prefix to avoid escaped slash",
}

// Message returns the text for a code, honoring IncludeName.
func (c *Checker) Message(code diag.Code) string {
	msg := messageText[code]
	if c.cfg.IncludeName {
		msg += " (" + Name + ")"
	}
	return msg
}

func (c *Checker) report(code diag.Code, sp source.Span) {
	c.reporter.Report(code, diag.SevWarning, sp, c.Message(code), nil)
}

// Code tables keyed by quote style. Each role and defect kind has a code
// per quote direction.

var useQuoteCode = map[literal.Quote]diag.Code{
	literal.Single: diag.QuoteUseSingle,
	literal.Double: diag.QuoteUseDouble,
}

var multilineUseQuoteCode = map[literal.Quote]diag.Code{
	literal.Single: diag.MultilineUseSingle,
	literal.Double: diag.MultilineUseDouble,
}

var docstringUseQuoteCode = map[literal.Quote]diag.Code{
	literal.Single: diag.DocstringUseSingle,
	literal.Double: diag.DocstringUseDouble,
}

var docstringTripleCode = map[literal.Quote]diag.Code{
	literal.Single: diag.DocstringTripleSingle,
	literal.Double: diag.DocstringTripleDouble,
}

// switchToCode is keyed by the quote the literal should switch TO.
var switchToCode = map[literal.Quote]diag.Code{
	literal.Double: diag.SwitchToDouble,
	literal.Single: diag.SwitchToSingle,
}

// unnecessaryEscapeCode is keyed by the kind of the escaped quote character.
var unnecessaryEscapeCode = map[literal.Quote]diag.Code{
	literal.Single: diag.UnnecessaryEscapeSingle,
	literal.Double: diag.UnnecessaryEscapeDouble,
}

// continuationCode is keyed by the quote the continuation should use.
var continuationCode = map[literal.Quote]diag.Code{
	literal.Double: diag.ContinuationUseDouble,
	literal.Single: diag.ContinuationUseSingle,
}
