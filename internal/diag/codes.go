package diag

import (
	"fmt"
)

// Code identifies a diagnostic rule. Stable IDs are rendered as LIT###.
type Code uint16

const (
	UnknownCode Code = 0

	// Quote-style family (string literal quoting).
	QuoteUseSingle          Code = 1  // use single quotes for string
	QuoteUseDouble          Code = 2  // use double quotes for string
	MultilineUseSingle      Code = 3  // use single quotes for multiline string
	MultilineUseDouble      Code = 4  // use double quotes for multiline string
	DocstringUseSingle      Code = 5  // use single quotes for docstring
	DocstringUseDouble      Code = 6  // use double quotes for docstring
	DocstringTripleSingle   Code = 7  // use triple single quotes for docstring
	DocstringTripleDouble   Code = 8  // use triple double quotes for docstring
	SwitchToDouble          Code = 11 // switch to double quotes to avoid escape
	SwitchToSingle          Code = 12 // switch to single quotes to avoid escape
	UnnecessaryEscapeSingle Code = 13 // escaped single quote not necessary
	UnnecessaryEscapeDouble Code = 14 // escaped double quote not necessary
	ContinuationUseDouble   Code = 15 // use double quotes for continuation to match
	ContinuationUseSingle   Code = 16 // use single quotes for continuation to match

	// Raw-prefix family.
	RawRemove Code = 101 // remove unnecessary raw prefix
	RawAdd    Code = 102 // use raw prefix to avoid escaped backslash

	// Terminal per-file failure: the source could not be tokenized.
	UnparseableSource Code = 900

	// Lexical scan details. These never surface directly; the driver
	// collapses them into a single UnparseableSource diagnostic.
	LexUnknownChar        Code = 901
	LexUnterminatedString Code = 902
	LexBadNumber          Code = 903

	// IOLoadFile marks a file that could not be read from disk.
	IOLoadFile Code = 904
)

var codeNames = map[Code]string{
	UnknownCode:             "unknown",
	QuoteUseSingle:          "quote-use-single",
	QuoteUseDouble:          "quote-use-double",
	MultilineUseSingle:      "multiline-use-single",
	MultilineUseDouble:      "multiline-use-double",
	DocstringUseSingle:      "docstring-use-single",
	DocstringUseDouble:      "docstring-use-double",
	DocstringTripleSingle:   "docstring-triple-single",
	DocstringTripleDouble:   "docstring-triple-double",
	SwitchToDouble:          "switch-to-double",
	SwitchToSingle:          "switch-to-single",
	UnnecessaryEscapeSingle: "unnecessary-escape-single",
	UnnecessaryEscapeDouble: "unnecessary-escape-double",
	ContinuationUseDouble:   "continuation-use-double",
	ContinuationUseSingle:   "continuation-use-single",
	RawRemove:               "raw-remove",
	RawAdd:                  "raw-add",
	UnparseableSource:       "unparseable-source",
	LexUnknownChar:          "lex-unknown-char",
	LexUnterminatedString:   "lex-unterminated-string",
	LexBadNumber:            "lex-bad-number",
	IOLoadFile:              "io-load-file",
}

// ID returns the stable short code, e.g. "LIT001".
func (c Code) ID() string {
	return fmt.Sprintf("LIT%03d", uint16(c))
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return c.ID()
}
