package lexer

import (
	"litlint/internal/diag"
	"litlint/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Reporter receives lexical errors. May be nil; the lexer keeps going
	// either way and the caller inspects token kinds.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
