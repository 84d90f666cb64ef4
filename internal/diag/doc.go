// Package diag defines the diagnostic model for litlint: codes with stable
// LIT### identifiers, severities, the Diagnostic record, the Bag collector,
// and Reporter adapters used by the lexer and the checkers.
//
// Rule violations are SevWarning; an untokenizable file produces a single
// SevError UnparseableSource diagnostic and no rule diagnostics.
package diag
