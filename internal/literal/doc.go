// Package literal parses Python string tokens into their lexical parts
// (prefix, quote, width, body) and groups adjacent tokens into literal
// units with a role: inline, multiline, or docstring.
//
// Everything here is a pure function over token text; the package holds no
// state and performs no I/O, which keeps the checkers testable in
// isolation.
package literal
