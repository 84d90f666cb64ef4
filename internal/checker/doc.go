// Package checker implements the quoting policy: per-unit quote style with
// escape avoidance, concatenation-group consistency, docstring triple
// quoting, and per-token raw-prefix checks. Decisions are pure functions
// of literal units and a Config; violations flow out through diag.Reporter.
package checker
