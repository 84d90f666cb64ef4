package checker_test

import (
	"strings"
	"testing"

	"litlint/internal/checker"
	"litlint/internal/diag"
	"litlint/internal/lexer"
	"litlint/internal/literal"
	"litlint/internal/source"
	"litlint/internal/token"
)

// recordingReporter keeps every reported diagnostic for assertions.
type recordingReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *recordingReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *recordingReporter) codes() []diag.Code {
	out := make([]diag.Code, len(r.diagnostics))
	for i, d := range r.diagnostics {
		out[i] = d.Code
	}
	return out
}

// runCheck lexes and classifies input, then runs the checker over it.
func runCheck(t *testing.T, input string, cfg checker.Config) *recordingReporter {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.py", []byte(input))
	file := fs.Get(fileID)

	lx := lexer.New(file, lexer.Options{})
	var tokens []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.Invalid {
			t.Fatalf("input did not lex cleanly: %q", input)
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	units := literal.Classify(tokens)
	reporter := &recordingReporter{}
	checker.New(cfg, reporter).Check(units)
	return reporter
}

func expectCodes(t *testing.T, input string, cfg checker.Config, expected ...diag.Code) *recordingReporter {
	t.Helper()
	reporter := runCheck(t, input, cfg)
	got := reporter.codes()
	if len(got) != len(expected) {
		t.Fatalf("expected %d diagnostics %v, got %v\ninput: %q", len(expected), expected, got, input)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("diagnostic %d: expected %v, got %v", i, expected[i], got[i])
		}
	}
	return reporter
}

// ====== inline quote style ======

func TestInlineWrongQuote(t *testing.T) {
	expectCodes(t, `x = "value"`, checker.DefaultConfig(), diag.QuoteUseSingle)
}

func TestInlineCorrectQuote(t *testing.T) {
	expectCodes(t, `x = 'value'`, checker.DefaultConfig())
}

func TestInlineWrongQuoteDoublePreference(t *testing.T) {
	cfg := checker.DefaultConfig()
	cfg.InlineQuote = literal.Double
	expectCodes(t, `x = 'value'`, cfg, diag.QuoteUseDouble)
}

func TestInlineDiagnosticPosition(t *testing.T) {
	reporter := expectCodes(t, `x = "value"`, checker.DefaultConfig(), diag.QuoteUseSingle)
	sp := reporter.diagnostics[0].Primary
	if sp.Start != 4 || sp.End != 11 {
		t.Errorf("expected span [4,11) over the literal, got [%d,%d)", sp.Start, sp.End)
	}
}

func TestFStringCheckedLikeInline(t *testing.T) {
	expectCodes(t, `x = f"val {y}"`, checker.DefaultConfig(), diag.QuoteUseSingle)
}

// ====== escape avoidance ======

func TestEscapeAvoidanceRecommendsSwitch(t *testing.T) {
	expectCodes(t, `x = 'aren\'t escapes great?'`, checker.DefaultConfig(), diag.SwitchToDouble)
}

func TestEscapeAvoidanceAlreadySwitched(t *testing.T) {
	// Double quotes avoid the escape entirely; preferred single would need
	// one. No diagnostic.
	expectCodes(t, `x = "aren't escapes great?"`, checker.DefaultConfig())
}

func TestEscapeAvoidanceTieKeepsPreference(t *testing.T) {
	// One quote of each kind: switching gains nothing, the configured
	// preference stands.
	expectCodes(t, `x = "a'b\"c"`, checker.DefaultConfig(), diag.QuoteUseSingle)
}

func TestEscapeAvoidanceDisabled(t *testing.T) {
	cfg := checker.DefaultConfig()
	cfg.AvoidEscape = false
	expectCodes(t, `x = 'aren\'t'`, cfg, diag.UnnecessaryEscapeSingle)
}

func TestEscapeAvoidanceIgnoresRaw(t *testing.T) {
	// Raw literal bodies never count as escapes, so no switch advice.
	expectCodes(t, `x = r'\''`, checker.DefaultConfig())
}

func TestUnnecessaryEscapeOfOtherQuote(t *testing.T) {
	// The escaped single quote needs no escape inside double quotes.
	expectCodes(t, `x = "aren\'t"`, checker.DefaultConfig(), diag.UnnecessaryEscapeSingle)
}

func TestBothQuoteKindsPresentNoEscapeAdvice(t *testing.T) {
	// With both kinds in the body some escape is unavoidable; stay quiet.
	expectCodes(t, `x = 'he said "don\'t" twice'`, checker.DefaultConfig())
}

// ====== concatenation groups ======

func TestContinuationMismatch(t *testing.T) {
	input := "x = ('one'\n     \"o'clock\")"
	reporter := expectCodes(t, input, checker.DefaultConfig(), diag.ContinuationUseSingle)

	// The diagnostic sits on the second member, not the group head.
	sp := reporter.diagnostics[0].Primary
	secondStart := uint32(strings.Index(input, `"o'clock"`))
	if sp.Start != secondStart {
		t.Errorf("expected diagnostic at offset %d, got %d", secondStart, sp.Start)
	}
}

func TestConsistentGroupWrongPreferenceSingleDiagnostic(t *testing.T) {
	// A uniform group in the wrong quote yields one diagnostic at the head.
	expectCodes(t, `x = ("a" "b" "c")`, checker.DefaultConfig(), diag.QuoteUseSingle)
}

func TestConsistentGroupCorrectQuote(t *testing.T) {
	expectCodes(t, "x = ('one '\n     'two')", checker.DefaultConfig())
}

// ====== multiline strings ======

func TestMultilineWrongQuote(t *testing.T) {
	expectCodes(t, "x = \"\"\"a\nb\"\"\"", checker.DefaultConfig(), diag.MultilineUseSingle)
}

func TestMultilineCorrectQuote(t *testing.T) {
	expectCodes(t, "x = '''a\nb'''", checker.DefaultConfig())
}

// ====== docstrings ======

func TestDocstringCorrect(t *testing.T) {
	expectCodes(t, `"""doc"""`, checker.DefaultConfig())
}

func TestDocstringWrongQuote(t *testing.T) {
	expectCodes(t, `'''doc'''`, checker.DefaultConfig(), diag.DocstringUseDouble)
}

func TestDocstringNotTriple(t *testing.T) {
	expectCodes(t, `"doc"`, checker.DefaultConfig(), diag.DocstringTripleDouble)
}

func TestDocstringWrongQuoteAndNotTriple(t *testing.T) {
	// Both defects fire independently.
	expectCodes(t, `'doc'`, checker.DefaultConfig(),
		diag.DocstringUseDouble, diag.DocstringTripleDouble)
}

func TestFunctionDocstringChecked(t *testing.T) {
	input := "def f():\n" +
		"    '''doc'''\n"
	expectCodes(t, input, checker.DefaultConfig(), diag.DocstringUseDouble)
}

func TestDocstringSinglePreference(t *testing.T) {
	cfg := checker.DefaultConfig()
	cfg.DocstringQuote = literal.Single
	expectCodes(t, `"""doc"""`, cfg, diag.DocstringUseSingle)
}

// ====== messages ======

func TestMessageIncludesName(t *testing.T) {
	reporter := runCheck(t, `x = "value"`, checker.DefaultConfig())
	if len(reporter.diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(reporter.diagnostics))
	}
	msg := reporter.diagnostics[0].Message
	if !strings.HasSuffix(msg, " (litlint)") {
		t.Errorf("expected name suffix, got %q", msg)
	}
	if !strings.HasPrefix(msg, "Use single quotes for string") {
		t.Errorf("unexpected message text %q", msg)
	}
}

func TestMessageWithoutName(t *testing.T) {
	cfg := checker.DefaultConfig()
	cfg.IncludeName = false
	reporter := runCheck(t, `x = "value"`, cfg)
	if len(reporter.diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(reporter.diagnostics))
	}
	if got := reporter.diagnostics[0].Message; got != "Use single quotes for string" {
		t.Errorf("unexpected message %q", got)
	}
}
