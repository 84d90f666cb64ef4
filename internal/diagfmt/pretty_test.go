package diagfmt_test

import (
	"strings"
	"testing"

	"litlint/internal/diag"
	"litlint/internal/diagfmt"
	"litlint/internal/source"
)

func makeBag(t *testing.T, content string) (*diag.Bag, *source.FileSet, source.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("sample.py", []byte(content))
	return diag.NewBag(16), fs, id
}

func TestPrettyBasicLayout(t *testing.T) {
	bag, fs, id := makeBag(t, "x = \"value\"\n")
	bag.Add(diag.NewWarning(diag.QuoteUseSingle,
		source.Span{File: id, Start: 4, End: 11},
		"Use single quotes for string"))

	var out strings.Builder
	diagfmt.Pretty(&out, bag, fs, diagfmt.PrettyOpts{})

	got := out.String()
	if !strings.Contains(got, "sample.py:1:5: WARNING LIT001: Use single quotes for string") {
		t.Errorf("missing header line in output:\n%s", got)
	}
	if !strings.Contains(got, "x = \"value\"") {
		t.Errorf("missing context line in output:\n%s", got)
	}
	if !strings.Contains(got, "    ^~~~~~") {
		t.Errorf("missing caret underline in output:\n%s", got)
	}
}

func TestPrettyNoContext(t *testing.T) {
	bag, fs, id := makeBag(t, "x = \"value\"\n")
	bag.Add(diag.NewWarning(diag.QuoteUseSingle,
		source.Span{File: id, Start: 4, End: 11}, "msg"))

	var out strings.Builder
	diagfmt.Pretty(&out, bag, fs, diagfmt.PrettyOpts{NoContext: true})

	if got := out.String(); strings.Contains(got, "^") {
		t.Errorf("expected no caret with NoContext:\n%s", got)
	}
}

func TestPrettySecondLinePosition(t *testing.T) {
	bag, fs, id := makeBag(t, "ok = 1\nx = \"value\"\n")
	// "value" literal starts at byte 11, line 2 column 5.
	bag.Add(diag.NewWarning(diag.QuoteUseSingle,
		source.Span{File: id, Start: 11, End: 18}, "msg"))

	var out strings.Builder
	diagfmt.Pretty(&out, bag, fs, diagfmt.PrettyOpts{})

	if got := out.String(); !strings.Contains(got, "sample.py:2:5:") {
		t.Errorf("expected position 2:5 in output:\n%s", got)
	}
}

func TestPrettyNotes(t *testing.T) {
	bag, fs, id := makeBag(t, "x = \"value\"\n")
	d := diag.NewWarning(diag.QuoteUseSingle,
		source.Span{File: id, Start: 4, End: 11}, "main message")
	d = d.WithNote(source.Span{File: id, Start: 0, End: 1}, "assigned here")
	bag.Add(d)

	var out strings.Builder
	diagfmt.Pretty(&out, bag, fs, diagfmt.PrettyOpts{ShowNotes: true})
	if !strings.Contains(out.String(), "assigned here") {
		t.Errorf("expected note text in output:\n%s", out.String())
	}

	out.Reset()
	diagfmt.Pretty(&out, bag, fs, diagfmt.PrettyOpts{ShowNotes: false})
	if strings.Contains(out.String(), "assigned here") {
		t.Errorf("did not expect note text without ShowNotes:\n%s", out.String())
	}
}
