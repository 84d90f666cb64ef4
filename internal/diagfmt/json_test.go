package diagfmt_test

import (
	"encoding/json"
	"strings"
	"testing"

	"litlint/internal/diag"
	"litlint/internal/diagfmt"
	"litlint/internal/source"
)

func TestJSONOutput(t *testing.T) {
	bag, fs, id := makeBag(t, "x = \"value\"\n")
	bag.Add(diag.NewWarning(diag.QuoteUseSingle,
		source.Span{File: id, Start: 4, End: 11},
		"Use single quotes for string"))

	var out strings.Builder
	err := diagfmt.JSON(&out, bag, fs, diagfmt.JSONOpts{IncludePositions: true})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var decoded diagfmt.DiagnosticsOutput
	if err := json.Unmarshal([]byte(out.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.Count != 1 || len(decoded.Diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %+v", decoded)
	}
	d := decoded.Diagnostics[0]
	if d.Code != "LIT001" {
		t.Errorf("expected code LIT001, got %s", d.Code)
	}
	if d.Severity != "WARNING" {
		t.Errorf("expected severity WARNING, got %s", d.Severity)
	}
	if d.Location.File != "sample.py" {
		t.Errorf("expected file sample.py, got %s", d.Location.File)
	}
	if d.Location.StartByte != 4 || d.Location.EndByte != 11 {
		t.Errorf("unexpected byte range %d-%d", d.Location.StartByte, d.Location.EndByte)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 5 {
		t.Errorf("unexpected position %d:%d", d.Location.StartLine, d.Location.StartCol)
	}
}

func TestJSONWithoutPositions(t *testing.T) {
	bag, fs, id := makeBag(t, "x = \"value\"\n")
	bag.Add(diag.NewWarning(diag.QuoteUseSingle,
		source.Span{File: id, Start: 4, End: 11}, "msg"))

	var out strings.Builder
	if err := diagfmt.JSON(&out, bag, fs, diagfmt.JSONOpts{}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if strings.Contains(out.String(), "start_line") {
		t.Errorf("positions should be omitted:\n%s", out.String())
	}
}

func TestJSONMaxTruncatesOutput(t *testing.T) {
	bag, fs, id := makeBag(t, "x = \"a\"\ny = \"b\"\n")
	bag.Add(diag.NewWarning(diag.QuoteUseSingle, source.Span{File: id, Start: 4, End: 7}, "one"))
	bag.Add(diag.NewWarning(diag.QuoteUseSingle, source.Span{File: id, Start: 12, End: 15}, "two"))

	output := diagfmt.BuildDiagnosticsOutput(bag, fs, diagfmt.JSONOpts{Max: 1})
	if output.Count != 1 {
		t.Errorf("expected truncated count 1, got %d", output.Count)
	}
	if bag.Len() != 2 {
		t.Error("truncation must not modify the bag")
	}
}
