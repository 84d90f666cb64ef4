package diag_test

import (
	"testing"

	"litlint/internal/diag"
	"litlint/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	bag := diag.NewBag(2)

	if !bag.Add(diag.NewWarning(diag.QuoteUseSingle, span(0, 0, 1), "one")) {
		t.Error("first add should succeed")
	}
	if !bag.Add(diag.NewWarning(diag.QuoteUseSingle, span(0, 1, 2), "two")) {
		t.Error("second add should succeed")
	}
	if bag.Add(diag.NewWarning(diag.QuoteUseSingle, span(0, 2, 3), "three")) {
		t.Error("add past the limit should report false")
	}
	if bag.Len() != 2 {
		t.Errorf("expected 2 items, got %d", bag.Len())
	}
}

func TestBagHasErrorsAndWarnings(t *testing.T) {
	bag := diag.NewBag(10)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Error("empty bag must report no errors or warnings")
	}

	bag.Add(diag.NewWarning(diag.RawRemove, span(0, 0, 1), "w"))
	if bag.HasErrors() {
		t.Error("warning must not count as error")
	}
	if !bag.HasWarnings() {
		t.Error("expected HasWarnings after a warning")
	}

	bag.Add(diag.NewError(diag.UnparseableSource, span(0, 0, 1), "e"))
	if !bag.HasErrors() {
		t.Error("expected HasErrors after an error")
	}
}

func TestBagSortOrder(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.NewWarning(diag.RawAdd, span(1, 5, 9), "later file"))
	bag.Add(diag.NewWarning(diag.RawRemove, span(0, 10, 12), "later offset"))
	bag.Add(diag.NewWarning(diag.QuoteUseSingle, span(0, 3, 8), "first"))
	bag.Add(diag.NewError(diag.UnparseableSource, span(0, 3, 8), "same span, higher severity"))

	bag.Sort()

	items := bag.Items()
	// Same span: the error outranks the warning.
	if items[0].Code != diag.UnparseableSource {
		t.Errorf("expected error first, got %v", items[0].Code)
	}
	if items[1].Code != diag.QuoteUseSingle {
		t.Errorf("expected quote warning second, got %v", items[1].Code)
	}
	if items[2].Code != diag.RawRemove {
		t.Errorf("expected later offset third, got %v", items[2].Code)
	}
	if items[3].Code != diag.RawAdd {
		t.Errorf("expected later file last, got %v", items[3].Code)
	}
}

func TestBagDedup(t *testing.T) {
	bag := diag.NewBag(10)
	d := diag.NewWarning(diag.QuoteUseSingle, span(0, 4, 11), "dup")
	bag.Add(d)
	bag.Add(d)
	bag.Add(diag.NewWarning(diag.QuoteUseSingle, span(0, 20, 25), "other span"))

	bag.Dedup()
	if bag.Len() != 2 {
		t.Errorf("expected 2 after dedup, got %d", bag.Len())
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := diag.NewBag(1)
	a.Add(diag.NewWarning(diag.RawRemove, span(0, 0, 1), "a"))

	b := diag.NewBag(1)
	b.Add(diag.NewWarning(diag.RawAdd, span(0, 2, 3), "b"))

	a.Merge(b)
	if a.Len() != 2 {
		t.Errorf("expected merged length 2, got %d", a.Len())
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code diag.Code
		id   string
	}{
		{diag.QuoteUseSingle, "LIT001"},
		{diag.ContinuationUseSingle, "LIT016"},
		{diag.RawRemove, "LIT101"},
		{diag.RawAdd, "LIT102"},
		{diag.UnparseableSource, "LIT900"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.id {
			t.Errorf("%v: expected %s, got %s", tt.code, tt.id, got)
		}
	}
}

func TestDedupReporter(t *testing.T) {
	bag := diag.NewBag(10)
	r := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	sp := span(0, 4, 11)
	r.Report(diag.QuoteUseSingle, diag.SevWarning, sp, "msg", nil)
	r.Report(diag.QuoteUseSingle, diag.SevWarning, sp, "msg", nil)
	r.Report(diag.QuoteUseSingle, diag.SevWarning, sp, "different msg", nil)

	if bag.Len() != 2 {
		t.Errorf("expected 2 unique diagnostics, got %d", bag.Len())
	}
}
