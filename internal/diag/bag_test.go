package diag

import (
	"testing"

	"owl/internal/source"
)

func sp(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagAddLimit(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(NewError(SemaTypeMismatch, sp(0, 0, 1), "first")) {
		t.Fatalf("first Add returned false")
	}
	if !bag.Add(NewError(SemaTypeMismatch, sp(0, 1, 2), "second")) {
		t.Fatalf("second Add returned false")
	}
	if bag.Add(NewError(SemaTypeMismatch, sp(0, 2, 3), "third")) {
		t.Fatalf("Add above the cap returned true")
	}
	if bag.Len() != 2 {
		t.Errorf("Len() = %d, want 2", bag.Len())
	}
	if bag.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", bag.Dropped())
	}
	if bag.Cap() != 2 {
		t.Errorf("Cap() = %d, want 2", bag.Cap())
	}
}

func TestBagSort(t *testing.T) {
	bag := NewBag(16)
	// специально в перемешанном порядке
	bag.Add(NewWarning(WarnUnusedVariable, sp(0, 5, 6), "w same span"))
	bag.Add(NewError(SynUnexpectedToken, sp(1, 0, 1), "second file"))
	bag.Add(NewError(SemaUndefinedVariable, sp(0, 5, 6), "e same span"))
	bag.Add(NewError(SemaTypeMismatch, sp(0, 5, 6), "e smaller code"))
	bag.Add(NewError(SemaTypeMismatch, sp(0, 0, 3), "earlier start"))
	bag.Add(NewError(SemaTypeMismatch, sp(0, 0, 1), "shorter span"))

	bag.Sort()

	want := []string{
		"shorter span",  // file 0, [0,1)
		"earlier start", // file 0, [0,3)
		"e smaller code",
		"e same span",
		"w same span", // warning после ошибок на том же span
		"second file",
	}
	items := bag.Items()
	if len(items) != len(want) {
		t.Fatalf("Len() = %d, want %d", len(items), len(want))
	}
	for i, msg := range want {
		if items[i].Message != msg {
			t.Errorf("items[%d].Message = %q, want %q", i, items[i].Message, msg)
		}
	}
}

func TestBagSortStable(t *testing.T) {
	bag := NewBag(4)
	bag.Add(NewError(SemaTypeMismatch, sp(0, 0, 1), "first inserted"))
	bag.Add(NewError(SemaTypeMismatch, sp(0, 0, 1), "second inserted"))
	bag.Sort()

	items := bag.Items()
	if items[0].Message != "first inserted" || items[1].Message != "second inserted" {
		t.Errorf("equal-key diagnostics reordered: %q, %q", items[0].Message, items[1].Message)
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(16)
	dup := NewError(SemaUndefinedVariable, sp(0, 4, 5), "Undefined variable: 'x'")
	bag.Add(dup)
	bag.Add(dup)
	// тот же код и span, но другое сообщение — остаётся
	bag.Add(NewError(SemaUndefinedVariable, sp(0, 4, 5), "Undefined variable: 'y'"))
	// диагностики без span не дедуплицируются
	bag.Add(NewWarning(WarnUnusedFunction, source.Span{}, "whole-file notice"))
	bag.Add(NewWarning(WarnUnusedFunction, source.Span{}, "whole-file notice"))

	bag.Dedup()

	if bag.Len() != 4 {
		t.Fatalf("Len() after Dedup = %d, want 4", bag.Len())
	}
	got := make([]string, 0, bag.Len())
	for _, d := range bag.Items() {
		got = append(got, d.Message)
	}
	want := []string{
		"Undefined variable: 'x'",
		"Undefined variable: 'y'",
		"whole-file notice",
		"whole-file notice",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("items[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBagMerge(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(SemaTypeMismatch, sp(0, 0, 1), "a1"))
	a.Add(NewError(SemaTypeMismatch, sp(0, 1, 2), "overflow")) // dropped

	b := NewBag(2)
	b.Add(NewWarning(WarnUnusedVariable, sp(0, 2, 3), "b1"))
	b.Add(NewWarning(WarnUnusedVariable, sp(0, 3, 4), "b2"))

	a.Merge(b)

	if a.Len() != 3 {
		t.Errorf("Len() after Merge = %d, want 3", a.Len())
	}
	if a.Cap() < 3 {
		t.Errorf("Cap() after Merge = %d, want >= 3", a.Cap())
	}
	if a.Dropped() != 1 {
		t.Errorf("Dropped() after Merge = %d, want 1", a.Dropped())
	}
	a.Merge(nil) // no-op
	if a.Len() != 3 {
		t.Errorf("Merge(nil) changed Len() to %d", a.Len())
	}
}

func TestBagCounts(t *testing.T) {
	bag := NewBag(8)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatalf("empty bag reports diagnostics")
	}

	bag.Add(NewWarning(WarnUnusedVariable, sp(0, 0, 1), "w"))
	if bag.HasErrors() {
		t.Errorf("HasErrors() = true for warning-only bag")
	}
	if !bag.HasWarnings() {
		t.Errorf("HasWarnings() = false for warning-only bag")
	}

	bag.Add(NewError(SemaTypeMismatch, sp(0, 1, 2), "e"))
	bag.Add(NewError(SemaUndefinedVariable, sp(0, 2, 3), "e2"))
	if !bag.HasErrors() {
		t.Errorf("HasErrors() = false after adding errors")
	}
	if got := bag.ErrorCount(); got != 2 {
		t.Errorf("ErrorCount() = %d, want 2", got)
	}
	if got := bag.WarningCount(); got != 1 {
		t.Errorf("WarningCount() = %d, want 1", got)
	}
}
