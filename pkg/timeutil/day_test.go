package timeutil

import (
	"testing"
	"time"
)

func TestDayKeyIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2026, 8, 26, 0, 1, 0, 0, time.Local)
	night := time.Date(2026, 8, 26, 23, 59, 0, 0, time.Local)

	if DayKey(morning) != DayKey(night) {
		t.Fatalf("same day must map to same key: %s vs %s", DayKey(morning), DayKey(night))
	}
	if got := DayKey(morning); got != "2026-08-26" {
		t.Fatalf("expected 2026-08-26, got %s", got)
	}
}

func TestPrevDayKeyCrossesMonths(t *testing.T) {
	got, err := PrevDayKey("2026-03-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2026-02-28" {
		t.Fatalf("expected 2026-02-28, got %s", got)
	}

	if _, err := PrevDayKey("not a day"); err == nil {
		t.Fatalf("expected error for malformed key")
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 8, 26, 1, 0, 0, 0, time.Local)
	b := time.Date(2026, 8, 26, 22, 0, 0, 0, time.Local)
	c := time.Date(2026, 8, 27, 1, 0, 0, 0, time.Local)

	if !SameDay(a, b) {
		t.Fatalf("expected same day")
	}
	if SameDay(a, c) {
		t.Fatalf("expected different days")
	}
}
