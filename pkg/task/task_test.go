package task

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseCategory(t *testing.T) {
	if c, ok := ParseCategory("personal"); !ok || c != Personal {
		t.Fatalf("expected personal, got %v ok=%v", c, ok)
	}
	if c, ok := ParseCategory("professional"); !ok || c != Professional {
		t.Fatalf("expected professional, got %v ok=%v", c, ok)
	}
	if _, ok := ParseCategory("WORK"); ok {
		t.Fatalf("unknown category must not parse")
	}
}

func TestCountsTally(t *testing.T) {
	e := DailyEntry{
		Date: "2026-08-26",
		Tasks: []Task{
			{Category: Personal, Completed: true},
			{Category: Professional},
			{Category: Professional},
		},
	}

	var c Counts
	c.Tally(e)
	if c.Total != 3 || c.Completed != 1 || c.Personal != 1 || c.Professional != 2 {
		t.Fatalf("unexpected counts: %+v", c)
	}
}

func TestTimestampJSON(t *testing.T) {
	ts := Timestamp{Time: time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC)}

	b, err := json.Marshal(&ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Timestamp
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(ts.Time) {
		t.Fatalf("expected %v, got %v", ts, back)
	}

	// A zero timestamp round-trips through the empty string.
	var zero Timestamp
	b, err = json.Marshal(&zero)
	if err != nil {
		t.Fatalf("marshal zero: %v", err)
	}
	if string(b) != `""` {
		t.Fatalf("expected empty string, got %s", b)
	}
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal zero: %v", err)
	}
	if !back.IsZero() {
		t.Fatalf("expected zero time, got %v", back)
	}
}

func TestNewTask(t *testing.T) {
	created := Timestamp{Time: time.Now()}
	a := New("call the dentist", Personal, created)
	b := New("call the dentist", Personal, created)

	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("ids must be fresh and unique: %q vs %q", a.ID, b.ID)
	}
	if a.Completed || a.Priority != 0 {
		t.Fatalf("new tasks start open and unranked: %+v", a)
	}
}
