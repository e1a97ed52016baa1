// Package timeutil derives the calendar-day keys the journal is
// organized around.
package timeutil

import "time"

const layoutISO = "2006-01-02"

// DayKey renders t as a day key in local time, so the same physical
// day always maps to the same key regardless of time-of-day.
func DayKey(t time.Time) string {
	return t.Local().Format(layoutISO)
}

// ParseDayKey parses a day key back into a local midnight time.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(layoutISO, key, time.Local)
}

// PrevDayKey returns the key of the calendar day before the given key.
func PrevDayKey(key string) (string, error) {
	t, err := ParseDayKey(key)
	if err != nil {
		return "", err
	}
	return DayKey(t.AddDate(0, 0, -1)), nil
}

// SameDay reports whether two instants fall on the same local day.
func SameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}
