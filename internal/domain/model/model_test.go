package model

import (
	"testing"
	"time"
)

func TestDayWindowBoundaries(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	window := DayWindow(time.Date(2024, 3, 1, 15, 30, 0, 0, loc), loc)

	cases := []struct {
		name string
		ts   time.Time
		want bool
	}{
		{"start of day", time.Date(2024, 3, 1, 0, 0, 0, 0, loc), true},
		{"last millisecond", time.Date(2024, 3, 1, 23, 59, 59, int(999*time.Millisecond), loc), true},
		{"one millisecond before", time.Date(2024, 2, 29, 23, 59, 59, int(999*time.Millisecond), loc), false},
		{"next midnight", time.Date(2024, 3, 2, 0, 0, 0, 0, loc), false},
		{"same instant in utc", time.Date(2024, 2, 29, 21, 0, 0, 0, time.UTC), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := window.Contains(tc.ts); got != tc.want {
				t.Fatalf("expected %v for %s, got %v", tc.want, tc.ts, got)
			}
		})
	}
}

func TestDayWindowUsesLocationDate(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	window := DayWindow(time.Date(2024, 3, 2, 2, 0, 0, 0, time.UTC), loc)
	if got := window.From.Format(DayLayout); got != "2024-03-01" {
		t.Fatalf("expected window to start on 2024-03-01, got %s", got)
	}
	if window.To.Sub(window.From) != 24*time.Hour {
		t.Fatalf("unexpected window length %s", window.To.Sub(window.From))
	}
}
