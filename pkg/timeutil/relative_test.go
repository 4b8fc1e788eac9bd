package timeutil

import (
	"testing"
	"time"
)

func TestRelative(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-10 * time.Minute), "Just now"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-26 * time.Hour), "1d ago"},
		{now.Add(-49 * time.Hour), "2d ago"},
		{time.Time{}, "Just now"},
		{now.Add(time.Hour), "Just now"},
	}
	for _, tc := range cases {
		if got := Relative(tc.t, now); got != tc.want {
			t.Fatalf("%v: expected %q, got %q", tc.t, tc.want, got)
		}
	}
}

func TestClockRange(t *testing.T) {
	start := time.Date(2026, 3, 14, 15, 4, 0, 0, time.Local)
	end := start.Add(time.Hour)

	if got := ClockRange(start, end); got != "15:04 - 16:04" {
		t.Fatalf("expected span, got %q", got)
	}
	if got := ClockRange(start, time.Time{}); got != "15:04" {
		t.Fatalf("expected start only, got %q", got)
	}
	if got := ClockRange(time.Time{}, end); got != "Time TBD" {
		t.Fatalf("expected placeholder, got %q", got)
	}
}
