package timeutil

import (
	"testing"
	"time"
)

func TestParseWindow(t *testing.T) {
	cases := []struct {
		in        string
		want      time.Duration
		canonical string
	}{
		{"3d", 3 * 24 * time.Hour, "3d"},
		{"1w", 7 * 24 * time.Hour, "1w"},
		{"12h", 12 * time.Hour, "12h"},
		{"1w2d", 9 * 24 * time.Hour, "1w2d"},
		{"2D", 2 * 24 * time.Hour, "2d"},
		{" 1w ", 7 * 24 * time.Hour, "1w"},
		{"", 7 * 24 * time.Hour, "1w"},
	}
	for _, tc := range cases {
		d, canonical, err := ParseWindow(tc.in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.in, err)
		}
		if d != tc.want {
			t.Fatalf("%q: expected %v, got %v", tc.in, tc.want, d)
		}
		if canonical != tc.canonical {
			t.Fatalf("%q: expected canonical %q, got %q", tc.in, tc.canonical, canonical)
		}
	}
}

func TestParseWindowRejectsGarbage(t *testing.T) {
	for _, in := range []string{"abc", "3x", "d3", "-1d", "0d"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected %q to fail", in)
		}
	}
}

func TestFormatWindow(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{7 * 24 * time.Hour, "1w"},
		{26 * time.Hour, "1d2h"},
		{8 * 24 * time.Hour, "1w1d"},
		{0, "0h"},
	}
	for _, tc := range cases {
		if got := FormatWindow(tc.in); got != tc.want {
			t.Fatalf("%v: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
