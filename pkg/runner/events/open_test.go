package events

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/record"
)

func TestCalendarURLPrefersExtractedLink(t *testing.T) {
	r := record.Record{CalendarLink: "https://calendar.example.com/e/42"}
	if got := CalendarURL(r); got != "https://calendar.example.com/e/42" {
		t.Fatalf("expected extracted link, got %q", got)
	}
}

func TestCalendarURLTemplate(t *testing.T) {
	start := time.Date(2026, 4, 1, 13, 0, 0, 0, time.UTC)
	r := record.Record{
		Title:     "Quarterly review",
		Summary:   "Numbers and plans",
		Location:  "Room 4",
		Timestamp: start,
		End:       start.Add(90 * time.Minute),
	}

	got := CalendarURL(r)
	if !strings.HasPrefix(got, "https://calendar.google.com/calendar/render?") {
		t.Fatalf("expected template URL, got %q", got)
	}

	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	q := u.Query()
	if q.Get("action") != "TEMPLATE" {
		t.Fatalf("expected template action, got %q", q.Get("action"))
	}
	if q.Get("text") != "Quarterly review" {
		t.Fatalf("expected title, got %q", q.Get("text"))
	}
	if q.Get("dates") != "20260401T130000Z/20260401T143000Z" {
		t.Fatalf("unexpected dates %q", q.Get("dates"))
	}
	if q.Get("location") != "Room 4" {
		t.Fatalf("expected location, got %q", q.Get("location"))
	}
}
