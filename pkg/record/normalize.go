package record

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/client"
)

const (
	fallbackSubject     = "No Subject"
	fallbackEventTitle  = "Untitled Event"
	fallbackSummary     = "No summary available"
	fallbackDescription = "No description available"
)

// timeLayouts covers the timestamp shapes the backend has produced. The
// processor emits RFC3339, older records carry bare datetimes or dates.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseWhen parses a backend timestamp. The zero time with ok=false means
// the value was absent or unparseable.
func ParseWhen(v string) (time.Time, bool) {
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Normalize converts one raw backend record into the canonical view model
// for the given domain. It is total: missing or malformed fields become
// domain defaults, it never fails.
func Normalize(e client.Email, d Domain) Record {
	return NormalizeAt(e, d, time.Now())
}

// NormalizeAt is Normalize with an explicit wall clock, used by the event
// domain's missing-timestamp fallback.
func NormalizeAt(e client.Email, d Domain, now time.Time) Record {
	raw := e
	r := Record{
		ID:             e.ID.String(),
		Domain:         d,
		Sender:         e.Sender,
		Priority:       ParsePriority(e.Priority),
		Category:       ParseCategory(e.Category),
		Tags:           e.Tags,
		ActionRequired: e.ActionRequired,
		FollowUp:       e.FollowUp,
		Read:           e.Read,
		Starred:        e.Starred,
		SpamScore:      e.SpamScore,
		ProcessingTime: e.ProcessingTime,
		Raw:            &raw,
	}
	if r.ID == "" {
		r.ID = syntheticID(e)
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}

	if d == DomainEvent {
		normalizeEvent(&r, &raw, now)
	} else {
		normalizeMail(&r, &raw, d)
	}
	return r
}

func normalizeEvent(r *Record, e *client.Email, now time.Time) {
	details := e.Details()
	if details == nil {
		details = &client.EventData{}
	}
	r.Title = firstNonEmpty(details.Title, e.Subject, fallbackEventTitle)
	r.Summary = firstNonEmpty(details.Description, e.AISummary, e.Summary, fallbackDescription)
	r.Location = details.Location
	r.Attendees = details.Attendees
	if r.Attendees == nil {
		r.Attendees = []string{}
	}
	r.CalendarLink = details.CalendarLink
	r.Status = ParseStatus(details.Status)
	if details.Priority != "" {
		r.Priority = ParsePriority(details.Priority)
	}
	if details.Category != "" {
		r.Category = ParseCategory(details.Category)
	}
	r.Type = TypeEvent

	// Events must always land in a day group, so an unusable start time
	// falls back to the current wall clock.
	start, ok := firstWhen(details.StartTime, e.Date, e.ProcessedAt)
	if !ok {
		start = now
	}
	r.Timestamp = start
	if end, ok := ParseWhen(details.EndTime); ok {
		r.End = end
	} else {
		r.End = start.Add(time.Hour)
	}
}

func normalizeMail(r *Record, e *client.Email, d Domain) {
	r.Title = firstNonEmpty(e.Subject, e.Title, fallbackSubject)
	r.Summary = firstNonEmpty(e.AISummary, e.Summary, fallbackSummary)
	if d == DomainGist && e.SenderName != "" {
		r.Sender = e.SenderName
	}
	switch {
	case e.EventExtracted:
		r.Type = TypeEvent
	case e.SpamDetected:
		r.Type = TypeSpam
	default:
		r.Type = TypeRegular
	}

	// Mails with no usable date keep the zero timestamp, the grouping
	// engine excludes and reports them instead of inventing a day.
	if t, ok := firstWhen(e.Date, e.ProcessedAt); ok {
		r.Timestamp = t
	}
}

// FromHistory selects the history records relevant to the domain and
// normalizes them, preserving backend order.
func FromHistory(emails []client.Email, d Domain) []Record {
	return fromHistoryAt(emails, d, time.Now())
}

func fromHistoryAt(emails []client.Email, d Domain, now time.Time) []Record {
	out := make([]Record, 0, len(emails))
	for _, e := range emails {
		switch d {
		case DomainAgenda:
			if e.EventExtracted || e.SpamDetected {
				continue
			}
		case DomainEvent:
			if !e.EventExtracted || e.SpamDetected {
				continue
			}
		}
		out = append(out, NormalizeAt(e, d, now))
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstWhen(values ...string) (time.Time, bool) {
	for _, v := range values {
		if t, ok := ParseWhen(v); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

func syntheticID(e client.Email) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(e.Subject))
	_, _ = h.Write([]byte(e.Sender))
	_, _ = h.Write([]byte(e.Date))
	return fmt.Sprintf("rec-%08x", h.Sum32())
}
