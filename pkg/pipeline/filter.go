// Package pipeline turns normalized records into render-ready sequences:
// predicate filtering, day grouping, and comparator sorting. Every function
// is pure and order-stable.
package pipeline

import (
	"strings"
	"time"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/record"
)

// Predicate is a pure boolean test over one record.
type Predicate func(*record.Record) bool

// Apply keeps the records matching every predicate, preserving input order.
func Apply(in []record.Record, preds ...Predicate) []record.Record {
	out := make([]record.Record, 0, len(in))
	for i := range in {
		keep := true
		for _, p := range preds {
			if !p(&in[i]) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, in[i])
		}
	}
	return out
}

// Field extracts one searchable string from a record.
type Field func(*record.Record) string

var (
	TitleField    Field = func(r *record.Record) string { return r.Title }
	SenderField   Field = func(r *record.Record) string { return r.Sender }
	SummaryField  Field = func(r *record.Record) string { return r.Summary }
	LocationField Field = func(r *record.Record) string { return r.Location }
)

// SearchFields returns the field set each domain matches search terms
// against.
func SearchFields(d record.Domain) []Field {
	if d == record.DomainEvent {
		return []Field{TitleField, SummaryField, LocationField}
	}
	return []Field{TitleField, SenderField, SummaryField}
}

// Search matches case-insensitively against any of the given fields. The
// empty term matches everything.
func Search(term string, fields ...Field) Predicate {
	needle := strings.ToLower(strings.TrimSpace(term))
	return func(r *record.Record) bool {
		if needle == "" {
			return true
		}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f(r)), needle) {
				return true
			}
		}
		return false
	}
}

// All is the filter value that disables category/type/focus filtering.
const All = "all"

// Category keeps records whose category equals the active filter.
func Category(active string) Predicate {
	return func(r *record.Record) bool {
		return active == All || active == "" || string(r.Category) == active
	}
}

// Type keeps processed mails of the active type. The plural filter names
// used by the view ("events", "spam", "regular") are accepted as-is.
func Type(active string) Predicate {
	want := strings.TrimSuffix(active, "s")
	return func(r *record.Record) bool {
		return active == All || active == "" || string(r.Type) == want
	}
}

// Agenda focus filters.
const (
	FocusImportant      = "important"
	FocusActionRequired = "action_required"
	FocusFollowUp       = "follow_up"
)

// Focus keeps agenda items matching the active focus.
func Focus(active string) Predicate {
	return func(r *record.Record) bool {
		switch active {
		case All, "":
			return true
		case FocusImportant:
			return r.Priority == record.PriorityHigh
		case FocusActionRequired:
			return r.ActionRequired
		case FocusFollowUp:
			return r.FollowUp
		}
		return true
	}
}

// Temporal windows for calendar views.
const (
	WindowToday    = "today"
	WindowThisWeek = "this_week"
	WindowUpcoming = "upcoming"
)

// Window keeps records whose timestamp falls in the selected window
// relative to now. "this_week" spans now through now+7d inclusive.
func Window(active string, now time.Time) Predicate {
	return func(r *record.Record) bool {
		switch active {
		case All, "":
			return true
		case WindowToday:
			return sameDay(r.Timestamp, now)
		case WindowThisWeek:
			end := now.Add(7 * 24 * time.Hour)
			return !r.Timestamp.Before(now) && !r.Timestamp.After(end)
		case WindowUpcoming:
			return r.Timestamp.After(now)
		}
		return true
	}
}

// Horizon keeps records between now and now+d. It backs the --window flag,
// a custom variant of "this_week".
func Horizon(d time.Duration, now time.Time) Predicate {
	return func(r *record.Record) bool {
		end := now.Add(d)
		return !r.Timestamp.Before(now) && !r.Timestamp.After(end)
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
