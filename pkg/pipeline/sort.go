package pipeline

import (
	"sort"
	"strings"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/record"
)

// SortKey selects the within-group comparator.
type SortKey string

const (
	SortDate    SortKey = "date"
	SortSender  SortKey = "sender"
	SortSubject SortKey = "subject"
	SortType    SortKey = "type"
)

// ParseSortKey falls back to date ordering for unknown keys.
func ParseSortKey(v string) SortKey {
	switch SortKey(v) {
	case SortDate, SortSender, SortSubject, SortType:
		return SortKey(v)
	}
	return SortDate
}

// Sort returns a sorted copy. Date order is newest first, the string keys
// sort lexicographically ascending. The sort is stable, equal records keep
// their relative order.
func Sort(in []record.Record, key SortKey) []record.Record {
	out := make([]record.Record, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		switch key {
		case SortSender:
			return less(out[i].Sender, out[j].Sender)
		case SortSubject:
			return less(out[i].Title, out[j].Title)
		case SortType:
			return less(string(out[i].Type), string(out[j].Type))
		default:
			return out[i].Timestamp.After(out[j].Timestamp)
		}
	})
	return out
}

// SortAscending is Sort with oldest-first date order, used by the calendar
// views where the day reads forward in time.
func SortAscending(in []record.Record, key SortKey) []record.Record {
	if key != SortDate {
		return Sort(in, key)
	}
	out := make([]record.Record, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

func less(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}
