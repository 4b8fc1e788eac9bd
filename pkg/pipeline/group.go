package pipeline

import (
	"sort"
	"time"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/record"
)

const dayFormat = "January 2, 2006"

// Group is one calendar day of records. Records keep the order they
// arrived in from the filter.
type Group struct {
	Key     string
	Day     time.Time
	Records []record.Record
}

// Grouped is the result of day grouping. Skipped holds records whose
// timestamp never normalized to a usable value, callers report them
// instead of rendering an invalid-date bucket.
type Grouped struct {
	Groups  []Group
	Skipped []record.Record
}

// Count is the total number of grouped records.
func (g Grouped) Count() int {
	n := 0
	for _, grp := range g.Groups {
		n += len(grp.Records)
	}
	return n
}

// GroupByDay buckets records by the calendar day of their timestamp. Group
// keys iterate in ascending chronological order for every domain.
func GroupByDay(in []record.Record) Grouped {
	var out Grouped
	buckets := make(map[string]int)
	for _, r := range in {
		if r.Timestamp.IsZero() {
			out.Skipped = append(out.Skipped, r)
			continue
		}
		day := r.Timestamp.Local()
		day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		key := day.Format(dayFormat)
		idx, ok := buckets[key]
		if !ok {
			idx = len(out.Groups)
			buckets[key] = idx
			out.Groups = append(out.Groups, Group{Key: key, Day: day})
		}
		out.Groups[idx].Records = append(out.Groups[idx].Records, r)
	}
	sort.SliceStable(out.Groups, func(i, j int) bool {
		return out.Groups[i].Day.Before(out.Groups[j].Day)
	})
	return out
}
