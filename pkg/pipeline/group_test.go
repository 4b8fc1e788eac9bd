package pipeline

import (
	"testing"
	"time"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/record"
)

func at(id string, t time.Time) record.Record {
	return record.Record{ID: id, Timestamp: t}
}

func TestGroupByDayAscendingKeys(t *testing.T) {
	d1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	d2 := time.Date(2026, 3, 12, 9, 0, 0, 0, time.Local)
	d3 := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)

	g := GroupByDay([]record.Record{at("c", d3), at("a", d1), at("b", d2)})
	if len(g.Groups) != 3 {
		t.Fatalf("expected 3 day groups, got %d", len(g.Groups))
	}
	for i := 1; i < len(g.Groups); i++ {
		if !g.Groups[i-1].Day.Before(g.Groups[i].Day) {
			t.Fatalf("expected ascending day order, got %v before %v",
				g.Groups[i-1].Day, g.Groups[i].Day)
		}
	}
}

func TestGroupByDayComplete(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	in := []record.Record{
		at("1", day.Add(9*time.Hour)),
		at("2", day.Add(15*time.Hour)),
		at("3", day.Add(24*time.Hour+9*time.Hour)),
	}
	g := GroupByDay(in)
	if g.Count()+len(g.Skipped) != len(in) {
		t.Fatalf("expected every record grouped or skipped, got %d + %d of %d",
			g.Count(), len(g.Skipped), len(in))
	}
	if len(g.Groups) != 2 {
		t.Fatalf("expected 2 day groups, got %d", len(g.Groups))
	}
	if len(g.Groups[0].Records) != 2 {
		t.Fatalf("expected same-day records bucketed together, got %d", len(g.Groups[0].Records))
	}
}

func TestGroupByDaySkipsZeroTimestamps(t *testing.T) {
	in := []record.Record{
		at("dated", time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)),
		{ID: "undated"},
	}
	g := GroupByDay(in)
	if g.Count() != 1 {
		t.Fatalf("expected 1 grouped record, got %d", g.Count())
	}
	if len(g.Skipped) != 1 || g.Skipped[0].ID != "undated" {
		t.Fatalf("expected the undated record skipped, got %v", g.Skipped)
	}
}

func TestGroupByDayKeyFormat(t *testing.T) {
	g := GroupByDay([]record.Record{at("1", time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local))})
	if g.Groups[0].Key != "March 10, 2026" {
		t.Fatalf("expected long day key, got %q", g.Groups[0].Key)
	}
}

func TestGroupByDayPreservesWithinDayOrder(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	in := []record.Record{
		at("first", day.Add(15*time.Hour)),
		at("second", day.Add(9*time.Hour)),
	}
	g := GroupByDay(in)
	if g.Groups[0].Records[0].ID != "first" {
		t.Fatalf("expected arrival order inside the day, got %q", g.Groups[0].Records[0].ID)
	}
}
