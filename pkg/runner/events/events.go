package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/client"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/pipeline"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/printers"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/record"
)

// Events lists the extracted calendar events grouped by day.
type Events struct {
	ShowID bool
	Filter string // all, today, this_week, upcoming
	Search string
	Window time.Duration // overrides Filter with a custom horizon when set
	Limit  int
	Client *client.Client
}

func (n *Events) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not list events, no client")
	}

	records, err := fetch(ctx, n.Client, n.Limit)
	if err != nil {
		return err
	}

	now := time.Now()
	preds := []pipeline.Predicate{
		pipeline.Search(n.Search, pipeline.SearchFields(record.DomainEvent)...),
	}
	if n.Window > 0 {
		preds = append(preds, pipeline.Horizon(n.Window, now))
	} else {
		preds = append(preds, pipeline.Window(n.Filter, now))
	}

	filtered := pipeline.Apply(records, preds...)
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TitleWithCount("Calendar Events", len(filtered), "event")
	pp.NewLine()
	if len(filtered) == 0 {
		pp.Empty("no calendar events found")
		return nil
	}
	for _, g := range pipeline.GroupByDay(filtered).Groups {
		pp.Title(g.Key)
		for _, r := range pipeline.SortAscending(g.Records, pipeline.SortDate) {
			pp.Event(r)
		}
	}
	return nil
}

// fetch loads history and normalizes the event-bearing mails. Events never
// skip grouping, normalization substitutes the current time for unusable
// start times.
func fetch(ctx context.Context, c *client.Client, limit int) ([]record.Record, error) {
	emails, err := c.EmailHistory(ctx, limit)
	if err != nil {
		return nil, err
	}
	return record.FromHistory(emails, record.DomainEvent), nil
}

// find locates one event record by id.
func find(ctx context.Context, c *client.Client, id string) (record.Record, error) {
	records, err := fetch(ctx, c, 0)
	if err != nil {
		return record.Record{}, err
	}
	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}
	return record.Record{}, fmt.Errorf("no event with id %q", id)
}
