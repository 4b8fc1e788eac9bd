package mails

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/client"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/pipeline"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/printers"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/record"
)

// Mails lists every processed mail grouped by day with type tallies.
type Mails struct {
	ShowID bool
	Filter string // all, events, spam, regular
	Search string
	Sort   string // date, sender, subject, type
	Limit  int
	Client *client.Client
}

func (n *Mails) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not list mails, no client")
	}

	emails, err := n.Client.EmailHistory(ctx, n.Limit)
	if err != nil {
		return err
	}

	records := record.FromHistory(emails, record.DomainMail)
	filtered := pipeline.Apply(records,
		pipeline.Search(n.Search, pipeline.SearchFields(record.DomainMail)...),
		pipeline.Type(n.Filter),
	)
	sorted := pipeline.Sort(filtered, pipeline.ParseSortKey(n.Sort))
	grouped := pipeline.GroupByDay(sorted)
	for _, r := range grouped.Skipped {
		fmt.Fprintf(os.Stderr, "mails: skipping %s: no usable date\n", r.ID)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TitleWithCount("Processed Mails", len(sorted), "mail")
	pp.Stats(stats(records))
	pp.DateGroups(grouped)
	return nil
}

// stats tallies the full (unfiltered) history by mail type, matching the
// stat cards above the mail list.
func stats(records []record.Record) (total, events, spam, regular int) {
	total = len(records)
	for i := range records {
		switch records[i].Type {
		case record.TypeEvent:
			events++
		case record.TypeSpam:
			spam++
		default:
			regular++
		}
	}
	return total, events, spam, regular
}
