package agenda

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

// Agenda lists the non-event, non-spam mails grouped by day.
type Agenda struct {
	ShowID bool
	Filter string
	Search string
	Limit  int
	Client *client.Client
}

func (a *Agenda) Do(ctx context.Context) error {
	if a.Client == nil {
		return errors.New("can not list agenda, no client")
	}

	emails, err := a.Client.EmailHistory(ctx, a.Limit)
	if err != nil {
		return err
	}

	records := record.FromHistory(emails, record.DomainAgenda)
	filtered := pipeline.Apply(records,
		pipeline.Search(a.Search, pipeline.SearchFields(record.DomainAgenda)...),
		pipeline.Focus(a.Filter),
	)
	grouped := pipeline.GroupByDay(filtered)
	for _, r := range grouped.Skipped {
		fmt.Fprintf(os.Stderr, "agenda: skipping %s: no usable date\n", r.ID)
	}

	pp := printers.PrettyPrint{ShowID: a.ShowID, ShowSummary: true}
	fmt.Println("")
	pp.TitleWithCount("Email Agenda", len(filtered), "item")
	pp.NewLine()
	pp.DateGroups(grouped)
	return nil
}
