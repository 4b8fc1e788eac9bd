package gist

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

// Gist shows the categorized inbox digest with per-category counts.
type Gist struct {
	Category string
	Search   string
	Limit    int
	Client   *client.Client
}

func (n *Gist) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not show gist, no client")
	}

	emails, err := n.Client.EmailHistory(ctx, n.Limit)
	if err != nil {
		return err
	}

	records := record.FromHistory(emails, record.DomainGist)
	filtered := pipeline.Apply(records,
		pipeline.Search(n.Search, pipeline.SearchFields(record.DomainGist)...),
		pipeline.Category(n.Category),
	)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount("Email Gist", len(filtered), "mail")
	printCounts(&pp, records)
	pp.Gist(filtered, time.Now())
	return nil
}

func printCounts(pp *printers.PrettyPrint, records []record.Record) {
	counts := make(map[record.Category]int)
	for i := range records {
		counts[records[i].Category]++
	}
	order := []record.Category{
		record.CategoryWork,
		record.CategoryPersonal,
		record.CategoryNewsletter,
		record.CategoryBilling,
		record.CategorySecurity,
		record.CategoryEvent,
		record.CategoryGeneral,
	}
	line := ""
	for _, c := range order {
		if counts[c] == 0 {
			continue
		}
		if line != "" {
			line += " · "
		}
		line += fmt.Sprintf("%s %d", c, counts[c])
	}
	if line != "" {
		pp.Empty(line)
	}
}
