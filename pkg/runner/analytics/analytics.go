package analytics

import (
	"context"
	"errors"
	"fmt"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/client"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/printers"
)

// Analytics prints the processing summary metrics.
type Analytics struct {
	Client *client.Client
}

func (n *Analytics) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not show analytics, no client")
	}

	summary, err := n.Client.AnalyticsSummary(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Analytics")
	pp.NewLine()
	pp.Metrics(summary)
	return nil
}
