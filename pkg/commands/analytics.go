package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/runner/analytics"
)

func addAnalytics(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show processing metrics for your mailbox",
		Example: `
mailmind analytics
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			c, _, err := load()
			if err != nil {
				return err
			}

			a := analytics.Analytics{Client: c}
			return output.HandleError(a.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
