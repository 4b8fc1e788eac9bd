package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/runner/health"
)

func addHealth(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check the backend is reachable and healthy",
		Example: `
mailmind health
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			c, _, err := load()
			if err != nil {
				return err
			}

			h := health.Health{Client: c}
			return output.HandleError(h.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
