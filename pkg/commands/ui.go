package commands

import (
	"github.com/spf13/cobra"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the text-based user interface",
		Example: `
mailmind ui
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			c, _, err := load()
			if err != nil {
				return err
			}
			return app.Run(c)
		},
	}

	topLevel.AddCommand(cmd)
}
