package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/commands/options"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/runner/gist"
)

func addGist(topLevel *cobra.Command) {
	qo := &options.QueryOptions{}

	cmd := &cobra.Command{
		Use:   "gist",
		Short: "Show one-line summaries of recent mail",
		Example: `
mailmind gist
mailmind gist --filter urgent
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			c, _, err := load()
			if err != nil {
				return err
			}

			g := gist.Gist{
				Category: qo.Filter,
				Search:   qo.Search,
				Limit:    qo.Limit,
				Client:   c,
			}
			return output.HandleError(g.Do(context.Background()))
		},
	}

	options.AddQueryArgs(cmd, qo,
		"Filter. One of all, urgent, work, personal, promotional.")
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
