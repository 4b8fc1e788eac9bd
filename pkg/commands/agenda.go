package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/commands/options"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/runner/agenda"
)

func addAgenda(topLevel *cobra.Command) {
	qo := &options.QueryOptions{}

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "List agenda items derived from non-event mail",
		Example: `
mailmind agenda
mailmind agenda --filter important --search invoice
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			c, _, err := load()
			if err != nil {
				return err
			}

			a := agenda.Agenda{
				ShowID: qo.ShowID,
				Filter: qo.Filter,
				Search: qo.Search,
				Limit:  qo.Limit,
				Client: c,
			}
			return output.HandleError(a.Do(context.Background()))
		},
	}

	options.AddQueryArgs(cmd, qo,
		"Filter. One of all, important, action_required, follow_up.")
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
