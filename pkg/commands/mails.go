package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/commands/options"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/runner/mails"
)

func addMails(topLevel *cobra.Command) {
	qo := &options.QueryOptions{}

	cmd := &cobra.Command{
		Use:   "mails",
		Short: "List processed mail with classification and urgency",
		Example: `
mailmind mails
mailmind mails --filter spam
mailmind mails --sort sender --search billing
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			c, _, err := load()
			if err != nil {
				return err
			}

			m := mails.Mails{
				ShowID: qo.ShowID,
				Filter: qo.Filter,
				Search: qo.Search,
				Sort:   qo.Sort,
				Limit:  qo.Limit,
				Client: c,
			}
			return output.HandleError(m.Do(context.Background()))
		},
	}

	options.AddQueryArgs(cmd, qo,
		"Filter. One of all, events, spam, regular.")
	options.AddSortArg(cmd, qo)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
