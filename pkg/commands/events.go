package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/commands/options"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/runner/events"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/timeutil"
)

func addEvents(topLevel *cobra.Command) {
	qo := &options.QueryOptions{}

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List calendar events extracted from mail",
		Example: `
mailmind events
mailmind events --filter this_week
mailmind events --window 3d
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			c, _, err := load()
			if err != nil {
				return err
			}

			n := events.Events{
				ShowID: qo.ShowID,
				Filter: qo.Filter,
				Search: qo.Search,
				Limit:  qo.Limit,
				Client: c,
			}
			if qo.Window != "" {
				d, _, err := timeutil.ParseWindow(qo.Window)
				if err != nil {
					return err
				}
				n.Window = d
			}
			return output.HandleError(n.Do(context.Background()))
		},
	}

	options.AddQueryArgs(cmd, qo,
		"Filter. One of all, today, this_week, upcoming.")
	options.AddWindowArg(cmd, qo)
	options.AddOutputArg(cmd, output)

	addEventsAdd(cmd)
	addEventsOpen(cmd)
	topLevel.AddCommand(cmd)
}

func addEventsAdd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an extracted event to your calendar",
		Example: `
mailmind events add 42
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires an event id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			c, _, err := load()
			if err != nil {
				return err
			}

			n := events.Add{ID: args[0], Client: c}
			return output.HandleError(n.Do(context.Background()))
		},
	}
	options.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addEventsOpen(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Print the calendar link for an event",
		Example: `
mailmind events open 42
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires an event id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			c, _, err := load()
			if err != nil {
				return err
			}

			n := events.Open{ID: args[0], Client: c}
			return output.HandleError(n.Do(context.Background()))
		},
	}
	options.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}
