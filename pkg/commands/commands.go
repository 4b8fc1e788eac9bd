package commands

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/client"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/commands/options"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/session"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "mailmind",
		Short: base.Wrap80("Email-derived agenda, calendar, and analytics on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAgenda(topLevel)
	addEvents(topLevel)
	addMails(topLevel)
	addGist(topLevel)
	addAnalytics(topLevel)
	addLogin(topLevel)
	addRegister(topLevel)
	addLogout(topLevel)
	addWhoami(topLevel)
	addHealth(topLevel)
	addKey(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}

// load wires the config, session store, and backend client every command
// shares. The stored token rides along when present, commands work
// unauthenticated until the backend says otherwise.
func load() (*client.Client, session.Store, error) {
	cfg, err := session.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	sessions, err := session.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	token := ""
	if id, err := sessions.Current(); err == nil {
		token = id.Token
	}
	c := client.New(client.Config{BaseURL: cfg.APIBase(), Token: token})
	return c, sessions, nil
}
