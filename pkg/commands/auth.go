package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/commands/options"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/runner/auth"
)

func addLogin(topLevel *cobra.Command) {
	ao := &options.AuthOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the backend",
		Example: `
mailmind login -e me@example.com -p secretword
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			c, sessions, err := load()
			if err != nil {
				return err
			}

			n := auth.Login{
				Email:    ao.Email,
				Password: ao.Password,
				Client:   c,
				Sessions: sessions,
			}
			return output.HandleError(n.Do(context.Background()))
		},
	}

	options.AddCredentialArgs(cmd, ao)
	topLevel.AddCommand(cmd)
}

func addRegister(topLevel *cobra.Command) {
	ao := &options.AuthOptions{}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a backend account",
		Example: `
mailmind register --first-name Ada --last-name Lovelace -e ada@example.com -p secretword --confirm secretword
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			c, sessions, err := load()
			if err != nil {
				return err
			}

			n := auth.Register{
				FirstName: ao.FirstName,
				LastName:  ao.LastName,
				Email:     ao.Email,
				Password:  ao.Password,
				Confirm:   ao.Confirm,
				Client:    c,
				Sessions:  sessions,
			}
			return output.HandleError(n.Do(context.Background()))
		},
	}

	options.AddCredentialArgs(cmd, ao)
	options.AddRegisterArgs(cmd, ao)
	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the stored identity",
		Example: `
mailmind logout
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			c, sessions, err := load()
			if err != nil {
				return err
			}

			n := auth.Logout{Client: c, Sessions: sessions}
			return output.HandleError(n.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

func addWhoami(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Print the signed-in identity",
		Example: `
mailmind whoami
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, sessions, err := load()
			if err != nil {
				return err
			}

			n := auth.Whoami{Sessions: sessions}
			return output.HandleError(n.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
