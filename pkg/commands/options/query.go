// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// QueryOptions captures the selection flags shared by every list command.
type QueryOptions struct {
	Filter string
	Search string
	Sort   string
	Window string
	Limit  int
	ShowID bool
}

// AddQueryArgs wires the common filter/search/limit flags.
func AddQueryArgs(cmd *cobra.Command, o *QueryOptions, filterHelp string) {
	cmd.Flags().StringVarP(&o.Filter, "filter", "f", "all", filterHelp)
	cmd.Flags().StringVarP(&o.Search, "search", "q", "",
		"Keep only records matching the search term.")
	cmd.Flags().IntVarP(&o.Limit, "limit", "n", 0,
		"Maximum history records to fetch (0 means the backend default).")
	cmd.Flags().BoolVar(&o.ShowID, "id", false,
		"Show record ids.")
}

// AddSortArg wires the sort key flag.
func AddSortArg(cmd *cobra.Command, o *QueryOptions) {
	cmd.Flags().StringVarP(&o.Sort, "sort", "s", "date",
		"Sort key. One of date, sender, subject, type.")
}

// AddWindowArg wires the custom event horizon flag.
func AddWindowArg(cmd *cobra.Command, o *QueryOptions) {
	cmd.Flags().StringVarP(&o.Window, "window", "w", "",
		"Custom horizon such as 3d or 1w, overrides --filter.")
}

// AuthOptions captures the sign-in/sign-up flags.
type AuthOptions struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Confirm   string
}

// AddCredentialArgs wires the flags shared by login and register.
func AddCredentialArgs(cmd *cobra.Command, o *AuthOptions) {
	cmd.Flags().StringVarP(&o.Email, "email", "e", "", "Account email.")
	cmd.Flags().StringVarP(&o.Password, "password", "p", "", "Account password.")
}

// AddRegisterArgs wires the registration-only flags.
func AddRegisterArgs(cmd *cobra.Command, o *AuthOptions) {
	cmd.Flags().StringVar(&o.FirstName, "first-name", "", "First name.")
	cmd.Flags().StringVar(&o.LastName, "last-name", "", "Last name.")
	cmd.Flags().StringVar(&o.Confirm, "confirm", "", "Password confirmation.")
}
