package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	databaseURL string
}

func (o *rootOptions) dsn() (string, error) {
	if o.databaseURL == "" {
		return "", errors.New("database URL is required: set --database-url or DATABASE_URL")
	}
	return o.databaseURL, nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "plannerctl",
		Short:        "Event planner admin tool",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.databaseURL, "database-url", os.Getenv("DATABASE_URL"), "Postgres connection string")

	cmd.AddCommand(migrateCmd(opts))
	cmd.AddCommand(dashboardCmd(opts))
	return cmd
}
