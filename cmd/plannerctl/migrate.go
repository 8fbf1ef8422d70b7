package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"text/tabwriter"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/pkordes/event-planner/migrations"
)

func migrateCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database migrations",
	}

	c.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProvider(cmd.Context(), opts, func(p *goose.Provider) error {
				results, err := p.Up(cmd.Context())
				if err != nil {
					return fmt.Errorf("migrate up: %w", err)
				}
				writeResults(cmd.OutOrStdout(), results)
				return nil
			})
		},
	})

	c.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProvider(cmd.Context(), opts, func(p *goose.Provider) error {
				result, err := p.Down(cmd.Context())
				if err != nil {
					return fmt.Errorf("migrate down: %w", err)
				}
				writeResults(cmd.OutOrStdout(), []*goose.MigrationResult{result})
				return nil
			})
		},
	})

	c.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProvider(cmd.Context(), opts, func(p *goose.Provider) error {
				statuses, err := p.Status(cmd.Context())
				if err != nil {
					return fmt.Errorf("migrate status: %w", err)
				}
				writeStatuses(cmd.OutOrStdout(), statuses)
				return nil
			})
		},
	})
	return c
}

// withProvider opens a database/sql connection for goose and closes it when fn returns.
func withProvider(ctx context.Context, opts *rootOptions, fn func(*goose.Provider) error) error {
	dsn, err := opts.dsn()
	if err != nil {
		return err
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	p, err := migrations.NewProvider(db)
	if err != nil {
		return err
	}
	return fn(p)
}

func writeResults(w io.Writer, results []*goose.MigrationResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "(no migrations to apply)")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tDIRECTION\tFILE\tDURATION")
	for _, r := range results {
		if r == nil || r.Source == nil {
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.Source.Version, r.Direction, r.Source.Path, r.Duration)
	}
	tw.Flush()
}

func writeStatuses(w io.Writer, statuses []*goose.MigrationStatus) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
	for _, s := range statuses {
		applied := "-"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.UTC().Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
	}
	tw.Flush()
}
