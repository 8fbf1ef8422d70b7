package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/pkordes/event-planner/internal/calendar"
	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/repo"
	"github.com/pkordes/event-planner/internal/service"
)

func dashboardCmd(opts *rootOptions) *cobra.Command {
	var (
		userID string
		at     string
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print a user's active, pending and historical items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now, err := parseNow(at)
			if err != nil {
				return err
			}
			dsn, err := opts.dsn()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			pool, err := pgxpool.New(ctx, dsn)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer pool.Close()

			svc := service.NewDashboardService(repo.NewEventRepo(pool), repo.NewRoutineRepo(pool))
			d, err := svc.DashboardAt(ctx, userID, now)
			if err != nil {
				return err
			}
			writeDashboard(cmd.OutOrStdout(), d)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user ID whose dashboard to print")
	cmd.Flags().StringVar(&at, "now", "", "classify as of this RFC 3339 instant (default: current time)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

// parseNow reads the --now flag. Empty means the current time.
func parseNow(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("--now must be an RFC 3339 instant: %w", err)
	}
	return t.UTC(), nil
}

func writeDashboard(w io.Writer, d service.Dashboard) {
	fmt.Fprintf(w, "Generated: %s\n", d.GeneratedAt.UTC().Format(time.RFC3339))
	if d.FeaturedLocation != "" {
		fmt.Fprintf(w, "Featured:  %s\n", d.FeaturedLocation)
	}

	sections := []struct {
		name  string
		items []domain.EventWindow
	}{
		{"ACTIVE", d.Buckets.Active},
		{"PENDING", d.Buckets.Pending},
		{"HISTORICAL", d.Buckets.Historical},
	}
	for _, s := range sections {
		fmt.Fprintf(w, "\n%s (%d)\n", s.name, len(s.items))
		if len(s.items) == 0 {
			continue
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, it := range s.items {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", it.Title, it.Kind, windowSpan(it), countdown(d, it))
		}
		tw.Flush()
	}
}

func windowSpan(it domain.EventWindow) string {
	if it.Kind == domain.KindRoutine {
		if it.CompletedToday {
			return "done today"
		}
		return "daily"
	}
	start, end := calendar.DateOf(it.StartBoundary), calendar.DateOf(it.EndBoundary)
	if start == end {
		return start.String()
	}
	return start.String() + " → " + end.String()
}

func countdown(d service.Dashboard, it domain.EventWindow) string {
	n, ok := d.DaysRemaining[it.ID]
	if !ok {
		return ""
	}
	if n == 1 {
		return "in 1 day"
	}
	return fmt.Sprintf("in %d days", n)
}
