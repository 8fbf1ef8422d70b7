// Package reminder runs the scheduled job that tells every collaborator
// about events starting the next day.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pkordes/event-planner/internal/calendar"
	"github.com/pkordes/event-planner/internal/domain"
	"github.com/pkordes/event-planner/internal/repo"
)

// RunObserver is told the outcome of every run.
type RunObserver interface {
	ReminderRun(sent int, err error)
}

// Job creates "starts tomorrow" notifications. Running it twice on the same
// day creates nothing new.
type Job struct {
	events        repo.EventRepo
	team          repo.TeamRepo
	notifications repo.NotificationRepo
	now           func() time.Time
	logger        *slog.Logger
	observer      RunObserver
}

// NewJob constructs a Job. A nil clock uses the system clock; a nil observer
// is allowed.
func NewJob(events repo.EventRepo, team repo.TeamRepo, notifications repo.NotificationRepo,
	now func() time.Time, logger *slog.Logger, observer RunObserver) *Job {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Job{
		events:        events,
		team:          team,
		notifications: notifications,
		now:           now,
		logger:        logger,
		observer:      observer,
	}
}

// Run notifies the team of every dated event whose first day is the UTC day
// after now. It returns the number of notifications created.
func (j *Job) Run(ctx context.Context) (int, error) {
	sent, err := j.run(ctx)
	if j.observer != nil {
		j.observer.ReminderRun(sent, err)
	}
	return sent, err
}

func (j *Job) run(ctx context.Context) (int, error) {
	today := calendar.DateOf(j.now())
	tomorrow := today.AddDays(1)

	events, err := j.events.ListStartingBetween(ctx, tomorrow.Midnight(), tomorrow.AddDays(1).Midnight())
	if err != nil {
		return 0, fmt.Errorf("reminder.Job.Run: %w", err)
	}

	sent := 0
	for _, e := range events {
		if calendar.DaysRemaining(today.Midnight(), e.StartDate) != 1 {
			continue
		}
		team, err := j.team.ListByEvent(ctx, e.ID)
		if err != nil {
			return sent, fmt.Errorf("reminder.Job.Run: event %s: %w", e.ID, err)
		}
		for _, member := range team {
			created, err := j.notifications.Create(ctx, notificationFor(e, member.UserID), DedupeKey(e, member.UserID, tomorrow))
			if err != nil {
				return sent, fmt.Errorf("reminder.Job.Run: event %s user %s: %w", e.ID, member.UserID, err)
			}
			if created {
				sent++
				j.logger.Debug("reminder created", "event_id", e.ID, "user_id", member.UserID)
			}
		}
	}
	return sent, nil
}

func notificationFor(e domain.Event, userID string) domain.Notification {
	id := e.ID
	msg := fmt.Sprintf("%s starts tomorrow, %s.", e.Title, calendar.DateOf(e.StartDate))
	if e.Location != "" {
		msg = fmt.Sprintf("%s starts tomorrow, %s, in %s.", e.Title, calendar.DateOf(e.StartDate), e.Location)
	}
	return domain.Notification{
		UserID:  userID,
		Type:    domain.NotifyEvent,
		Title:   "Upcoming: " + e.Title,
		Message: msg,
		EventID: &id,
	}
}

// DedupeKey identifies one reminder for one user about one event day.
func DedupeKey(e domain.Event, userID string, day calendar.CalendarDate) string {
	return fmt.Sprintf("reminder:%s:%s:%s", e.ID, userID, day)
}

// Scheduler runs a Job on a cron schedule evaluated in UTC.
type Scheduler struct {
	cron    *cron.Cron
	job     *Job
	logger  *slog.Logger
	timeout time.Duration
}

// NewScheduler parses schedule as a standard five-field cron expression.
func NewScheduler(schedule string, job *Job, logger *slog.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		job:     job,
		logger:  logger,
		timeout: 5 * time.Minute,
	}
	if _, err := s.cron.AddFunc(schedule, s.tick); err != nil {
		return nil, fmt.Errorf("reminder.NewScheduler: %q: %w", schedule, err)
	}
	return s, nil
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	sent, err := s.job.Run(ctx)
	if err != nil {
		s.logger.Error("reminder run failed", "error", err, "sent", sent)
		return
	}
	s.logger.Info("reminder run complete", "sent", sent)
}

// Start begins running the schedule in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule and returns a context that is done once any
// running job has finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// Next reports when the job will next run.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}
