// Package main is the entry point for the event planner API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // IANA zones for X-Timezone on minimal images

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pkordes/event-planner/internal/config"
	"github.com/pkordes/event-planner/internal/handler"
	"github.com/pkordes/event-planner/internal/metrics"
	"github.com/pkordes/event-planner/internal/middleware"
	"github.com/pkordes/event-planner/internal/reminder"
	"github.com/pkordes/event-planner/internal/repo"
	"github.com/pkordes/event-planner/internal/service"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Repos and services -------------------------------------------------
	events := repo.NewEventRepo(pool)
	team := repo.NewTeamRepo(pool)
	checklist := repo.NewChecklistRepo(pool)
	memories := repo.NewMemoryRepo(pool)
	routines := repo.NewRoutineRepo(pool)
	notifications := repo.NewNotificationRepo(pool)

	m := metrics.New()

	srv := handler.NewServer(handler.Services{
		Events: service.NewEventService(events, team),
		Dashboard: service.NewDashboardService(events, routines,
			service.WithFallbackLocation(cfg.FallbackLocation),
			service.WithDashboardObserver(m),
		),
		Routines:      service.NewRoutineService(events, team, routines, nil),
		Checklist:     service.NewChecklistService(team, checklist),
		Team:          service.NewTeamService(team),
		Memories:      service.NewMemoryService(team, memories),
		Notifications: service.NewNotificationService(notifications),
		Calendar:      service.NewCalendarService(events, nil),
		Export:        service.NewExportService(events, checklist),
	}, logger, cfg.Location())

	// --- Reminder scheduler -------------------------------------------------
	job := reminder.NewJob(events, team, notifications, nil, logger, m)
	scheduler, err := reminder.NewScheduler(cfg.ReminderSchedule, job, logger)
	if err != nil {
		slog.Error("invalid reminder schedule", "error", err)
		os.Exit(1)
	}
	scheduler.Start()
	slog.Info("reminder scheduler started", "schedule", cfg.ReminderSchedule, "next_run", scheduler.Next())

	// --- Router -----------------------------------------------------------
	// Middleware order: RequestID → RealIP → Logger → Metrics → Recoverer → CORS → body limit.
	// Recoverer sits inside Logger and Metrics so a panic is still recorded as a 500.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(m.Middleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Handle("/metrics", m.Handler())
	r.Mount("/", srv.Handler())

	// --- HTTP Server ------------------------------------------------------
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	// Wait for an in-flight reminder run, bounded by the same deadline.
	select {
	case <-scheduler.Stop().Done():
	case <-ctx.Done():
		slog.Warn("reminder run still in progress at shutdown")
	}
	slog.Info("server stopped")
}
