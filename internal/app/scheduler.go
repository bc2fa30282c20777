package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-checkin/internal/attendance"
	"go-checkin/internal/employee"
	"go-checkin/internal/overtime"
	"go-checkin/internal/report"
	"go-checkin/internal/settings"
	"go-checkin/internal/shared/connection"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RunScheduler drives the report jobs on the fixed operational calendar:
// a daily summary shortly after noon, fortnightly summaries on the 13th and
// 28th, and the overtime archive on the 1st.
func RunScheduler() error {
	logger := zap.L().Named("app.scheduler")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	jobs := report.NewJobs(
		attendance.NewRepository(gormDB),
		employee.NewRepository(gormDB),
		overtime.NewRepository(gormDB),
		settings.NewRepository(gormDB),
		buildNotifier(),
	)

	run := func(name string, fn func(ctx context.Context, now time.Time) error) func() {
		return func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			if err := fn(ctx, time.Now()); err != nil {
				logger.Error("report job failed", zap.String("job", name), zap.Error(err))
				return
			}
			logger.Info("report job finished", zap.String("job", name))
		}
	}

	c := cron.New()
	if _, err := c.AddFunc("5 12 * * *", run("daily", jobs.RunDaily)); err != nil {
		return err
	}
	if _, err := c.AddFunc("0 18 13 * *", run("fortnightly", jobs.RunFortnightly)); err != nil {
		return err
	}
	if _, err := c.AddFunc("0 18 28 * *", run("fortnightly", jobs.RunFortnightly)); err != nil {
		return err
	}
	if _, err := c.AddFunc("0 8 1 * *", run("monthly_overtime", jobs.RunMonthlyOvertime)); err != nil {
		return err
	}

	c.Start()
	logger.Info("scheduler started", zap.Int("jobs", len(c.Entries())))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("scheduler shutting down")
	stopCtx := c.Stop()
	<-stopCtx.Done()

	return nil
}
