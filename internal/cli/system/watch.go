package system

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/daykeep/daykeep/internal/cli"
	"github.com/daykeep/daykeep/internal/logger"
	"github.com/daykeep/daykeep/internal/utils"
)

// WatchCmd runs the long-lived scheduler daemon: it reconciles the
// persisted timer table, arms the recurring daily alarm and summary, and
// sweeps periodically for day rollover and storage pressure.
type WatchCmd struct{}

func (c *WatchCmd) Run(ctx *cli.Context) error {
	settings := ctx.Store.Document().Settings
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		logger.Warn("Invalid timezone, using local", "timezone", settings.Timezone)
		loc = time.Local
	}

	// Reconciliation pass: missed timers are reported once and dropped,
	// future ones re-armed for their remaining delay.
	if err := ctx.Scheduler.Recover(); err != nil {
		return err
	}
	if err := ctx.Scheduler.ScheduleDailyAlarm(settings.WakeTime, loc); err != nil {
		return err
	}
	if err := ctx.Scheduler.ScheduleDailySummary(settings.SummaryTime, loc); err != nil {
		return err
	}

	sweeper := cron.New()
	_, err = sweeper.AddFunc(ctx.Config.SweepSpec, func() {
		if err := ctx.Registry.EnsureToday(); err != nil {
			logger.Error("Rollover sweep failed", "error", err)
		}
		if _, _, err := ctx.Store.CheckPressure(time.Now()); err != nil {
			logger.Error("Storage pressure check failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid sweep spec %q: %w", ctx.Config.SweepSpec, err)
	}
	sweeper.Start()

	pending, err := ctx.Scheduler.Pending()
	if err != nil {
		return err
	}
	fmt.Printf("Watching: %d pending timer(s). Press Ctrl-C to stop.\n", len(pending))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	stopCtx := sweeper.Stop()
	<-stopCtx.Done()
	ctx.Scheduler.Stop()
	fmt.Println("Stopped.")
	return nil
}
