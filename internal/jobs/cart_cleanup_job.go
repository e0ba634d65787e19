package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/BarinovG/EShop-API/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CartCleanupJob periodically purges abandoned open carts. Runs hourly:
// a cart's row carries no money and the time-to-live is measured in
// days, so tighter scheduling buys nothing.
type CartCleanupJob struct {
	handler commands.CleanupStaleCartsCommandHandler
	cartTTL time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCartCleanupJob creates a job that removes open carts untouched for
// longer than cartTTL.
func NewCartCleanupJob(
	handler commands.CleanupStaleCartsCommandHandler,
	cartTTL time.Duration,
	logger *slog.Logger,
) *CartCleanupJob {
	return &CartCleanupJob{
		handler: handler,
		cartTTL: cartTTL,
		cron:    cron.New(),
		logger:  logger.With("component", "cart_cleanup_job"),
	}
}

// Start schedules the cleanup to run at the top of every hour.
func (j *CartCleanupJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()

		cmd, err := commands.NewCleanupStaleCartsCommand(j.cartTTL)
		if err != nil {
			j.logger.ErrorContext(ctx, "Cart cleanup command construction failed", "error", err)
			return
		}

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Cart cleanup job failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Stale carts removed", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart cleanup job started (running hourly)")
	return nil
}

// Stop stops the cleanup job.
func (j *CartCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart cleanup job stopped")
}
