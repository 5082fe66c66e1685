// Package poller runs the periodic reminder sweep as a background
// delivery.
package poller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shipnotify/config"
	"shipnotify/internal/delivery"
	"shipnotify/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// sweepTimeout bounds one reminder sweep so a stuck SMS call cannot block
// the schedule forever.
const sweepTimeout = 5 * time.Minute

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	ReminderUsecase usecase.ReminderUsecase
}

type reminderPoller struct {
	cfg        *config.Config
	logger     *slog.Logger
	reminderUC usecase.ReminderUsecase
	cron       *cron.Cron
	done       chan struct{}
}

// New creates the reminder poller delivery.
func New(params Params) (delivery.Delivery, error) {
	poller := &reminderPoller{
		cfg:        params.Config,
		logger:     params.Logger,
		reminderUC: params.ReminderUsecase,
		cron:       cron.New(),
		done:       make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: poller.stop,
	})

	return poller, nil
}

// Serve schedules the sweep and blocks until the poller is stopped.
func (p *reminderPoller) Serve(ctx context.Context) error {
	interval := p.cfg.Reminder.Interval
	spec := fmt.Sprintf("@every %s", interval.String())

	if _, err := p.cron.AddFunc(spec, p.sweep); err != nil {
		return errors.Wrap(err, "failed to schedule reminder sweep")
	}

	p.logger.Info("Starting reminder poller", slog.Duration("interval", interval))
	p.cron.Start()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.done:
		return nil
	}
}

func (p *reminderPoller) stop(ctx context.Context) error {
	p.logger.Info("Stopping reminder poller")

	stopCtx := p.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
		return ctx.Err()
	}

	close(p.done)

	return nil
}

func (p *reminderPoller) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	result, err := p.reminderUC.RunPendingReminders(ctx)
	if err != nil {
		p.logger.Error("reminder sweep failed", slog.Any("error", err))

		return
	}

	if result.Pending > 0 {
		p.logger.Info("reminder sweep finished",
			slog.Int("pending", result.Pending),
			slog.Int("sent", result.Sent),
			slog.Int("failed", result.Failed),
		)
	}
}
