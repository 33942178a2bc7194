package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/WWStoryMode/project-firefly/internal/core/application/usecases/commands"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// MatchHandler triggers delivery matching for one order.
// Satisfied by commands.MatchDeliveryCommandHandler.
type MatchHandler interface {
	Handle(ctx context.Context, command commands.MatchDeliveryCommand) error
}

// DeliveryMatchingJob retries delivery matching for degraded orders: pending
// orders that got no delivery person at creation time. Each run walks the
// unmatched backlog and claims one eligible person per order until the pool
// runs dry.
type DeliveryMatchingJob struct {
	uowFactory commands.OrderUoWFactory
	handler    MatchHandler
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDeliveryMatchingJob creates a job that re-matches unassigned pending
// orders on the given cron schedule (seconds-resolution expression, e.g.
// "*/5 * * * * *").
func NewDeliveryMatchingJob(
	uowFactory commands.OrderUoWFactory,
	handler MatchHandler,
	schedule string,
	logger *slog.Logger,
) *DeliveryMatchingJob {
	return &DeliveryMatchingJob{
		uowFactory: uowFactory,
		handler:    handler,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "delivery_matching_job"),
	}
}

// Start begins the delivery matching job on its configured schedule.
func (j *DeliveryMatchingJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Delivery matching job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery matching job started", "schedule", j.schedule)
	return nil
}

// Stop stops the delivery matching job.
func (j *DeliveryMatchingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery matching job stopped")
}

// run matches the current unmatched backlog. Expected business outcomes, an
// exhausted delivery pool or an order matched by a concurrent request, are
// not errors; the next run tries again.
func (j *DeliveryMatchingJob) run(ctx context.Context) error {
	uow := j.uowFactory.Create()
	unmatched, err := uow.OrderRepository().GetAllUnassignedPending(ctx)
	if err != nil {
		return err
	}

	for _, degradedOrder := range unmatched {
		cmd, err := commands.NewMatchDeliveryCommand(degradedOrder.ID())
		if err != nil {
			return err
		}

		err = j.handler.Handle(ctx, cmd)
		switch {
		case err == nil:
			j.logger.InfoContext(ctx, "Matched degraded order", "order_id", degradedOrder.ID().String())

		case errors.Is(err, commands.ErrNoDeliveryPeopleAvailable):
			// Pool exhausted; the rest of the backlog cannot match either
			return nil

		case errors.Is(err, commands.ErrNoOrderFound),
			errors.Is(err, commands.ErrOrderIsNotMatchable),
			errors.Is(err, services.ErrOrderAlreadyAssigned):
			// The order moved on between the listing and the match attempt
			continue

		default:
			j.logger.ErrorContext(ctx, "Matching attempt failed",
				"order_id", degradedOrder.ID().String(), "error", err)
		}
	}

	return nil
}
