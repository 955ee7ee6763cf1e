package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler assigns statuses on the administrative
// override path. Each change is logged with the prior and the new status so
// operators can audit manual interventions.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	log        *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, log *slog.Logger) ChangeOrderStatusCommandHandler {
	if log == nil {
		log = slog.Default()
	}

	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		log:        log,
	}
}

// Handle processes the status change command and returns the updated order.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previousStatus := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.log.InfoContext(ctx, "order status changed",
		slog.String("order_id", aggregate.ID().String()),
		slog.String("from", previousStatus.String()),
		slog.String("to", aggregate.Status().String()),
	)

	return aggregate, nil
}
