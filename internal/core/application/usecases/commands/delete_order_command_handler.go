package commands

import (
	"context"
)

// DeleteOrderCommandHandler permanently removes an order together with its
// line items. Existence is checked first so callers can distinguish a
// missing order from a datastore failure, and both deletes run inside one
// transaction so a failure between them cannot orphan line items.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the order exists, then deletes its line items and the
// order row atomically. Returns a not-found error for unknown identifiers.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	if _, err := repo.Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := repo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
