package commands

import (
	"context"

	"ordering/internal/core/domain/model/address"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the checkout workflow: it resolves
// authoritative unit prices from the catalog, records the delivery
// address, and persists the order aggregate - all inside one transaction,
// so a failure at any step leaves no partial records behind.
//
// The client-declared total is never trusted: the order constructor
// rejects a total that does not match the resolved line-item sum.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command. The new order starts in PENDING
// status. Returns a not-found error naming the offending (product, size)
// pair when the catalog has no price for a cart entry, and a validation
// error when the declared total does not match the resolved prices.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	prices := uow.PriceRepository()
	items := make([]order.LineItem, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		price, err := prices.GetPrice(ctx, input.ProductID, input.Size)
		if err != nil {
			return err
		}

		item, err := order.NewLineItem(input.ProductID, input.Size, input.Quantity, price)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	addrInput := cmd.Address()
	addr, err := address.NewAddress(
		kernel.NewUUID(),
		addrInput.FullName,
		addrInput.Street,
		addrInput.City,
		addrInput.PostalCode,
		cmd.UserID(),
	)
	if err != nil {
		return err
	}

	if err = uow.AddressRepository().Add(ctx, addr); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.UserID(),
		addr.ID(),
		items,
		cmd.DeclaredTotal(),
		cmd.PaymentMethod(),
		cmd.Notes(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
