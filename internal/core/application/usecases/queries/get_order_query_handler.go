package queries

import (
	"context"

	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler serves a single order aggregate by identifier.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler reading from the given
// database connection.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order with its address and line items, or a
// not-found error when no order has the requested identifier.
func (h *GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		orderSelectColumns+" WHERE o.id = ?", query.OrderID().Bytes(),
	).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	orders, ids, err := scanOrderRows(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	if err = attachOrderProducts(ctx, h.db, orders, ids); err != nil {
		return OrderResponse{}, err
	}

	return orders[0], nil
}
