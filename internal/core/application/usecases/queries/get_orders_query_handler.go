package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler serves the order list, newest first.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler reading from the given
// database connection.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns all orders with their addresses and line items, sorted by
// creation time descending. An empty store yields an empty slice, not nil.
func (h *GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := orderSelectColumns
	args := make([]any, 0, 1)
	if query.UserID() != nil {
		sqlQuery += " WHERE o.user_id = ?"
		args = append(args, *query.UserID())
	}
	sqlQuery += " ORDER BY o.created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, ids, err := scanOrderRows(rows)
	if err != nil {
		return nil, err
	}

	if err = attachOrderProducts(ctx, h.db, orders, ids); err != nil {
		return nil, err
	}

	return orders, nil
}
