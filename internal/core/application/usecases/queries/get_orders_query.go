package queries

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery represents a request for the order list, optionally
// narrowed to the orders of a single user.
type GetOrdersQuery struct {
	userID *string

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for all orders. A non-nil userID
// restricts the result to that user's orders.
func NewGetOrdersQuery(userID *string) GetOrdersQuery {
	return GetOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// UserID returns the optional user filter.
func (q GetOrdersQuery) UserID() *string {
	return q.userID
}
