// Package ports defines repository and unit-of-work interfaces for the
// order management core. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Line items are part of the aggregate and travel with it on every
// operation.
type OrderRepository interface {
	// Add persists a new order aggregate together with its line items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns a not-found error when no row matches the aggregate's id.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including all of its line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order's line items and then the order itself.
	// Both deletes must run inside the same transaction, which the
	// surrounding unit of work provides.
	Delete(ctx context.Context, id kernel.UUID) error
}
