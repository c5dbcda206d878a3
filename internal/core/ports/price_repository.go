package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
)

// PriceRepository resolves the authoritative unit price for a
// (product, size) pair at order-creation time. The underlying catalog
// tables are owned by the product catalog collaborator; this core only
// reads them.
type PriceRepository interface {
	// GetPrice returns the current unit price for the given product and
	// size label. Returns a not-found error naming the pair when no
	// matching price record exists.
	GetPrice(ctx context.Context, productID string, size string) (kernel.Money, error)
}
