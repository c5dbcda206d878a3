package ports

import (
	"context"

	"ordering/internal/core/domain/model/address"
)

// AddressRepository defines the persistence contract for delivery addresses.
// Addresses are write-once: every order creates a fresh row and there is no
// deduplication against existing addresses, even for the same user.
type AddressRepository interface {
	// Add persists a new address record.
	Add(ctx context.Context, addr *address.Address) error
}
