package addressrepo

import (
	"context"

	"ordering/internal/core/domain/model/address"
	"ordering/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormAddressRepository implements AddressRepository using GORM.
type GormAddressRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAddressRepository creates a new GORM address repository.
func NewGormAddressRepository(db *gorm.DB, tracker aggregateTracker) *GormAddressRepository {
	return &GormAddressRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new address record. No deduplication is performed: every
// order records the address exactly as the customer entered it.
func (r *GormAddressRepository) Add(ctx context.Context, addr *address.Address) error {
	if err := addr.Validate(); err != nil {
		return err
	}

	dto := fromDomain(addr)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(addr.ID(), addr)
	return nil
}
