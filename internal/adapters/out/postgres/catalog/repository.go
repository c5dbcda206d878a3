package catalog

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPriceRepository implements PriceRepository over the catalog tables.
type GormPriceRepository struct {
	db *gorm.DB
}

// NewGormPriceRepository creates a new GORM price repository.
func NewGormPriceRepository(db *gorm.DB) *GormPriceRepository {
	return &GormPriceRepository{db: db}
}

// GetPrice resolves the authoritative unit price for a (product, size) pair.
// Returns a not-found error naming the pair when no price record exists,
// which aborts the order creation that requested it.
func (r *GormPriceRepository) GetPrice(ctx context.Context, productID string, size string) (kernel.Money, error) {
	var dto ProductSizeDTO
	err := r.db.WithContext(ctx).
		First(&dto, "product_id = ? AND size_name = ?", productID, size).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.Money{}, errs.NewObjectNotFoundError("productSize",
				fmt.Sprintf("productId: %s, size: %s", productID, size))
		}
		return kernel.Money{}, err
	}

	return kernel.NewMoney(dto.Price)
}
