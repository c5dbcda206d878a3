// Package catalog provides read-only access to the product catalog tables
// owned by the external catalog collaborator. This core never writes to
// them; it only resolves per-size prices at order-creation time and joins
// product names into order read models. The DTOs exist here so tests can
// migrate and seed the tables.
package catalog

import (
	"github.com/shopspring/decimal"
)

// ProductDTO mirrors the catalog's products table.
type ProductDTO struct {
	ID          string `gorm:"type:text;primaryKey"`
	Name        string
	Description string
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// ProductSizeDTO mirrors the catalog's per-size price table.
// Each (product, size label) pair maps to one current price.
type ProductSizeDTO struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	ProductID string          `gorm:"type:text;uniqueIndex:idx_product_sizes_product_size"`
	SizeName  string          `gorm:"uniqueIndex:idx_product_sizes_product_size"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2)"`
}

// TableName specifies the database table name for per-size prices.
func (ProductSizeDTO) TableName() string {
	return "product_sizes"
}
