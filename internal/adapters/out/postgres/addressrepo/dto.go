// Package addressrepo provides persistence for delivery addresses.
// Addresses are write-once rows: one is created per order at checkout and
// never updated or reused afterwards.
package addressrepo

import (
	"ordering/internal/core/domain/model/address"

	"github.com/google/uuid"
)

// AddressDTO represents the database structure for delivery addresses.
type AddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName   string
	Street     string
	City       string
	PostalCode string
	UserID     *string `gorm:"type:text;index"`
}

// TableName specifies the database table name for addresses.
func (AddressDTO) TableName() string {
	return "addresses"
}

// fromDomain converts an address entity to its database representation.
func fromDomain(addr *address.Address) AddressDTO {
	return AddressDTO{
		ID:         addr.ID().Bytes(),
		FullName:   addr.FullName(),
		Street:     addr.Street(),
		City:       addr.City(),
		PostalCode: addr.PostalCode(),
		UserID:     addr.UserID(),
	}
}
