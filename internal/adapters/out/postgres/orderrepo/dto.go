// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// representations.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items live in their own table and are loaded with the order.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        *string   `gorm:"type:text;index"`
	AddressID     uuid.UUID `gorm:"type:uuid;index"`
	Status        int
	TotalPrice    decimal.Decimal `gorm:"type:numeric(10,2)"`
	PaymentMethod string
	Notes         *string
	CreatedAt     time.Time         `gorm:"index"`
	Items         []OrderProductDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderProductDTO represents one line item row. The unit price is the
// price captured at order time, not a live catalog reference.
type OrderProductDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID string    `gorm:"type:text;index"`
	Size      string
	Quantity  int
	Price     decimal.Decimal `gorm:"type:numeric(10,2)"`
}

// TableName specifies the database table name for line items.
func (OrderProductDTO) TableName() string {
	return "order_products"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderProductDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderProductDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID(),
			Size:      item.Size(),
			Quantity:  item.Quantity(),
			Price:     item.Price().Amount(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		UserID:        aggregate.UserID(),
		AddressID:     aggregate.AddressID().Bytes(),
		Status:        int(aggregate.Status()),
		TotalPrice:    aggregate.TotalPrice().Amount(),
		PaymentMethod: aggregate.PaymentMethod(),
		Notes:         aggregate.Notes(),
		CreatedAt:     aggregate.CreatedAt(),
		Items:         items,
	}
}

// toDomain converts a database DTO back to an order aggregate, rebuilding
// the line items and money values through their validating constructors.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	addressID, err := kernel.UUIDFromBytes(dto.AddressID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, priceErr := kernel.NewMoney(itemDTO.Price)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewLineItem(itemDTO.ProductID, itemDTO.Size, itemDTO.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	totalPrice, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.UserID,
		addressID,
		items,
		order.Status(dto.Status),
		totalPrice,
		dto.PaymentMethod,
		dto.Notes,
		dto.CreatedAt,
	)
}
