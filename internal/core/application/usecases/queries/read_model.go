// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read the database directly through raw SQL projections,
// bypassing the domain model, and return response structs shaped for the
// HTTP API.
package queries

import (
	"context"
	"database/sql"
	"time"

	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderResponse is the full order aggregate as served to clients:
// the order row plus its delivery address and line items with catalog
// product names.
type OrderResponse struct {
	ID            string                 `json:"id"`
	CreatedAt     time.Time              `json:"createdAt"`
	Status        string                 `json:"status"`
	TotalPrice    decimal.Decimal        `json:"totalPrice"`
	PaymentMethod string                 `json:"paymentMethod"`
	Notes         *string                `json:"notes"`
	UserID        *string                `json:"userId"`
	Address       AddressResponse        `json:"address"`
	OrderProducts []OrderProductResponse `json:"orderProducts"`
}

// AddressResponse is the delivery address part of an order aggregate.
type AddressResponse struct {
	FullName   string `json:"fullName"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

// OrderProductResponse is one line item with its captured unit price and
// the catalog product it references.
type OrderProductResponse struct {
	ProductID string          `json:"productId"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Product   ProductResponse `json:"product"`
}

// ProductResponse carries the catalog data joined into a line item.
type ProductResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// orderSelectColumns is the projection shared by the list and single-order
// queries. Addresses are joined one-to-one; line items are loaded in a
// second query to avoid row multiplication.
const orderSelectColumns = `
	SELECT
		o.id,
		o.created_at,
		o.status,
		o.total_price,
		o.payment_method,
		o.notes,
		o.user_id,
		a.full_name,
		a.street,
		a.city,
		a.postal_code
	FROM orders o
	JOIN addresses a ON a.id = o.address_id
`

// scanOrderRows reads order+address rows into responses, also returning
// the order ids for the follow-up line-item query.
func scanOrderRows(rows *sql.Rows) ([]OrderResponse, []uuid.UUID, error) {
	orders := make([]OrderResponse, 0)
	ids := make([]uuid.UUID, 0)

	for rows.Next() {
		var (
			id            uuid.UUID
			createdAt     time.Time
			status        int
			totalPrice    decimal.Decimal
			paymentMethod string
			notes         sql.NullString
			userID        sql.NullString
			addr          AddressResponse
		)

		err := rows.Scan(
			&id,
			&createdAt,
			&status,
			&totalPrice,
			&paymentMethod,
			&notes,
			&userID,
			&addr.FullName,
			&addr.Street,
			&addr.City,
			&addr.PostalCode,
		)
		if err != nil {
			return nil, nil, err
		}

		resp := OrderResponse{
			ID:            id.String(),
			CreatedAt:     createdAt,
			Status:        order.Status(status).String(),
			TotalPrice:    totalPrice,
			PaymentMethod: paymentMethod,
			Address:       addr,
			OrderProducts: make([]OrderProductResponse, 0),
		}
		if notes.Valid {
			resp.Notes = &notes.String
		}
		if userID.Valid {
			resp.UserID = &userID.String
		}

		orders = append(orders, resp)
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return orders, ids, nil
}

// attachOrderProducts loads the line items for the given orders and merges
// them into the responses. Product names come from the catalog's products
// table; a line item whose product has been removed from the catalog keeps
// its captured data and an empty product name.
func attachOrderProducts(ctx context.Context, db *gorm.DB, orders []OrderResponse, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			op.order_id,
			op.product_id,
			op.size,
			op.quantity,
			op.price,
			COALESCE(p.name, '')
		FROM order_products op
		LEFT JOIN products p ON p.id = op.product_id
		WHERE op.order_id IN ?
		ORDER BY op.id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	itemsByOrder := make(map[uuid.UUID][]OrderProductResponse, len(ids))
	for rows.Next() {
		var (
			orderID     uuid.UUID
			item        OrderProductResponse
			productName string
		)

		err = rows.Scan(
			&orderID,
			&item.ProductID,
			&item.Size,
			&item.Quantity,
			&item.Price,
			&productName,
		)
		if err != nil {
			return err
		}

		item.Product = ProductResponse{
			ID:   item.ProductID,
			Name: productName,
		}
		itemsByOrder[orderID] = append(itemsByOrder[orderID], item)
	}
	if err = rows.Err(); err != nil {
		return err
	}

	for i := range orders {
		if items, ok := itemsByOrder[ids[i]]; ok {
			orders[i].OrderProducts = items
		}
	}

	return nil
}
