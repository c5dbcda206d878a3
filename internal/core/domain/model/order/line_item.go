package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem factory method.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is a value object representing one product/size/quantity entry
// within an order. The unit price is captured at order time and is
// intentionally denormalized from the catalog so historical orders are
// immutable to later price changes.
//
// Invariants:
//   - Product identifier and size label are required
//   - Quantity must be positive
//   - Unit price must be a valid positive Money value
type LineItem struct {
	productID string
	size      string
	quantity  int
	price     kernel.Money

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated line item. All violated fields are
// reported together in a joined error.
func NewLineItem(productID string, size string, quantity int, price kernel.Money) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setSize(size),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the LineItem was created via NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the catalog identifier of the ordered product.
func (li LineItem) ProductID() string {
	return li.productID
}

// Size returns the ordered size label, e.g. "L" or "250ml".
func (li LineItem) Size() string {
	return li.size
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Price returns the unit price captured at order time.
func (li LineItem) Price() kernel.Money {
	return li.price
}

// Total returns the line total, unit price multiplied by quantity.
func (li LineItem) Total() (kernel.Money, error) {
	if err := li.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return li.price.MulInt(li.quantity)
}

func (li *LineItem) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	li.productID = productID
	return nil
}

func (li *LineItem) setSize(size string) error {
	if size == "" {
		return errs.NewValueIsRequiredError("size")
	}
	li.size = size
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	li.price = price
	return nil
}
