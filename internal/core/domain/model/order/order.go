package order

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a customer order. It carries the line
// items, the delivery address link, the payment method and the captured
// total, and it owns the status lifecycle from checkout to delivery.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and address identifier
//   - Must contain at least one valid line item
//   - Total price must equal the sum of line-item price x quantity
//   - Payment method is required
//   - Status transitions follow the Status transition table
//
// The struct uses private fields to ensure encapsulation; state is only
// mutated through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID is the owning customer's identifier, nil for guest checkout.
	// User identities are owned by the external auth collaborator, so the
	// value is an opaque string rather than a kernel UUID.
	userID *string

	// addressID links the delivery address created for this order
	addressID kernel.UUID

	// items are the ordered line items with captured unit prices
	items []LineItem

	// totalPrice is the order total, equal to the sum of line totals
	totalPrice kernel.Money

	// paymentMethod is the declared payment method, e.g. "CASH"
	paymentMethod string

	// notes carries optional customer instructions
	notes *string

	// status is the current state in the order lifecycle
	status Status

	// createdAt is the checkout timestamp in UTC
	createdAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order at checkout time with validation.
// The order starts in Pending status with the creation timestamp set to now.
//
// All structural violations (missing items, empty payment method, invalid
// identifiers) are reported together in a joined error. The declared total
// is checked against the sum of line totals and rejected on mismatch, so a
// client-supplied total can never diverge from the resolved prices.
func NewOrder(
	id kernel.UUID,
	userID *string,
	addressID kernel.UUID,
	items []LineItem,
	totalPrice kernel.Money,
	paymentMethod string,
	notes *string,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
		order.setAddressID(addressID),
		order.setItems(items),
		order.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}
	order.notes = notes

	if err := order.setTotalPrice(totalPrice); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence.
// Field-level invariants are re-checked, but the total-equals-sum rule is
// not: rows written before the rule existed must still load.
func RestoreOrder(
	id kernel.UUID,
	userID *string,
	addressID kernel.UUID,
	items []LineItem,
	status Status,
	totalPrice kernel.Money,
	paymentMethod string,
	notes *string,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		notes:         notes,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
		order.setAddressID(addressID),
		order.setItems(items),
		order.setPaymentMethod(paymentMethod),
		status.Validate(),
		totalPrice.Validate(),
	); err != nil {
		return nil, err
	}

	order.status = status
	order.totalPrice = totalPrice
	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// a factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owning customer's identifier, nil for guest orders.
func (o *Order) UserID() *string {
	return o.userID
}

// AddressID returns the identifier of the delivery address.
func (o *Order) AddressID() kernel.UUID {
	return o.addressID
}

// Items returns the ordered line items.
func (o *Order) Items() []LineItem {
	return o.items
}

// TotalPrice returns the captured order total.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// PaymentMethod returns the declared payment method.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// Notes returns the optional customer instructions.
func (o *Order) Notes() *string {
	return o.notes
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus transitions the order to the target status.
//
// The transition must be a legal edge of the status transition table;
// illegal edges are rejected with a validation error naming the attempted
// transition, leaving the order unchanged.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ItemsTotal computes the sum of all line totals.
func (o *Order) ItemsTotal() (kernel.Money, error) {
	if len(o.items) == 0 {
		return kernel.Money{}, errs.NewValueIsRequiredError("products")
	}

	total, err := o.items[0].Total()
	if err != nil {
		return kernel.Money{}, err
	}
	for _, item := range o.items[1:] {
		lineTotal, itemErr := item.Total()
		if itemErr != nil {
			return kernel.Money{}, itemErr
		}
		total, err = total.Add(lineTotal)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return total, nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setUserID validates the optional owning user identifier.
// A nil user is a guest order; an empty non-nil value is invalid.
func (o *Order) setUserID(userID *string) error {
	if userID != nil && *userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	o.userID = userID
	return nil
}

// setAddressID validates and sets the delivery address link.
func (o *Order) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("addressId", err)
	}
	o.addressID = addressID
	return nil
}

// setItems validates and sets the line items. At least one is required.
func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("products")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}

// setPaymentMethod validates and sets the payment method.
func (o *Order) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	o.paymentMethod = paymentMethod
	return nil
}

// setTotalPrice checks the declared total against the line totals.
// Must be called after setItems succeeded.
func (o *Order) setTotalPrice(totalPrice kernel.Money) error {
	if err := totalPrice.Validate(); err != nil {
		return err
	}

	itemsTotal, err := o.ItemsTotal()
	if err != nil {
		return err
	}

	if !totalPrice.IsEqual(itemsTotal) {
		return errs.NewValueIsInvalidErrorWithCause("totalPrice",
			fmt.Errorf("declared total %s does not match line item total %s",
				totalPrice, itemsTotal))
	}

	o.totalPrice = totalPrice
	return nil
}
