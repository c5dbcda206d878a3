package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// OrderItemInput is one cart entry as submitted by the client.
// The client may send a price alongside, but it is never carried into the
// command: unit prices are resolved from the catalog at handling time.
type OrderItemInput struct {
	ProductID string
	Size      string
	Quantity  int
}

// AddressInput carries the delivery address fields of a checkout request.
type AddressInput struct {
	FullName   string
	Street     string
	City       string
	PostalCode string
}

// CreateOrderCommand represents a validated checkout request: the cart
// items, the declared total, the payment method and the delivery address.
//
// Construction enumerates every violated field at once, so a client
// submitting an empty cart with a blank city learns about both problems
// in a single response.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	userID        *string
	items         []OrderItemInput
	declaredTotal kernel.Money
	paymentMethod string
	notes         *string
	address       AddressInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command for a checkout request.
// All structural violations are joined into one error.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID *string,
	items []OrderItemInput,
	declaredTotal kernel.Money,
	paymentMethod string,
	notes *string,
	addr AddressInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setItems(items),
		cmd.setDeclaredTotal(declaredTotal),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setAddress(addr),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the owning user's identifier, nil for guest checkout.
func (c CreateOrderCommand) UserID() *string {
	return c.userID
}

// Items returns the submitted cart entries.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

// DeclaredTotal returns the total price the client claims for the cart.
// The handler verifies it against the resolved catalog prices.
func (c CreateOrderCommand) DeclaredTotal() kernel.Money {
	return c.declaredTotal
}

// PaymentMethod returns the declared payment method.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// Notes returns optional customer instructions.
func (c CreateOrderCommand) Notes() *string {
	return c.notes
}

// Address returns the delivery address fields.
func (c CreateOrderCommand) Address() AddressInput {
	return c.address
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID *string) error {
	if userID != nil && *userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("products")
	}

	var violations []error
	for i, item := range items {
		if item.ProductID == "" {
			violations = append(violations,
				errs.NewValueIsRequiredError(fmt.Sprintf("products[%d].productId", i)))
		}
		if item.Size == "" {
			violations = append(violations,
				errs.NewValueIsRequiredError(fmt.Sprintf("products[%d].size", i)))
		}
		if item.Quantity <= 0 {
			violations = append(violations,
				errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("products[%d].quantity", i),
					fmt.Errorf("%d is not greater than 0", item.Quantity)))
		}
	}
	if err := errors.Join(violations...); err != nil {
		return err
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setDeclaredTotal(declaredTotal kernel.Money) error {
	if err := declaredTotal.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("totalPrice", err)
	}
	c.declaredTotal = declaredTotal
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateOrderCommand) setAddress(addr AddressInput) error {
	var violations []error
	if addr.FullName == "" {
		violations = append(violations, errs.NewValueIsRequiredError("address.fullName"))
	}
	if addr.Street == "" {
		violations = append(violations, errs.NewValueIsRequiredError("address.street"))
	}
	if addr.City == "" {
		violations = append(violations, errs.NewValueIsRequiredError("address.city"))
	}
	if addr.PostalCode == "" {
		violations = append(violations, errs.NewValueIsRequiredError("address.postalCode"))
	}
	if err := errors.Join(violations...); err != nil {
		return err
	}

	c.address = addr
	return nil
}
