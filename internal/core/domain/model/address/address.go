// Package address provides the delivery address entity. An address is
// created once per order and never updated or shared between orders, so
// the entity has no mutating behavior beyond construction.
package address

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through the NewAddress factory method.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the delivery destination recorded for a single order.
//
// Invariants:
//   - Full name, street, city and postal code are all required
//   - The owning user link is optional (guest checkout)
type Address struct {
	id         kernel.UUID
	fullName   string
	street     string
	city       string
	postalCode string
	userID     *string

	isConstructed bool
}

// NewAddress creates a validated Address. Every violated field is reported
// in a joined error so the caller can surface all of them at once.
func NewAddress(
	id kernel.UUID,
	fullName string,
	street string,
	city string,
	postalCode string,
	userID *string,
) (*Address, error) {
	addr := &Address{
		isConstructed: true,
	}

	if err := errors.Join(
		addr.setID(id),
		addr.setField(&addr.fullName, "address.fullName", fullName),
		addr.setField(&addr.street, "address.street", street),
		addr.setField(&addr.city, "address.city", city),
		addr.setField(&addr.postalCode, "address.postalCode", postalCode),
		addr.setUserID(userID),
	); err != nil {
		return nil, err
	}

	return addr, nil
}

// RestoreAddress reconstructs an Address from persistence.
func RestoreAddress(
	id kernel.UUID,
	fullName string,
	street string,
	city string,
	postalCode string,
	userID *string,
) (*Address, error) {
	return NewAddress(id, fullName, street, city, postalCode, userID)
}

// Validate ensures the Address was created via a factory method.
func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// ID returns the address identifier.
func (a *Address) ID() kernel.UUID {
	return a.id
}

// FullName returns the recipient's full name.
func (a *Address) FullName() string {
	return a.fullName
}

// Street returns the street line.
func (a *Address) Street() string {
	return a.street
}

// City returns the city.
func (a *Address) City() string {
	return a.city
}

// PostalCode returns the postal code.
func (a *Address) PostalCode() string {
	return a.postalCode
}

// UserID returns the optional owning user identifier.
func (a *Address) UserID() *string {
	return a.userID
}

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Address) setField(target *string, name string, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*target = value
	return nil
}

func (a *Address) setUserID(userID *string) error {
	if userID != nil && *userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	a.userID = userID
	return nil
}
