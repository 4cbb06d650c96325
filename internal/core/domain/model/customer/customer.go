// Package customer contains the Customer entity. Customers are created the
// first time an import references them and are never deleted by the workflow.
package customer

import (
	"errors"
	"strings"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/pkg/errs"
	"salesflow/internal/pkg/guard"
)

var (
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
	ErrNameIsRequired           = errs.NewValueIsRequiredError("customer name")
)

// Contact holds optional reach-out details for a customer.
type Contact struct {
	Email   string
	Phone   string
	Address string
}

// Customer is identified by id but looked up by name: imports reuse an
// existing customer with the same name instead of creating a duplicate.
type Customer struct {
	id      kernel.UUID
	name    string
	contact Contact
	guard   guard.ConstructorGuard
}

func NewCustomer(id kernel.UUID, name string, contact Contact) (*Customer, error) {
	c := &Customer{
		contact: Contact{
			Email:   strings.TrimSpace(contact.Email),
			Phone:   strings.TrimSpace(contact.Phone),
			Address: strings.TrimSpace(contact.Address),
		},
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rebuilds a customer loaded from storage.
func RestoreCustomer(id kernel.UUID, name string, contact Contact) (*Customer, error) {
	return NewCustomer(id, name, contact)
}

// NormalizeName is the form names are compared and stored in.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID  { return c.id }
func (c *Customer) Name() string     { return c.name }
func (c *Customer) Contact() Contact { return c.contact }

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	name = NormalizeName(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
