package ports

import (
	"context"

	"salesflow/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customers.
// Customers are never updated or deleted by the workflow.
type CustomerRepository interface {
	Add(ctx context.Context, c *customer.Customer) error

	// FindByName looks a customer up by normalized name. Returns
	// errs.ObjectNotFoundError when no customer has that name.
	FindByName(ctx context.Context, name string) (*customer.Customer, error)
}
