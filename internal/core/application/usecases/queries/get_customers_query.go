package queries

import (
	"errors"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/pkg/guard"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery lists customers with how many orders each one owns.
type GetCustomersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCustomersQuery() GetCustomersQuery {
	return GetCustomersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

type CustomerSummary struct {
	ID         kernel.UUID
	Name       string
	Email      string
	Phone      string
	Address    string
	OrderCount int
}
