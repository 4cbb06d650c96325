// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read straight from the database into flat read models and never go
// through the aggregates.
package queries

import (
	"errors"
	"time"

	"salesflow/internal/core/domain/model/health"
	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists the order board: masters and children, optionally
// restricted to one stage.
//
// Example:
//
//	query, err := NewGetOrdersQuery(&stage) // nil lists every order
//	board, err := handler.Handle(ctx, query)
//	for _, row := range board {
//	    fmt.Printf("%s %s %s\n", row.OrderNo, row.Stage, row.Health)
//	}
type GetOrdersQuery struct {
	stage *order.Stage
	guard guard.ConstructorGuard
}

func NewGetOrdersQuery(stage *order.Stage) (GetOrdersQuery, error) {
	if stage != nil {
		if err := stage.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		s := *stage
		stage = &s
	}
	return GetOrdersQuery{stage: stage, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Stage returns the filter, or nil for all stages.
func (q GetOrdersQuery) Stage() *order.Stage {
	return q.stage
}

// OrderSummary is one row of the order board. Health and DaysRemaining are
// computed at read time; DaysRemaining is nil without a ship date.
type OrderSummary struct {
	ID               kernel.UUID
	OrderNo          string
	ParentID         *kernel.UUID
	CustomerName     string
	Stage            order.Stage
	Status           order.Status
	Priority         int
	Plant            string
	ExpectedShipDate *time.Time
	LastActivity     time.Time
	InvoiceID        string
	Version          int
	ItemCount        int
	TotalValue       decimal.Decimal
	Health           health.Color
	DaysRemaining    *int
}

// IsMaster reports whether the row is a master order.
func (s OrderSummary) IsMaster() bool {
	return s.ParentID == nil
}
