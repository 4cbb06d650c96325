package queries

import (
	"errors"
	"time"

	"salesflow/internal/core/domain/model/health"
	"salesflow/internal/core/domain/model/history"
	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/pkg/errs"
	"salesflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order with its items and stage history.
type GetOrderQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

type LineItemView struct {
	ID                   kernel.UUID
	SkuName              string
	SkuCode              string
	Quantity             int
	UnitRate             decimal.Decimal
	LineTotal            decimal.Decimal
	MaterialOrdered      bool
	MaterialOrderRef     string
	MaterialExpectedDate *time.Time
	MaterialReceived     bool
	MaterialReceivedDate *time.Time
	QA                   order.QAOutcome
	FGReady              bool
	InvoiceCreated       bool
	InvoiceID            string
	LastUpdated          time.Time
}

type HistoryView struct {
	Kind      history.Kind
	Stage     order.Stage
	EnteredAt time.Time
	Color     health.Color
}

// OrderDetail is an order summary plus its items and history, oldest
// history entry first. Children lists the numbers of orders split off it.
type OrderDetail struct {
	OrderSummary
	Remarks  string
	Children []string
	Items    []LineItemView
	History  []HistoryView
}
