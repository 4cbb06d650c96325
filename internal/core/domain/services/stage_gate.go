package services

import (
	"fmt"
	"time"

	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/pkg/errs"
)

// precondition checks that an order may leave its current stage.
type precondition func(o *order.Order, items []*order.LineItem) error

// StageGate decides whether a child order may advance to its successor stage.
// Each stage has at most one precondition; a stage without one is always
// passable. Item-based preconditions hold vacuously for an order with no
// items.
//
//	SalesSupport  plant and expected ship date assigned
//	Procurement   every item materialOrdered
//	RMInventory   every item materialReceived
//	Quality       every item QA approved
//
// Example usage:
//
//	gate := services.NewStageGate()
//	from, to, err := gate.Advance(child, items, clock.Now())
//	if errs.IsValidation(err) {
//	    // err names the unmet condition; child is unchanged
//	}
type StageGate struct {
	preconditions map[order.Stage]precondition
}

func NewStageGate() StageGate {
	return StageGate{
		preconditions: map[order.Stage]precondition{
			order.SalesSupport: requireSchedule,
			order.Procurement: requireEveryItem(
				(*order.LineItem).MaterialOrdered,
				"All raw materials must be ordered before moving to RM Inventory",
			),
			order.RMInventory: requireEveryItem(
				(*order.LineItem).MaterialReceived,
				"All raw materials must be received before moving to Quality",
			),
			order.Quality: requireEveryItem(
				func(i *order.LineItem) bool { return i.QA().IsApproved() },
				"QA approval required before moving to FG Inventory",
			),
		},
	}
}

// Check returns nil when o may advance. It reports an OperationIsNotAllowed
// error for masters and terminal stages and a PreconditionFailed error naming
// the unmet condition otherwise.
func (g StageGate) Check(o *order.Order, items []*order.LineItem) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := o.CanAdvance(); err != nil {
		return err
	}
	if err := ensureOwnedBy(o, items); err != nil {
		return err
	}

	if check, ok := g.preconditions[o.Stage()]; ok {
		return check(o, items)
	}
	return nil
}

// Advance checks the gate and moves o to its successor stage. On error o is
// left untouched.
func (g StageGate) Advance(o *order.Order, items []*order.LineItem, now time.Time) (order.Stage, order.Stage, error) {
	if err := g.Check(o, items); err != nil {
		return order.UnknownStage, order.UnknownStage, err
	}
	return o.Advance(now)
}

func requireSchedule(o *order.Order, _ []*order.LineItem) error {
	if !o.HasSchedule() {
		return errs.NewPreconditionFailedError(
			"Plant and Expected Ship Date must be assigned before moving to Procurement",
		)
	}
	return nil
}

func requireEveryItem(done func(*order.LineItem) bool, condition string) precondition {
	return func(_ *order.Order, items []*order.LineItem) error {
		for _, item := range items {
			if !done(item) {
				return errs.NewPreconditionFailedError(condition)
			}
		}
		return nil
	}
}

// ensureOwnedBy rejects items that are not valid or not owned by o.
func ensureOwnedBy(o *order.Order, items []*order.LineItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if !item.BelongsTo(o.ID()) {
			return errs.NewValueIsInvalidErrorWithCause(
				"line item",
				fmt.Errorf("%s does not belong to order %s", item.ID(), o.OrderNo()),
			)
		}
	}
	return nil
}
