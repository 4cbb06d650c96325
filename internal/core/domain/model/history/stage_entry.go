// Package history contains the append-only stage history of an order.
// Entries are immutable once created; the only deletion is the retention
// policy on health snapshots.
package history

import (
	"errors"
	"fmt"
	"time"

	"salesflow/internal/core/domain/model/health"
	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/pkg/errs"
	"salesflow/internal/pkg/guard"
)

var ErrStageEntryIsNotConstructed = errors.New("StageEntry must be created via a constructor")

// Kind tells why an entry was written.
type Kind int

const (
	UnknownKind Kind = iota
	// Transition is written by a gated advance.
	Transition
	// DirectMove is written by the administrative unguarded move.
	DirectMove
	// HealthSnapshot is written by the periodic health sweep.
	HealthSnapshot
)

var kindStrings = map[Kind]string{
	Transition:     "Transition",
	DirectMove:     "DirectMove",
	HealthSnapshot: "HealthSnapshot",
}

func ParseKind(s string) (Kind, error) {
	for kind, name := range kindStrings {
		if name == s {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("history kind", fmt.Errorf("%q is not a valid kind", s))
}

func (k Kind) String() string {
	if name, ok := kindStrings[k]; ok {
		return name
	}
	return "Unknown"
}

func (k Kind) Validate() error {
	if _, ok := kindStrings[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("history kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// StageEntry records that an order was in stage at enteredAt, together with
// the health colour the order had at that moment.
type StageEntry struct {
	id        kernel.UUID
	orderID   kernel.UUID
	kind      Kind
	stage     order.Stage
	enteredAt time.Time
	color     health.Color
	guard     guard.ConstructorGuard
}

// NewTransitionEntry records the stage o has just entered. The colour is
// computed from o's ship date at now.
func NewTransitionEntry(id kernel.UUID, o *order.Order, kind Kind, now time.Time) (*StageEntry, error) {
	if kind != Transition && kind != DirectMove {
		return nil, errs.NewValueIsInvalidErrorWithCause("history kind", fmt.Errorf("%s is not a stage change", kind))
	}
	return newEntry(id, o, kind, now)
}

// NewHealthSnapshot records o's current stage and colour for the sweep.
func NewHealthSnapshot(id kernel.UUID, o *order.Order, now time.Time) (*StageEntry, error) {
	return newEntry(id, o, HealthSnapshot, now)
}

func newEntry(id kernel.UUID, o *order.Order, kind Kind, now time.Time) (*StageEntry, error) {
	if err := o.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("order", err)
	}
	return RestoreStageEntry(id, o.ID(), kind, o.Stage(), now, health.Of(o.ExpectedShipDate(), now))
}

// RestoreStageEntry rebuilds an entry loaded from storage.
func RestoreStageEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	kind Kind,
	stage order.Stage,
	enteredAt time.Time,
	color health.Color,
) (*StageEntry, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		kind.Validate(),
		stage.Validate(),
		color.Validate(),
	); err != nil {
		return nil, err
	}
	if enteredAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("entered at")
	}

	return &StageEntry{
		id:        id,
		orderID:   orderID,
		kind:      kind,
		stage:     stage,
		enteredAt: enteredAt,
		color:     color,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (e *StageEntry) Validate() error {
	if e == nil {
		return ErrStageEntryIsNotConstructed
	}
	return e.guard.Validate(ErrStageEntryIsNotConstructed)
}

func (e *StageEntry) ID() kernel.UUID      { return e.id }
func (e *StageEntry) OrderID() kernel.UUID { return e.orderID }
func (e *StageEntry) Kind() Kind           { return e.kind }
func (e *StageEntry) Stage() order.Stage   { return e.stage }
func (e *StageEntry) EnteredAt() time.Time { return e.enteredAt }
func (e *StageEntry) Color() health.Color  { return e.color }
