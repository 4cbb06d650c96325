package order

import (
	"fmt"

	"salesflow/internal/pkg/errs"
)

// Status is the lifecycle label of an order. It is distinct from Stage: Stage
// marks pipeline position, Status marks the milestones reached once goods are
// produced.
//
// State transitions:
//
//	Created ──> ReadyForFG ──> Invoiced ──┐
//	               │  ^            ^      │
//	               └──┘            └──────┘
//	   (re-marking keeps the status, re-invoicing stays Invoiced)
type Status int

const (
	// UnknownStatus catches uninitialized Status values.
	UnknownStatus Status = iota

	// Created is the status of every new master and child order.
	Created

	// ReadyForFG means every line item has been flagged finished-goods ready.
	ReadyForFG

	// Invoiced is final: every line item is covered by an invoice.
	Invoiced
)

var statusStrings = map[Status]string{
	Created:    "Created",
	ReadyForFG: "ReadyForFG",
	Invoiced:   "Invoiced",
}

// ParseStatus converts a persisted status label into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusStrings {
		if name == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := statusStrings[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusStrings[s]; ok {
		return name
	}
	return "Unknown"
}

// MarkReadyForFG transitions Created to ReadyForFG. ReadyForFG and Invoiced
// are kept as they are.
func (s Status) MarkReadyForFG() (Status, error) {
	if s == Invoiced {
		return Invoiced, nil
	}
	if s != Created && s != ReadyForFG {
		return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to mark ready for FG", s),
		)
	}
	return ReadyForFG, nil
}

// Invoice transitions to Invoiced. ReadyForFG and already invoiced orders
// qualify; each call carries a new invoice id.
func (s Status) Invoice() (Status, error) {
	switch s {
	case ReadyForFG, Invoiced:
		return Invoiced, nil
	default:
		return UnknownStatus, errs.NewPreconditionFailedError("finished goods are not ready")
	}
}
