package services

import (
	"time"

	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/pkg/errs"
)

// Fulfillment applies the finished-goods and invoicing milestones to an order
// and all of its items at once. An order without items passes both checks.
type Fulfillment struct{}

func NewFulfillment() Fulfillment {
	return Fulfillment{}
}

// MarkAllFGReady flags every item as finished goods and moves the order to
// ReadyForFG. Every item must be QA approved. Repeating it is harmless and an
// invoiced order keeps its status.
func (Fulfillment) MarkAllFGReady(o *order.Order, items []*order.LineItem, now time.Time) error {
	if err := checkItems(o, items); err != nil {
		return err
	}
	for _, item := range items {
		if !item.QA().IsApproved() {
			return errs.NewPreconditionFailedError("QA incomplete")
		}
	}

	for _, item := range items {
		if err := item.MarkFGReady(now); err != nil {
			return err
		}
	}
	return o.MarkReadyForFG(now)
}

// Invoice attaches every item to invoiceID and moves the order to Invoiced.
// Every item must be finished goods. Invoicing again replaces the id.
func (Fulfillment) Invoice(o *order.Order, items []*order.LineItem, invoiceID string, now time.Time) error {
	if err := checkItems(o, items); err != nil {
		return err
	}
	if invoiceID == "" {
		return errs.NewValueIsRequiredError("invoice id")
	}
	for _, item := range items {
		if !item.FGReady() {
			return errs.NewPreconditionFailedError("FG not ready")
		}
	}

	// Items may have been flagged before they were split into this order.
	if err := o.MarkReadyForFG(now); err != nil {
		return err
	}
	for _, item := range items {
		if err := item.MarkInvoiced(invoiceID, now); err != nil {
			return err
		}
	}
	return o.MarkInvoiced(invoiceID, now)
}

func checkItems(o *order.Order, items []*order.LineItem) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return ensureOwnedBy(o, items)
}
