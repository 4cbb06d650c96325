package commands

import (
	"context"
	"errors"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/core/domain/services"
	"salesflow/internal/pkg/guard"
)

var ErrCreateInvoiceCommandIsNotConstructed = errors.New(
	"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
)

// CreateInvoiceCommand invoices every item of an order.
type CreateInvoiceCommand struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewCreateInvoiceCommand(orderID kernel.UUID) (CreateInvoiceCommand, error) {
	if err := validateOrderID(orderID); err != nil {
		return CreateInvoiceCommand{}, err
	}
	return CreateInvoiceCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

func (c CreateInvoiceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// InvoiceIDGenerator issues invoice numbers.
type InvoiceIDGenerator func() (string, error)

// CreateInvoiceCommandHandler fails with "FG not ready" unless every item is
// finished goods and returns the new invoice id otherwise.
type CreateInvoiceCommandHandler struct {
	uowFactory  WorkflowUoWFactory
	clock       kernel.Clock
	newID       InvoiceIDGenerator
	fulfillment services.Fulfillment
}

func NewCreateInvoiceCommandHandler(uowFactory WorkflowUoWFactory, clock kernel.Clock) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{
		uowFactory:  uowFactory,
		clock:       clock,
		newID:       order.NewInvoiceID,
		fulfillment: services.NewFulfillment(),
	}
}

func (h CreateInvoiceCommandHandler) Handle(ctx context.Context, cmd CreateInvoiceCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	itemRepo := uow.LineItemRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return "", err
	}

	items, err := itemRepo.GetByOrder(ctx, o.ID())
	if err != nil {
		return "", err
	}

	invoiceID, err := h.newID()
	if err != nil {
		return "", err
	}

	if err = h.fulfillment.Invoice(o, items, invoiceID, h.clock.Now()); err != nil {
		return "", err
	}

	for _, item := range items {
		if err = itemRepo.Update(ctx, item); err != nil {
			return "", err
		}
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return invoiceID, nil
}
