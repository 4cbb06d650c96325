package commands

import (
	"context"
	"fmt"

	"salesflow/internal/core/domain/model/customer"
	"salesflow/internal/core/domain/model/importlog"
	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/pkg/errs"
)

// CreateMasterOrderCommandHandler creates a master order and everything that
// belongs to it in one transaction. Writes happen in a fixed order:
// customer (only if new), order, items, import log entry.
type CreateMasterOrderCommandHandler struct {
	uowFactory ImportUoWFactory
	clock      kernel.Clock
}

func NewCreateMasterOrderCommandHandler(uowFactory ImportUoWFactory, clock kernel.Clock) CreateMasterOrderCommandHandler {
	return CreateMasterOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the created master order. An order number that already
// exists is rejected as invalid input; child numbering relies on order
// numbers being unique.
func (h CreateMasterOrderCommandHandler) Handle(ctx context.Context, cmd CreateMasterOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.clock.Now()
	orderRepo := uow.OrderRepository()

	exists, err := orderRepo.ExistsByOrderNo(ctx, cmd.OrderNo())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order number",
			fmt.Errorf("%s: %w", cmd.OrderNo(), ErrOrderNoAlreadyExists),
		)
	}

	owner, err := h.findOrCreateCustomer(ctx, uow, cmd.CustomerName())
	if err != nil {
		return nil, err
	}

	master, err := order.NewMasterOrder(
		kernel.NewUUID(),
		cmd.OrderNo(),
		owner.ID(),
		"Imported from "+cmd.Source(),
		now,
	)
	if err != nil {
		return nil, err
	}
	if err = orderRepo.Add(ctx, master); err != nil {
		return nil, err
	}

	lines := cmd.Lines()
	items := make([]*order.LineItem, 0, len(lines))
	skuCodes := make([]string, 0, len(lines))
	for _, line := range lines {
		item, itemErr := order.NewLineItem(
			kernel.NewUUID(),
			master.ID(),
			line.SkuName,
			line.SkuCode,
			line.Quantity,
			line.UnitRate,
			now,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
		skuCodes = append(skuCodes, item.SkuCode())
	}
	if err = uow.LineItemRepository().AddAll(ctx, items); err != nil {
		return nil, err
	}

	uploadedAt := cmd.UploadedAt()
	if uploadedAt.IsZero() {
		uploadedAt = now
	}
	entry, err := importlog.NewImportEntry(kernel.NewUUID(), cmd.Source(), master.OrderNo(), skuCodes, uploadedAt, now)
	if err != nil {
		return nil, err
	}
	if err = uow.ImportLogRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return master, nil
}

func (h CreateMasterOrderCommandHandler) findOrCreateCustomer(
	ctx context.Context,
	uow ImportUoW,
	name string,
) (*customer.Customer, error) {
	customerRepo := uow.CustomerRepository()

	existing, err := customerRepo.FindByName(ctx, customer.NormalizeName(name))
	if err == nil {
		return existing, nil
	}
	if !errs.IsNotFound(err) {
		return nil, err
	}

	created, err := customer.NewCustomer(kernel.NewUUID(), name, customer.Contact{})
	if err != nil {
		return nil, err
	}
	if err = customerRepo.Add(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}
