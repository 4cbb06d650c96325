package commands

import (
	"context"
	"log/slog"

	"salesflow/internal/core/domain/model/order"
)

// MasterOrderCreator is the part of CreateMasterOrderCommandHandler the import needs.
type MasterOrderCreator interface {
	Handle(ctx context.Context, cmd CreateMasterOrderCommand) (*order.Order, error)
}

// ImportMasterOrdersCommandHandler turns an import batch into master orders.
// Every group is validated before the first write; each group is then
// created in its own transaction. Groups whose order number already exists
// are skipped, so re-uploading a file only adds the new orders.
type ImportMasterOrdersCommandHandler struct {
	creator MasterOrderCreator
	logger  *slog.Logger
}

func NewImportMasterOrdersCommandHandler(creator MasterOrderCreator, logger *slog.Logger) ImportMasterOrdersCommandHandler {
	return ImportMasterOrdersCommandHandler{
		creator: creator,
		logger:  logger.With("component", "import_master_orders"),
	}
}

// Handle returns the number of master orders created. When a group fails
// after earlier groups were committed, the count of committed orders is
// returned together with the error.
func (h ImportMasterOrdersCommandHandler) Handle(ctx context.Context, cmd ImportMasterOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	groups, err := cmd.Groups()
	if err != nil {
		return 0, err
	}

	created, skipped := 0, 0
	for _, group := range groups {
		master, err := h.creator.Handle(ctx, group)
		if IsDuplicateOrderNo(err) {
			skipped++
			h.logger.WarnContext(ctx, "Skipped existing master order",
				"source", cmd.Source(),
				"order_no", group.OrderNo(),
			)
			continue
		}
		if err != nil {
			h.logger.ErrorContext(ctx, "Failed to import master order",
				"source", cmd.Source(),
				"order_no", group.OrderNo(),
				"created", created,
				"error", err,
			)
			return created, err
		}
		created++
		h.logger.DebugContext(ctx, "Imported master order",
			"source", cmd.Source(),
			"order_no", master.OrderNo(),
			"lines", len(group.Lines()),
		)
	}

	h.logger.InfoContext(ctx, "Import processed", "source", cmd.Source(), "orders", created, "skipped", skipped)
	return created, nil
}
