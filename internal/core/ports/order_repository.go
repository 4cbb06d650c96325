// Package ports defines the persistence contracts of the sales order workflow.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are versioned: Update succeeds only if the stored version equals the
// version the aggregate was loaded with.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order and advances its version.
	// Returns errs.VersionIsInvalidError when the order was changed
	// concurrently and errs.ObjectNotFoundError when it no longer exists.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ExistsByOrderNo reports whether an order with the given number is stored.
	ExistsByOrderNo(ctx context.Context, orderNo string) (bool, error)

	// CountChildren returns the number of orders directly split off parentID.
	CountChildren(ctx context.Context, parentID kernel.UUID) (int, error)

	// GetAll retrieves every order, masters and children alike.
	GetAll(ctx context.Context) ([]*order.Order, error)
}

// LineItemRepository defines the persistence contract for order line items.
type LineItemRepository interface {
	// AddAll persists new line items in one statement.
	AddAll(ctx context.Context, items []*order.LineItem) error

	// Update persists changes to a line item, including its owning order.
	Update(ctx context.Context, item *order.LineItem) error

	// Get retrieves a line item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.LineItem, error)

	// GetByIDs retrieves the given items in the order of ids. Returns
	// errs.ObjectNotFoundError naming the first missing id.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.LineItem, error)

	// GetByOrder retrieves all items currently owned by orderID.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.LineItem, error)
}
