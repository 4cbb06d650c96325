package commands

import (
	"errors"
	"strings"
	"time"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/pkg/errs"
	"salesflow/internal/pkg/guard"
)

var (
	ErrSplitOrderCommandIsNotConstructed = errors.New(
		"SplitOrderCommand must be created via NewSplitOrderCommand constructor",
	)
	ErrLineItemIDsAreRequired = errs.NewValueIsRequiredError("line item ids")
)

// SplitOrderCommand moves a subset of an order's line items into a new child
// order. ShipDate and Plant override the values copied from the parent.
//
// Example:
//
//	cmd, err := NewSplitOrderCommand(masterID, []kernel.UUID{itemA, itemB}, nil, "Plant-A")
//	result, err := handler.Handle(ctx, cmd)
//	// result.Child.OrderNo() == "SO1001/1"
type SplitOrderCommand struct {
	parentID kernel.UUID
	itemIDs  []kernel.UUID
	shipDate *time.Time
	plant    string

	guard guard.ConstructorGuard
}

// NewSplitOrderCommand rejects an empty item set. Duplicate ids are collapsed.
func NewSplitOrderCommand(
	parentID kernel.UUID,
	itemIDs []kernel.UUID,
	shipDate *time.Time,
	plant string,
) (SplitOrderCommand, error) {
	cmd := SplitOrderCommand{
		shipDate: shipDate,
		plant:    strings.TrimSpace(plant),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParentID(parentID),
		cmd.setItemIDs(itemIDs),
	); err != nil {
		return SplitOrderCommand{}, err
	}

	return cmd, nil
}

func (c SplitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSplitOrderCommandIsNotConstructed)
}

func (c SplitOrderCommand) ParentID() kernel.UUID { return c.parentID }
func (c SplitOrderCommand) ShipDate() *time.Time  { return c.shipDate }
func (c SplitOrderCommand) Plant() string         { return c.plant }

func (c SplitOrderCommand) ItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.itemIDs))
	copy(ids, c.itemIDs)
	return ids
}

func (c *SplitOrderCommand) setParentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parent order id", err)
	}
	c.parentID = id
	return nil
}

func (c *SplitOrderCommand) setItemIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return ErrLineItemIDsAreRequired
	}

	seen := make(map[string]struct{}, len(ids))
	unique := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("line item ids", err)
		}
		if _, dup := seen[id.String()]; dup {
			continue
		}
		seen[id.String()] = struct{}{}
		unique = append(unique, id)
	}

	c.itemIDs = unique
	return nil
}
