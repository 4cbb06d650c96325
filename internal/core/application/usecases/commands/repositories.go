// Package commands contains the operations that change workflow state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every handler validates its command, runs in exactly one unit of work and
// either commits all of its writes or none of them.
package commands

import (
	"context"

	"salesflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	LineItemRepoFactory interface {
		LineItemRepository() ports.LineItemRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	StageHistoryRepoFactory interface {
		StageHistoryRepository() ports.StageHistoryRepository
	}

	ImportLogRepoFactory interface {
		ImportLogRepository() ports.ImportLogRepository
	}

	// WorkflowUoW covers operations on an existing order and its items:
	// splitting, stage changes, item milestones and scheduling.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, id)
	//   items, err := uow.LineItemRepository().GetByOrder(ctx, id)
	//   // ... mutate, then Update and Append history
	//
	//   err = uow.Commit(ctx)
	WorkflowUoW interface {
		TxManager
		OrderRepoFactory
		LineItemRepoFactory
		StageHistoryRepoFactory
	}

	WorkflowUoWFactory interface {
		Create() WorkflowUoW
	}

	// ImportUoW covers master order creation: customer, order, items and the
	// import log entry are written in one transaction.
	ImportUoW interface {
		TxManager
		CustomerRepoFactory
		OrderRepoFactory
		LineItemRepoFactory
		ImportLogRepoFactory
	}

	ImportUoWFactory interface {
		Create() ImportUoW
	}

	// HistoryUoW covers the periodic health sweep and history retention.
	HistoryUoW interface {
		TxManager
		OrderRepoFactory
		StageHistoryRepoFactory
	}

	HistoryUoWFactory interface {
		Create() HistoryUoW
	}
)
