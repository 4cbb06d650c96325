// Package order holds the sales order hierarchy: the Order aggregate root,
// its LineItem entities and the value types describing where an order is in
// the fulfillment pipeline.
//
// The package includes:
//   - Order: a master or child sales order with its stage, status and schedule
//   - LineItem: one SKU line with per-item milestone flags
//   - Stage: the fixed five-step pipeline, SalesSupport through FGInventory
//   - Status: Created -> ReadyForFG -> Invoiced
//   - QAOutcome: pending, approved or rejected
//
// Key business rules:
//   - Master orders are never advanced; only their children move through stages
//   - A child order is numbered "<parent orderNo>/<n>" by creation sequence
//   - An item belongs to exactly one order and moves with a split
//   - Finished goods require QA approval and invoices require finished goods
package order
