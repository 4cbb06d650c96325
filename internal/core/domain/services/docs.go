// Package services provides domain services for rules that span an order and
// its line items. Line items are separate entities, so any rule that reads
// them together with their owning order lives here rather than on the
// aggregate.
//
// The package includes:
//   - StageGate: the per-stage preconditions guarding pipeline advancement
//   - OrderSplitter: child order creation and line item reassignment
//   - Fulfillment: bulk finished-goods readiness and invoicing
package services
