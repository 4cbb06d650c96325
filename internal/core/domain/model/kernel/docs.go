// Package kernel provides the shared domain primitives of the sales order workflow.
//
// The package includes:
//   - UUID: the identifier value object used by every entity
//   - Clock: the time source injected into command handlers and jobs
//
// Both are immutable and safe for concurrent use.
package kernel
