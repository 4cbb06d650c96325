package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/pkg/errs"
	"salesflow/internal/pkg/guard"
)

// defaultChildPriority is used for children of masters that were never prioritised.
const defaultChildPriority = 1

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created via one of its constructors.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewMasterOrder or NewChildOrder constructor")
	// ErrOrderNoIsRequired is returned for orders without an order number.
	ErrOrderNoIsRequired = errs.NewValueIsRequiredError("order number")
	// ErrPlantIsRequired is returned when a blank plant is allocated.
	ErrPlantIsRequired = errs.NewValueIsRequiredError("plant")
	// ErrShipDateIsRequired is returned when a ship date assignment carries no date.
	ErrShipDateIsRequired = errs.NewValueIsRequiredError("expected ship date")
)

// Order is the sales order aggregate root. Orders form a two-level hierarchy:
// a master order has no parent and represents the whole customer purchase; a
// child order references its parent and carries the subset of line items that
// was split off into it.
//
// Business rules:
//   - Only child orders move through the pipeline; masters stay in the stage
//     they were created in
//   - A child's order number is "<parent orderNo>/<n>" and never changes
//   - Every mutation refreshes lastActivity and is persisted against the
//     version the order was loaded with
//
// Line items are not part of the aggregate's state. They are separate
// entities that reference their owning order and are passed in where a rule
// depends on them.
type Order struct {
	id         kernel.UUID
	orderNo    string
	parentID   *kernel.UUID
	customerID kernel.UUID

	stage    Stage
	status   Status
	priority int

	plant            string
	expectedShipDate *time.Time
	lastActivity     time.Time
	remarks          string
	invoiceID        string

	// version is the optimistic concurrency stamp the order was loaded with.
	version int

	guard guard.ConstructorGuard
}

// NewMasterOrder creates a master order for an imported customer purchase. The
// order starts in the first stage with status Created, priority 0 and neither
// plant nor ship date.
func NewMasterOrder(
	id kernel.UUID,
	orderNo string,
	customerID kernel.UUID,
	remarks string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		stage:        FirstStage(),
		status:       Created,
		remarks:      strings.TrimSpace(remarks),
		lastActivity: now,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNo(orderNo),
		o.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// NewChildOrder creates the sequence-th child of parent. The child copies the
// parent's customer, priority (1 when the parent has none), plant and ship
// date; a non-nil shipDate or non-blank plant overrides the copied value.
//
// Example:
//
//	child, err := NewChildOrder(kernel.NewUUID(), master, 1, nil, "Plant-A", now)
//	// child.OrderNo() == "SO1001/1"
func NewChildOrder(
	id kernel.UUID,
	parent *Order,
	sequence int,
	shipDate *time.Time,
	plant string,
	now time.Time,
) (*Order, error) {
	if err := parent.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("parent", err)
	}
	if sequence < 1 {
		return nil, errs.NewValueIsOutOfRangeError("child sequence", sequence, 1, "unbounded")
	}

	parentID := parent.ID()
	o := &Order{
		parentID:         &parentID,
		customerID:       parent.customerID,
		stage:            FirstStage(),
		status:           Created,
		priority:         parent.priority,
		plant:            parent.plant,
		expectedShipDate: parent.expectedShipDate,
		lastActivity:     now,
		guard:            guard.NewConstructorGuard(),
	}
	if o.priority == 0 {
		o.priority = defaultChildPriority
	}
	if shipDate != nil {
		o.expectedShipDate = shipDate
	}
	if p := strings.TrimSpace(plant); p != "" {
		o.plant = p
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNo(fmt.Sprintf("%s/%d", parent.orderNo, sequence)),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// OrderParams carries the persisted state of an order for RestoreOrder.
type OrderParams struct {
	ID               kernel.UUID
	OrderNo          string
	ParentID         *kernel.UUID
	CustomerID       kernel.UUID
	Stage            Stage
	Status           Status
	Priority         int
	Plant            string
	ExpectedShipDate *time.Time
	LastActivity     time.Time
	Remarks          string
	InvoiceID        string
	Version          int
}

// RestoreOrder rebuilds an order from storage without applying creation
// defaults. Stage and status must be valid values.
func RestoreOrder(p OrderParams) (*Order, error) {
	o := &Order{
		parentID:         p.ParentID,
		plant:            p.Plant,
		expectedShipDate: p.ExpectedShipDate,
		lastActivity:     p.LastActivity,
		remarks:          p.Remarks,
		invoiceID:        p.InvoiceID,
		version:          p.Version,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setOrderNo(p.OrderNo),
		o.setCustomerID(p.CustomerID),
		o.setPriority(p.Priority),
		p.Stage.Validate(),
		p.Status.Validate(),
	); err != nil {
		return nil, err
	}
	o.stage = p.Stage
	o.status = p.Status

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID { return o.id }
func (o *Order) OrderNo() string { return o.orderNo }

// ParentID returns nil for master orders.
func (o *Order) ParentID() *kernel.UUID { return o.parentID }

func (o *Order) CustomerID() kernel.UUID      { return o.customerID }
func (o *Order) Stage() Stage                 { return o.stage }
func (o *Order) Status() Status               { return o.status }
func (o *Order) Priority() int                { return o.priority }
func (o *Order) Plant() string                { return o.plant }
func (o *Order) ExpectedShipDate() *time.Time { return o.expectedShipDate }
func (o *Order) LastActivity() time.Time      { return o.lastActivity }
func (o *Order) Remarks() string              { return o.remarks }
func (o *Order) InvoiceID() string            { return o.invoiceID }

// Version is the concurrency stamp the order was loaded or last saved with.
func (o *Order) Version() int { return o.version }

// IsMaster reports whether the order is the root of a hierarchy.
func (o *Order) IsMaster() bool {
	return o.parentID == nil
}

// IsChildOf reports whether o was split directly off parent.
func (o *Order) IsChildOf(parent *Order) bool {
	return parent != nil && o.parentID != nil && o.parentID.IsEqual(parent.id)
}

// CanAdvance reports whether the order is structurally able to move to the
// next pipeline stage. It does not evaluate line-item preconditions.
func (o *Order) CanAdvance() error {
	if o.IsMaster() {
		return errs.NewOperationIsNotAllowedError(
			"advance stage",
			"Master Sales Orders cannot move through workflow stages",
		)
	}
	if o.stage.IsTerminal() {
		return errs.NewOperationIsNotAllowedError(
			"advance stage",
			fmt.Sprintf("Sales Order already in final stage (%s)", o.stage),
		)
	}
	return nil
}

// Advance moves the order to the successor of its current stage. Callers are
// expected to have checked line-item preconditions first.
func (o *Order) Advance(now time.Time) (from Stage, to Stage, err error) {
	if err := o.CanAdvance(); err != nil {
		return UnknownStage, UnknownStage, err
	}

	next, ok := o.stage.Next()
	if !ok {
		return UnknownStage, UnknownStage, errs.NewOperationIsNotAllowedError(
			"advance stage",
			fmt.Sprintf("%s has no successor", o.stage),
		)
	}

	from = o.stage
	o.stage = next
	o.Touch(now)
	return from, next, nil
}

// MoveTo places the order in target without any precondition. It is the
// administrative counterpart of Advance and only refuses master orders and
// invalid stages.
func (o *Order) MoveTo(target Stage, now time.Time) (from Stage, err error) {
	if err := target.Validate(); err != nil {
		return UnknownStage, err
	}
	if o.IsMaster() {
		return UnknownStage, errs.NewOperationIsNotAllowedError(
			"move stage",
			"Master Sales Orders cannot move through workflow stages",
		)
	}

	from = o.stage
	o.stage = target
	o.Touch(now)
	return from, nil
}

// AssignShipDate schedules the order on the shipping calendar.
func (o *Order) AssignShipDate(shipDate *time.Time, now time.Time) error {
	if shipDate == nil || shipDate.IsZero() {
		return ErrShipDateIsRequired
	}
	o.expectedShipDate = shipDate
	o.Touch(now)
	return nil
}

// AllocatePlant assigns the manufacturing plant.
func (o *Order) AllocatePlant(plant string, now time.Time) error {
	plant = strings.TrimSpace(plant)
	if plant == "" {
		return ErrPlantIsRequired
	}
	o.plant = plant
	o.Touch(now)
	return nil
}

// ChangePriority sets the scheduling priority. Higher values are more urgent;
// 0 means not prioritised.
func (o *Order) ChangePriority(priority int, now time.Time) error {
	if err := o.setPriority(priority); err != nil {
		return err
	}
	o.Touch(now)
	return nil
}

// HasSchedule reports whether both plant and expected ship date are set.
func (o *Order) HasSchedule() bool {
	return o.plant != "" && o.expectedShipDate != nil
}

// MarkReadyForFG moves the status to ReadyForFG.
func (o *Order) MarkReadyForFG(now time.Time) error {
	status, err := o.status.MarkReadyForFG()
	if err != nil {
		return err
	}
	o.status = status
	o.Touch(now)
	return nil
}

// MarkInvoiced moves the status to Invoiced and records the invoice id.
func (o *Order) MarkInvoiced(invoiceID string, now time.Time) error {
	if strings.TrimSpace(invoiceID) == "" {
		return errs.NewValueIsRequiredError("invoice id")
	}
	status, err := o.status.Invoice()
	if err != nil {
		return err
	}
	o.status = status
	o.invoiceID = invoiceID
	o.Touch(now)
	return nil
}

// Touch records activity on the order. Item mutations touch their owning
// order so they are versioned together with it.
func (o *Order) Touch(now time.Time) {
	o.lastActivity = now
}

// AdvanceVersion is called by the repository after a successful versioned write.
func (o *Order) AdvanceVersion() {
	o.version++
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNo(orderNo string) error {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return ErrOrderNoIsRequired
	}
	o.orderNo = orderNo
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setPriority(priority int) error {
	if priority < 0 {
		return errs.NewValueIsOutOfRangeError("priority", priority, 0, "unbounded")
	}
	o.priority = priority
	return nil
}
