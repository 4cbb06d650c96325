package order

import (
	"errors"
	"strings"
	"time"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/pkg/errs"
	"salesflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem was not created via NewLineItem or RestoreLineItem.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
	// ErrSkuNameIsRequired is returned for items without an SKU name.
	ErrSkuNameIsRequired = errs.NewValueIsRequiredError("sku name")
)

// LineItem is one SKU line of a sales order. The owning order reference is
// mutable: splitting an order moves items to a child order, but an item always
// belongs to exactly one order.
//
// Milestones are recorded per item as work progresses through the pipeline:
//
//	materialOrdered -> materialReceived -> qa approved -> fgReady -> invoiceCreated
//
// Only the last two are ordered by the item itself. The earlier flags are
// checked collectively by the stage gate when the owning order advances.
type LineItem struct {
	id      kernel.UUID
	orderID kernel.UUID

	skuName  string
	skuCode  string
	quantity int
	unitRate decimal.Decimal

	materialOrdered      bool
	materialOrderRef     string
	materialExpectedDate *time.Time
	materialReceived     bool
	materialReceivedDate *time.Time
	qa                   QAOutcome
	fgReady              bool
	invoiceCreated       bool
	invoiceID            string

	lastUpdated time.Time

	guard guard.ConstructorGuard
}

// NewLineItem creates a fresh item owned by orderID with every milestone unset.
//
// Example:
//
//	rate := decimal.RequireFromString("10000.00")
//	item, err := NewLineItem(kernel.NewUUID(), master.ID(), "Phone A", "PA1", 2, rate, now)
func NewLineItem(
	id kernel.UUID,
	orderID kernel.UUID,
	skuName string,
	skuCode string,
	quantity int,
	unitRate decimal.Decimal,
	now time.Time,
) (*LineItem, error) {
	item := &LineItem{
		skuCode:     strings.TrimSpace(skuCode),
		lastUpdated: now,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.setSkuName(skuName),
		item.setQuantity(quantity),
		item.setUnitRate(unitRate),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// LineItemParams carries the persisted state of an item for RestoreLineItem.
type LineItemParams struct {
	ID                   kernel.UUID
	OrderID              kernel.UUID
	SkuName              string
	SkuCode              string
	Quantity             int
	UnitRate             decimal.Decimal
	MaterialOrdered      bool
	MaterialOrderRef     string
	MaterialExpectedDate *time.Time
	MaterialReceived     bool
	MaterialReceivedDate *time.Time
	QA                   QAOutcome
	FGReady              bool
	InvoiceCreated       bool
	InvoiceID            string
	LastUpdated          time.Time
}

// RestoreLineItem rebuilds an item from storage. Field invariants are
// re-checked so corrupt rows surface as errors instead of half-valid items.
func RestoreLineItem(p LineItemParams) (*LineItem, error) {
	item := &LineItem{
		skuCode:              p.SkuCode,
		materialOrdered:      p.MaterialOrdered,
		materialOrderRef:     p.MaterialOrderRef,
		materialExpectedDate: p.MaterialExpectedDate,
		materialReceived:     p.MaterialReceived,
		materialReceivedDate: p.MaterialReceivedDate,
		fgReady:              p.FGReady,
		invoiceCreated:       p.InvoiceCreated,
		invoiceID:            p.InvoiceID,
		lastUpdated:          p.LastUpdated,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(p.ID),
		item.setOrderID(p.OrderID),
		item.setSkuName(p.SkuName),
		item.setQuantity(p.Quantity),
		item.setUnitRate(p.UnitRate),
		p.QA.Validate(),
	); err != nil {
		return nil, err
	}
	item.qa = p.QA

	return item, nil
}

func (i *LineItem) Validate() error {
	if i == nil {
		return ErrLineItemIsNotConstructed
	}
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

func (i *LineItem) ID() kernel.UUID                    { return i.id }
func (i *LineItem) OrderID() kernel.UUID               { return i.orderID }
func (i *LineItem) SkuName() string                    { return i.skuName }
func (i *LineItem) SkuCode() string                    { return i.skuCode }
func (i *LineItem) Quantity() int                      { return i.quantity }
func (i *LineItem) UnitRate() decimal.Decimal          { return i.unitRate }
func (i *LineItem) MaterialOrdered() bool              { return i.materialOrdered }
func (i *LineItem) MaterialOrderRef() string           { return i.materialOrderRef }
func (i *LineItem) MaterialExpectedDate() *time.Time   { return i.materialExpectedDate }
func (i *LineItem) MaterialReceived() bool             { return i.materialReceived }
func (i *LineItem) MaterialReceivedDate() *time.Time   { return i.materialReceivedDate }
func (i *LineItem) QA() QAOutcome                      { return i.qa }
func (i *LineItem) FGReady() bool                      { return i.fgReady }
func (i *LineItem) InvoiceCreated() bool               { return i.invoiceCreated }
func (i *LineItem) InvoiceID() string                  { return i.invoiceID }
func (i *LineItem) LastUpdated() time.Time             { return i.lastUpdated }
func (i *LineItem) BelongsTo(orderID kernel.UUID) bool { return i.orderID.IsEqual(orderID) }

// LineTotal is quantity times unit rate.
func (i *LineItem) LineTotal() decimal.Decimal {
	return i.unitRate.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// MoveTo reassigns the item to another order.
func (i *LineItem) MoveTo(orderID kernel.UUID, now time.Time) error {
	if err := i.setOrderID(orderID); err != nil {
		return err
	}
	i.lastUpdated = now
	return nil
}

// MarkMaterialOrdered records the raw-material purchase for the item.
// Re-marking overwrites the reference and the expected date.
func (i *LineItem) MarkMaterialOrdered(orderRef string, expectedDate *time.Time, now time.Time) {
	i.materialOrdered = true
	i.materialOrderRef = strings.TrimSpace(orderRef)
	i.materialExpectedDate = expectedDate
	i.lastUpdated = now
}

// MarkMaterialReceived records the raw-material receipt. A nil receivedDate
// means the material arrived now.
func (i *LineItem) MarkMaterialReceived(receivedDate *time.Time, now time.Time) {
	if receivedDate == nil {
		at := now
		receivedDate = &at
	}
	i.materialReceived = true
	i.materialReceivedDate = receivedDate
	i.lastUpdated = now
}

// SetQAOutcome records the latest quality decision. A rejection is a valid
// outcome, not an error, and a later approval replaces it.
func (i *LineItem) SetQAOutcome(approved bool, now time.Time) {
	i.qa = QAOutcomeFromApproval(approved)
	i.lastUpdated = now
}

// MarkFGReady flags the item as finished goods. Only QA approved items qualify.
func (i *LineItem) MarkFGReady(now time.Time) error {
	if !i.qa.IsApproved() {
		return errs.NewPreconditionFailedError("QA incomplete")
	}
	i.fgReady = true
	i.lastUpdated = now
	return nil
}

// MarkInvoiced attaches the item to an invoice. Only finished goods can be
// invoiced; invoicing again replaces the invoice id.
func (i *LineItem) MarkInvoiced(invoiceID string, now time.Time) error {
	if !i.fgReady {
		return errs.NewPreconditionFailedError("FG not ready")
	}
	if strings.TrimSpace(invoiceID) == "" {
		return errs.NewValueIsRequiredError("invoice id")
	}
	i.invoiceCreated = true
	i.invoiceID = invoiceID
	i.lastUpdated = now
	return nil
}

func (i *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *LineItem) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	i.orderID = orderID
	return nil
}

func (i *LineItem) setSkuName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrSkuNameIsRequired
	}
	i.skuName = name
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return errs.NewValueIsOutOfRangeError("unit rate", rate, 0, "unbounded")
	}
	i.unitRate = rate
	return nil
}
