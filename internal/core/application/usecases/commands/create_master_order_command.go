package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"salesflow/internal/pkg/errs"
	"salesflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateMasterOrderCommandIsNotConstructed = errors.New(
		"CreateMasterOrderCommand must be created via NewCreateMasterOrderCommand constructor",
	)
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer name")
	ErrOrderNoIsRequired      = errs.NewValueIsRequiredError("order number")
	ErrSourceIsRequired       = errs.NewValueIsRequiredError("source label")
	ErrLineItemsAreRequired   = errs.NewValueIsRequiredError("line items")

	// ErrOrderNoAlreadyExists is the cause carried by the validation error
	// for an order number that is already taken.
	ErrOrderNoAlreadyExists = errors.New("order number already exists")
)

// IsDuplicateOrderNo reports whether err rejects an order number that is
// already taken.
func IsDuplicateOrderNo(err error) bool {
	var invalid *errs.ValueIsInvalidError
	return errors.As(err, &invalid) && errors.Is(invalid.Cause, ErrOrderNoAlreadyExists)
}

// LineInput describes one line item of a new master order.
type LineInput struct {
	SkuName  string
	SkuCode  string
	Quantity int
	UnitRate decimal.Decimal
}

func (l LineInput) validate(index int) error {
	var problems []error
	if strings.TrimSpace(l.SkuName) == "" {
		problems = append(problems, errs.NewValueIsRequiredError(fmt.Sprintf("line %d sku name", index+1)))
	}
	if l.Quantity <= 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError(fmt.Sprintf("line %d quantity", index+1), l.Quantity, 1, "unbounded"))
	}
	if l.UnitRate.IsNegative() {
		problems = append(problems, errs.NewValueIsOutOfRangeError(fmt.Sprintf("line %d unit rate", index+1), l.UnitRate, 0, "unbounded"))
	}
	return errors.Join(problems...)
}

// CreateMasterOrderCommand creates a master order for a customer purchase
// together with its line items and the import log entry.
//
// Example:
//
//	cmd, err := NewCreateMasterOrderCommand("SO1001", "Acme", "erp-2025-12.xlsx", lines, time.Now())
//	if err != nil {
//	    return err // ValidationError: missing name, empty lines, bad quantities
//	}
//	master, err := handler.Handle(ctx, cmd)
type CreateMasterOrderCommand struct {
	orderNo      string
	customerName string
	source       string
	lines        []LineInput
	uploadedAt   time.Time

	guard guard.ConstructorGuard
}

// NewCreateMasterOrderCommand validates every line up front so that a bad
// row is reported before anything is written.
func NewCreateMasterOrderCommand(
	orderNo string,
	customerName string,
	source string,
	lines []LineInput,
	uploadedAt time.Time,
) (CreateMasterOrderCommand, error) {
	cmd := CreateMasterOrderCommand{
		uploadedAt: uploadedAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNo(orderNo),
		cmd.setCustomerName(customerName),
		cmd.setSource(source),
		cmd.setLines(lines),
	); err != nil {
		return CreateMasterOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateMasterOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateMasterOrderCommandIsNotConstructed)
}

func (c CreateMasterOrderCommand) OrderNo() string       { return c.orderNo }
func (c CreateMasterOrderCommand) CustomerName() string  { return c.customerName }
func (c CreateMasterOrderCommand) Source() string        { return c.source }
func (c CreateMasterOrderCommand) UploadedAt() time.Time { return c.uploadedAt }

// Lines returns a copy of the line inputs.
func (c CreateMasterOrderCommand) Lines() []LineInput {
	lines := make([]LineInput, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateMasterOrderCommand) setOrderNo(orderNo string) error {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return ErrOrderNoIsRequired
	}
	c.orderNo = orderNo
	return nil
}

func (c *CreateMasterOrderCommand) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	c.customerName = name
	return nil
}

func (c *CreateMasterOrderCommand) setSource(source string) error {
	source = strings.TrimSpace(source)
	if source == "" {
		return ErrSourceIsRequired
	}
	c.source = source
	return nil
}

func (c *CreateMasterOrderCommand) setLines(lines []LineInput) error {
	if len(lines) == 0 {
		return ErrLineItemsAreRequired
	}
	problems := make([]error, 0, len(lines))
	for i, line := range lines {
		problems = append(problems, line.validate(i))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}
	c.lines = make([]LineInput, len(lines))
	copy(c.lines, lines)
	return nil
}
