package commands

import (
	"errors"
	"strings"
	"time"

	"salesflow/internal/pkg/errs"
	"salesflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrImportMasterOrdersCommandIsNotConstructed = errors.New(
		"ImportMasterOrdersCommand must be created via NewImportMasterOrdersCommand constructor",
	)
	ErrRowsAreRequired = errs.NewValueIsRequiredError("rows")
)

// ImportRow is one spreadsheet row of a master order import. Rows sharing an
// OrderNo form one master order.
type ImportRow struct {
	OrderNo      string
	CustomerName string
	SkuName      string
	SkuCode      string
	Quantity     int
	UnitRate     decimal.Decimal
}

// ImportMasterOrdersCommand imports a batch of already parsed rows under a
// source label such as the uploaded file name.
type ImportMasterOrdersCommand struct {
	source     string
	rows       []ImportRow
	uploadedAt time.Time

	guard guard.ConstructorGuard
}

func NewImportMasterOrdersCommand(source string, rows []ImportRow, uploadedAt time.Time) (ImportMasterOrdersCommand, error) {
	cmd := ImportMasterOrdersCommand{
		source:     strings.TrimSpace(source),
		uploadedAt: uploadedAt,
		guard:      guard.NewConstructorGuard(),
	}

	var sourceErr, rowsErr error
	if cmd.source == "" {
		sourceErr = ErrSourceIsRequired
	}
	if len(rows) == 0 {
		rowsErr = ErrRowsAreRequired
	}
	if err := errors.Join(sourceErr, rowsErr); err != nil {
		return ImportMasterOrdersCommand{}, err
	}

	cmd.rows = make([]ImportRow, len(rows))
	copy(cmd.rows, rows)
	return cmd, nil
}

func (c ImportMasterOrdersCommand) Validate() error {
	return c.guard.Validate(ErrImportMasterOrdersCommandIsNotConstructed)
}

func (c ImportMasterOrdersCommand) Source() string        { return c.source }
func (c ImportMasterOrdersCommand) UploadedAt() time.Time { return c.uploadedAt }

// Groups splits the rows into one CreateMasterOrderCommand per order number,
// in order of first appearance. Rows without an order number are skipped and
// the customer of a group is taken from its first row. All groups are
// validated; the returned error joins the problems of every invalid group.
func (c ImportMasterOrdersCommand) Groups() ([]CreateMasterOrderCommand, error) {
	type group struct {
		customerName string
		lines        []LineInput
	}

	var orderNos []string
	groups := make(map[string]*group)
	for _, row := range c.rows {
		orderNo := strings.TrimSpace(row.OrderNo)
		if orderNo == "" {
			continue
		}
		g, ok := groups[orderNo]
		if !ok {
			g = &group{customerName: row.CustomerName}
			groups[orderNo] = g
			orderNos = append(orderNos, orderNo)
		}
		g.lines = append(g.lines, LineInput{
			SkuName:  row.SkuName,
			SkuCode:  row.SkuCode,
			Quantity: row.Quantity,
			UnitRate: row.UnitRate,
		})
	}

	commands := make([]CreateMasterOrderCommand, 0, len(orderNos))
	var problems []error
	for _, orderNo := range orderNos {
		g := groups[orderNo]
		cmd, err := NewCreateMasterOrderCommand(orderNo, g.customerName, c.source, g.lines, c.uploadedAt)
		if err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("order "+orderNo, err))
			continue
		}
		commands = append(commands, cmd)
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return commands, nil
}
