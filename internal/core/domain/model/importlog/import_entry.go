// Package importlog records every processed master order import.
package importlog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/pkg/errs"
	"salesflow/internal/pkg/guard"
)

// StatusProcessed marks an import whose order and items were committed.
const StatusProcessed = "Processed"

var (
	ErrImportEntryIsNotConstructed = errors.New("ImportEntry must be created via NewImportEntry constructor")
	ErrSourceIsRequired            = errs.NewValueIsRequiredError("source label")
)

// ImportEntry is the immutable audit record of one master order created from
// an import file. SkuCodes lists the codes of the imported lines.
type ImportEntry struct {
	id          kernel.UUID
	source      string
	orderNo     string
	uploadedAt  time.Time
	processedAt time.Time
	rowCount    int
	status      string
	remarks     string
	skuCodes    []string
	guard       guard.ConstructorGuard
}

// NewImportEntry creates the processed entry for orderNo.
func NewImportEntry(
	id kernel.UUID,
	source string,
	orderNo string,
	skuCodes []string,
	uploadedAt time.Time,
	processedAt time.Time,
) (*ImportEntry, error) {
	return RestoreImportEntry(ImportEntryParams{
		ID:          id,
		Source:      source,
		OrderNo:     orderNo,
		UploadedAt:  uploadedAt,
		ProcessedAt: processedAt,
		RowCount:    len(skuCodes),
		Status:      StatusProcessed,
		Remarks:     fmt.Sprintf("Imported %d lines for %s", len(skuCodes), strings.TrimSpace(orderNo)),
		SkuCodes:    skuCodes,
	})
}

type ImportEntryParams struct {
	ID          kernel.UUID
	Source      string
	OrderNo     string
	UploadedAt  time.Time
	ProcessedAt time.Time
	RowCount    int
	Status      string
	Remarks     string
	SkuCodes    []string
}

// RestoreImportEntry rebuilds an entry loaded from storage.
func RestoreImportEntry(p ImportEntryParams) (*ImportEntry, error) {
	source := strings.TrimSpace(p.Source)
	var sourceErr error
	if source == "" {
		sourceErr = ErrSourceIsRequired
	}
	var rowErr error
	if p.RowCount < 1 {
		rowErr = errs.NewValueIsOutOfRangeError("row count", p.RowCount, 1, "unbounded")
	}
	var orderNoErr error
	if strings.TrimSpace(p.OrderNo) == "" {
		orderNoErr = errs.NewValueIsRequiredError("order number")
	}

	if err := errors.Join(p.ID.Validate(), sourceErr, orderNoErr, rowErr); err != nil {
		return nil, err
	}

	codes := make([]string, len(p.SkuCodes))
	copy(codes, p.SkuCodes)

	return &ImportEntry{
		id:          p.ID,
		source:      source,
		orderNo:     strings.TrimSpace(p.OrderNo),
		uploadedAt:  p.UploadedAt,
		processedAt: p.ProcessedAt,
		rowCount:    p.RowCount,
		status:      p.Status,
		remarks:     p.Remarks,
		skuCodes:    codes,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (e *ImportEntry) Validate() error {
	if e == nil {
		return ErrImportEntryIsNotConstructed
	}
	return e.guard.Validate(ErrImportEntryIsNotConstructed)
}

func (e *ImportEntry) ID() kernel.UUID        { return e.id }
func (e *ImportEntry) Source() string         { return e.source }
func (e *ImportEntry) OrderNo() string        { return e.orderNo }
func (e *ImportEntry) UploadedAt() time.Time  { return e.uploadedAt }
func (e *ImportEntry) ProcessedAt() time.Time { return e.processedAt }
func (e *ImportEntry) RowCount() int          { return e.rowCount }
func (e *ImportEntry) Status() string         { return e.status }
func (e *ImportEntry) Remarks() string        { return e.remarks }

// SkuCodes returns a copy of the imported SKU codes.
func (e *ImportEntry) SkuCodes() []string {
	codes := make([]string, len(e.skuCodes))
	copy(codes, e.skuCodes)
	return codes
}
