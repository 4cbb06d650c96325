// Package lineitemrepo persists order line items.
package lineitemrepo

import (
	"time"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItemDTO is the row of the line_items table. The unit rate is kept as
// an exact numeric.
type LineItemDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID              uuid.UUID `gorm:"type:uuid;index;not null"`
	SkuName              string    `gorm:"not null"`
	SkuCode              string
	Quantity             int             `gorm:"not null"`
	UnitRate             decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	MaterialOrdered      bool
	MaterialOrderRef     string
	MaterialExpectedDate *time.Time
	MaterialReceived     bool
	MaterialReceivedDate *time.Time
	QAOutcome            string `gorm:"column:qa_outcome;not null"`
	FGReady              bool   `gorm:"column:fg_ready"`
	InvoiceCreated       bool
	InvoiceID            string
	LastUpdated          time.Time `gorm:"not null"`
}

func (LineItemDTO) TableName() string {
	return "line_items"
}

func fromDomain(item *order.LineItem) LineItemDTO {
	return LineItemDTO{
		ID:                   item.ID().Bytes(),
		OrderID:              item.OrderID().Bytes(),
		SkuName:              item.SkuName(),
		SkuCode:              item.SkuCode(),
		Quantity:             item.Quantity(),
		UnitRate:             item.UnitRate(),
		MaterialOrdered:      item.MaterialOrdered(),
		MaterialOrderRef:     item.MaterialOrderRef(),
		MaterialExpectedDate: item.MaterialExpectedDate(),
		MaterialReceived:     item.MaterialReceived(),
		MaterialReceivedDate: item.MaterialReceivedDate(),
		QAOutcome:            item.QA().String(),
		FGReady:              item.FGReady(),
		InvoiceCreated:       item.InvoiceCreated(),
		InvoiceID:            item.InvoiceID(),
		LastUpdated:          item.LastUpdated(),
	}
}

func toDomain(dto LineItemDTO) (*order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	qa, err := order.ParseQAOutcome(dto.QAOutcome)
	if err != nil {
		return nil, err
	}

	return order.RestoreLineItem(order.LineItemParams{
		ID:                   id,
		OrderID:              orderID,
		SkuName:              dto.SkuName,
		SkuCode:              dto.SkuCode,
		Quantity:             dto.Quantity,
		UnitRate:             dto.UnitRate,
		MaterialOrdered:      dto.MaterialOrdered,
		MaterialOrderRef:     dto.MaterialOrderRef,
		MaterialExpectedDate: dto.MaterialExpectedDate,
		MaterialReceived:     dto.MaterialReceived,
		MaterialReceivedDate: dto.MaterialReceivedDate,
		QA:                   qa,
		FGReady:              dto.FGReady,
		InvoiceCreated:       dto.InvoiceCreated,
		InvoiceID:            dto.InvoiceID,
		LastUpdated:          dto.LastUpdated,
	})
}
