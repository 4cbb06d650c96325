// Package orderrepo persists order aggregates. Stage and status are stored by
// name so that rows stay readable and reporting queries can filter on them.
package orderrepo

import (
	"time"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row of the orders table.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNo          string     `gorm:"uniqueIndex;not null"`
	ParentID         *uuid.UUID `gorm:"type:uuid;index"`
	CustomerID       uuid.UUID  `gorm:"type:uuid;index;not null"`
	Stage            string     `gorm:"index;not null"`
	Status           string     `gorm:"not null"`
	Priority         int        `gorm:"not null;default:0"`
	Plant            string
	ExpectedShipDate *time.Time
	LastActivity     time.Time `gorm:"not null"`
	Remarks          string
	InvoiceID        string
	Version          int `gorm:"not null;default:0"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	var parentID *uuid.UUID
	if id := o.ParentID(); id != nil {
		raw := id.Bytes()
		parentID = &raw
	}

	return OrderDTO{
		ID:               o.ID().Bytes(),
		OrderNo:          o.OrderNo(),
		ParentID:         parentID,
		CustomerID:       o.CustomerID().Bytes(),
		Stage:            o.Stage().String(),
		Status:           o.Status().String(),
		Priority:         o.Priority(),
		Plant:            o.Plant(),
		ExpectedShipDate: o.ExpectedShipDate(),
		LastActivity:     o.LastActivity(),
		Remarks:          o.Remarks(),
		InvoiceID:        o.InvoiceID(),
		Version:          o.Version(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var parentID *kernel.UUID
	if dto.ParentID != nil {
		pID, parentErr := kernel.UUIDFromBytes((*dto.ParentID)[:])
		if parentErr != nil {
			return nil, parentErr
		}
		parentID = &pID
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	stage, err := order.ParseStage(dto.Stage)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.OrderParams{
		ID:               id,
		OrderNo:          dto.OrderNo,
		ParentID:         parentID,
		CustomerID:       customerID,
		Stage:            stage,
		Status:           status,
		Priority:         dto.Priority,
		Plant:            dto.Plant,
		ExpectedShipDate: dto.ExpectedShipDate,
		LastActivity:     dto.LastActivity,
		Remarks:          dto.Remarks,
		InvoiceID:        dto.InvoiceID,
		Version:          dto.Version,
	})
}
