// Package historyrepo stores the append-only stage history of orders.
package historyrepo

import (
	"time"

	"salesflow/internal/core/domain/model/health"
	"salesflow/internal/core/domain/model/history"
	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

type StageEntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index:idx_stage_history_order_entered,priority:1;not null"`
	Kind      string    `gorm:"index;not null"`
	Stage     string    `gorm:"not null"`
	EnteredAt time.Time `gorm:"index:idx_stage_history_order_entered,priority:2;index;not null"`
	Color     string    `gorm:"not null"`
}

func (StageEntryDTO) TableName() string {
	return "stage_history"
}

func fromDomain(e *history.StageEntry) StageEntryDTO {
	return StageEntryDTO{
		ID:        e.ID().Bytes(),
		OrderID:   e.OrderID().Bytes(),
		Kind:      e.Kind().String(),
		Stage:     e.Stage().String(),
		EnteredAt: e.EnteredAt(),
		Color:     e.Color().String(),
	}
}

func toDomain(dto StageEntryDTO) (*history.StageEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	kind, err := history.ParseKind(dto.Kind)
	if err != nil {
		return nil, err
	}
	stage, err := order.ParseStage(dto.Stage)
	if err != nil {
		return nil, err
	}
	color, err := health.ParseColor(dto.Color)
	if err != nil {
		return nil, err
	}

	return history.RestoreStageEntry(id, orderID, kind, stage, dto.EnteredAt, color)
}
