// Package importlogrepo stores one row per imported master order.
package importlogrepo

import (
	"time"

	"salesflow/internal/core/domain/model/importlog"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ImportEntryDTO is the row of the import_logs table. SKU codes are a
// Postgres text array.
type ImportEntryDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Source      string         `gorm:"index;not null"`
	OrderNo     string         `gorm:"index;not null"`
	UploadedAt  time.Time      `gorm:"not null"`
	ProcessedAt time.Time      `gorm:"index;not null"`
	RowCount    int            `gorm:"not null"`
	Status      string         `gorm:"not null"`
	Remarks     string
	SkuCodes    pq.StringArray `gorm:"type:text[]"`
}

func (ImportEntryDTO) TableName() string {
	return "import_logs"
}

func fromDomain(e *importlog.ImportEntry) ImportEntryDTO {
	return ImportEntryDTO{
		ID:          e.ID().Bytes(),
		Source:      e.Source(),
		OrderNo:     e.OrderNo(),
		UploadedAt:  e.UploadedAt(),
		ProcessedAt: e.ProcessedAt(),
		RowCount:    e.RowCount(),
		Status:      e.Status(),
		Remarks:     e.Remarks(),
		SkuCodes:    pq.StringArray(e.SkuCodes()),
	}
}
