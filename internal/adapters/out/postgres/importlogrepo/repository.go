package importlogrepo

import (
	"context"

	"salesflow/internal/core/domain/model/importlog"

	"gorm.io/gorm"
)

// GormImportLogRepository implements ports.ImportLogRepository.
type GormImportLogRepository struct {
	db *gorm.DB
}

func NewGormImportLogRepository(db *gorm.DB) *GormImportLogRepository {
	return &GormImportLogRepository{db: db}
}

func (r *GormImportLogRepository) Add(ctx context.Context, entry *importlog.ImportEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}
