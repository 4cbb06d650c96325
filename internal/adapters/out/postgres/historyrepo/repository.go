package historyrepo

import (
	"context"
	"time"

	"salesflow/internal/core/domain/model/history"
	"salesflow/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormStageHistoryRepository implements ports.StageHistoryRepository. Rows
// are only ever inserted, and deleted by retention.
type GormStageHistoryRepository struct {
	db *gorm.DB
}

func NewGormStageHistoryRepository(db *gorm.DB) *GormStageHistoryRepository {
	return &GormStageHistoryRepository{db: db}
}

func (r *GormStageHistoryRepository) Append(ctx context.Context, entries ...*history.StageEntry) error {
	if len(entries) == 0 {
		return nil
	}

	dtos := make([]StageEntryDTO, 0, len(entries))
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(entry))
	}

	return r.db.WithContext(ctx).CreateInBatches(&dtos, 500).Error
}

func (r *GormStageHistoryRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*history.StageEntry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StageEntryDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("entered_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*history.StageEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *GormStageHistoryRepository) PruneSnapshotsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("kind = ? AND entered_at < ?", history.HealthSnapshot.String(), cutoff).
		Delete(&StageEntryDTO{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
