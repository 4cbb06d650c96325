package lineitemrepo

import (
	"context"
	"errors"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLineItemRepository implements ports.LineItemRepository using GORM.
// Items carry no version of their own; concurrent changes are detected on
// the owning order, which every item write is paired with.
type GormLineItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormLineItemRepository(db *gorm.DB, tracker aggregateTracker) *GormLineItemRepository {
	return &GormLineItemRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormLineItemRepository) AddAll(ctx context.Context, items []*order.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	dtos := make([]LineItemDTO, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(item))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	for _, item := range items {
		r.tracker.TrackAggregate(item.ID(), item)
	}
	return nil
}

func (r *GormLineItemRepository) Update(ctx context.Context, item *order.LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).Model(&LineItemDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("line item", item.ID().String())
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

func (r *GormLineItemRepository) Get(ctx context.Context, id kernel.UUID) (*order.LineItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LineItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("line item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs loads all ids in one query and returns them in the order given.
func (r *GormLineItemRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.LineItem, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []LineItemDTO
	if len(raw) > 0 {
		if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
			return nil, err
		}
	}

	byID := make(map[uuid.UUID]LineItemDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	items := make([]*order.LineItem, 0, len(ids))
	for i, id := range ids {
		dto, ok := byID[raw[i]]
		if !ok {
			return nil, errs.NewObjectNotFoundError("line item", id.String())
		}
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// GetByOrder returns the items of orderID by SKU name.
func (r *GormLineItemRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.LineItem, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LineItemDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("sku_name, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*order.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
