package queries

import (
	"context"

	"salesflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GetImportLogsQueryHandler struct {
	db *gorm.DB
}

func NewGetImportLogsQueryHandler(db *gorm.DB) GetImportLogsQueryHandler {
	return GetImportLogsQueryHandler{db: db}
}

func (h GetImportLogsQueryHandler) Handle(ctx context.Context, query GetImportLogsQuery) ([]ImportLogView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, source, order_no, uploaded_at, processed_at, row_count, status, remarks, sku_codes
		FROM import_logs
		ORDER BY processed_at DESC, id
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]ImportLogView, 0)
	for rows.Next() {
		var (
			view     ImportLogView
			id       uuid.UUID
			skuCodes pq.StringArray
		)
		err = rows.Scan(
			&id,
			&view.Source,
			&view.OrderNo,
			&view.UploadedAt,
			&view.ProcessedAt,
			&view.RowCount,
			&view.Status,
			&view.Remarks,
			&skuCodes,
		)
		if err != nil {
			return nil, err
		}
		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		view.SkuCodes = []string(skuCodes)
		if view.SkuCodes == nil {
			view.SkuCodes = []string{}
		}
		logs = append(logs, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}
