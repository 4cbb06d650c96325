package queries

import (
	"context"

	"salesflow/internal/core/domain/model/health"
	"salesflow/internal/core/domain/model/history"
	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

func NewGetOrderQueryHandler(db *gorm.DB, clock kernel.Clock) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, clock: clock}
}

// Handle returns errs.ObjectNotFoundError for an unknown order. All reads run
// in one read-only transaction so the parts are consistent with each other.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return OrderDetail{}, err
	}

	var detail OrderDetail
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id := query.OrderID().Bytes()

		var loadErr error
		if detail, loadErr = h.loadOrder(tx, query.OrderID()); loadErr != nil {
			return loadErr
		}
		if detail.Children, loadErr = h.loadChildren(tx, id); loadErr != nil {
			return loadErr
		}
		if detail.Items, loadErr = h.loadItems(tx, id); loadErr != nil {
			return loadErr
		}
		detail.History, loadErr = h.loadHistory(tx, id)
		return loadErr
	})
	if err != nil {
		return OrderDetail{}, err
	}

	return detail, nil
}

func (h GetOrderQueryHandler) loadOrder(tx *gorm.DB, orderID kernel.UUID) (OrderDetail, error) {
	rows, err := tx.Raw(orderSummarySelect+`
		WHERE o.id = ?
		GROUP BY o.id, c.name
	`, orderID.Bytes()).Rows()
	if err != nil {
		return OrderDetail{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderDetail{}, err
		}
		return OrderDetail{}, errs.NewObjectNotFoundError("order", orderID.String())
	}

	summary, err := scanOrderSummary(rows, h.clock.Now())
	if err != nil {
		return OrderDetail{}, err
	}
	if err = rows.Close(); err != nil {
		return OrderDetail{}, err
	}

	var remarks string
	if err = tx.Raw(`SELECT remarks FROM orders WHERE id = ?`, orderID.Bytes()).Scan(&remarks).Error; err != nil {
		return OrderDetail{}, err
	}

	return OrderDetail{OrderSummary: summary, Remarks: remarks}, nil
}

func (h GetOrderQueryHandler) loadChildren(tx *gorm.DB, id uuid.UUID) ([]string, error) {
	children := make([]string, 0)
	err := tx.Raw(`
		SELECT order_no
		FROM orders
		WHERE parent_id = ?
		ORDER BY order_no
	`, id).Scan(&children).Error
	return children, err
}

func (h GetOrderQueryHandler) loadItems(tx *gorm.DB, id uuid.UUID) ([]LineItemView, error) {
	rows, err := tx.Raw(`
		SELECT
			id,
			sku_name,
			sku_code,
			quantity,
			unit_rate,
			material_ordered,
			material_order_ref,
			material_expected_date,
			material_received,
			material_received_date,
			qa_outcome,
			fg_ready,
			invoice_created,
			invoice_id,
			last_updated
		FROM line_items
		WHERE order_id = ?
		ORDER BY sku_name, id
	`, id).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]LineItemView, 0)
	for rows.Next() {
		var (
			item   LineItemView
			itemID uuid.UUID
			qa     string
		)
		err = rows.Scan(
			&itemID,
			&item.SkuName,
			&item.SkuCode,
			&item.Quantity,
			&item.UnitRate,
			&item.MaterialOrdered,
			&item.MaterialOrderRef,
			&item.MaterialExpectedDate,
			&item.MaterialReceived,
			&item.MaterialReceivedDate,
			&qa,
			&item.FGReady,
			&item.InvoiceCreated,
			&item.InvoiceID,
			&item.LastUpdated,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return nil, err
		}
		if item.QA, err = order.ParseQAOutcome(qa); err != nil {
			return nil, err
		}
		item.LineTotal = item.UnitRate.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetOrderQueryHandler) loadHistory(tx *gorm.DB, id uuid.UUID) ([]HistoryView, error) {
	rows, err := tx.Raw(`
		SELECT kind, stage, entered_at, color
		FROM stage_history
		WHERE order_id = ?
		ORDER BY entered_at, id
	`, id).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]HistoryView, 0)
	for rows.Next() {
		var (
			entry              HistoryView
			kind, stage, color string
		)
		if err = rows.Scan(&kind, &stage, &entry.EnteredAt, &color); err != nil {
			return nil, err
		}
		if entry.Kind, err = history.ParseKind(kind); err != nil {
			return nil, err
		}
		if entry.Stage, err = order.ParseStage(stage); err != nil {
			return nil, err
		}
		if entry.Color, err = health.ParseColor(color); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
