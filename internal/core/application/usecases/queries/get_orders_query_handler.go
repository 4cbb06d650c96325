package queries

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"salesflow/internal/core/domain/model/health"
	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const orderSummarySelect = `
		SELECT
			o.id,
			o.order_no,
			o.parent_id,
			COALESCE(c.name, ''),
			o.stage,
			o.status,
			o.priority,
			o.plant,
			o.expected_ship_date,
			o.last_activity,
			o.invoice_id,
			o.version,
			COUNT(li.id),
			COALESCE(SUM(li.quantity * li.unit_rate), 0)
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id
		LEFT JOIN line_items li ON li.order_id = o.id
`

// GetOrdersQueryHandler reads the order board. Rows are sorted by priority
// (highest first), then ship date (unscheduled last), then order number.
type GetOrdersQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

func NewGetOrdersQueryHandler(db *gorm.DB, clock kernel.Clock) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db, clock: clock}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		where strings.Builder
		args  []any
	)
	if stage := query.Stage(); stage != nil {
		where.WriteString("WHERE o.stage = ?")
		args = append(args, stage.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(orderSummarySelect+where.String()+`
		GROUP BY o.id, c.name
		ORDER BY o.priority DESC, o.expected_ship_date ASC NULLS LAST, o.order_no
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := h.clock.Now()
	board := make([]OrderSummary, 0)
	for rows.Next() {
		summary, scanErr := scanOrderSummary(rows, now)
		if scanErr != nil {
			return nil, scanErr
		}
		board = append(board, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}

func scanOrderSummary(rows *sql.Rows, now time.Time) (OrderSummary, error) {
	var (
		summary   OrderSummary
		id        uuid.UUID
		parentID  uuid.NullUUID
		stage     string
		status    string
		itemCount int64
		total     decimal.Decimal
	)

	err := rows.Scan(
		&id,
		&summary.OrderNo,
		&parentID,
		&summary.CustomerName,
		&stage,
		&status,
		&summary.Priority,
		&summary.Plant,
		&summary.ExpectedShipDate,
		&summary.LastActivity,
		&summary.InvoiceID,
		&summary.Version,
		&itemCount,
		&total,
	)
	if err != nil {
		return OrderSummary{}, err
	}

	if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderSummary{}, err
	}
	if parentID.Valid {
		pID, parentErr := kernel.UUIDFromBytes(parentID.UUID[:])
		if parentErr != nil {
			return OrderSummary{}, parentErr
		}
		summary.ParentID = &pID
	}
	if summary.Stage, err = order.ParseStage(stage); err != nil {
		return OrderSummary{}, err
	}
	if summary.Status, err = order.ParseStatus(status); err != nil {
		return OrderSummary{}, err
	}

	summary.ItemCount = int(itemCount)
	summary.TotalValue = total
	summary.Health = health.Of(summary.ExpectedShipDate, now)
	if summary.ExpectedShipDate != nil {
		days := health.DaysRemaining(*summary.ExpectedShipDate, now)
		summary.DaysRemaining = &days
	}

	return summary, nil
}
