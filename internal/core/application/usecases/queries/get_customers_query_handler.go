package queries

import (
	"context"

	"salesflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetCustomersQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

func (h GetCustomersQueryHandler) Handle(ctx context.Context, query GetCustomersQuery) ([]CustomerSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.contact_email,
			c.contact_phone,
			c.contact_address,
			COUNT(o.id)
		FROM customers c
		LEFT JOIN orders o ON o.customer_id = c.id
		GROUP BY c.id
		ORDER BY c.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]CustomerSummary, 0)
	for rows.Next() {
		var (
			summary    CustomerSummary
			id         uuid.UUID
			orderCount int64
		)
		err = rows.Scan(&id, &summary.Name, &summary.Email, &summary.Phone, &summary.Address, &orderCount)
		if err != nil {
			return nil, err
		}
		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		summary.OrderCount = int(orderCount)
		customers = append(customers, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
