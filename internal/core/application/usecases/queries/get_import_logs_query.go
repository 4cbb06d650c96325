package queries

import (
	"errors"
	"time"

	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/pkg/errs"
	"salesflow/internal/pkg/guard"
)

const (
	DefaultImportLogLimit = 50
	MaxImportLogLimit     = 500
)

var ErrGetImportLogsQueryIsNotConstructed = errors.New(
	"GetImportLogsQuery must be created via NewGetImportLogsQuery constructor",
)

// GetImportLogsQuery lists the most recently processed imports first.
type GetImportLogsQuery struct {
	limit int
	guard guard.ConstructorGuard
}

// NewGetImportLogsQuery uses DefaultImportLogLimit when limit is zero.
func NewGetImportLogsQuery(limit int) (GetImportLogsQuery, error) {
	if limit == 0 {
		limit = DefaultImportLogLimit
	}
	if limit < 1 || limit > MaxImportLogLimit {
		return GetImportLogsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxImportLogLimit)
	}
	return GetImportLogsQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetImportLogsQuery) Validate() error {
	return q.guard.Validate(ErrGetImportLogsQueryIsNotConstructed)
}

func (q GetImportLogsQuery) Limit() int {
	return q.limit
}

type ImportLogView struct {
	ID          kernel.UUID
	Source      string
	OrderNo     string
	UploadedAt  time.Time
	ProcessedAt time.Time
	RowCount    int
	Status      string
	Remarks     string
	SkuCodes    []string
}
