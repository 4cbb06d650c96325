package http

import (
	"net/http"

	"salesflow/internal/core/application/usecases/queries"
	"salesflow/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetCustomers handles GET /api/v1/customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	customers, err := s.queries.GetCustomers.Handle(ctx.Request().Context(), queries.NewGetCustomersQuery())
	if err != nil {
		return s.problem(ctx, err)
	}

	response := make([]servers.Customer, len(customers))
	for i, c := range customers {
		response[i] = servers.Customer{
			Id:         c.ID.Bytes(),
			Name:       c.Name,
			Email:      optional(c.Email),
			Phone:      optional(c.Phone),
			Address:    optional(c.Address),
			OrderCount: c.OrderCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetImportLogs handles GET /api/v1/import-logs.
func (s *Server) GetImportLogs(ctx echo.Context, params servers.GetImportLogsParams) error {
	var limit int
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetImportLogsQuery(limit)
	if err != nil {
		return s.problem(ctx, err)
	}

	logs, err := s.queries.GetImportLogs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.problem(ctx, err)
	}

	response := make([]servers.ImportLog, len(logs))
	for i, entry := range logs {
		response[i] = servers.ImportLog{
			Id:          entry.ID.Bytes(),
			Source:      entry.Source,
			OrderNo:     entry.OrderNo,
			UploadedAt:  entry.UploadedAt,
			ProcessedAt: entry.ProcessedAt,
			RowCount:    entry.RowCount,
			Status:      entry.Status,
			Remarks:     optional(entry.Remarks),
			SkuCodes:    entry.SkuCodes,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
