package http

import (
	"fmt"
	"net/http"
	"time"

	"salesflow/internal/core/application/usecases/commands"
	"salesflow/internal/core/application/usecases/queries"
	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/generated/servers"
	"salesflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// GetOrders handles GET /api/v1/orders - the order board.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	var stage *order.Stage
	if params.Stage != nil {
		parsed, err := order.ParseStage(string(*params.Stage))
		if err != nil {
			return s.problem(ctx, err)
		}
		stage = &parsed
	}

	query, err := queries.NewGetOrdersQuery(stage)
	if err != nil {
		return s.problem(ctx, err)
	}

	board, err := s.queries.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.problem(ctx, err)
	}

	response := make([]servers.OrderSummary, len(board))
	for i, row := range board {
		response[i] = toOrderSummary(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.problem(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.problem(ctx, err)
	}

	detail, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetail(detail))
}

// ImportMasterOrders handles POST /api/v1/orders/import.
func (s *Server) ImportMasterOrders(ctx echo.Context) error {
	var body servers.ImportMasterOrdersJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	rows := make([]commands.ImportRow, len(body.Rows))
	for i, row := range body.Rows {
		rate, err := decimal.NewFromString(row.UnitRate)
		if err != nil {
			return s.problem(ctx, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("row %d unit rate", i+1), err))
		}
		rows[i] = commands.ImportRow{
			OrderNo:      row.OrderNo,
			CustomerName: row.CustomerName,
			SkuName:      row.SkuName,
			SkuCode:      deref(row.SkuCode),
			Quantity:     row.Quantity,
			UnitRate:     rate,
		}
	}

	var uploadedAt time.Time
	if body.UploadedAt != nil {
		uploadedAt = *body.UploadedAt
	}

	cmd, err := commands.NewImportMasterOrdersCommand(body.Source, rows, uploadedAt)
	if err != nil {
		return s.problem(ctx, err)
	}

	imported, err := s.commands.ImportMasterOrders.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.ImportResult{Imported: imported})
}

// SplitOrder handles POST /api/v1/orders/{orderId}/split.
func (s *Server) SplitOrder(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.SplitOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	parentID, err := toKernelUUID(orderId)
	if err != nil {
		return s.problem(ctx, err)
	}
	itemIDs := make([]kernel.UUID, len(body.ItemIds))
	for i, itemID := range body.ItemIds {
		if itemIDs[i], err = toKernelUUID(itemID); err != nil {
			return s.problem(ctx, err)
		}
	}

	cmd, err := commands.NewSplitOrderCommand(parentID, itemIDs, body.ShipDate, deref(body.Plant))
	if err != nil {
		return s.problem(ctx, err)
	}

	result, err := s.commands.SplitOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, err)
	}

	moved := make([]servers.LineItem, len(result.Items))
	for i, item := range result.Items {
		moved[i] = toLineItem(toLineItemView(item))
	}

	return ctx.JSON(http.StatusCreated, servers.SplitResult{
		Order: toOrder(result.Child),
		Items: moved,
	})
}

// RequestAdvance handles POST /api/v1/orders/{orderId}/advance.
func (s *Server) RequestAdvance(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.problem(ctx, err)
	}

	cmd, err := commands.NewRequestAdvanceCommand(id)
	if err != nil {
		return s.problem(ctx, err)
	}

	result, err := s.commands.RequestAdvance.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Transition{
		From: toStage(result.From),
		To:   toStage(result.To),
	})
}

// AssignShipDate handles PUT /api/v1/orders/{orderId}/ship-date.
func (s *Server) AssignShipDate(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.AssignShipDateJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.problem(ctx, err)
	}

	cmd, err := commands.NewAssignShipDateCommand(id, body.ShipDate)
	if err != nil {
		return s.problem(ctx, err)
	}

	return s.respondOrder(ctx, func() (*order.Order, error) {
		return s.commands.AssignShipDate.Handle(ctx.Request().Context(), cmd)
	})
}

// AllocatePlant handles PUT /api/v1/orders/{orderId}/plant.
func (s *Server) AllocatePlant(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.AllocatePlantJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.problem(ctx, err)
	}

	cmd, err := commands.NewAllocatePlantCommand(id, body.Plant)
	if err != nil {
		return s.problem(ctx, err)
	}

	return s.respondOrder(ctx, func() (*order.Order, error) {
		return s.commands.AllocatePlant.Handle(ctx.Request().Context(), cmd)
	})
}

// ChangePriority handles PUT /api/v1/orders/{orderId}/priority.
func (s *Server) ChangePriority(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.ChangePriorityJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.problem(ctx, err)
	}

	cmd, err := commands.NewChangePriorityCommand(id, body.Priority)
	if err != nil {
		return s.problem(ctx, err)
	}

	return s.respondOrder(ctx, func() (*order.Order, error) {
		return s.commands.ChangePriority.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkAllFGReady handles POST /api/v1/orders/{orderId}/fg-ready.
func (s *Server) MarkAllFGReady(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.problem(ctx, err)
	}

	cmd, err := commands.NewMarkAllFGReadyCommand(id)
	if err != nil {
		return s.problem(ctx, err)
	}

	if err = s.commands.MarkAllFGReady.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateInvoice handles POST /api/v1/orders/{orderId}/invoice.
func (s *Server) CreateInvoice(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.problem(ctx, err)
	}

	cmd, err := commands.NewCreateInvoiceCommand(id)
	if err != nil {
		return s.problem(ctx, err)
	}

	invoiceID, err := s.commands.CreateInvoice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Invoice{InvoiceId: invoiceID})
}

// DirectMove handles POST /api/v1/admin/orders/{orderId}/move. The route is
// behind admin key auth; see NewRouter.
func (s *Server) DirectMove(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.DirectMoveJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.problem(ctx, err)
	}
	target, err := order.ParseStage(string(body.Stage))
	if err != nil {
		return s.problem(ctx, err)
	}

	cmd, err := commands.NewDirectMoveCommand(id, target)
	if err != nil {
		return s.problem(ctx, err)
	}

	moved, err := s.commands.DirectMove.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, err)
	}

	s.logger.InfoContext(ctx.Request().Context(), "Order moved by administrator",
		"order", moved.OrderNo(), "stage", moved.Stage().String())

	return ctx.JSON(http.StatusOK, toOrder(moved))
}

func (s *Server) respondOrder(ctx echo.Context, handle func() (*order.Order, error)) error {
	updated, err := handle()
	if err != nil {
		return s.problem(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(updated))
}
