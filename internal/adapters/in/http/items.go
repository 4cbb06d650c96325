package http

import (
	"net/http"

	"salesflow/internal/core/application/usecases/commands"
	"salesflow/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// MarkMaterialOrdered handles POST /api/v1/items/{itemId}/material-ordered.
func (s *Server) MarkMaterialOrdered(ctx echo.Context, itemId servers.ItemId) error {
	var body servers.MarkMaterialOrderedJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(itemId)
	if err != nil {
		return s.problem(ctx, err)
	}

	cmd, err := commands.NewMarkMaterialOrderedCommand(id, deref(body.OrderRef), body.ExpectedDate)
	if err != nil {
		return s.problem(ctx, err)
	}

	if err = s.commands.MarkMaterialOrdered.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkMaterialReceived handles POST /api/v1/items/{itemId}/material-received.
// The body is optional; without a date the receipt is dated now.
func (s *Server) MarkMaterialReceived(ctx echo.Context, itemId servers.ItemId) error {
	var body servers.MarkMaterialReceivedJSONRequestBody
	if ctx.Request().ContentLength != 0 {
		if err := ctx.Bind(&body); err != nil {
			return s.badRequest(ctx, "Invalid request body")
		}
	}

	id, err := toKernelUUID(itemId)
	if err != nil {
		return s.problem(ctx, err)
	}

	cmd, err := commands.NewMarkMaterialReceivedCommand(id, body.ReceivedDate)
	if err != nil {
		return s.problem(ctx, err)
	}

	if err = s.commands.MarkMaterialReceived.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetQAOutcome handles PUT /api/v1/items/{itemId}/qa.
func (s *Server) SetQAOutcome(ctx echo.Context, itemId servers.ItemId) error {
	var body servers.SetQAOutcomeJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(itemId)
	if err != nil {
		return s.problem(ctx, err)
	}

	cmd, err := commands.NewSetQAOutcomeCommand(id, body.Approved)
	if err != nil {
		return s.problem(ctx, err)
	}

	if err = s.commands.SetQAOutcome.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
