package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List customers
	// (GET /api/v1/customers)
	GetCustomers(ctx echo.Context) error

	// List import log
	// (GET /api/v1/import-logs)
	GetImportLogs(ctx echo.Context, params GetImportLogsParams) error

	// List orders
	// (GET /api/v1/orders)
	GetOrders(ctx echo.Context, params GetOrdersParams) error

	// Import master orders
	// (POST /api/v1/orders/import)
	ImportMasterOrders(ctx echo.Context) error

	// Get order detail
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId OrderId) error

	// Split order
	// (POST /api/v1/orders/{orderId}/split)
	SplitOrder(ctx echo.Context, orderId OrderId) error

	// Request stage advance
	// (POST /api/v1/orders/{orderId}/advance)
	RequestAdvance(ctx echo.Context, orderId OrderId) error

	// Assign ship date
	// (PUT /api/v1/orders/{orderId}/ship-date)
	AssignShipDate(ctx echo.Context, orderId OrderId) error

	// Allocate plant
	// (PUT /api/v1/orders/{orderId}/plant)
	AllocatePlant(ctx echo.Context, orderId OrderId) error

	// Change priority
	// (PUT /api/v1/orders/{orderId}/priority)
	ChangePriority(ctx echo.Context, orderId OrderId) error

	// Mark all items finished goods ready
	// (POST /api/v1/orders/{orderId}/fg-ready)
	MarkAllFGReady(ctx echo.Context, orderId OrderId) error

	// Create invoice
	// (POST /api/v1/orders/{orderId}/invoice)
	CreateInvoice(ctx echo.Context, orderId OrderId) error

	// Mark material ordered
	// (POST /api/v1/items/{itemId}/material-ordered)
	MarkMaterialOrdered(ctx echo.Context, itemId ItemId) error

	// Mark material received
	// (POST /api/v1/items/{itemId}/material-received)
	MarkMaterialReceived(ctx echo.Context, itemId ItemId) error

	// Set QA outcome
	// (PUT /api/v1/items/{itemId}/qa)
	SetQAOutcome(ctx echo.Context, itemId ItemId) error

	// Move order to any stage
	// (POST /api/v1/admin/orders/{orderId}/move)
	DirectMove(ctx echo.Context, orderId OrderId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetCustomers converts echo context to params.
func (w *ServerInterfaceWrapper) GetCustomers(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetCustomers(ctx)
	return err
}

// GetImportLogs converts echo context to params.
func (w *ServerInterfaceWrapper) GetImportLogs(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params GetImportLogsParams
	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetImportLogs(ctx, params)
	return err
}

// GetOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params GetOrdersParams
	// ------------- Optional query parameter "stage" -------------

	err = runtime.BindQueryParameter("form", true, false, "stage", ctx.QueryParams(), &params.Stage)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter stage: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrders(ctx, params)
	return err
}

// ImportMasterOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ImportMasterOrders(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ImportMasterOrders(ctx)
	return err
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrder(ctx, orderId)
	return err
}

// SplitOrder converts echo context to params.
func (w *ServerInterfaceWrapper) SplitOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SplitOrder(ctx, orderId)
	return err
}

// RequestAdvance converts echo context to params.
func (w *ServerInterfaceWrapper) RequestAdvance(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RequestAdvance(ctx, orderId)
	return err
}

// AssignShipDate converts echo context to params.
func (w *ServerInterfaceWrapper) AssignShipDate(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AssignShipDate(ctx, orderId)
	return err
}

// AllocatePlant converts echo context to params.
func (w *ServerInterfaceWrapper) AllocatePlant(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AllocatePlant(ctx, orderId)
	return err
}

// ChangePriority converts echo context to params.
func (w *ServerInterfaceWrapper) ChangePriority(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ChangePriority(ctx, orderId)
	return err
}

// MarkAllFGReady converts echo context to params.
func (w *ServerInterfaceWrapper) MarkAllFGReady(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.MarkAllFGReady(ctx, orderId)
	return err
}

// CreateInvoice converts echo context to params.
func (w *ServerInterfaceWrapper) CreateInvoice(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateInvoice(ctx, orderId)
	return err
}

// MarkMaterialOrdered converts echo context to params.
func (w *ServerInterfaceWrapper) MarkMaterialOrdered(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "itemId" -------------
	var itemId ItemId

	err = runtime.BindStyledParameterWithOptions("simple", "itemId", ctx.Param("itemId"), &itemId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter itemId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.MarkMaterialOrdered(ctx, itemId)
	return err
}

// MarkMaterialReceived converts echo context to params.
func (w *ServerInterfaceWrapper) MarkMaterialReceived(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "itemId" -------------
	var itemId ItemId

	err = runtime.BindStyledParameterWithOptions("simple", "itemId", ctx.Param("itemId"), &itemId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter itemId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.MarkMaterialReceived(ctx, itemId)
	return err
}

// SetQAOutcome converts echo context to params.
func (w *ServerInterfaceWrapper) SetQAOutcome(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "itemId" -------------
	var itemId ItemId

	err = runtime.BindStyledParameterWithOptions("simple", "itemId", ctx.Param("itemId"), &itemId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter itemId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SetQAOutcome(ctx, itemId)
	return err
}

// DirectMove converts echo context to params.
func (w *ServerInterfaceWrapper) DirectMove(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(AdminTokenScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DirectMove(ctx, orderId)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/customers", wrapper.GetCustomers)
	router.GET(baseURL+"/api/v1/import-logs", wrapper.GetImportLogs)
	router.GET(baseURL+"/api/v1/orders", wrapper.GetOrders)
	router.POST(baseURL+"/api/v1/orders/import", wrapper.ImportMasterOrders)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/split", wrapper.SplitOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/advance", wrapper.RequestAdvance)
	router.PUT(baseURL+"/api/v1/orders/:orderId/ship-date", wrapper.AssignShipDate)
	router.PUT(baseURL+"/api/v1/orders/:orderId/plant", wrapper.AllocatePlant)
	router.PUT(baseURL+"/api/v1/orders/:orderId/priority", wrapper.ChangePriority)
	router.POST(baseURL+"/api/v1/orders/:orderId/fg-ready", wrapper.MarkAllFGReady)
	router.POST(baseURL+"/api/v1/orders/:orderId/invoice", wrapper.CreateInvoice)
	router.POST(baseURL+"/api/v1/items/:itemId/material-ordered", wrapper.MarkMaterialOrdered)
	router.POST(baseURL+"/api/v1/items/:itemId/material-received", wrapper.MarkMaterialReceived)
	router.PUT(baseURL+"/api/v1/items/:itemId/qa", wrapper.SetQAOutcome)
	router.POST(baseURL+"/api/v1/admin/orders/:orderId/move", wrapper.DirectMove)

}
