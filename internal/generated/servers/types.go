// Package servers provides primitives to interact with the openapi HTTP API.
//
// The types, ServerInterface and route registration mirror openapi.yaml in
// this directory; keep both in step when the API changes.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	AdminTokenScopes = "AdminToken.Scopes"
)

// Defines values for HealthColor.
const (
	HealthColorAmber HealthColor = "Amber"
	HealthColorGreen HealthColor = "Green"
	HealthColorRed   HealthColor = "Red"
)

// Defines values for HistoryKind.
const (
	HistoryKindDirectMove     HistoryKind = "DirectMove"
	HistoryKindHealthSnapshot HistoryKind = "HealthSnapshot"
	HistoryKindTransition     HistoryKind = "Transition"
)

// Defines values for OrderStatus.
const (
	OrderStatusCreated    OrderStatus = "Created"
	OrderStatusInvoiced   OrderStatus = "Invoiced"
	OrderStatusReadyForFG OrderStatus = "ReadyForFG"
)

// Defines values for QAOutcome.
const (
	QAOutcomeApproved QAOutcome = "Approved"
	QAOutcomePending  QAOutcome = "Pending"
	QAOutcomeRejected QAOutcome = "Rejected"
)

// Defines values for Stage.
const (
	StageFGInventory  Stage = "FGInventory"
	StageProcurement  Stage = "Procurement"
	StageQuality      Stage = "Quality"
	StageRMInventory  Stage = "RMInventory"
	StageSalesSupport Stage = "SalesSupport"
)

// Customer defines model for Customer.
type Customer struct {
	Address    *string            `json:"address,omitempty"`
	Email      *string            `json:"email,omitempty"`
	Id         openapi_types.UUID `json:"id"`
	Name       string             `json:"name"`
	OrderCount int                `json:"orderCount"`
	Phone      *string            `json:"phone,omitempty"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HealthColor defines model for HealthColor.
type HealthColor string

// HistoryEntry defines model for HistoryEntry.
type HistoryEntry struct {
	Color     HealthColor `json:"color"`
	EnteredAt time.Time   `json:"enteredAt"`
	Kind      HistoryKind `json:"kind"`
	Stage     Stage       `json:"stage"`
}

// HistoryKind defines model for HistoryKind.
type HistoryKind string

// ImportLog defines model for ImportLog.
type ImportLog struct {
	Id          openapi_types.UUID `json:"id"`
	OrderNo     string             `json:"orderNo"`
	ProcessedAt time.Time          `json:"processedAt"`
	Remarks     *string            `json:"remarks,omitempty"`
	RowCount    int                `json:"rowCount"`
	SkuCodes    []string           `json:"skuCodes"`
	Source      string             `json:"source"`
	Status      string             `json:"status"`
	UploadedAt  time.Time          `json:"uploadedAt"`
}

// ImportRequest defines model for ImportRequest.
type ImportRequest struct {
	Rows       []ImportRow `json:"rows"`
	Source     string      `json:"source"`
	UploadedAt *time.Time  `json:"uploadedAt,omitempty"`
}

// ImportResult defines model for ImportResult.
type ImportResult struct {
	Imported int `json:"imported"`
}

// ImportRow defines model for ImportRow.
type ImportRow struct {
	CustomerName string  `json:"customerName"`
	OrderNo      string  `json:"orderNo"`
	Quantity     int     `json:"quantity"`
	SkuCode      *string `json:"skuCode,omitempty"`
	SkuName      string  `json:"skuName"`

	// UnitRate Decimal string such as "10000.00".
	UnitRate string `json:"unitRate"`
}

// Invoice defines model for Invoice.
type Invoice struct {
	InvoiceId string `json:"invoiceId"`
}

// LineItem defines model for LineItem.
type LineItem struct {
	FgReady              bool               `json:"fgReady"`
	Id                   openapi_types.UUID `json:"id"`
	InvoiceCreated       bool               `json:"invoiceCreated"`
	InvoiceId            *string            `json:"invoiceId,omitempty"`
	LastUpdated          time.Time          `json:"lastUpdated"`
	LineTotal            string             `json:"lineTotal"`
	MaterialExpectedDate *time.Time         `json:"materialExpectedDate,omitempty"`
	MaterialOrderRef     *string            `json:"materialOrderRef,omitempty"`
	MaterialOrdered      bool               `json:"materialOrdered"`
	MaterialReceived     bool               `json:"materialReceived"`
	MaterialReceivedDate *time.Time         `json:"materialReceivedDate,omitempty"`
	Qa                   QAOutcome          `json:"qa"`
	Quantity             int                `json:"quantity"`
	SkuCode              *string            `json:"skuCode,omitempty"`
	SkuName              string             `json:"skuName"`
	UnitRate             string             `json:"unitRate"`
}

// MaterialOrderedRequest defines model for MaterialOrderedRequest.
type MaterialOrderedRequest struct {
	ExpectedDate *time.Time `json:"expectedDate,omitempty"`
	OrderRef     *string    `json:"orderRef,omitempty"`
}

// MaterialReceivedRequest defines model for MaterialReceivedRequest.
type MaterialReceivedRequest struct {
	ReceivedDate *time.Time `json:"receivedDate,omitempty"`
}

// MoveRequest defines model for MoveRequest.
type MoveRequest struct {
	Stage Stage `json:"stage"`
}

// Order defines model for Order.
type Order struct {
	ExpectedShipDate *time.Time          `json:"expectedShipDate,omitempty"`
	Id               openapi_types.UUID  `json:"id"`
	InvoiceId        *string             `json:"invoiceId,omitempty"`
	LastActivity     time.Time           `json:"lastActivity"`
	OrderNo          string              `json:"orderNo"`
	ParentId         *openapi_types.UUID `json:"parentId,omitempty"`
	Plant            *string             `json:"plant,omitempty"`
	Priority         int                 `json:"priority"`
	Stage            Stage               `json:"stage"`
	Status           OrderStatus         `json:"status"`
	Version          int                 `json:"version"`
}

// OrderDetail defines model for OrderDetail.
type OrderDetail struct {
	Children []string       `json:"children"`
	History  []HistoryEntry `json:"history"`
	Items    []LineItem     `json:"items"`
	Order    OrderSummary   `json:"order"`
	Remarks  string         `json:"remarks"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// OrderSummary defines model for OrderSummary.
type OrderSummary struct {
	CustomerName     string              `json:"customerName"`
	DaysRemaining    *int                `json:"daysRemaining,omitempty"`
	ExpectedShipDate *time.Time          `json:"expectedShipDate,omitempty"`
	Health           HealthColor         `json:"health"`
	Id               openapi_types.UUID  `json:"id"`
	InvoiceId        *string             `json:"invoiceId,omitempty"`
	ItemCount        int                 `json:"itemCount"`
	LastActivity     time.Time           `json:"lastActivity"`
	OrderNo          string              `json:"orderNo"`
	ParentId         *openapi_types.UUID `json:"parentId,omitempty"`
	Plant            *string             `json:"plant,omitempty"`
	Priority         int                 `json:"priority"`
	Stage            Stage               `json:"stage"`
	Status           OrderStatus         `json:"status"`

	// TotalValue Sum of quantity times unit rate, decimal string.
	TotalValue string `json:"totalValue"`
	Version    int    `json:"version"`
}

// PlantRequest defines model for PlantRequest.
type PlantRequest struct {
	Plant string `json:"plant"`
}

// PriorityRequest defines model for PriorityRequest.
type PriorityRequest struct {
	Priority int `json:"priority"`
}

// QAOutcome defines model for QAOutcome.
type QAOutcome string

// QARequest defines model for QARequest.
type QARequest struct {
	Approved bool `json:"approved"`
}

// ShipDateRequest defines model for ShipDateRequest.
type ShipDateRequest struct {
	ShipDate time.Time `json:"shipDate"`
}

// SplitRequest defines model for SplitRequest.
type SplitRequest struct {
	ItemIds  []openapi_types.UUID `json:"itemIds"`
	Plant    *string              `json:"plant,omitempty"`
	ShipDate *time.Time           `json:"shipDate,omitempty"`
}

// SplitResult defines model for SplitResult.
type SplitResult struct {
	Items []LineItem `json:"items"`
	Order Order      `json:"order"`
}

// Stage defines model for Stage.
type Stage string

// Transition defines model for Transition.
type Transition struct {
	From Stage `json:"from"`
	To   Stage `json:"to"`
}

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// ItemId defines model for ItemId.
type ItemId = openapi_types.UUID

// GetImportLogsParams defines parameters for GetImportLogs.
type GetImportLogsParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// GetOrdersParams defines parameters for GetOrders.
type GetOrdersParams struct {
	Stage *Stage `form:"stage,omitempty" json:"stage,omitempty"`
}

// ImportMasterOrdersJSONRequestBody defines body for ImportMasterOrders for application/json ContentType.
type ImportMasterOrdersJSONRequestBody = ImportRequest

// SplitOrderJSONRequestBody defines body for SplitOrder for application/json ContentType.
type SplitOrderJSONRequestBody = SplitRequest

// AssignShipDateJSONRequestBody defines body for AssignShipDate for application/json ContentType.
type AssignShipDateJSONRequestBody = ShipDateRequest

// AllocatePlantJSONRequestBody defines body for AllocatePlant for application/json ContentType.
type AllocatePlantJSONRequestBody = PlantRequest

// ChangePriorityJSONRequestBody defines body for ChangePriority for application/json ContentType.
type ChangePriorityJSONRequestBody = PriorityRequest

// MarkMaterialOrderedJSONRequestBody defines body for MarkMaterialOrdered for application/json ContentType.
type MarkMaterialOrderedJSONRequestBody = MaterialOrderedRequest

// MarkMaterialReceivedJSONRequestBody defines body for MarkMaterialReceived for application/json ContentType.
type MarkMaterialReceivedJSONRequestBody = MaterialReceivedRequest

// SetQAOutcomeJSONRequestBody defines body for SetQAOutcome for application/json ContentType.
type SetQAOutcomeJSONRequestBody = QARequest

// DirectMoveJSONRequestBody defines body for DirectMove for application/json ContentType.
type DirectMoveJSONRequestBody = MoveRequest
