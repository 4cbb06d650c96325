package http

import (
	"salesflow/internal/core/application/usecases/queries"
	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toOptionalUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	converted := id.Bytes()
	return &converted
}

func toStage(s order.Stage) servers.Stage {
	return servers.Stage(s.String())
}

func toOrder(o *order.Order) servers.Order {
	return servers.Order{
		Id:               o.ID().Bytes(),
		OrderNo:          o.OrderNo(),
		ParentId:         toOptionalUUID(o.ParentID()),
		Stage:            toStage(o.Stage()),
		Status:           servers.OrderStatus(o.Status().String()),
		Priority:         o.Priority(),
		Plant:            optional(o.Plant()),
		ExpectedShipDate: o.ExpectedShipDate(),
		LastActivity:     o.LastActivity(),
		InvoiceId:        optional(o.InvoiceID()),
		Version:          o.Version(),
	}
}

func toOrderSummary(row queries.OrderSummary) servers.OrderSummary {
	return servers.OrderSummary{
		Id:               row.ID.Bytes(),
		OrderNo:          row.OrderNo,
		ParentId:         toOptionalUUID(row.ParentID),
		CustomerName:     row.CustomerName,
		Stage:            toStage(row.Stage),
		Status:           servers.OrderStatus(row.Status.String()),
		Priority:         row.Priority,
		Plant:            optional(row.Plant),
		ExpectedShipDate: row.ExpectedShipDate,
		LastActivity:     row.LastActivity,
		InvoiceId:        optional(row.InvoiceID),
		Version:          row.Version,
		ItemCount:        row.ItemCount,
		TotalValue:       row.TotalValue.StringFixed(2),
		Health:           servers.HealthColor(row.Health.String()),
		DaysRemaining:    row.DaysRemaining,
	}
}

func toOrderDetail(detail queries.OrderDetail) servers.OrderDetail {
	items := make([]servers.LineItem, len(detail.Items))
	for i, item := range detail.Items {
		items[i] = toLineItem(item)
	}

	history := make([]servers.HistoryEntry, len(detail.History))
	for i, entry := range detail.History {
		history[i] = servers.HistoryEntry{
			Kind:      servers.HistoryKind(entry.Kind.String()),
			Stage:     toStage(entry.Stage),
			EnteredAt: entry.EnteredAt,
			Color:     servers.HealthColor(entry.Color.String()),
		}
	}

	children := detail.Children
	if children == nil {
		children = []string{}
	}

	return servers.OrderDetail{
		Order:    toOrderSummary(detail.OrderSummary),
		Remarks:  detail.Remarks,
		Children: children,
		Items:    items,
		History:  history,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toLineItem(item queries.LineItemView) servers.LineItem {
	return servers.LineItem{
		Id:                   item.ID.Bytes(),
		SkuName:              item.SkuName,
		SkuCode:              optional(item.SkuCode),
		Quantity:             item.Quantity,
		UnitRate:             item.UnitRate.StringFixed(2),
		LineTotal:            item.LineTotal.StringFixed(2),
		MaterialOrdered:      item.MaterialOrdered,
		MaterialOrderRef:     optional(item.MaterialOrderRef),
		MaterialExpectedDate: item.MaterialExpectedDate,
		MaterialReceived:     item.MaterialReceived,
		MaterialReceivedDate: item.MaterialReceivedDate,
		Qa:                   servers.QAOutcome(item.QA.String()),
		FgReady:              item.FGReady,
		InvoiceCreated:       item.InvoiceCreated,
		InvoiceId:            optional(item.InvoiceID),
		LastUpdated:          item.LastUpdated,
	}
}

// toLineItemView reads a line item the way the detail query returns it.
func toLineItemView(item *order.LineItem) queries.LineItemView {
	return queries.LineItemView{
		ID:                   item.ID(),
		SkuName:              item.SkuName(),
		SkuCode:              item.SkuCode(),
		Quantity:             item.Quantity(),
		UnitRate:             item.UnitRate(),
		LineTotal:            item.LineTotal(),
		MaterialOrdered:      item.MaterialOrdered(),
		MaterialOrderRef:     item.MaterialOrderRef(),
		MaterialExpectedDate: item.MaterialExpectedDate(),
		MaterialReceived:     item.MaterialReceived(),
		MaterialReceivedDate: item.MaterialReceivedDate(),
		QA:                   item.QA(),
		FGReady:              item.FGReady(),
		InvoiceCreated:       item.InvoiceCreated(),
		InvoiceID:            item.InvoiceID(),
		LastUpdated:          item.LastUpdated(),
	}
}
