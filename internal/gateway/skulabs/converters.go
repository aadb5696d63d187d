package skulabs

import (
	"encoding/json"
	"time"

	"skusync/internal/entities"
)

func toItemDomainList(items []itemWire) []entities.FulfillmentItem {
	result := make([]entities.FulfillmentItem, 0, len(items))
	for _, item := range items {
		if item.SKU == "" {
			continue
		}
		result = append(result, entities.FulfillmentItem{
			ItemID: item.ID,
			SKU:    item.SKU,
		})
	}
	return result
}

func toOrderDomainList(resp *getOrdersResponseWire) []entities.FulfillmentOrder {
	if resp == nil || len(resp.Orders) == 0 {
		return []entities.FulfillmentOrder{}
	}

	orders := make([]entities.FulfillmentOrder, 0, len(resp.Orders))
	for _, wire := range resp.Orders {
		orders = append(orders, toOrderDomain(&wire))
	}
	return orders
}

func toOrderDomain(wire *orderWire) entities.FulfillmentOrder {
	order := entities.FulfillmentOrder{
		Number: wire.OrderNumber,
		Stash:  wire.Stash,
	}

	if notes, ok := wire.Stash["notes"].(string); ok {
		order.Notes = notes
	}
	if rawDate, ok := wire.Stash["date"].(string); ok {
		if placedAt, ok := parseFlexibleInstant(rawDate); ok {
			order.PlacedAt = &placedAt
		}
	}

	return order
}

func toShipmentDomainList(shipments []shipmentWire) []entities.Shipment {
	result := make([]entities.Shipment, 0, len(shipments))
	for _, wire := range shipments {
		if wire.Response == nil {
			continue
		}

		shipment := entities.Shipment{
			Provider:       wire.Response.Provider,
			Service:        wire.Response.Service,
			TrackingNumber: wire.Response.TrackingNumber,
			TrackingStatus: wire.TrackingStatus,
		}
		if updated, ok := parseTrackingUpdate(wire.LastTrackingUpdate); ok {
			shipment.LastTrackingUpdate = &updated
		}

		result = append(result, shipment)
	}
	return result
}

// parseTrackingUpdate принимает оба формата апстрима: ISO-строку и
// unix-миллисекунды.
func parseTrackingUpdate(raw json.RawMessage) (time.Time, bool) {
	if len(raw) == 0 {
		return time.Time{}, false
	}

	var millis int64
	if err := json.Unmarshal(raw, &millis); err == nil {
		return time.UnixMilli(millis).UTC(), true
	}

	var value string
	if err := json.Unmarshal(raw, &value); err == nil {
		return parseFlexibleInstant(value)
	}

	return time.Time{}, false
}

func parseFlexibleInstant(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
