package skulabs

import "encoding/json"

type itemWire struct {
	ID  string `json:"_id"`
	SKU string `json:"sku"`
}

type getOrdersResponseWire struct {
	Orders []orderWire `json:"orders"`
}

type getSingleOrderResponseWire struct {
	Order *orderWire `json:"order"`
}

type orderWire struct {
	OrderNumber string         `json:"order_number"`
	Stash       map[string]any `json:"stash"`
	Shipments   []shipmentWire `json:"shipments"`
}

type shipmentWire struct {
	Response *shipmentResponseWire `json:"response"`
	// Приходит либо ISO-строкой, либо миллисекундами.
	LastTrackingUpdate json.RawMessage `json:"last_tracking_update"`
	TrackingStatus     string          `json:"tracking_status"`
}

type shipmentResponseWire struct {
	Provider       string `json:"provider"`
	Service        string `json:"service"`
	TrackingNumber string `json:"tracking_number"`
}

type overrideOrderRequestWire struct {
	StoreID     string         `json:"store_id"`
	OrderNumber string         `json:"order_number"`
	Stash       map[string]any `json:"stash"`
}
