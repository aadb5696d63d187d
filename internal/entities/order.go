package entities

import "time"

// FulfillmentOrder — заказ, каким его отдаёт fulfillment API.
// Stash хранится целиком: при override нужно вернуть его без потерь,
// меняя только интересующие нас поля.
type FulfillmentOrder struct {
	Number   string
	Notes    string
	PlacedAt *time.Time
	Stash    map[string]any
}

// Shipment — отправление внутри заказа fulfillment API.
type Shipment struct {
	Provider           string
	Service            string
	TrackingNumber     string
	TrackingStatus     string
	LastTrackingUpdate *time.Time
}

// OrderTrackingUpdate — колонки трекинга, которые backfill пишет в
// таблицу заказов.
type OrderTrackingUpdate struct {
	OrderID               string
	Carrier               string
	Service               string
	TrackingNumber        string
	Status                string
	StatusLastUpdated     *time.Time
	StatusLastUpdatedWest *time.Time
}

type OrderStatusType string

const (
	OrderComplete  OrderStatusType = "COMPLETE"
	OrderCompleted OrderStatusType = "COMPLETED"
)

func (s OrderStatusType) String() string {
	return string(s)
}
