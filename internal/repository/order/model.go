package order

import "time"

type TrackingUpdateDB struct {
	OrderID               string
	Carrier               *string
	Service               *string
	TrackingNumber        *string
	Status                *string
	StatusLastUpdated     *time.Time
	StatusLastUpdatedWest *time.Time
}
