package order

import (
	"skusync/internal/entities"
)

func FromDomainTracking(upd *entities.OrderTrackingUpdate) *TrackingUpdateDB {
	if upd == nil {
		return nil
	}
	trackingDB := &TrackingUpdateDB{
		OrderID:               upd.OrderID,
		StatusLastUpdated:     upd.StatusLastUpdated,
		StatusLastUpdatedWest: upd.StatusLastUpdatedWest,
	}

	if upd.Carrier != "" {
		trackingDB.Carrier = &upd.Carrier
	}
	if upd.Service != "" {
		trackingDB.Service = &upd.Service
	}
	if upd.TrackingNumber != "" {
		trackingDB.TrackingNumber = &upd.TrackingNumber
	}
	if upd.Status != "" {
		trackingDB.Status = &upd.Status
	}

	return trackingDB
}
