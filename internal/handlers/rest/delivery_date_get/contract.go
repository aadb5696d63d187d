//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_date_get_test
package delivery_date_get

import (
	"skusync/internal/entities"
	"skusync/internal/service/deliverydate"
	"skusync/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ComputeDeliveryDate(query deliverydate.DeliveryDateQuery) (string, error)
}

type ZoneTable interface {
	ZoneFor(state string) (entities.ShippingZone, bool)
}
