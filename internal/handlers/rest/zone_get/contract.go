//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=zone_get_test
package zone_get

import (
	"skusync/internal/entities"
	"skusync/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type ZoneTable interface {
	ZoneFor(state string) (entities.ShippingZone, bool)
}
