//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ship_by_date_post_test
package ship_by_date_post

import (
	"time"

	"skusync/internal/entities"
	"skusync/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type NotesParser interface {
	Parse(notes string) []entities.LineItemPreorderFact
}

type ShipDateCalculator interface {
	LatestShippingDate(facts []entities.LineItemPreorderFact, fallbackInstant *time.Time) *time.Time
}
