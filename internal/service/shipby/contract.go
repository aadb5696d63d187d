//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipby_test
package shipby

import (
	"context"
	"time"

	"skusync/internal/entities"
)

type Gateway interface {
	GetOrders(ctx context.Context, start, end time.Time, tags []string) ([]entities.FulfillmentOrder, error)
	GetOrder(ctx context.Context, storeID, orderNumber string) (*entities.FulfillmentOrder, []entities.Shipment, error)
	OverrideOrder(ctx context.Context, storeID, orderNumber string, stash map[string]any) error
}

type Repository interface {
	UpdateShipByDate(ctx context.Context, orderNumber string, shipBy *time.Time) error
}

type NotesParser interface {
	Parse(notes string) []entities.LineItemPreorderFact
}

type ShipDateCalculator interface {
	LatestShippingDate(facts []entities.LineItemPreorderFact, fallbackInstant *time.Time) *time.Time
}

type Clock interface {
	Now() time.Time
}

type Pacer interface {
	Wait(ctx context.Context) error
}
