//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"skusync/internal/entities"
)

type Gateway interface {
	GetOrder(ctx context.Context, storeID, orderNumber string) (*entities.FulfillmentOrder, []entities.Shipment, error)
}

type Repository interface {
	OrdersWithoutTracking(ctx context.Context, statuses []entities.OrderStatusType) ([]string, error)
	UpdateTracking(ctx context.Context, upd entities.OrderTrackingUpdate) error
}

type Pacer interface {
	Wait(ctx context.Context) error
}
