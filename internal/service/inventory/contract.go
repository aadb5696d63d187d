//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=inventory_test
package inventory

import (
	"context"

	"skusync/internal/entities"
)

type Repository interface {
	DistinctSKUs(ctx context.Context) ([]string, error)
	GetQuantityBySKU(ctx context.Context, sku string) (*entities.Product, error)
	UpdateQuantityBySKU(ctx context.Context, sku string, quantity int64) error
}

type Gateway interface {
	GetItems(ctx context.Context, skus []string) ([]entities.FulfillmentItem, error)
	GetOnHandLocationMap(ctx context.Context) (map[string]map[string]int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type ReportWriter interface {
	Write(name string, data any) (string, error)
}

// Pacer притормаживает между обращениями к внешнему API.
type Pacer interface {
	Wait(ctx context.Context) error
}
