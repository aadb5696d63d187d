package inventory_sync

import (
	"context"
	"time"

	"skusync/internal/service/inventory"
	"skusync/pkg/logger"
)

type Service interface {
	Reconcile(ctx context.Context) (*inventory.UpdateReport, error)
}

type InventorySync struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewInventorySync(log logger.Logger, service Service, interval time.Duration) *InventorySync {
	return &InventorySync{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (i *InventorySync) TTL() time.Duration {
	return i.interval
}

func (i *InventorySync) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, i.interval)
	defer cancel()

	report, err := i.service.Reconcile(ctxWithTimeout)
	if err != nil {
		return err
	}

	i.log.With(
		logger.NewField("table", report.Table),
		logger.NewField("total", report.Total),
		logger.NewField("good", report.Good),
		logger.NewField("failed", report.Failed),
	).Info("inventory sync")

	return nil
}

func (i *InventorySync) Info() string {
	return "inventory sync"
}
