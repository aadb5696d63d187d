package ship_by_date_sync

import (
	"context"
	"time"

	"skusync/internal/service/shipby"
	"skusync/pkg/logger"
)

type Service interface {
	Run(ctx context.Context) (*shipby.RunReport, error)
}

type ShipByDateSync struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewShipByDateSync(log logger.Logger, service Service, interval time.Duration) *ShipByDateSync {
	return &ShipByDateSync{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *ShipByDateSync) TTL() time.Duration {
	return s.interval
}

func (s *ShipByDateSync) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	report, err := s.service.Run(ctxWithTimeout)
	if err != nil {
		return err
	}

	log := s.log.With(
		logger.NewField("total", report.Total),
		logger.NewField("updated", report.Updated),
		logger.NewField("mirrored", report.Mirrored),
	)
	if len(report.Failed) > 0 {
		log.With(
			logger.NewField("failed", report.Failed),
		).Warn("ship by date sync finished with failures")
		return nil
	}

	log.Info("ship by date sync")
	return nil
}

func (s *ShipByDateSync) Info() string {
	return "ship by date sync"
}
