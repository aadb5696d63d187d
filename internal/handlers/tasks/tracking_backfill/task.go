package tracking_backfill

import (
	"context"
	"time"

	"skusync/internal/service/tracking"
	"skusync/pkg/logger"
)

type Service interface {
	Backfill(ctx context.Context) (*tracking.BackfillReport, error)
}

type TrackingBackfill struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewTrackingBackfill(log logger.Logger, service Service, interval time.Duration) *TrackingBackfill {
	return &TrackingBackfill{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (t *TrackingBackfill) TTL() time.Duration {
	return t.interval
}

func (t *TrackingBackfill) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, t.interval)
	defer cancel()

	report, err := t.service.Backfill(ctxWithTimeout)
	if err != nil {
		return err
	}

	if report.Updated > 0 || len(report.Failed) > 0 {
		t.log.With(
			logger.NewField("total", report.Total),
			logger.NewField("updated", report.Updated),
			logger.NewField("skipped", report.Skipped),
			logger.NewField("failed", report.Failed),
		).Info("tracking backfill")
	}

	return nil
}

func (t *TrackingBackfill) Info() string {
	return "tracking backfill"
}
