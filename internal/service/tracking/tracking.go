// Package tracking — донабивка трекинга: завершённые заказы без
// трек-номера получают его из первого отправления fulfillment API.
package tracking

import (
	"context"
	"fmt"
	"time"

	"skusync/internal/entities"
)

const westTimezone = "America/Los_Angeles"

type Config struct {
	StoreID string
}

type Tracking struct {
	config     Config
	gateway    Gateway
	repository Repository
	pacer      Pacer
	westLoc    *time.Location
}

func New(config Config, gateway Gateway, repository Repository, pacer Pacer) (*Tracking, error) {
	westLoc, err := time.LoadLocation(westTimezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", westTimezone, err)
	}

	return &Tracking{
		config:     config,
		gateway:    gateway,
		repository: repository,
		pacer:      pacer,
		westLoc:    westLoc,
	}, nil
}

type BackfillReport struct {
	Total   int
	Updated int
	// Заказы, у которых в API ещё нет отправления с этикеткой.
	Skipped int
	Failed  []OrderFailure
}

type OrderFailure struct {
	OrderNumber string
	Error       string
}

// Backfill проходит завершённые заказы без трек-номера. Ошибка по
// отдельному заказу попадает в отчёт и не прерывает прогон.
func (t *Tracking) Backfill(ctx context.Context) (*BackfillReport, error) {
	statuses := []entities.OrderStatusType{entities.OrderComplete, entities.OrderCompleted}

	orderNumbers, err := t.repository.OrdersWithoutTracking(ctx, statuses)
	if err != nil {
		return nil, fmt.Errorf("list orders without tracking: %w", err)
	}

	report := &BackfillReport{Total: len(orderNumbers)}

	for idx, orderNumber := range orderNumbers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("backfill interrupted: %w", err)
		}

		if idx > 0 {
			if err := t.pacer.Wait(ctx); err != nil {
				return nil, fmt.Errorf("backfill interrupted: %w", err)
			}
		}

		updated, err := t.backfillOrder(ctx, orderNumber)
		switch {
		case err != nil:
			report.Failed = append(report.Failed, OrderFailure{
				OrderNumber: orderNumber,
				Error:       err.Error(),
			})
		case updated:
			report.Updated++
		default:
			report.Skipped++
		}
	}

	return report, nil
}

func (t *Tracking) backfillOrder(ctx context.Context, orderNumber string) (bool, error) {
	_, shipments, err := t.gateway.GetOrder(ctx, t.config.StoreID, orderNumber)
	if err != nil {
		return false, fmt.Errorf("get order: %w", err)
	}

	if len(shipments) == 0 {
		return false, nil
	}

	// Берём первое отправление: у заказов с несколькими этикетками
	// трекинг всё равно один и тот же поток.
	shipment := shipments[0]

	upd := entities.OrderTrackingUpdate{
		OrderID:        orderNumber,
		Carrier:        shipment.Provider,
		Service:        shipment.Service,
		TrackingNumber: shipment.TrackingNumber,
		Status:         shipment.TrackingStatus,
	}
	if shipment.LastTrackingUpdate != nil {
		utc := shipment.LastTrackingUpdate.UTC()
		west := utc.In(t.westLoc)
		upd.StatusLastUpdated = &utc
		upd.StatusLastUpdatedWest = &west
	}

	if err := t.repository.UpdateTracking(ctx, upd); err != nil {
		return false, fmt.Errorf("update tracking: %w", err)
	}

	return true, nil
}
