// Package shipby — пересчёт даты отгрузки по заметкам заказа:
// распарсить предзаказные строки, взять максимум по позициям и
// записать результат обратно в fulfillment API и в нашу таблицу.
package shipby

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skusync/internal/entities"
)

const stashShipByKey = "ship_by_date"

type Config struct {
	StoreID string
	// Тег, которым помечены интересующие нас заказы.
	Tag string
	// Насколько далеко назад смотрим при выборке заказов.
	Window time.Duration
}

type ShipBy struct {
	config     Config
	gateway    Gateway
	repository Repository
	parser     NotesParser
	calculator ShipDateCalculator
	clock      Clock
	pacer      Pacer
}

func New(
	config Config,
	gateway Gateway,
	repository Repository,
	parser NotesParser,
	calculator ShipDateCalculator,
	clock Clock,
	pacer Pacer,
) *ShipBy {
	return &ShipBy{
		config:     config,
		gateway:    gateway,
		repository: repository,
		parser:     parser,
		calculator: calculator,
		clock:      clock,
		pacer:      pacer,
	}
}

type RunReport struct {
	Total    int
	Updated  int
	Mirrored int
	Failed   []OrderFailure
}

type OrderFailure struct {
	OrderNumber string
	Error       string
}

// Run обрабатывает заказы окна. Ошибка по отдельному заказу попадает
// в отчёт и не прерывает прогон.
func (s *ShipBy) Run(ctx context.Context) (*RunReport, error) {
	now := s.clock.Now()
	start := now.Add(-s.config.Window)

	orders, err := s.gateway.GetOrders(ctx, start, now, []string{s.config.Tag})
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}

	report := &RunReport{Total: len(orders)}

	for idx, order := range orders {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run interrupted: %w", err)
		}

		if idx > 0 {
			if err := s.pacer.Wait(ctx); err != nil {
				return nil, fmt.Errorf("run interrupted: %w", err)
			}
		}

		mirrored, err := s.processOrder(ctx, order)
		if err != nil {
			report.Failed = append(report.Failed, OrderFailure{
				OrderNumber: order.Number,
				Error:       err.Error(),
			})
			continue
		}

		report.Updated++
		if mirrored {
			report.Mirrored++
		}
	}

	return report, nil
}

// ProcessOrderNumber пересчитывает дату отгрузки одного заказа, по
// событию об изменении заметок.
func (s *ShipBy) ProcessOrderNumber(ctx context.Context, orderNumber string) error {
	order, _, err := s.gateway.GetOrder(ctx, s.config.StoreID, orderNumber)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}

	if _, err := s.processOrder(ctx, *order); err != nil {
		return err
	}
	return nil
}

func (s *ShipBy) processOrder(ctx context.Context, order entities.FulfillmentOrder) (bool, error) {
	facts := s.parser.Parse(order.Notes)
	shipBy := s.calculator.LatestShippingDate(facts, order.PlacedAt)

	// Stash возвращаем целиком, меняем только свой ключ.
	stash := make(map[string]any, len(order.Stash)+1)
	for key, value := range order.Stash {
		stash[key] = value
	}
	if shipBy != nil {
		stash[stashShipByKey] = shipBy.Format(time.RFC3339)
	} else {
		stash[stashShipByKey] = nil
	}

	if err := s.gateway.OverrideOrder(ctx, s.config.StoreID, order.Number, stash); err != nil {
		return false, fmt.Errorf("override order: %w", err)
	}

	err := s.repository.UpdateShipByDate(ctx, order.Number, shipBy)
	if err != nil {
		// Таблица заказов отстаёт от fulfillment API, это не ошибка
		// обработки заказа.
		if errors.Is(err, ErrOrderNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("mirror ship by date: %w", err)
	}

	return true, nil
}
