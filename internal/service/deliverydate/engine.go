package deliverydate

import (
	"fmt"
	"time"

	"skusync/internal/entities"
	"skusync/internal/pkg/shippingzones"
	"skusync/pkg/datefmt"
)

const (
	// CutoffHour — локальный час склада, после которого заказ не
	// успевает в отгрузку текущего дня.
	CutoffHour = 11

	// ShipHour — час, на который нормализуются все ship-by даты.
	ShipHour = 11

	DefaultFormat            = "LLL dd"
	DefaultWarehouseTimezone = "America/Los_Angeles"
)

// Engine вычисляет даты отгрузки и доставки. Движок чистый: не держит
// изменяемого состояния и безопасен для конкурентных вызовов.
type Engine struct {
	zones ZoneTable
	clock Clock
}

func New(zones ZoneTable, clock Clock) *Engine {
	return &Engine{
		zones: zones,
		clock: clock,
	}
}

// DeliveryDateQuery — вход ComputeDeliveryDate. Все поля, кроме State,
// опциональны и имеют значения по умолчанию.
type DeliveryDateQuery struct {
	State             string
	OrderInstant      string
	WarehouseTimezone string
	Format            string
}

// ComputeDeliveryDate возвращает оценку даты доставки, отрендеренную в
// таймзоне получателя.
//
// Неизвестный или пустой штат не считается ошибкой: берётся зона по
// умолчанию (и штат по умолчанию, если штат не передан вовсе).
// Единственный невосстановимый вход — нечитаемый OrderInstant.
func (e *Engine) ComputeDeliveryDate(query DeliveryDateQuery) (string, error) {
	state := query.State
	if state == "" {
		state = shippingzones.DefaultState
	}
	zone, _ := e.zones.ZoneFor(state)

	warehouseTZ := query.WarehouseTimezone
	if warehouseTZ == "" {
		warehouseTZ = DefaultWarehouseTimezone
	}
	warehouseLoc, err := time.LoadLocation(warehouseTZ)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownTimezone, warehouseTZ)
	}

	warehouseNow := e.clock.Now().In(warehouseLoc)
	if query.OrderInstant != "" {
		warehouseNow, err = ParseInstant(query.OrderInstant, warehouseLoc)
		if err != nil {
			return "", err
		}
	}

	shippingDate := warehouseNow.AddDate(0, 0, ShippingDaysToAdd(warehouseNow))

	// Транзитные дни списываются только по будням: выходные внутри
	// окна доставки продлевают его.
	deliveryDate := shippingDate
	remaining := zone.TransitDays
	for remaining > 0 {
		deliveryDate = deliveryDate.AddDate(0, 0, 1)
		if IsBusinessDay(deliveryDate) {
			remaining--
		}
	}

	destinationLoc, err := time.LoadLocation(zone.Timezone)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownTimezone, zone.Timezone)
	}

	format := query.Format
	if format == "" {
		format = DefaultFormat
	}

	return datefmt.Format(deliveryDate.In(destinationLoc), format), nil
}

// ShipDate вычисляет стандартную (не предзаказную) дату передачи
// перевозчику: смещение по правилу дня недели и cutoff, воскресенье
// сдвигается на день вперёд, время нормализуется к 11:00 склада.
func (e *Engine) ShipDate(orderInstant *time.Time) time.Time {
	warehouseLoc, _ := time.LoadLocation(DefaultWarehouseTimezone)

	base := e.clock.Now().In(warehouseLoc)
	if orderInstant != nil {
		base = orderInstant.In(warehouseLoc)
	}

	shipDate := base.AddDate(0, 0, ShippingDaysToAdd(base))
	if shipDate.Weekday() == time.Sunday {
		shipDate = shipDate.AddDate(0, 0, 1)
	}

	return time.Date(shipDate.Year(), shipDate.Month(), shipDate.Day(), ShipHour, 0, 0, 0, warehouseLoc)
}

// LatestShippingDate агрегирует корзину в одну ship-by дату: максимум
// по всем позициям. Предзаказ без даты не участвует; если не участвует
// никто, результата нет (nil, не ошибка).
func (e *Engine) LatestShippingDate(facts []entities.LineItemPreorderFact, fallbackInstant *time.Time) *time.Time {
	var latest *time.Time

	for _, fact := range facts {
		var candidate *time.Time
		switch {
		case !fact.Preorder:
			shipDate := e.ShipDate(fallbackInstant)
			candidate = &shipDate
		case fact.PreorderDate != nil:
			candidate = fact.PreorderDate
		}

		if candidate == nil {
			continue
		}
		if latest == nil || candidate.After(*latest) {
			latest = candidate
		}
	}

	return latest
}

// ShippingDaysToAdd — календарные дни до передачи перевозчику по дню
// недели и часу заказа (локальное время склада).
//
// Понедельник всегда даёт смещение 1 независимо от часа — явное бизнес
// правило исходной системы, сохраняем буквально.
func ShippingDaysToAdd(t time.Time) int {
	day := isoWeekday(t)
	hour := t.Hour()

	if day == 1 {
		return 1
	}
	if day == 6 && hour >= CutoffHour {
		return 2
	}
	if day == 7 {
		return 1
	}
	if hour < CutoffHour {
		return 0
	}
	return 1
}

// IsBusinessDay — будний день по ISO (Пн..Пт). Праздники не
// учитываются: это документированное ограничение, а не баг.
func IsBusinessDay(t time.Time) bool {
	day := isoWeekday(t)
	return day >= 1 && day <= 5
}

// ParseInstant читает момент времени из строки. Строки без смещения
// интерпретируются в loc, строки со смещением конвертируются в loc.
func ParseInstant(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(loc), nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", value, loc); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", value, loc); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrParseInstant, value)
}

// isoWeekday: Пн=1..Вс=7.
func isoWeekday(t time.Time) int {
	day := int(t.Weekday())
	if day == 0 {
		return 7
	}
	return day
}

// SystemClock — продовые часы.
type SystemClock struct{}

func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now()
}
