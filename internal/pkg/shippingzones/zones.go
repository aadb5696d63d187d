package shippingzones

import (
	"strings"

	"skusync/internal/entities"
)

const (
	// DefaultTransitDays применяется для штатов вне таблицы зон.
	DefaultTransitDays = 5

	// DefaultTimezone — таймзона получателя для неизвестных штатов.
	DefaultTimezone = "America/New_York"

	// DefaultState используется, когда штат вообще не передан.
	DefaultState = "NY"
)

// Table — неизменяемая таблица зон доставки. Строится один раз в New
// и дальше только читается, поэтому безопасна для конкурентного
// использования без блокировок.
type Table struct {
	zones   []entities.ShippingZone
	byState map[string]int
}

func New() *Table {
	zones := []entities.ShippingZone{
		{
			States:      []string{"CA", "NV", "UT", "AZ"},
			TransitDays: 2,
			Timezone:    "America/Los_Angeles",
		},
		{
			States:      []string{"OR", "WA", "ID", "MT", "WY", "CO", "NM", "TX", "OK"},
			TransitDays: 3,
			Timezone:    "America/Denver",
		},
		{
			States: []string{
				"ND", "SD", "NE", "KS", "MN", "IA", "MO", "AR", "LA",
				"MI", "WI", "IL", "MS", "IN", "OH", "KY", "TN", "AL",
				"FL", "GA", "SC", "NC", "VA", "WV", "PA", "DE", "MD", "NJ",
			},
			TransitDays: 4,
			Timezone:    "America/Chicago",
		},
		{
			States:      []string{"NY", "CT", "RI", "MA", "NH", "VT", "ME", "HI"},
			TransitDays: 5,
			Timezone:    "America/New_York",
		},
		{
			States:      []string{"AK"},
			TransitDays: 7,
			Timezone:    "America/Anchorage",
		},
	}

	byState := make(map[string]int)
	for i, zone := range zones {
		for _, state := range zone.States {
			byState[state] = i
		}
	}

	return &Table{
		zones:   zones,
		byState: byState,
	}
}

// ZoneFor возвращает зону для кода штата (без учёта регистра).
// Второе значение false означает, что штат не найден и вернулась зона
// по умолчанию — это не ошибка.
func (t *Table) ZoneFor(state string) (entities.ShippingZone, bool) {
	i, ok := t.byState[strings.ToUpper(strings.TrimSpace(state))]
	if !ok {
		return t.DefaultZone(), false
	}
	return t.zones[i], true
}

func (t *Table) DefaultZone() entities.ShippingZone {
	return entities.ShippingZone{
		TransitDays: DefaultTransitDays,
		Timezone:    DefaultTimezone,
	}
}

// IsValidState reports whether the state code belongs to a known zone.
func (t *Table) IsValidState(state string) bool {
	_, ok := t.byState[strings.ToUpper(strings.TrimSpace(state))]
	return ok
}

// States возвращает все известные коды штатов.
func (t *Table) States() []string {
	states := make([]string, 0, len(t.byState))
	for state := range t.byState {
		states = append(states, state)
	}
	return states
}
