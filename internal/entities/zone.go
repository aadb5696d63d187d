package entities

// ShippingZone описывает зону доставки: набор штатов, количество
// транзитных дней и таймзону получателя.
type ShippingZone struct {
	States      []string
	TransitDays int
	Timezone    string
}

// Contains reports whether the zone covers the given state code.
// Код штата должен быть уже нормализован (uppercase).
func (z ShippingZone) Contains(state string) bool {
	for _, s := range z.States {
		if s == state {
			return true
		}
	}
	return false
}
