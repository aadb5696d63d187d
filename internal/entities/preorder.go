package entities

import "time"

// LineItemPreorderFact — факт предзаказа по одной позиции корзины,
// извлечённый из примечаний к заказу.
type LineItemPreorderFact struct {
	Preorder     bool
	PreorderDate *time.Time
}

type CartShippingResult struct {
	ShipByDate *time.Time
}
