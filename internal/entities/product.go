package entities

// Product — строка таблицы продуктов в части, нужной сверке остатков.
type Product struct {
	ID       int64
	SKU      string
	Quantity int64
}

// FulfillmentItem — карточка товара в fulfillment API. ItemID нужен,
// чтобы связать SKU с картой остатков по локациям.
type FulfillmentItem struct {
	ItemID string
	SKU    string
}
