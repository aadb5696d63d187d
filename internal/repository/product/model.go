package product

type ProductDB struct {
	ID       int64
	SKU      string
	Quantity int64
}
