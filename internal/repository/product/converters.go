package product

import (
	"skusync/internal/entities"
)

func ToDomain(p *ProductDB) *entities.Product {
	if p == nil {
		return nil
	}

	return &entities.Product{
		ID:       p.ID,
		SKU:      p.SKU,
		Quantity: p.Quantity,
	}
}
