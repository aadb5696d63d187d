package inventory

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyCatalog    = errors.New("no skus in product table")
)
