// Package product — репозиторий таблицы продуктов. Имя таблицы
// задаётся при создании: сверка остатков ходит по нескольким
// одинаковым по схеме таблицам.
package product

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"skusync/internal/entities"
	"skusync/internal/service/inventory"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
	table   string
}

func New(querier Querier, table string) *Repository {
	return &Repository{
		querier: querier,
		table:   pgx.Identifier{table}.Sanitize(),
	}
}

// DistinctSKUs возвращает уникальные SKU таблицы, пустые пропускает.
func (r *Repository) DistinctSKUs(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf(`
	SELECT DISTINCT sku
	FROM %s
	WHERE sku IS NOT NULL AND sku <> ''
	ORDER BY sku`, r.table)

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository distinctskus error: %w", err)
	}
	defer rows.Close()

	skus := make([]string, 0, 256)
	for rows.Next() {
		var sku string
		if err := rows.Scan(&sku); err != nil {
			return nil, fmt.Errorf("unexpected product repository distinctskus error: %w", err)
		}
		skus = append(skus, sku)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository distinctskus error: %w", err)
	}

	return skus, nil
}

func (r *Repository) GetQuantityBySKU(ctx context.Context, sku string) (*entities.Product, error) {
	query := fmt.Sprintf(`
	SELECT id, sku, quantity
	FROM %s
	WHERE sku = $1
	LIMIT 1`, r.table)

	var productModel ProductDB
	err := r.querier.QueryRow(ctx, query, sku).
		Scan(
			&productModel.ID,
			&productModel.SKU,
			&productModel.Quantity,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, inventory.ErrProductNotFound
		}

		return nil, fmt.Errorf("unexpected product repository getquantitybysku error: %w", err)
	}

	return ToDomain(&productModel), nil
}

// UpdateQuantityBySKU выставляет количество для всех строк с данным SKU.
func (r *Repository) UpdateQuantityBySKU(ctx context.Context, sku string, quantity int64) error {
	builder := qb.
		Update(r.table).
		Set("quantity", quantity).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"sku": sku})

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected product repository updatequantitybysku error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected product repository updatequantitybysku error: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return inventory.ErrProductNotFound
	}

	return nil
}
