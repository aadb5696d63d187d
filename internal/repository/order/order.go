// Package order — репозиторий таблицы заказов. Заказы с "TEST" в
// номере живут в отдельной тестовой таблице, роутинг по таблицам
// делается здесь.
package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"skusync/internal/entities"
	"skusync/internal/service/shipby"
	"skusync/internal/service/tracking"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const testOrderMarker = "TEST"

type Repository struct {
	querier   Querier
	table     string
	testTable string
}

func New(querier Querier, table, testTable string) *Repository {
	return &Repository{
		querier:   querier,
		table:     pgx.Identifier{table}.Sanitize(),
		testTable: pgx.Identifier{testTable}.Sanitize(),
	}
}

// OrdersWithoutTracking возвращает номера завершённых заказов, у
// которых ещё нет трек-номера.
func (r *Repository) OrdersWithoutTracking(ctx context.Context, statuses []entities.OrderStatusType) ([]string, error) {
	statusValues := make([]string, 0, len(statuses))
	for _, status := range statuses {
		statusValues = append(statusValues, status.String())
	}

	builder := qb.
		Select("order_id").
		From(r.table).
		Where(sq.Eq{"status": statusValues}).
		Where(sq.Or{
			sq.Eq{"tracking_number": nil},
			sq.Eq{"tracking_number": ""},
		}).
		OrderBy("order_id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository orderswithouttracking error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository orderswithouttracking error: %w", err)
	}
	defer rows.Close()

	orderIDs := make([]string, 0, 32)
	for rows.Next() {
		var orderID string
		if err := rows.Scan(&orderID); err != nil {
			return nil, fmt.Errorf("unexpected order repository orderswithouttracking error: %w", err)
		}
		orderIDs = append(orderIDs, orderID)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository orderswithouttracking error: %w", err)
	}

	return orderIDs, nil
}

// UpdateShipByDate зеркалит вычисленную дату отгрузки в таблицу
// заказов. nil снимает дату.
func (r *Repository) UpdateShipByDate(ctx context.Context, orderNumber string, shipBy *time.Time) error {
	query := fmt.Sprintf(`
	UPDATE %s
	SET ship_by_date = $1, updated_at = NOW()
	WHERE order_id = $2`, r.tableFor(orderNumber))

	tag, err := r.querier.Exec(ctx, query, shipBy, orderNumber)
	if err != nil {
		return fmt.Errorf("unexpected order repository updateshipbydate error: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return shipby.ErrOrderNotFound
	}

	return nil
}

// UpdateTracking пишет колонки трекинга, заполняя только пришедшие
// поля.
func (r *Repository) UpdateTracking(ctx context.Context, upd entities.OrderTrackingUpdate) error {
	trackingDB := FromDomainTracking(&upd)

	builder := qb.
		Update(r.tableFor(upd.OrderID))

	if trackingDB.Carrier != nil {
		builder = builder.Set("carrier", trackingDB.Carrier)
	}
	if trackingDB.Service != nil {
		builder = builder.Set("carrier_service", trackingDB.Service)
	}
	if trackingDB.TrackingNumber != nil {
		builder = builder.Set("tracking_number", trackingDB.TrackingNumber)
	}
	if trackingDB.Status != nil {
		builder = builder.Set("tracking_status", trackingDB.Status)
	}
	if trackingDB.StatusLastUpdated != nil {
		builder = builder.Set("status_last_updated", trackingDB.StatusLastUpdated)
	}
	if trackingDB.StatusLastUpdatedWest != nil {
		builder = builder.Set("status_last_updated_west", trackingDB.StatusLastUpdatedWest)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.Where(sq.Eq{"order_id": trackingDB.OrderID})

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository updatetracking error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected order repository updatetracking error: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return tracking.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) tableFor(orderNumber string) string {
	if strings.Contains(strings.ToUpper(orderNumber), testOrderMarker) {
		return r.testTable
	}
	return r.table
}
