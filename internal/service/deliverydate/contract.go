//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliverydate_test
package deliverydate

import (
	"time"

	"skusync/internal/entities"
)

// Clock отдаёт текущее время. В проде это системные часы, в тестах —
// фиксированное значение: вся арифметика движка от него детерминирована.
type Clock interface {
	Now() time.Time
}

// ZoneTable отдаёт зону доставки по коду штата. Неизвестный код — это
// не ошибка: таблица возвращает зону по умолчанию и known=false.
type ZoneTable interface {
	ZoneFor(state string) (zone entities.ShippingZone, known bool)
	DefaultZone() entities.ShippingZone
}
