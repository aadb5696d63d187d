package skulabs

import (
	"errors"
	"fmt"
)

var ErrOrderNotFound = errors.New("order not found")

// statusError — не-2xx ответ API. Ретраится только для 429 и 5xx.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.code, e.body)
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return statusErr.code == 429 || statusErr.code >= 500
	}

	// Транспортные ошибки (обрыв соединения, таймаут) ретраим.
	return true
}
