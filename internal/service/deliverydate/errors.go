package deliverydate

import "errors"

var (
	ErrParseInstant    = errors.New("malformed order instant")
	ErrUnknownTimezone = errors.New("unknown timezone")
)
