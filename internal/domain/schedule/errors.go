package schedule

import "errors"

var (
	ErrInvalidDay = errors.New("hari tidak valid")
)
