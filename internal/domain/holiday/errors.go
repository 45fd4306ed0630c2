package holiday

import "errors"

var (
	ErrHolidayExists = errors.New("holiday date already exists")
)
