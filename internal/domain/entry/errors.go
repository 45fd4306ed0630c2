package entry

import "errors"

// Entry domain errors
var (
	ErrEntryExists       = errors.New("an entry already exists for this employee and date")
	ErrEntryOnHoliday    = errors.New("cannot record an entry on a holiday")
	ErrFutureDate        = errors.New("cannot record an entry for a future date")
	ErrEmployeeInactive  = errors.New("employee is not active on this date")
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrDepartmentUnknown = errors.New("department not found")
)
