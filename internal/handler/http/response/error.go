package response

import (
	"errors"
	"net/http"

	"github.com/stafftrack/attendance-backend-go/internal/domain/department"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/domain/entry"
	"github.com/stafftrack/attendance-backend-go/internal/domain/holiday"
	"github.com/stafftrack/attendance-backend-go/internal/domain/payment"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
	"github.com/stafftrack/attendance-backend-go/internal/service/overlay"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentExists):
		Conflict(w, "Department already exists")
	case errors.Is(err, department.ErrDepartmentInUse):
		Conflict(w, "Department still has employees assigned")
	case errors.Is(err, department.ErrSameHours):
		BadRequest(w, "New hours must be different from current hours", nil)
	case errors.Is(err, department.ErrDuplicateEffective):
		Conflict(w, "An hours change already exists for this effective date")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNameExists):
		Conflict(w, "Employee name already exists")
	case errors.Is(err, employee.ErrSameDepartment):
		BadRequest(w, "Employee is already in this department", nil)
	case errors.Is(err, employee.ErrSameSalary):
		BadRequest(w, "New salary must be different from current salary", nil)
	case errors.Is(err, employee.ErrAlreadyInactive):
		Conflict(w, "Employee is already marked inactive")
	case errors.Is(err, employee.ErrDuplicateEffective):
		Conflict(w, "A salary change already exists for this effective date")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Holiday date already exists")

	// Entry domain errors
	case errors.Is(err, entry.ErrEntryExists):
		Conflict(w, "An entry already exists for this employee and date")
	case errors.Is(err, entry.ErrEntryOnHoliday):
		BadRequest(w, "Cannot record an entry on a holiday", nil)
	case errors.Is(err, entry.ErrFutureDate):
		BadRequest(w, "Cannot record an entry for a future date", nil)
	case errors.Is(err, entry.ErrEmployeeInactive):
		BadRequest(w, "Employee is not active on this date", nil)
	case errors.Is(err, entry.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, entry.ErrDepartmentUnknown):
		NotFound(w, "Department not found")

	// Payment domain errors
	case errors.Is(err, payment.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Grid editing errors
	case errors.Is(err, overlay.ErrAlreadyEditing):
		Conflict(w, "Table is already being edited")
	case errors.Is(err, overlay.ErrNotEditing):
		Conflict(w, "Table is not being edited")
	case errors.Is(err, overlay.ErrUnknownCell):
		NotFound(w, "Cell not found in this table")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
