package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrNameExists         = errors.New("employee name must be unique")
	ErrSameDepartment     = errors.New("employee is already in this department")
	ErrSameSalary         = errors.New("new salary must be different from current salary")
	ErrAlreadyInactive    = errors.New("employee is already marked inactive")
	ErrDuplicateEffective = errors.New("a salary change already exists for this effective date")
)
