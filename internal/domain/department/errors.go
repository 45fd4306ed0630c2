package department

import "errors"

// Department domain errors
var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentExists   = errors.New("department already exists")
	ErrDepartmentInUse    = errors.New("department still has employees assigned")
	ErrSameHours          = errors.New("new hours must be different from current hours")
	ErrDuplicateEffective = errors.New("an hours change already exists for this effective date")
)
