package payment

import "errors"

// Payment domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found for payment status update")
)
