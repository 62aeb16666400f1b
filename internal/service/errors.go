package service

import (
	"errors"
)

// Sentinel errors the handlers map to HTTP statuses. Everything is wrapped
// with fmt.Errorf("...: %w", ...) so errors.Is still matches after context
// is added.
var (
	// ErrNotFound marks a referenced bill/customer/product/batch that does
	// not exist. Handlers answer 404.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks bad user input (empty cart, missing name, unknown
	// payment status). The operation aborts before any persistence.
	ErrValidation = errors.New("validation failed")

	// ErrCompanyNotConfigured blocks invoice generation until the company
	// profile has at least a name.
	ErrCompanyNotConfigured = errors.New("company profile is not configured")
)
