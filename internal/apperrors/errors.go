package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidCurrency is the panic value (wrapped) when money is built with an unsupported currency code.
var ErrInvalidCurrency = errors.New("invalid currency")

// ErrMissingRate is the panic value (wrapped) when a conversion has no entry in the rate table.
var ErrMissingRate = errors.New("missing conversion rate")
