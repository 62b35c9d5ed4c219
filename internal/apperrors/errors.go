package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a missing, invalid or expired session token.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRateNotFound indicates a well-formed upstream response that lacks the
// requested currency rate.
var ErrRateNotFound = errors.New("rate not found")

// ErrTypeConversion indicates a value that cannot be converted to an exact decimal.
var ErrTypeConversion = errors.New("unsupported type for decimal conversion")
