package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that a resource clashes with an existing one,
// e.g. a step whose date range overlaps another step of the same trip.
var ErrConflict = errors.New("resource conflict")

// ErrForbidden indicates that the requesting user does not own the resource.
var ErrForbidden = errors.New("forbidden")
