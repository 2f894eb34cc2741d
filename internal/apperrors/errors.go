package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates a conflict with existing data detected via an
// existence check (duplicate name, duplicate IBAN, referenced entity).
var ErrConflict = errors.New("resource conflict")

// ErrForbidden indicates the caller is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")
