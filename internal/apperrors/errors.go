package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the requester does not own the resource.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the operation cannot proceed because other records still
// reference the resource (e.g. deleting a category that has transactions).
var ErrConflict = errors.New("conflicting resource state")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")
