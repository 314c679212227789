package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found within
// the caller's scope. Resources owned by another user surface as this error
// too, so existence is never leaked across tenants.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but not allowed to perform the operation.
var ErrForbidden = errors.New("forbidden")
