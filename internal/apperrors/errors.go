package apperrors

import "errors"

// ErrNetwork indicates that a call to the upstream myteam backend failed
// (transport error or non-2xx response).
var ErrNetwork = errors.New("backend request failed")

// ErrShapeMismatch indicates that an upstream response was missing the
// expected structure and could not be decoded into a known shape.
var ErrShapeMismatch = errors.New("unexpected response shape")

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates a missing or invalid session token.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the session user's role does not permit the
// requested page or action.
var ErrForbidden = errors.New("forbidden")
