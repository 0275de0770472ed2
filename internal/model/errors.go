package model

import "errors"

// ErrNotFound is returned by the repository when a requested entity does
// not exist. Handlers map it to a 404 response.
var ErrNotFound = errors.New("entity not found")

// ErrForbidden is returned when the requester is not allowed to perform
// the operation. Handlers map it to a 403 response.
var ErrForbidden = errors.New("operation is not permitted")
