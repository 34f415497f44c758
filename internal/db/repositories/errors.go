package repositories

import "errors"

// ErrNotFound is returned when a lookup matches no row. Handlers map it to a
// 404 rather than a 500.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a unique constraint would be violated
// (application email, subscriber email, content slugs).
var ErrDuplicate = errors.New("record already exists")
