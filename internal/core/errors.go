package core

import "errors"

// ErrNotFound is returned when a referenced entity does not exist.
// Repositories wrap it with the entity kind and id so the transport can
// produce a precise response.
var ErrNotFound = errors.New("not found")
