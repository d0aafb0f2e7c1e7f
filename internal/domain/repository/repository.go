package repository

import "errors"

// ErrNotFound is returned by lookups that match no document. Handlers
// report it as a soft failure (success=false), never as a server error.
var ErrNotFound = errors.New("not found")
