package sqlconfig

import "errors"

// ErrNotFound is returned when no row matches the requested key.
var ErrNotFound = errors.New("record not found")
