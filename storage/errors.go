package storage

import "errors"

// ErrNotFound indicates the key has no stored value.
var ErrNotFound = errors.New("storage: key not found")
