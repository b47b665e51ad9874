package cache

import "errors"

// ErrNotFound is returned by Get when the key is absent or its entry has
// expired.
var ErrNotFound = errors.New("cache: result not found")
