package library

import "errors"

// ErrNotFound reports a lookup that matched no stored composition.
var ErrNotFound = errors.New("composition not found")
