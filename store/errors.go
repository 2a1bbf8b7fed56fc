package store

import "errors"

// ErrNotFound reports that the row a mutation targeted does not exist (or, for
// alert resolution, was already resolved). Callers use it to tell "nothing to
// do" apart from a store failure.
var ErrNotFound = errors.New("record not found")
