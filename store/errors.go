package store

import "errors"

// ErrFull is returned by Insert when a configured capacity has been
// reached.
var ErrFull = errors.New("store full")
