package ioformat

import "errors"

// ErrIO is wrapped by every error this package returns for a failed file
// read or write, or for malformed line content encountered while reading.
// The one exception is a literal 0 in a term list, which wraps
// rbd.ErrZeroLiteral instead.
var ErrIO = errors.New("ioformat: I/O failure")
