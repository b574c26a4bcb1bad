package uci

import (
	"errors"
	"fmt"
)

// ErrMalformedCommand is returned by Parse for a recognized command whose
// payload breaks the grammar.
var ErrMalformedCommand = errors.New("malformed command")

// StreamError is a read or write failure on the protocol streams. It ends
// the session.
type StreamError struct {
	Op  string
	Err error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("uci %s: %v", e.Op, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}
