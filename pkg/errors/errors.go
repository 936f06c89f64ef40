// Package errors augments the standard errors
// provided by fmt (https://golang.org/src/fmt/errors.go)
// with a Wrap() method to attach causes to sentinel errors
// without resorting to fmt.Errorf("%w", err).
package errors

import (
	stderr "errors"
)

var _ error = New("")

// New Error
func New(msg string) *Error {
	e := &Error{msg: msg}
	e.base = e
	return e
}

// Error augments the standard error interface with a Wrap method.
//
// Wrapping a sentinel declared with New yields a new value that still
// matches the sentinel with errors.Is: sentinels stay comparable no matter
// how many causes have been attached along the way.
type Error struct {
	msg  string
	err  error
	base *Error
}

// Error message, with the wrapped cause when there is one
func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

// Unwrap nested error
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Wrap a cause under this error. The receiver is left untouched:
// wrapping returns a distinct value sharing the receiver's identity.
func (e *Error) Wrap(err error) *Error {
	return &Error{msg: e.msg, err: err, base: e.base}
}

// Is of some error type?
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.base == t.base
	}
	return false
}

// As finds the first error in err's chain that matches target, and if so, sets target to that error value and returns true.
// (a shortcut to standard lib errors.As)
func As(err error, target interface{}) bool {
	return stderr.As(err, target)
}

// Is reports whether any error in err's chain matches target
// (a shortcut to standard lib errors.Is)
func Is(err, target error) bool {
	return stderr.Is(err, target)
}
