package console

import "errors"

var (
	ErrPanic = errors.New("panic")

	errInputClosed = errors.New("input closed")
	errNotANumber  = errors.New("not a number")
)
