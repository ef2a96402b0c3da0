package service

import (
	"fmt"
)

// ValidationError marks client input problems so handlers can answer 400
// instead of 500.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func invalidf(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
