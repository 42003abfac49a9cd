package wizard

import (
	"errors"
	"fmt"
)

// Reasons a transition is rejected. They are wrapped in a ValidationError.
var (
	ErrEmptyAnswer    = errors.New("answer is empty")
	ErrEmptySelection = errors.New("no option selected")
	ErrUnknownOption  = errors.New("option is not offered")
	ErrWrongKind      = errors.New("input does not match the question kind")
	ErrComplete       = errors.New("all questions are answered")
)

// ValidationError reports a rejected user action. A rejected action never
// changes the session.
type ValidationError struct {
	Key string // question key, empty once the session is complete
	Err error
}

func (e *ValidationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("validation error: %v", e.Err)
	}
	return fmt.Sprintf("validation error [%s]: %v", e.Key, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func reject(key string, err error) error {
	return &ValidationError{Key: key, Err: err}
}
