package data

import "errors"

var (
	ErrEmptyName       = errors.New("empty name")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidScore    = errors.New("invalid score")
	ErrNothingSelected = errors.New("nothing selected")
	ErrNotFound        = errors.New("item not found")
	ErrUnknownCategory = errors.New("unknown category")
)

// ValidationError pairs one of the sentinel kinds with the message shown to the user.
type ValidationError struct {
	Kind error
	Msg  string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func invalid(kind error, msg string) *ValidationError {
	return &ValidationError{Kind: kind, Msg: msg}
}
