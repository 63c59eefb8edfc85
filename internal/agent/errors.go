package agent

import "fmt"

type Kind string

const (
	KindInvalidInput         Kind = "invalid_input"
	KindUpstream             Kind = "upstream_error"
	KindMissingConfiguration Kind = "missing_configuration"
	KindInternal             Kind = "internal_error"
)

// Error is the only error type FetchNews returns.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func invalidInput(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func missingConfiguration(msg string) *Error {
	return &Error{Kind: KindMissingConfiguration, Message: msg}
}

func upstream(msg string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: msg, Err: err}
}

func internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: err.Error(), Err: err}
}
