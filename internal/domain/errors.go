package domain

import "errors"

var (
	ErrInput           = errors.New("invalid input")
	ErrStorage         = errors.New("storage failure")
	ErrStageInvocation = errors.New("stage invocation failed")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("already exists")
	ErrMissingArtifact = errors.New("artifact does not exist")
	ErrAggregation     = errors.New("aggregation failed")

	ErrInvalidTransition = errors.New("invalid job state transition")
)

var (
	ErrNoFileProvided  = inputError("no file provided")
	ErrUnsupportedFile = inputError("unsupported file type")
	ErrInvalidContext  = inputError("invalid context record")
)

type wrappedError struct {
	msg    string
	parent error
}

func (e *wrappedError) Error() string { return e.msg }

func (e *wrappedError) Unwrap() error { return e.parent }

func inputError(msg string) error {
	return &wrappedError{msg: msg, parent: ErrInput}
}
