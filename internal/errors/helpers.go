package errors

import (
	"context"
	"errors"
)

var contextCanceled = context.Canceled

// As finds the first *Error in the chain
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is reports whether any error in the chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the code of err. Foreign errors are internal unless they are
// a context cancellation.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	if errors.Is(err, contextCanceled) {
		return CodeCanceled
	}
	return CodeInternal
}

// Reason returns the message of the innermost coded error, which names the rule
// that was broken rather than the operation that hit it
func Reason(err error) string {
	if err == nil {
		return ""
	}

	reason := err.Error()
	for cur := err; cur != nil; cur = errors.Unwrap(cur) {
		if coded, ok := cur.(*Error); ok {
			reason = coded.Message
		}
	}
	return reason
}

// ExitCode is the process exit status for err
func ExitCode(err error) int {
	return GetCode(err).ExitCode()
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsUnavailable checks if an error is an unavailable error
func IsUnavailable(err error) bool {
	return GetCode(err) == CodeUnavailable
}

// IsCanceled checks if an error is a cancellation
func IsCanceled(err error) bool {
	return GetCode(err) == CodeCanceled
}
