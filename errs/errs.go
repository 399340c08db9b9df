// Package errs defines the failure kinds shared by comparator, stream and
// optional.
//
// Kinds are constant errors so callers can match them with errors.Is:
//
//	if errors.Is(err, errs.ErrNoSuchElement) {
//		return fallback
//	}
//
// Errors built with New carry a message and the stack of the call site.
package errs

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a failure. It implements error so it can be declared const
// and used directly as a sentinel.
type Kind string

// Error implements the error interface.
func (k Kind) Error() string { return string(k) }

const (
	// ErrNullArgument reports a missing value or callback.
	ErrNullArgument Kind = "null argument"
	// ErrInvalidArgument reports an argument outside the accepted domain.
	ErrInvalidArgument Kind = "invalid argument"
	// ErrTypeMismatch reports two operands of incompatible types.
	ErrTypeMismatch Kind = "type mismatch"
	// ErrIncomparable reports an operand without a natural ordering.
	ErrIncomparable Kind = "incomparable"
	// ErrNoSuchElement reports a value requested where none exists.
	ErrNoSuchElement Kind = "no such element"
	// ErrNotImplemented reports a deliberately unsupported operation.
	ErrNotImplemented Kind = "not implemented"
	// ErrIllegalState reports an operation on a consumed or closed stream.
	ErrIllegalState Kind = "illegal state"
)

var kinds = []Kind{
	ErrNullArgument,
	ErrInvalidArgument,
	ErrTypeMismatch,
	ErrIncomparable,
	ErrNoSuchElement,
	ErrNotImplemented,
	ErrIllegalState,
}

// New annotates kind with a formatted message and the caller's stack trace.
func New(kind Kind, format string, args ...any) error {
	return errors.Wrapf(kind, format, args...)
}

// KindOf reports the Kind wrapped by err.
func KindOf(err error) (Kind, bool) {
	var k Kind
	if !stderrors.As(err, &k) {
		return "", false
	}
	for _, known := range kinds {
		if k == known {
			return k, true
		}
	}
	return "", false
}

// Recover turns a panic carrying a Kind-classified error into a returned
// error. It must be deferred directly:
//
//	defer errs.Recover(&err)
//
// Panics of any other shape are re-raised untouched.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if err, ok := r.(error); ok {
		if _, known := KindOf(err); known {
			*errp = err
			return
		}
	}
	panic(r)
}

// StackTrace returns the "%+v" rendering of err, which includes the recorded
// stack frames when err was built by New.
func StackTrace(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%+v", err)
}
