// Package errs defines the small, closed set of error kinds raised at the
// boundary of the tuple codec and COLA packages. Every exported operation
// that can fail deterministically returns one of these kinds, wrapped with
// call-site context via github.com/pkg/errors.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies one of the named failure modes from the tuple codec and
// COLA family. Callers recover locally by switching on Kind via errors.As.
type Kind int

const (
	// Empty is raised decoding or taking Last of an empty container.
	Empty Kind = iota + 1
	// IndexOutOfRange is raised on item access outside [-count, count).
	IndexOutOfRange
	// ArityMismatch is raised by DecodeKey on a non-singleton tuple.
	ArityMismatch
	// UnsupportedType is raised when runtime dispatch finds no encoder.
	UnsupportedType
	// MalformedTuple is raised on an unknown type byte, a missing
	// terminator, or a truncated integer body.
	MalformedTuple
	// PrefixMismatch is raised by UnpackPrefixed when the slice does not
	// start with the expected prefix.
	PrefixMismatch
	// InvalidRange is raised by Mark/Remove when begin >= end.
	InvalidRange
	// DuplicateKey is raised by a dictionary Add with an existing key.
	DuplicateKey
	// StoreMutated is raised when an iterator is advanced after its
	// backing store was modified.
	StoreMutated
	// DepthExceeded is raised when a COLA store would need to grow past
	// its configured maximum depth.
	DepthExceeded
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case IndexOutOfRange:
		return "IndexOutOfRange"
	case ArityMismatch:
		return "ArityMismatch"
	case UnsupportedType:
		return "UnsupportedType"
	case MalformedTuple:
		return "MalformedTuple"
	case PrefixMismatch:
		return "PrefixMismatch"
	case InvalidRange:
		return "InvalidRange"
	case DuplicateKey:
		return "DuplicateKey"
	case StoreMutated:
		return "StoreMutated"
	case DepthExceeded:
		return "DepthExceeded"
	default:
		return "Unknown"
	}
}

// Error wraps a Kind with a human-readable message and, optionally, an
// underlying cause.
type Error struct {
	Kind  Kind
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

// Unwrap allows errors.Is/errors.As to see through to the cause.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target carries the same Kind, so callers can write
// errors.Is(err, errs.New(errs.Empty, "")).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Kind == e.Kind
}

// New constructs an *Error of the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap constructs an *Error of the given kind, wrapping cause.
func Wrap(cause error, kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...), cause: errors.WithStack(cause)}
}

// Of reports the Kind of err, if err is (or wraps) an *errs.Error.
func Of(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Is reports whether err is of the given kind.
func Is(err error, kind Kind) bool {
	k, ok := Of(err)
	return ok && k == kind
}
