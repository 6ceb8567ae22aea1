package types

import (
	"errors"
	"fmt"
)

// =============================================================================
// ERROR TAXONOMY
// =============================================================================
// Every failure that ends a run is classified with a Kind. The Kind decides
// the process exit code and can be matched with errors.Is:
//
//   if errors.Is(err, types.KindEmptySelection) { ... }

// Kind classifies a terminal error.
type Kind int

const (
	// KindUnknown is the kind of any error not produced by this module.
	KindUnknown Kind = iota

	// KindType means the row collection is not a sequence.
	KindType

	// KindSourceRead means the records source could not be read or parsed.
	KindSourceRead

	// KindEmptySchema means no field names were discovered in the records.
	KindEmptySchema

	// KindEmptySelection means every key was deselected before confirming.
	KindEmptySelection

	// KindSinkWrite means the rendered text could not be persisted.
	KindSinkWrite

	// KindConfig means the configuration or a preset key list is invalid.
	KindConfig

	// KindAborted means the user interrupted the key selector.
	KindAborted
)

// String returns a short description of the kind.
func (k Kind) String() string {
	switch k {
	case KindType:
		return "not a sequence"
	case KindSourceRead:
		return "failed to read records"
	case KindEmptySchema:
		return "no keys discovered"
	case KindEmptySelection:
		return "no keys selected"
	case KindSinkWrite:
		return "failed to write output"
	case KindConfig:
		return "invalid configuration"
	case KindAborted:
		return "aborted"
	default:
		return "unknown error"
	}
}

// Error makes a Kind usable as an errors.Is target.
func (k Kind) Error() string {
	return k.String()
}

// ExitCode returns the process exit status for the kind.
func (k Kind) ExitCode() int {
	switch k {
	case KindType:
		return 2
	case KindSourceRead:
		return 3
	case KindEmptySchema:
		return 4
	case KindEmptySelection:
		return 5
	case KindSinkWrite:
		return 6
	case KindConfig:
		return 7
	case KindAborted:
		return 130
	default:
		return 1
	}
}

// Error is a classified error.
type Error struct {
	// Kind classifies the failure.
	Kind Kind

	// Op describes what was being done, e.g. "read records".
	// When empty, the Kind description is used.
	Op string

	// Path is the file involved, if any.
	Path string

	// Err is the underlying cause, if any.
	Err error
}

// NewError returns a classified error wrapping err.
func NewError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Op
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the error's Kind.
func (e *Error) Is(target error) bool {
	kind, ok := target.(Kind)
	return ok && kind == e.Kind
}

// KindOf returns the Kind of the first classified error in err's chain,
// or KindUnknown.
func KindOf(err error) Kind {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}
	return KindUnknown
}
