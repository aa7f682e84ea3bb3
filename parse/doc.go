// Package parse implements the C14 wire-parse layer: decoding the binary
// v1 wire messages and validating them into the core model (instance,
// decision, constraint, function, evaluate), producing a structured
// traceback on failure instead of a bare error.
package parse

import (
	"errors"
	"fmt"
	"strings"
)

// Root causes. Each is wrapped by a *TracebackError as parsing descends
// through message/field frames.
var (
	// ErrUnsupportedV1Function is raised when a wire Function's oneof has no
	// variant set: a forward-compatibility signal that a newer producer
	// emitted a function kind this parser predates.
	ErrUnsupportedV1Function = errors.New("parse: unsupported or unset v1 Function oneof")

	// ErrUnspecifiedEnum is raised when a proto enum field is left at its
	// zero/UNSPECIFIED value, which is never valid on the wire.
	ErrUnspecifiedEnum = errors.New("parse: enum left at UNSPECIFIED")

	// ErrMissingField is raised when a required submessage field is absent.
	ErrMissingField = errors.New("parse: required field is missing")

	// ErrDuplicatedVariableID is raised when two decision variables share an ID.
	ErrDuplicatedVariableID = errors.New("parse: duplicated variable ID")

	// ErrDuplicatedConstraintID is raised when two constraints share an ID.
	ErrDuplicatedConstraintID = errors.New("parse: duplicated constraint ID")

	// ErrDuplicatedSampleID is raised when a sample ID appears in more than
	// one Samples entry.
	ErrDuplicatedSampleID = errors.New("parse: duplicated sample ID")

	// ErrUndefinedVariableID names a reference to a variable ID absent from
	// decision_variables. ConvertInstance does not return it: such a
	// reference surfaces as instance.ErrUndefinedVariableID inside the
	// traceback.
	ErrUndefinedVariableID = errors.New("parse: undefined variable ID")

	// ErrUndefinedConstraintID names a hint reference to a constraint ID
	// absent from constraints. No function in this package returns it; the
	// wire Instance carries no hints.
	ErrUndefinedConstraintID = errors.New("parse: undefined constraint ID")

	// ErrNonUniqueVariableID names a duplicate in a hint's own variable ID
	// list. No function in this package returns it.
	ErrNonUniqueVariableID = errors.New("parse: hint variable ID list is not unique")

	// ErrNonUniqueConstraintID names a duplicate in a hint's own constraint
	// ID list. No function in this package returns it.
	ErrNonUniqueConstraintID = errors.New("parse: hint constraint ID list is not unique")
)

// VariableIDError names the variable ID responsible for a duplicate or
// undefined-reference failure.
type VariableIDError struct {
	ID  uint64
	Err error
}

func (e *VariableIDError) Error() string { return fmt.Sprintf("parse: variable %d: %v", e.ID, e.Err) }
func (e *VariableIDError) Unwrap() error { return e.Err }

// ConstraintIDError names the constraint ID responsible for a duplicate or
// undefined-reference failure.
type ConstraintIDError struct {
	ID  uint64
	Err error
}

func (e *ConstraintIDError) Error() string {
	return fmt.Sprintf("parse: constraint %d: %v", e.ID, e.Err)
}
func (e *ConstraintIDError) Unwrap() error { return e.Err }

// SampleIDError names the sample ID responsible for a duplicate failure.
type SampleIDError struct {
	ID  uint64
	Err error
}

func (e *SampleIDError) Error() string { return fmt.Sprintf("parse: sample %d: %v", e.ID, e.Err) }
func (e *SampleIDError) Unwrap() error { return e.Err }

// DecodeError wraps a low-level binary decoding failure (a malformed
// varint, a truncated length-delimited field, and so on).
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("parse: decoding wire bytes: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// Frame is one (message, field) step of a parse traceback, naming a
// submessage field the parser was inside when the failure surfaced.
type Frame struct {
	Message string
	Field   string
}

// TracebackError is a parse failure annotated with the chain of messages
// and fields the parser had descended into when the root cause surfaced.
// Display is the "Traceback for OMMX Message parse error:" banner, then one
// "└─Message[Field]" line per frame (outermost first, each indented 2
// spaces deeper than the last), then the root error's message — this
// formatting is relied upon by snapshot tests and must be reproduced
// exactly.
type TracebackError struct {
	Frames []Frame
	Err    error
}

// Wrap prepends an outer (message, field) frame as the error propagates
// back out through one more level of the wire message tree.
func (e *TracebackError) Wrap(message, field string) *TracebackError {
	frames := append([]Frame{{Message: message, Field: field}}, e.Frames...)
	return &TracebackError{Frames: frames, Err: e.Err}
}

// traceback wraps err in a *TracebackError holding the single (message,
// field) frame, or, if err already is one, prepends that frame as the new
// outermost frame.
func traceback(err error, message, field string) error {
	if err == nil {
		return nil
	}
	var te *TracebackError
	if errors.As(err, &te) {
		return te.Wrap(message, field)
	}
	return &TracebackError{Frames: []Frame{{Message: message, Field: field}}, Err: err}
}

func (e *TracebackError) Error() string {
	var b strings.Builder
	b.WriteString("Traceback for OMMX Message parse error:\n")
	width := 0
	for _, f := range e.Frames {
		b.WriteString(strings.Repeat(" ", width))
		b.WriteString("└─")
		b.WriteString(f.Message)
		b.WriteString("[")
		b.WriteString(f.Field)
		b.WriteString("]\n")
		width += 2
	}
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *TracebackError) Unwrap() error { return e.Err }
