// Package solution implements the C13 Solution and SampleSet aggregates: the
// result of evaluating an instance.Instance against a State or a set of
// samples, plus named extraction back out of either one.
package solution

import (
	"errors"
	"fmt"
)

var (
	// ErrWithParameters indicates named extraction was asked to extract a
	// decision variable or constraint that carries non-subscript metadata
	// (a "parameter" in spec terms), which named extraction by design
	// refuses to flatten into a subscript-keyed map.
	ErrWithParameters = errors.New("solution: cannot extract a variable or constraint carrying non-subscript metadata")

	// ErrDuplicateSubscript indicates two decision variables or constraints
	// share the same name and the same subscript tuple.
	ErrDuplicateSubscript = errors.New("solution: duplicate subscript for name")
)

// ExtractError names the entity (by ID, pre-rendered since decision and
// constraint IDs share no common type) responsible for an extraction
// failure.
type ExtractError struct {
	Name string
	ID   string
	Err  error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("solution: extracting %q: %s: %v", e.Name, e.ID, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }
