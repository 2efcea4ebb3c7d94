package cube

import (
	"bytes"
	"errors"
	"fmt"
)

// Validation failure kinds. Every error returned by LoadCube, Parse and
// MergeCube wraps exactly one of these.
var (
	ErrMissingSourceExpression = errors.New("missing source expression")
	ErrUnknownAggregationType  = errors.New("unknown aggregation type")
	ErrMissingMeasureColumn    = errors.New("missing measure column")
	ErrUnknownValueType        = errors.New("unknown value type")
	ErrMissingDimensionColumn  = errors.New("missing dimension column")
	ErrUnknownRelationship     = errors.New("unknown join relationship")
	ErrMissingJoinCondition    = errors.New("missing join condition")
	ErrMissingCubeName         = errors.New("missing cube name")
	ErrCubeNameMismatch        = errors.New("cube name mismatch")
)

// ValidationError represents a schema validation error with context
type ValidationError struct {
	Err        error  // One of the Err* kinds above
	Field      string // Field path (e.g., "measures.numberOfUsers.type")
	Name       string // Offending measure, dimension or join name; empty for cube-level errors
	Message    string // Error message
	Suggestion string // Helpful suggestion (optional)
	Line       int    // Line number in YAML (if available)
}

// Error returns a formatted error message
func (e *ValidationError) Error() string {
	var msg string
	if e.Line > 0 {
		msg = fmt.Sprintf("validation error at %s (line %d): %s", e.Field, e.Line, e.Message)
	} else {
		msg = fmt.Sprintf("validation error at %s: %s", e.Field, e.Message)
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(". Suggestion: %s", e.Suggestion)
	}
	return msg
}

// Unwrap exposes the failure kind to errors.Is
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []*ValidationError

// Error returns all validation errors formatted with clear separation
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("found %d validation errors:\n", len(e)))
	for i, err := range e {
		buf.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return buf.String()
}

// Unwrap lets errors.Is and errors.As match any contained error
func (e ValidationErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, err := range e {
		errs[i] = err
	}
	return errs
}
