package ltree

import (
	"errors"
	"fmt"
)

// Grammar names the label grammar a ValidationError was raised against.
type Grammar string

const (
	// GrammarPath is the label grammar of paths: [A-Za-z0-9_]+.
	GrammarPath Grammar = "ltree"

	// GrammarQuery is the label grammar of query patterns: [A-Za-z0-9_|]+
	// or a wildcard term.
	GrammarQuery Grammar = "lquery"
)

// ValidationError reports a label that does not satisfy its grammar.
type ValidationError struct {
	// Grammar is the grammar the label was checked against.
	Grammar Grammar

	// Label is the offending raw text.
	Label string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s label not valid: %s", e.Grammar, e.Label)
}

// IndexError reports an out-of-range element index.
type IndexError struct {
	Index int
	Len   int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for length %d", e.Index, e.Len)
}

// IsValidationError returns true if err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsIndexError returns true if err is or wraps an *IndexError.
func IsIndexError(err error) bool {
	var ie *IndexError
	return errors.As(err, &ie)
}
