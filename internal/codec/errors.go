package codec

import (
	"errors"
	"fmt"
)

// ParseError reports wire text that could not be decoded into a value.
type ParseError struct {
	// Type is the name of the type being decoded, e.g. "ltree".
	Type string

	// Text is the decoded wire text.
	Text string

	// Err is the underlying cause, usually an *ltree.ValidationError.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Type, e.Text, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// BindError reports a conflicting type binding.
type BindError struct {
	Type    string
	OID     OID
	Message string
}

// Error implements the error interface.
func (e *BindError) Error() string {
	return fmt.Sprintf("bind %s to oid %d: %s", e.Type, e.OID, e.Message)
}

// ErrUnknownOID is returned when decoding with an identifier that has no
// binding.
var ErrUnknownOID = errors.New("no loader bound to oid")

// IsParseError returns true if err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
