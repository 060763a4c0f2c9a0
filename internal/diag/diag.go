// Package diag defines the two error taxonomies used throughout the
// expression engine: parse-time diagnostics, collected into a shared buffer
// with a structural key, and evaluation-time errors, propagated as Go errors.
package diag

import "fmt"

// ErrorCode classifies a diagnostic. Parse errors and evaluation errors use
// disjoint code spaces so a code alone identifies which taxonomy produced it.
type ErrorCode string

const (
	// Parse error kinds (spec §7: syntax, type, arity, numeric-range,
	// unknown-name, duplicate-case, ordering).
	CodeSyntax        ErrorCode = "syntax"
	CodeType          ErrorCode = "type"
	CodeArity         ErrorCode = "arity"
	CodeNumericRange  ErrorCode = "numeric-range"
	CodeUnknownName   ErrorCode = "unknown-name"
	CodeDuplicateCase ErrorCode = "duplicate-case"
	CodeOrdering      ErrorCode = "ordering"

	// Evaluation error kinds.
	CodeTypeMismatch    ErrorCode = "type-mismatch"
	CodeIndexOutOfRange ErrorCode = "index-out-of-range"
	CodeNonIntegerIndex ErrorCode = "non-integer-index"
	CodeMissingFeature  ErrorCode = "missing-feature"
	CodeMissingZoom     ErrorCode = "missing-zoom"
	CodeMissingProperty ErrorCode = "missing-property"
	CodeConversion      ErrorCode = "conversion"
	CodeInvalidColor    ErrorCode = "invalid-color"
	CodeNumericOverflow ErrorCode = "numeric-overflow"
)

// ParseError is a single parse-time diagnostic, annotated with the
// JSON-pointer-like structural key of the value that produced it (e.g.
// "[1][3]").
type ParseError struct {
	Code    ErrorCode
	Key     string
	Message string
}

func (e *ParseError) Error() string {
	if e.Key == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Key, e.Message)
}

// NewParseError constructs a ParseError with the given code, key and message.
func NewParseError(code ErrorCode, key, message string) *ParseError {
	return &ParseError{Code: code, Key: key, Message: message}
}

// EvalError is a single evaluation-time failure. Evaluation never panics;
// every Evaluate implementation returns (nil, *EvalError) on failure and
// short-circuits its caller.
type EvalError struct {
	Code    ErrorCode
	Message string
}

func (e *EvalError) Error() string { return e.Message }

// NewEvalError constructs an EvalError with the given code and message.
func NewEvalError(code ErrorCode, message string) *EvalError {
	return &EvalError{Code: code, Message: message}
}
