package exprparse

import (
	"strconv"

	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprtype"
)

// Context carries the parsing state threaded down through every recursive
// call (spec §4.7's ParsingContext): the structural key of the value being
// parsed, the shared error buffer, an optional expected type, and the
// lexical scope in effect.
type Context struct {
	Key      string
	Errors   *[]*diag.ParseError
	Expected *exprtype.Type
	Scope    *Scope
}

// NewContext builds the root context for a top-level parse call.
func NewContext(expected *exprtype.Type) *Context {
	return &Context{Errors: &[]*diag.ParseError{}, Expected: expected}
}

// Child descends to argument index i, optionally narrowing the expected
// type and/or pushing a new scope frame (pass the current Scope to keep it
// unchanged).
func (c *Context) Child(i int, expected *exprtype.Type, scope *Scope) *Context {
	return &Context{
		Key:      c.Key + "[" + strconv.Itoa(i) + "]",
		Errors:   c.Errors,
		Expected: expected,
		Scope:    scope,
	}
}

// Error appends a diagnostic at this context's own key.
func (c *Context) Error(code diag.ErrorCode, message string) {
	*c.Errors = append(*c.Errors, diag.NewParseError(code, c.Key, message))
}

// ErrorAt appends a diagnostic at child index i's key, without having
// descended a full Context for it (used for single-token messages like
// "expression name must be a string").
func (c *Context) ErrorAt(code diag.ErrorCode, i int, message string) {
	*c.Errors = append(*c.Errors, diag.NewParseError(code, c.Key+"["+strconv.Itoa(i)+"]", message))
}

func typePtr(t exprtype.Type) *exprtype.Type { return &t }
