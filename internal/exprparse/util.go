package exprparse

import "github.com/exprstyle/mapexpr/internal/jsonval"

// describeReaderType names a reader's JSON shape for diagnostics, mirroring
// the original's getJSONType() used in messages like "Expected string, but
// found object instead."
func describeReaderType(r jsonval.Reader) string {
	switch {
	case r.IsNull():
		return "null"
	case r.IsArray():
		return "array"
	case r.IsObject():
		return "object"
	}
	if _, ok := r.ToBool(); ok {
		return "boolean"
	}
	if _, ok := r.ToString(); ok {
		return "string"
	}
	return "number"
}
