// Package mcvoidadapter implements jsonval.Reader over github.com/mcvoid/json,
// demonstrating that the core engine never depends on encoding/json: any
// tree-shaped JSON front end the host already uses can sit behind the same
// narrow Reader capability (spec §6).
package mcvoidadapter

import (
	"github.com/exprstyle/mapexpr/internal/jsonval"
	mjson "github.com/mcvoid/json"
)

// Reader wraps an *mjson.Value.
type Reader struct {
	v *mjson.Value
}

// Wrap adapts an mcvoid/json value as a jsonval.Reader.
func Wrap(v *mjson.Value) jsonval.Reader { return Reader{v: v} }

// ParseString parses a JSON document and returns it as a jsonval.Reader.
func ParseString(s string) (jsonval.Reader, error) {
	v, err := mjson.ParseString(s)
	if err != nil {
		return nil, err
	}
	return Wrap(v), nil
}

func (r Reader) IsNull() bool   { return r.v.Type() == mjson.Null }
func (r Reader) IsArray() bool  { return r.v.Type() == mjson.Array }
func (r Reader) IsObject() bool { return r.v.Type() == mjson.Object }

func (r Reader) ArrayLength() int {
	arr, err := r.v.AsArray()
	if err != nil {
		return 0
	}
	return len(arr)
}

func (r Reader) ArrayMember(i int) jsonval.Reader {
	return Wrap(r.v.Index(i))
}

func (r Reader) EachMember(visit func(key string, v jsonval.Reader)) {
	obj, err := r.v.AsObject()
	if err != nil {
		return
	}
	for k, mv := range obj {
		visit(k, Wrap(mv))
	}
}

func (r Reader) ToString() (string, bool) {
	s, err := r.v.AsString()
	return s, err == nil
}

func (r Reader) ToDouble() (float64, bool) {
	if n, err := r.v.AsNumber(); err == nil {
		return n, true
	}
	if n, err := r.v.AsInteger(); err == nil {
		return float64(n), true
	}
	return 0, false
}

func (r Reader) ToBool() (bool, bool) {
	b, err := r.v.AsBoolean()
	return b, err == nil
}

func (r Reader) ToHostValue() jsonval.HostValue {
	switch r.v.Type() {
	case mjson.Null:
		return jsonval.Null
	case mjson.Boolean:
		b, _ := r.v.AsBoolean()
		return jsonval.Bool(b)
	case mjson.Integer:
		n, _ := r.v.AsInteger()
		return jsonval.Int(n)
	case mjson.Number:
		n, _ := r.v.AsNumber()
		return jsonval.Double(n)
	case mjson.String:
		s, _ := r.v.AsString()
		return jsonval.Str(s)
	case mjson.Array:
		arr, _ := r.v.AsArray()
		out := make([]jsonval.HostValue, len(arr))
		for i, el := range arr {
			out[i] = Reader{v: el}.ToHostValue()
		}
		return jsonval.Array(out)
	case mjson.Object:
		obj, _ := r.v.AsObject()
		out := make(map[string]jsonval.HostValue, len(obj))
		for k, el := range obj {
			out[k] = Reader{v: el}.ToHostValue()
		}
		return jsonval.Object(out)
	default:
		return jsonval.Null
	}
}
