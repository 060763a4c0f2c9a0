// Package yamladapter implements jsonval.Reader over a YAML-decoded tree,
// letting style documents authored in YAML feed the same parser as JSON
// documents without the core ever knowing the difference (spec §6).
package yamladapter

import (
	"github.com/exprstyle/mapexpr/internal/jsonval"
	"gopkg.in/yaml.v3"
)

// Reader wraps a value produced by yaml.Unmarshal into `any`.
type Reader struct {
	v any
}

// ParseString decodes a YAML document and returns it as a jsonval.Reader.
func ParseString(s string) (jsonval.Reader, error) {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	return Wrap(v), nil
}

// Wrap adapts a yaml.Unmarshal result (map[string]any / []any / scalars) as
// a jsonval.Reader.
func Wrap(v any) jsonval.Reader { return Reader{v: v} }

func (r Reader) IsNull() bool { return r.v == nil }

func (r Reader) IsArray() bool {
	_, ok := r.v.([]any)
	return ok
}

func (r Reader) IsObject() bool {
	switch r.v.(type) {
	case map[string]any, map[any]any:
		return true
	}
	return false
}

func (r Reader) asArray() []any {
	arr, _ := r.v.([]any)
	return arr
}

func (r Reader) asObject() map[string]any {
	switch m := r.v.(type) {
	case map[string]any:
		return m
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			if ks, ok := k.(string); ok {
				out[ks] = v
			}
		}
		return out
	}
	return nil
}

func (r Reader) ArrayLength() int { return len(r.asArray()) }

func (r Reader) ArrayMember(i int) jsonval.Reader {
	arr := r.asArray()
	if i < 0 || i >= len(arr) {
		return Wrap(nil)
	}
	return Wrap(arr[i])
}

func (r Reader) EachMember(visit func(key string, v jsonval.Reader)) {
	for k, v := range r.asObject() {
		visit(k, Wrap(v))
	}
}

func (r Reader) ToString() (string, bool) {
	s, ok := r.v.(string)
	return s, ok
}

func (r Reader) ToDouble() (float64, bool) {
	switch n := r.v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func (r Reader) ToBool() (bool, bool) {
	b, ok := r.v.(bool)
	return b, ok
}

func (r Reader) ToHostValue() jsonval.HostValue {
	switch n := r.v.(type) {
	case nil:
		return jsonval.Null
	case bool:
		return jsonval.Bool(n)
	case int:
		return jsonval.Int(int64(n))
	case int64:
		return jsonval.Int(n)
	case uint64:
		return jsonval.UInt(n)
	case float64:
		return jsonval.Double(n)
	case string:
		return jsonval.Str(n)
	case []any:
		out := make([]jsonval.HostValue, len(n))
		for i, el := range n {
			out[i] = Wrap(el).ToHostValue()
		}
		return jsonval.Array(out)
	case map[string]any, map[any]any:
		obj := r.asObject()
		out := make(map[string]jsonval.HostValue, len(obj))
		for k, v := range obj {
			out[k] = Wrap(v).ToHostValue()
		}
		return jsonval.Object(out)
	default:
		return jsonval.Null
	}
}
