// Package exprvalue implements the runtime value domain (C2): a tagged
// union mirroring the type lattice in exprtype, plus the conversion layer
// tying it to host JSON values and strongly-typed host values (colors,
// enums, fixed arrays, positions).
package exprvalue

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/exprstyle/mapexpr/internal/exprconfig"
	"github.com/exprstyle/mapexpr/internal/exprtype"
)

// Value is the runtime counterpart of exprtype.Type: every node's Evaluate
// returns one of these, never a bare Go value.
type Value interface {
	// isValue is unexported so the variant set stays closed to this package.
	isValue()
}

// Null is the value of type exprtype.Null.
type Null struct{}

// Bool is the value of type exprtype.Boolean.
type Bool bool

// Num is the value of type exprtype.Number, stored as a float64.
type Num float64

// Str is the value of type exprtype.String.
type Str string

// ColorVal is the value of type exprtype.Color. Channels r/g/b/a are stored
// as doubles in [0, 1] ("premultiplied-agnostic" per spec §3); the rgba/rgb
// builtins normalize their 0-255 RGB inputs down to this range.
type ColorVal struct{ R, G, B, A float64 }

// Arr is the value of type exprtype.Array.
type Arr []Value

// Obj is the value of type exprtype.Object.
type Obj map[string]Value

func (Null) isValue()     {}
func (Bool) isValue()     {}
func (Num) isValue()      {}
func (Str) isValue()      {}
func (ColorVal) isValue() {}
func (Arr) isValue()      {}
func (Obj) isValue()      {}

// TypeOf computes the exprtype.Type of a runtime Value. For arrays the item
// type is the fold of every element's type, widening to exprtype.Value the
// moment two elements disagree (spec §4.2, and the Open Question in spec §9
// resolved per the original's actual widening fold in value.cpp: pairwise
// string-name comparison, not structural subtyping, triggers the widen).
func TypeOf(v Value) exprtype.Type {
	switch val := v.(type) {
	case Null:
		return exprtype.Null
	case Bool:
		return exprtype.Boolean
	case Num:
		return exprtype.Number
	case Str:
		return exprtype.String
	case ColorVal:
		return exprtype.Color
	case Obj:
		return exprtype.Object
	case Arr:
		var itemType exprtype.Type
		for _, item := range val {
			t := TypeOf(item)
			if itemType == nil {
				itemType = t
			} else if itemType.String() != t.String() {
				itemType = exprtype.Value
				break
			}
		}
		if itemType == nil {
			itemType = exprtype.Value
		}
		n := len(val)
		return exprtype.NewArrayN(itemType, n)
	default:
		return exprtype.Value
	}
}

// Stringify renders a Value the way the `to_string`/`typeof`-adjacent
// diagnostics and the literal round-trip property (spec §8) expect: JSON-like,
// strings quoted, arrays/objects comma-joined, colors rendered as
// "rgba(r,g,b,a)" with r/g/b scaled back to 0-255 (mirroring
// mbgl::Color::stringify(), not a bare 0-1 tuple).
func Stringify(v Value) string {
	switch val := v.(type) {
	case Null:
		return "null"
	case Bool:
		if val {
			return "true"
		}
		return "false"
	case Num:
		return formatNumber(float64(val))
	case Str:
		return "\"" + string(val) + "\""
	case ColorVal:
		return fmt.Sprintf("rgba(%s,%s,%s,%s)",
			formatNumber(val.R*255), formatNumber(val.G*255), formatNumber(val.B*255), formatNumber(val.A))
	case Arr:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = Stringify(item)
		}
		return "[" + strings.Join(parts, ",") + "]"
	case Obj:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = "\"" + k + "\":" + Stringify(val[k])
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return ""
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// FormatNumber exposes the same rendering Stringify uses for a bare Num, for
// callers (e.g. the rgba builtin's invalid-value messages) that need to
// embed a raw float64 in diagnostic text without wrapping it in a Value.
func FormatNumber(f float64) string { return formatNumber(f) }

// IsSafeInteger reports whether f passes the MSI check (spec §3/§6):
// |f| <= 2^53 - 1.
func IsSafeInteger(f float64) bool {
	return math.Abs(f) <= float64(exprconfig.MaxSafeInteger)
}

// Equal implements the per-scalar-type equality used by the `==`/`!=`
// builtins (spec §9: comparing across types is a parse-time error, so Equal
// is only ever called with two values already known to share a type).
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Num:
		bv, ok := b.(Num)
		return ok && av == bv
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	default:
		return false
	}
}
