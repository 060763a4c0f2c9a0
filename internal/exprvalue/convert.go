package exprvalue

import (
	"fmt"

	"github.com/exprstyle/mapexpr/internal/exprconfig"
	"github.com/exprstyle/mapexpr/internal/jsonval"
)

// ToExpressionValue recursively converts a host JSON value into the runtime
// value domain. Numeric host values (UInt/Int/Double) whose magnitude exceeds
// the MSI bound are clamped to +/-(2^53 - 1), keeping their sign, rather than
// rejected outright — mirroring the original's evaluation-time conversion
// behavior (mbgl's Converter<uint64_t>/<int64_t> clamp to Value::max()) as
// opposed to its literal-parsing path, which rejects outright. See
// CheckLiteralMSI for the strict, parse-time counterpart.
func ToExpressionValue(h jsonval.HostValue) Value {
	switch h.Kind {
	case jsonval.KindNull:
		return Null{}
	case jsonval.KindBool:
		return Bool(h.Bool)
	case jsonval.KindUInt:
		f := float64(h.UInt)
		if !IsSafeInteger(f) {
			f = float64(maxSafeInt)
		}
		return Num(f)
	case jsonval.KindInt:
		f := float64(h.Int)
		if !IsSafeInteger(f) {
			if h.Int < 0 {
				f = -float64(maxSafeInt)
			} else {
				f = float64(maxSafeInt)
			}
		}
		return Num(f)
	case jsonval.KindDouble:
		f := h.Double
		if !IsSafeInteger(f) {
			if f < 0 {
				f = -float64(maxSafeInt)
			} else {
				f = float64(maxSafeInt)
			}
		}
		return Num(f)
	case jsonval.KindString:
		return Str(h.Str)
	case jsonval.KindArray:
		out := make(Arr, len(h.Arr))
		for i, el := range h.Arr {
			out[i] = ToExpressionValue(el)
		}
		return out
	case jsonval.KindObject:
		out := make(Obj, len(h.Obj))
		for k, el := range h.Obj {
			out[k] = ToExpressionValue(el)
		}
		return out
	default:
		return Null{}
	}
}

const maxSafeInt = exprconfig.MaxSafeInteger

// CheckLiteralMSI enforces the strict MSI check used during literal parsing
// (spec §3: "Violations during literal parsing produce a parse error").
// Unlike ToExpressionValue's evaluation-time clamp, this never silently
// narrows a value — it reports the violation so the caller can turn it into
// a *diag.ParseError.
func CheckLiteralMSI(f float64) bool { return IsSafeInteger(f) }

// ToFloat64 extracts a float64 from a Value, or reports failure. This is the
// "total conversion to concrete host types" operation for Number (spec
// §4.2's from_expression_value::<T>).
func ToFloat64(v Value) (float64, bool) {
	n, ok := v.(Num)
	return float64(n), ok
}

// ToGoString extracts a string from a Value.
func ToGoString(v Value) (string, bool) {
	s, ok := v.(Str)
	return string(s), ok
}

// ToGoBool extracts a bool from a Value.
func ToGoBool(v Value) (bool, bool) {
	b, ok := v.(Bool)
	return bool(b), ok
}

// ToColor extracts a ColorVal from a Value.
func ToColor(v Value) (ColorVal, bool) {
	c, ok := v.(ColorVal)
	return c, ok
}

// ToArrValue extracts the raw element slice from a Value known to be an
// array, without per-element conversion.
func ToArrValue(v Value) (Arr, bool) {
	a, ok := v.(Arr)
	return a, ok
}

// ToSlice converts a Value known to be an array into a []T using conv for
// each element, failing if the Value isn't an array or any element fails to
// convert (spec §4.2's variable-length array conversion).
func ToSlice[T any](v Value, conv func(Value) (T, bool)) ([]T, bool) {
	arr, ok := v.(Arr)
	if !ok {
		return nil, false
	}
	out := make([]T, len(arr))
	for i, item := range arr {
		t, ok := conv(item)
		if !ok {
			return nil, false
		}
		out[i] = t
	}
	return out, true
}

// ToFixedArray converts a Value known to be an array of exactly n elements
// into a [n]T-shaped []T using conv for each element (spec §4.2's
// fixed-length array conversion, e.g. a Position's [radial, azimuthal,
// polar] triple).
func ToFixedArray[T any](v Value, n int, conv func(Value) (T, bool)) ([]T, bool) {
	arr, ok := v.(Arr)
	if !ok || len(arr) != n {
		return nil, false
	}
	return ToSlice(v, conv)
}

// Position is a 3-element [radial, azimuthal, polar] array, matching the
// style-property "position" host type (spec §4.2's enumerated host types).
type Position [3]float64

// ToPosition converts a Value to a Position.
func ToPosition(v Value) (Position, bool) {
	floats, ok := ToFixedArray(v, 3, ToFloat64)
	if !ok {
		return Position{}, false
	}
	return Position{floats[0], floats[1], floats[2]}, true
}

// EnumTable maps a set of string names to host enum values of type T and
// back, grounded on mbgl's Enum<T>::toString/toEnum pattern used for
// style-property enumerations (spec §4.2).
type EnumTable[T comparable] struct {
	toString map[T]string
	toValue  map[string]T
}

// NewEnumTable builds an EnumTable from a name->value map.
func NewEnumTable[T comparable](names map[string]T) EnumTable[T] {
	t := EnumTable[T]{toString: make(map[T]string, len(names)), toValue: names}
	for name, val := range names {
		t.toString[val] = name
	}
	return t
}

// ToExpressionValue renders an enum member as its string name.
func (t EnumTable[T]) ToExpressionValue(val T) Value { return Str(t.toString[val]) }

// FromValue converts a Value to an enum member by matching its string name.
func (t EnumTable[T]) FromValue(v Value) (T, bool) {
	s, ok := v.(Str)
	if !ok {
		var zero T
		return zero, false
	}
	val, ok := t.toValue[string(s)]
	return val, ok
}

// DescribeMismatch formats the "Expected value to be of type X, but found Y
// instead." message shared by assertions, array-index lookups and curve
// interpolation (spec §4.5/§4.6/§4.8), given the expected type's name and
// the actual runtime value.
func DescribeMismatch(expectedTypeName string, actual Value) string {
	return fmt.Sprintf("Expected value to be of type %s, but found %s instead.", expectedTypeName, TypeOf(actual).String())
}
