package exprparse

import (
	"math"
	"strconv"

	"github.com/exprstyle/mapexpr/internal/compound"
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprnodes"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/jsonval"
)

// parseMatch handles ["match", input, label|[labels...], result, ...,
// otherwise] (spec §4.5). The first case's label(s) decide whether this is
// a string-keyed or integer-keyed match; a case label may itself be an
// array of alternate labels all mapping to the same result.
func parseMatch(r jsonval.Reader, ctx *Context, reg *compound.Registry) (exprast.Node, bool) {
	length := r.ArrayLength()
	if length < 5 {
		ctx.Error(diag.CodeArity, "Expected at least 4 arguments, but found "+strconv.Itoa(length-1)+" instead.")
		return nil, false
	}
	if length%2 != 1 {
		ctx.Error(diag.CodeArity, "Expected an even number of arguments.")
		return nil, false
	}

	firstLabel := r.ArrayMember(2)
	isString := firstLabelIsString(firstLabel)

	var inputType exprtype.Type = exprtype.Number
	if isString {
		inputType = exprtype.String
	}
	input, ok := Parse(r.ArrayMember(1), ctx.Child(1, &inputType, ctx.Scope), reg)
	if !ok {
		return nil, false
	}

	outputType := ctx.Expected
	stringCases := map[string]exprast.Node{}
	intCases := map[int64]exprast.Node{}

	for i := 2; i+1 < length; i += 2 {
		labels := r.ArrayMember(i)
		resultIdx := i + 1

		result, ok := Parse(r.ArrayMember(resultIdx), ctx.Child(resultIdx, outputType, ctx.Scope), reg)
		if !ok {
			return nil, false
		}
		if outputType == nil {
			t := result.Type()
			outputType = &t
		}

		labelReaders := []jsonval.Reader{labels}
		if labels.IsArray() {
			labelReaders = labelReaders[:0]
			for j := 0; j < labels.ArrayLength(); j++ {
				labelReaders = append(labelReaders, labels.ArrayMember(j))
			}
		}

		for _, lr := range labelReaders {
			if isString {
				s, ok := lr.ToString()
				if !ok {
					ctx.ErrorAt(diag.CodeType, i, "Input/output pairs for \"match\" expressions must be either literal strings or literal numbers.")
					return nil, false
				}
				if _, dup := stringCases[s]; dup {
					ctx.ErrorAt(diag.CodeDuplicateCase, i, "Branch labels must be unique. Duplicate label \""+s+"\".")
					return nil, false
				}
				stringCases[s] = result
			} else {
				n, ok := lr.ToDouble()
				if !ok || n != math.Trunc(n) {
					ctx.ErrorAt(diag.CodeType, i, "Input/output pairs for \"match\" expressions must be either literal strings or literal numbers.")
					return nil, false
				}
				key := int64(n)
				if _, dup := intCases[key]; dup {
					ctx.ErrorAt(diag.CodeDuplicateCase, i, "Branch labels must be unique. Duplicate label "+strconv.FormatInt(key, 10)+".")
					return nil, false
				}
				intCases[key] = result
			}
		}
	}

	otherwise, ok := Parse(r.ArrayMember(length-1), ctx.Child(length-1, outputType, ctx.Scope), reg)
	if !ok {
		return nil, false
	}
	if outputType == nil {
		t := otherwise.Type()
		outputType = &t
	}

	if isString {
		return exprnodes.NewMatchString(*outputType, input, stringCases, otherwise), true
	}
	return exprnodes.NewMatchInt(*outputType, input, intCases, otherwise), true
}

func firstLabelIsString(r jsonval.Reader) bool {
	if r.IsArray() && r.ArrayLength() > 0 {
		r = r.ArrayMember(0)
	}
	_, ok := r.ToString()
	return ok
}
