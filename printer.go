package racket

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FormatValue renders a value the way the language prints it back to the
// student: booleans as #t/#f, strings with their quotes, symbols and lists
// with a leading quote (also when nested inside a list), structures in
// constructor form, and procedures as #<procedure:name>. Printed literals
// re-read as equal values.
func FormatValue(v Value) string {
	switch v.Tag {
	case VTInt:
		return v.Data.(*big.Int).String()
	case VTRat:
		return v.Data.(*big.Rat).RatString()
	case VTDec:
		return formatFloat(v.Data.(float64))
	case VTBool:
		if v.Data.(bool) {
			return "#t"
		}
		return "#f"
	case VTStr:
		return "\"" + v.Data.(string) + "\""
	case VTSym:
		return "'" + v.Data.(string)
	case VTList:
		return "'" + formatListBody(v.Data.([]Value))
	case VTStruct:
		s := v.Data.(*StructInstance)
		var b strings.Builder
		b.WriteString("(make-")
		b.WriteString(s.Type.Name)
		for _, fv := range s.Values {
			b.WriteByte(' ')
			b.WriteString(FormatValue(fv))
		}
		b.WriteByte(')')
		return b.String()
	case VTProc:
		return "#<procedure:" + v.Data.(*Proc).Name + ">"
	case VTStructType:
		return "#<structure-type:" + v.Data.(*StructType).Name + ">"
	default:
		return "#<unknown>"
	}
}

func formatListBody(xs []Value) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, x := range xs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(FormatValue(x))
	}
	b.WriteByte(')')
	return b.String()
}

// formatFloat prints a decimal so it always reads back as a decimal: an
// integral float keeps a trailing ".0".
func formatFloat(f float64) string {
	if math.IsInf(f, 1) {
		return "+inf.0"
	}
	if math.IsInf(f, -1) {
		return "-inf.0"
	}
	if math.IsNaN(f) {
		return "+nan.0"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
