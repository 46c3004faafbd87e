package interp

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wiz-lang/wiz/lang/language"
)

// Value is any runtime value of the language: nil, bool, float64, string,
// a Callable (*Function, *Class or a native), or an *Instance.
type Value = interface{}

// Truthy reports the boolean view of a value: nil is false, booleans are
// themselves, everything else is true.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	}
	return true
}

// Equal reports value equality: numbers compare by IEEE-754 (so NaN is not
// equal to itself), texts by content, nil only to nil, booleans only to the
// same boolean, and instances/callables by identity. Values of different
// dynamic types are never equal, even when numerically alike.
func Equal(a, b Value) bool {
	return a == b
}

// Stringify returns the canonical textual form of a value. Nil and the
// booleans use the locale's spellings; numbers drop superfluous trailing
// zeros but keep a ".0" on integral values written without an exponent
// (1e21 stays "1e+21"); texts are verbatim; callables
// and instances use their String form.
func Stringify(v Value, lang *language.Language) string {
	switch v := v.(type) {
	case nil:
		return lang.NilName()
	case bool:
		return lang.BoolName(v)
	case float64:
		return formatNumber(v)
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprintf("%v", v)
}

func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return s
	}
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
