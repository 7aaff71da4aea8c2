package expr

import (
	"math"
	"sort"
	"strings"
)

// VarName is the only free variable an expression may reference.
const VarName = "x"

// namespacePrefix may qualify any allowed name, as in math.sin(x).
const namespacePrefix = "math."

// functions is the allowlist of callable names. Domain violations such as
// sqrt(-1) or log(0) yield NaN or ±Inf rather than an error.
var functions = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"exp":  math.Exp,
	"log":  math.Log,
	"sqrt": math.Sqrt,
	"fabs": math.Abs,
	"abs":  math.Abs,
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// canonicalName strips the optional namespace prefix.
func canonicalName(name string) string {
	return strings.TrimPrefix(name, namespacePrefix)
}

// Functions returns the sorted names of the callable functions.
func Functions() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Constants returns the sorted names of the predefined constants.
func Constants() []string {
	names := make([]string, 0, len(constants))
	for name := range constants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
