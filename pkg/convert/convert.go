package convert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/soxt/soxt/pkg/extract"
)

const exprPrefix = "expr:"

// Env is the environment a postprocess expression runs against. Value
// holds the captured group text.
type Env struct {
	Value string
}

// Resolve maps a profile postprocess name to a converter. Supported names
// are string (the default), int, float and bool, plus "expr:<code>" for
// an expression evaluated with the captured text bound to Value, e.g.
// "expr: float(Value) * 13.6057".
func Resolve(name string) (extract.Conv[any], error) {
	if code, ok := strings.CutPrefix(name, exprPrefix); ok {
		return FromExpr(code)
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "string":
		return func(s string) (any, error) {
			return s, nil
		}, nil
	case "int":
		return func(s string) (any, error) {
			return extract.Int(s)
		}, nil
	case "float":
		return func(s string) (any, error) {
			return extract.Float(s)
		}, nil
	case "bool":
		return func(s string) (any, error) {
			return strconv.ParseBool(strings.TrimSpace(s))
		}, nil
	}

	return nil, fmt.Errorf("unknown postprocess: %q", name)
}

// FromExpr compiles code once and returns a converter running it per
// captured value. A runtime failure (e.g. numeric conversion of malformed
// text) propagates to the caller unmodified.
func FromExpr(code string) (extract.Conv[any], error) {
	program, err := expr.Compile(code, expr.Env(Env{}))
	if err != nil {
		return nil, fmt.Errorf("compile postprocess expression %q: %w", code, err)
	}

	return func(s string) (any, error) {
		out, err := expr.Run(program, Env{Value: s})
		if err != nil {
			return nil, fmt.Errorf("run postprocess expression: %w", err)
		}
		return out, nil
	}, nil
}
