package evaluator

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ErrEmptyExpression is reported by Validate for blank input. Compile
// itself maps blank input to Zero without an error.
var ErrEmptyExpression = errors.New("evaluator: empty expression")

// env is the variable scope every formula is evaluated against.
type env struct {
	X  float64 `expr:"x"`
	T  float64 `expr:"t"`
	A  float64 `expr:"a"`
	B  float64 `expr:"b"`
	C  float64 `expr:"c"`
	PI float64 `expr:"PI"`
	E  float64 `expr:"E"`
}

var (
	cacheMu sync.Mutex
	cache   = map[string]Func{}
)

// Compile turns a formula such as "a * sin(b * x + t)" into a Func.
// Blank input compiles to Zero. A formula that fails to compile, or that
// fails when probed at (0, 0, 1, 1, 1), returns a nil Func and the error.
// Runtime failures of a compiled Func surface as NaN.
func Compile(src string) (Func, error) {
	if strings.TrimSpace(src) == "" {
		return Zero, nil
	}

	cacheMu.Lock()
	if f, ok := cache[src]; ok {
		cacheMu.Unlock()
		return f, nil
	}
	cacheMu.Unlock()

	opts := append([]expr.Option{expr.Env(env{}), expr.Operator("%", "fmod")}, functions()...)
	program, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("evaluator: compile %q: %w", src, err)
	}

	if _, err := run(program, 0, 0, 1, 1, 1); err != nil {
		return nil, fmt.Errorf("evaluator: probe %q: %w", src, err)
	}

	f := func(x, t, a, b, c float64) float64 {
		v, err := run(program, x, t, a, b, c)
		if err != nil {
			return math.NaN()
		}
		return v
	}

	cacheMu.Lock()
	cache[src] = f
	cacheMu.Unlock()
	return f, nil
}

// Validate reports whether src compiles, without caching a Zero for blank input.
func Validate(src string) error {
	if strings.TrimSpace(src) == "" {
		return ErrEmptyExpression
	}
	_, err := Compile(src)
	return err
}

func run(program *vm.Program, x, t, a, b, c float64) (float64, error) {
	out, err := expr.Run(program, env{X: x, T: t, A: a, B: b, C: c, PI: math.Pi, E: math.E})
	if err != nil {
		return 0, err
	}
	switch v := out.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case nil:
		return math.NaN(), nil
	}
	return 0, fmt.Errorf("evaluator: non-numeric result %T", out)
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case bool:
		if n {
			return 1
		}
	}
	return 0
}

func unary(name string, fn func(float64) float64) expr.Option {
	return expr.Function(name, func(params ...any) (any, error) {
		return fn(toFloat(params[0])), nil
	}, new(func(float64) float64))
}

func binary(name string, fn func(float64, float64) float64) expr.Option {
	return expr.Function(name, func(params ...any) (any, error) {
		return fn(toFloat(params[0]), toFloat(params[1])), nil
	},
		new(func(float64, float64) float64),
		new(func(float64, int) float64),
		new(func(int, float64) float64),
	)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return v
}

// functions exposes the Math-style helpers formulas expect. abs, floor,
// ceil, round, max and min are expr builtins and are not redefined.
func functions() []expr.Option {
	return []expr.Option{
		unary("sin", math.Sin),
		unary("cos", math.Cos),
		unary("tan", math.Tan),
		unary("asin", math.Asin),
		unary("acos", math.Acos),
		unary("atan", math.Atan),
		unary("sinh", math.Sinh),
		unary("cosh", math.Cosh),
		unary("tanh", math.Tanh),
		unary("exp", math.Exp),
		unary("log", math.Log),
		unary("log2", math.Log2),
		unary("log10", math.Log10),
		unary("sqrt", math.Sqrt),
		unary("cbrt", math.Cbrt),
		unary("sign", sign),
		binary("atan2", math.Atan2),
		binary("pow", math.Pow),
		binary("fmod", math.Mod),
		expr.Function("random", func(params ...any) (any, error) {
			return rand.Float64(), nil
		}, new(func() float64)),
	}
}
