package linecalc

import (
	"errors"
	"math"
)

// Variadic marks functions accepting any positive number of arguments.
const Variadic = -1

// Func is a function from the catalog. The catalog is built once at package
// initialization and read-only thereafter, so Funcs may be shared freely
// across concurrent evaluations.
type Func struct {
	// name is the canonical name. Every alias of a function resolves to the
	// same Func, so pointer identity is canonical identity.
	name  string
	arity int
	apply func(args []float64) (float64, error)
}

// Name returns the canonical name of the function.
func (f *Func) Name() string {
	return f.name
}

// CanCall reports whether the function accepts n arguments.
func (f *Func) CanCall(n int) bool {
	if f.arity == Variadic {
		return n >= 1
	}
	return n == f.arity
}

// Call applies the function to args, for which CanCall must hold. A domain
// guard violation yields a *DomainError carrying the function name and the
// offending argument; the result is never NaN.
func (f *Func) Call(args []float64) (float64, error) {
	r, err := f.apply(args)
	if err != nil {
		var d *DomainError
		if errors.As(err, &d) && d.Func == "" {
			d.Func = f.name
		}
		return 0, err
	}
	if math.IsNaN(r) {
		// The guards should cover every undefined case; this backstop keeps
		// NaN from ever reaching a caller.
		return 0, &DomainError{X: args[0], Arg: 1, Func: f.name}
	}
	return r, nil
}

// monadic wraps a total function of one variable.
func monadic(name string, f func(float64) float64) *Func {
	return &Func{name: name, arity: 1, apply: func(args []float64) (float64, error) {
		return f(args[0]), nil
	}}
}

// guarded wraps a function of one variable defined only where dom holds.
func guarded(name string, dom func(float64) bool, f func(float64) float64) *Func {
	return &Func{name: name, arity: 1, apply: func(args []float64) (float64, error) {
		if !dom(args[0]) {
			return 0, &DomainError{X: args[0], Arg: 1}
		}
		return f(args[0]), nil
	}}
}

var (
	fnSin = monadic("sin", math.Sin)
	fnCos = monadic("cos", math.Cos)
	fnTan = &Func{name: "tan", arity: 1, apply: func(args []float64) (float64, error) {
		c := math.Cos(args[0])
		if c == 0 {
			return 0, &DomainError{X: args[0], Arg: 1}
		}
		return math.Sin(args[0]) / c, nil
	}}
	fnCot = &Func{name: "cot", arity: 1, apply: func(args []float64) (float64, error) {
		s := math.Sin(args[0])
		if s == 0 {
			return 0, &DomainError{X: args[0], Arg: 1}
		}
		return math.Cos(args[0]) / s, nil
	}}

	fnAsin = guarded("asin", func(x float64) bool { return -1 <= x && x <= 1 }, math.Asin)
	fnAcos = guarded("acos", func(x float64) bool { return -1 <= x && x <= 1 }, math.Acos)
	fnAtan = monadic("atan", math.Atan)
	fnAcot = monadic("acot", func(x float64) float64 { return math.Pi/2 - math.Atan(x) })

	fnSinh = monadic("sinh", math.Sinh)
	fnCosh = monadic("cosh", math.Cosh)
	fnTanh = monadic("tanh", math.Tanh)
	fnCoth = &Func{name: "coth", arity: 1, apply: func(args []float64) (float64, error) {
		t := math.Tanh(args[0])
		if t == 0 {
			return 0, &DomainError{X: args[0], Arg: 1}
		}
		return 1 / t, nil
	}}

	fnAsinh = monadic("asinh", math.Asinh)
	fnAcosh = guarded("acosh", func(x float64) bool { return x >= 1 }, math.Acosh)
	fnAtanh = guarded("atanh", func(x float64) bool { return -1 < x && x < 1 }, math.Atanh)
	fnAcoth = guarded("acoth", func(x float64) bool { return x < -1 || x > 1 }, func(x float64) float64 {
		return math.Atanh(1 / x)
	})

	fnRound = monadic("round", math.Round)
	fnFloor = monadic("floor", math.Floor)
	fnCeil  = monadic("ceil", math.Ceil)
	fnTrunc = monadic("trunc", math.Trunc)
	fnAbs   = monadic("abs", math.Abs)

	fnExp = monadic("exp", math.Exp)
	fnLn  = guarded("ln", func(x float64) bool { return x > 0 }, math.Log)
	fnLg  = guarded("lg", func(x float64) bool { return x > 0 }, math.Log10)
	fnLb  = guarded("lb", func(x float64) bool { return x > 0 }, math.Log2)
	fnLog = &Func{name: "log", arity: 2, apply: func(args []float64) (float64, error) {
		b, x := args[0], args[1]
		if b <= 0 || b == 1 {
			return 0, &DomainError{X: b, Arg: 1}
		}
		if x <= 0 {
			return 0, &DomainError{X: x, Arg: 2}
		}
		return math.Log(x) / math.Log(b), nil
	}}
	fnSqrt = guarded("sqrt", func(x float64) bool { return x >= 0 }, math.Sqrt)
	fnCbrt = monadic("cbrt", math.Cbrt)

	fnSign = monadic("sign", func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		}
		return 0
	})

	fnDeg = monadic("deg", func(x float64) float64 { return x * 180 / math.Pi })
	fnRad = monadic("rad", func(x float64) float64 { return x * math.Pi / 180 })

	fnFact = &Func{name: "fact", arity: 1, apply: func(args []float64) (float64, error) {
		x := args[0]
		if x < 0 || math.Trunc(x) != x {
			return 0, &DomainError{X: x, Arg: 1}
		}
		// 171! already overflows float64, and above 2^53 the loop counter
		// could not even step. The cap bounds the loop.
		if x > 170 {
			return math.Inf(1), nil
		}
		r := 1.0
		for i := 2.0; i <= x; i++ {
			r *= i
		}
		return r, nil
	}}

	fnMin = &Func{name: "min", arity: Variadic, apply: func(args []float64) (float64, error) {
		r := args[0]
		for _, v := range args[1:] {
			if v < r {
				r = v
			}
		}
		return r, nil
	}}
	fnMax = &Func{name: "max", arity: Variadic, apply: func(args []float64) (float64, error) {
		r := args[0]
		for _, v := range args[1:] {
			if v > r {
				r = v
			}
		}
		return r, nil
	}}
)

// aliases maps every recognized spelling, lowercased, to its canonical
// function: 68 aliases over 34 functions.
var aliases = map[string]*Func{
	"sin":   fnSin,
	"sinus": fnSin,

	"cos":     fnCos,
	"cosinus": fnCos,

	"tan":     fnTan,
	"tg":      fnTan,
	"tangent": fnTan,

	"cot":       fnCot,
	"ctg":       fnCot,
	"cotangent": fnCot,

	"asin":   fnAsin,
	"arcsin": fnAsin,

	"acos":   fnAcos,
	"arccos": fnAcos,

	"atan":   fnAtan,
	"arctan": fnAtan,
	"arctg":  fnAtan,

	"acot":   fnAcot,
	"arccot": fnAcot,
	"arcctg": fnAcot,

	"sinh": fnSinh,
	"sh":   fnSinh,

	"cosh": fnCosh,
	"ch":   fnCosh,

	"tanh": fnTanh,
	"th":   fnTanh,

	"coth": fnCoth,
	"cth":  fnCoth,

	"asinh":  fnAsinh,
	"arsinh": fnAsinh,
	"arsh":   fnAsinh,

	"acosh":  fnAcosh,
	"arcosh": fnAcosh,
	"arch":   fnAcosh,

	"atanh":  fnAtanh,
	"artanh": fnAtanh,
	"arth":   fnAtanh,

	"acoth":  fnAcoth,
	"arcoth": fnAcoth,
	"arcth":  fnAcoth,

	"round": fnRound,
	"floor": fnFloor,

	"ceil":    fnCeil,
	"ceiling": fnCeil,

	"trunc":    fnTrunc,
	"truncate": fnTrunc,

	"abs":  fnAbs,
	"fabs": fnAbs,

	"exp": fnExp,
	"ln":  fnLn,
	"lg":  fnLg,
	"lb":  fnLb,
	"log": fnLog,

	"sqrt": fnSqrt,
	"root": fnSqrt,
	"cbrt": fnCbrt,

	"sign": fnSign,
	"sgn":  fnSign,

	"deg":     fnDeg,
	"degrees": fnDeg,

	"rad":     fnRad,
	"radians": fnRad,

	"fact":      fnFact,
	"factorial": fnFact,

	"min":     fnMin,
	"minimum": fnMin,

	"max":     fnMax,
	"maximum": fnMax,
}

// Resolve looks up a function by any of its aliases. Matching folds ASCII
// case explicitly so lookup cannot vary with locale. Resolve reports false
// for an unrecognized name rather than failing; callers decide how to treat
// those.
func Resolve(name string) (*Func, bool) {
	f, ok := aliases[foldASCII(name)]
	return f, ok
}

// Aliases returns a copy of the alias table as alias → canonical name.
func Aliases() map[string]string {
	m := make(map[string]string, len(aliases))
	for k, f := range aliases {
		m[k] = f.name
	}
	return m
}

// foldASCII lowercases A-Z only. The input is unchanged if already folded,
// which is the common case.
func foldASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if 'A' <= b[j] && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
