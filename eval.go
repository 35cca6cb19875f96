package linecalc

import (
	"math"
	"strconv"
)

// Result is the outcome of a successful evaluation.
type Result struct {
	Value float64
}

// Integral reports whether the value has no fractional part. Callers use
// this to pick the short display form over the fixed-precision one.
func (r Result) Integral() bool {
	return !math.IsInf(r.Value, 0) && math.Trunc(r.Value) == r.Value
}

// Format renders the value with no fraction digits if it is integral and
// with exactly frac digits otherwise.
func (r Result) Format(frac int) string {
	if r.Integral() {
		return strconv.FormatFloat(r.Value, 'f', 0, 64)
	}
	return strconv.FormatFloat(r.Value, 'f', frac, 64)
}

func (r Result) String() string {
	return r.Format(2)
}

// EvalString validates and evaluates one line of input. The error is
// ErrEmptyLine for a blank line, an InputError if validation failed, or a
// *DomainError if a function or operator was applied outside its domain;
// Classify sorts them for callers that only need the failure kind.
func EvalString(src string, opts ...Option) (Result, error) {
	cfg := defaultConfig().with(opts)
	line := trimLine(src)
	if err := validate(line, cfg); err != nil {
		return Result{}, err
	}
	p := parser{cur: cursor{src: line}, maxDepth: cfg.maxDepth}
	v, err := p.expression()
	if err != nil {
		return Result{}, err
	}
	if t := p.cur.peek(); t.kind != tokenEOF {
		// The validator admits no input the grammar cannot consume; this is
		// a backstop.
		return Result{}, &SyntaxError{Col: t.pos + 1, Char: t.ch}
	}
	return Result{Value: v}, nil
}

// parser evaluates the grammar directly during descent. The grammar is small
// enough that materializing a tree would buy nothing, and direct evaluation
// keeps memory bounded by nesting depth alone.
//
//	expression = term {("+" | "-") term} .
//	term       = factor {("*" | "/" | ":" | "%" | "^") factor} .
//	factor     = ["-"] ("(" expression ")" | number | call) .
//	call       = name "(" expression {"," expression} ")" .
type parser struct {
	cur      cursor
	depth    int
	maxDepth int
}

// expression evaluates a left-associative chain of terms joined by + and -.
func (p *parser) expression() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		t := p.cur.peek()
		if t.kind != tokenOp || (t.ch != '+' && t.ch != '-') {
			return v, nil
		}
		p.cur.next()
		r, err := p.term()
		if err != nil {
			return 0, err
		}
		if t.ch == '+' {
			v += r
		} else {
			v -= r
		}
		if math.IsNaN(v) {
			// inf - inf and friends.
			return 0, &DomainError{X: r, Arg: 2, Func: string(t.ch)}
		}
	}
}

// term evaluates a left-associative chain of factors joined by *, / or :
// (both division), % (floating-point remainder), and ^. Note that ^ binds at
// the same level and associates left like the rest, so 2^3^2 is (2^3)^2 = 64
// rather than the mathematical convention.
func (p *parser) term() (float64, error) {
	v, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		t := p.cur.peek()
		if t.kind != tokenOp || t.ch == '+' || t.ch == '-' {
			return v, nil
		}
		p.cur.next()
		r, err := p.factor()
		if err != nil {
			return 0, err
		}
		switch t.ch {
		case '*':
			v *= r
		case '/', ':':
			if r == 0 {
				return 0, &DomainError{X: r, Arg: 2, Func: "/"}
			}
			v /= r
		case '%':
			if r == 0 {
				return 0, &DomainError{X: r, Arg: 2, Func: "%"}
			}
			v = math.Mod(v, r)
		case '^':
			v = math.Pow(v, r)
		}
		if math.IsNaN(v) {
			// Negative base with fractional exponent, inf/inf, inf%r.
			return 0, &DomainError{X: r, Arg: 2, Func: string(t.ch)}
		}
	}
}

// factor evaluates an optionally negated parenthesized expression, number
// literal, or function call. Negation applies to the evaluated value of the
// rest of the factor.
func (p *parser) factor() (float64, error) {
	t := p.cur.peek()
	neg := false
	if t.kind == tokenOp && t.ch == '-' {
		p.cur.next()
		neg = true
		t = p.cur.peek()
	}
	var v float64
	switch t.kind {
	case tokenOpen:
		p.cur.next()
		p.depth++
		if p.depth > p.maxDepth {
			return 0, &DepthError{Col: t.pos + 1, Max: p.maxDepth}
		}
		var err error
		v, err = p.expression()
		if err != nil {
			return 0, err
		}
		if end := p.cur.next(); end.kind != tokenClose {
			return 0, &SyntaxError{Col: end.pos + 1, Char: end.ch}
		}
		p.depth--
	case tokenDigit, tokenPoint:
		p.cur.pos = t.pos
		text := p.cur.scanNumber()
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, &SyntaxError{Col: t.pos + 1, Char: t.ch}
		}
		v = f
	case tokenLetter:
		p.cur.pos = t.pos
		name := p.cur.scanName()
		fn, ok := Resolve(name)
		if !ok {
			return 0, &UnknownFuncError{Col: t.pos + 1, Name: name}
		}
		if open := p.cur.next(); open.kind != tokenOpen {
			return 0, &SyntaxError{Col: open.pos + 1, Char: open.ch}
		}
		var err error
		v, err = p.call(fn, t.pos+1)
		if err != nil {
			return 0, err
		}
	default:
		return 0, &SyntaxError{Col: t.pos + 1, Char: t.ch}
	}
	if neg {
		v = -v
	}
	return v, nil
}

// call evaluates the comma-separated arguments of fn and applies it. The
// cursor is just past the opening parenthesis; call consumes through the
// matching closing one.
func (p *parser) call(fn *Func, col int) (float64, error) {
	p.depth++
	if p.depth > p.maxDepth {
		return 0, &DepthError{Col: col, Max: p.maxDepth}
	}
	var args []float64
	for {
		v, err := p.expression()
		if err != nil {
			return 0, err
		}
		args = append(args, v)
		switch t := p.cur.next(); t.kind {
		case tokenSep:
		case tokenClose:
			p.depth--
			if !fn.CanCall(len(args)) {
				return 0, &CallError{Col: col, Func: fn.Name(), Len: len(args)}
			}
			return fn.Call(args)
		default:
			return 0, &SyntaxError{Col: t.pos + 1, Char: t.ch}
		}
	}
}
