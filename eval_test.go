package linecalc_test

import (
	"errors"
	"math"
	"testing"

	"github.com/linecalc/linecalc"
)

func almost(got, want float64) bool {
	if got == want {
		return true
	}
	scale := math.Max(1, math.Abs(want))
	return math.Abs(got-want) <= 1e-12*scale
}

func TestEvalString(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"precedence", "2 + 3 * 4", 14},
		{"parens", "(2 + 3) * 4", 20},
		{"chain-sub", "10-4-3", 3},
		{"chain-div", "64/4/4", 4},
		{"colon-div", "10:4", 2.5},
		{"slash-div", "10/4", 2.5},
		{"rem", "10%3", 1},
		{"rem-neg", "-10%3", -1},
		{"pow", "2^10", 1024},
		{"pow-frac", "4^0.5", 2},
		// ^ associates left like every other operator in the term loop,
		// so this is (2^3)^2, not 2^(3^2).
		{"pow-left", "2^3^2", 64},
		{"neg-factor", "-3.5 * (2 - 1)", -3.5},
		{"neg-parens", "-(2+3)", -5},
		{"neg-in-term", "2*(-3)", -6},
		{"decimal", "0.5*4", 2},
		{"spaces", "2 + 2", 4},
		{"call", "sqrt(4)", 2},
		{"call-arg-expr", "sqrt(2*8)", 4},
		{"nested-call", "sqrt(sqrt(81))", 3},
		{"neg-call", "-sqrt(9)", -3},
		{"alias", "tg(0)", 0},
		{"alias-case", "SQRT(16)", 4},
		{"min", "min(3,1,2)", 1},
		{"max", "max(3,1,2)", 3},
		{"logbase", "log(2,8)", 3},
		{"mixed", "2*min(3,1,2)+sqrt(4)", 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := linecalc.EvalString(c.src)
			if err != nil {
				t.Fatalf("EvalString(%q) failed: %v", c.src, err)
			}
			if !almost(r.Value, c.want) {
				t.Errorf("EvalString(%q) = %g, want %g", c.src, r.Value, c.want)
			}
		})
	}
}

func TestEvalAliasEquivalence(t *testing.T) {
	pairs := [][2]string{
		{"tg(0.5)", "tan(0.5)"},
		{"tg(0.5)", "TAN(0.5)"},
		{"root(2)", "sqrt(2)"},
		{"ctg(1)", "cot(1)"},
	}
	for _, p := range pairs {
		a, err := linecalc.EvalString(p[0])
		if err != nil {
			t.Fatalf("EvalString(%q) failed: %v", p[0], err)
		}
		b, err := linecalc.EvalString(p[1])
		if err != nil {
			t.Fatalf("EvalString(%q) failed: %v", p[1], err)
		}
		if math.Float64bits(a.Value) != math.Float64bits(b.Value) {
			t.Errorf("%q = %g but %q = %g", p[0], a.Value, p[1], b.Value)
		}
	}
}

func TestEvalSentinel(t *testing.T) {
	for _, src := range []string{"", "   ", "\n", "  \n"} {
		if _, err := linecalc.EvalString(src); !errors.Is(err, linecalc.ErrEmptyLine) {
			t.Errorf("EvalString(%q) = %v, want ErrEmptyLine", src, err)
		}
	}
}

func TestEvalInvalidInput(t *testing.T) {
	cases := []string{
		"+2+2",
		"2++2",
		"2..2",
		"()",
		"2  +2",
		"2(3)",
		"1 2",
		"2$2",
		"abc",
		"2+",
		"(2+3",
		"2+3)",
		"foo(2)",
		"sin 2",
	}
	for _, src := range cases {
		_, err := linecalc.EvalString(src)
		if err == nil {
			t.Errorf("EvalString(%q) succeeded", src)
			continue
		}
		if kind := linecalc.Classify(err); kind != linecalc.KindInvalidInput {
			t.Errorf("EvalString(%q) classified %v, want InvalidInput: %v", src, kind, err)
		}
	}
}

func TestEvalUndefined(t *testing.T) {
	cases := []string{
		"sqrt(-4)",
		"1/0",
		"1:0",
		"5%0",
		"(-8)^0.5",
		"2+sqrt(2-3)",
	}
	for _, src := range cases {
		_, err := linecalc.EvalString(src)
		if err == nil {
			t.Errorf("EvalString(%q) succeeded", src)
			continue
		}
		var d *linecalc.DomainError
		if !errors.As(err, &d) {
			t.Errorf("EvalString(%q) = %#v, want DomainError", src, err)
			continue
		}
		if kind := linecalc.Classify(err); kind != linecalc.KindUndefinedResult {
			t.Errorf("EvalString(%q) classified %v, want UndefinedResult", src, kind)
		}
	}
}

func TestEvalArity(t *testing.T) {
	cases := []string{
		"log(8)",
		"log(2,8,3)",
		"sin(1,2)",
	}
	for _, src := range cases {
		_, err := linecalc.EvalString(src)
		var ce *linecalc.CallError
		if !errors.As(err, &ce) {
			t.Errorf("EvalString(%q) = %v, want CallError", src, err)
		}
	}
}

func TestEvalIdempotent(t *testing.T) {
	const src = "2^0.5*sin(1)+lg(3)"
	a, err := linecalc.EvalString(src)
	if err != nil {
		t.Fatalf("first evaluation failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		b, err := linecalc.EvalString(src)
		if err != nil {
			t.Fatalf("repeat evaluation failed: %v", err)
		}
		if math.Float64bits(a.Value) != math.Float64bits(b.Value) {
			t.Fatalf("evaluation %d differs: %x vs %x", i, math.Float64bits(a.Value), math.Float64bits(b.Value))
		}
	}
}

func TestEvalDepthOption(t *testing.T) {
	if _, err := linecalc.EvalString("((((1))))", linecalc.MaxDepth(3)); err == nil {
		t.Error("deep nesting evaluated under MaxDepth(3)")
	}
	r, err := linecalc.EvalString("((((1))))", linecalc.MaxDepth(8))
	if err != nil {
		t.Fatalf("nesting under the limit failed: %v", err)
	}
	if r.Value != 1 {
		t.Errorf("got %g, want 1", r.Value)
	}
}

func TestResultFormat(t *testing.T) {
	cases := []struct {
		v    float64
		frac int
		want string
	}{
		{14, 2, "14"},
		{-3, 2, "-3"},
		{20, 10, "20"},
		{2.5, 2, "2.50"},
		{2.5, 10, "2.5000000000"},
		{0.1, 2, "0.10"},
		{-3.5, 2, "-3.50"},
	}
	for _, c := range cases {
		r := linecalc.Result{Value: c.v}
		if got := r.Format(c.frac); got != c.want {
			t.Errorf("Result{%g}.Format(%d) = %q, want %q", c.v, c.frac, got, c.want)
		}
	}
	if !(linecalc.Result{Value: 7}).Integral() {
		t.Error("7 is not integral")
	}
	if (linecalc.Result{Value: 7.5}).Integral() {
		t.Error("7.5 is integral")
	}
}
