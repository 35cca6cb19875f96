package linecalc_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/linecalc/linecalc"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want linecalc.Kind
	}{
		{"pair", mustErr(t, "2++2"), linecalc.KindInvalidInput},
		{"bracket", mustErr(t, "(2+3"), linecalc.KindInvalidInput},
		{"name", mustErr(t, "foo(2)"), linecalc.KindInvalidInput},
		{"arity", mustErr(t, "log(8)"), linecalc.KindInvalidInput},
		{"domain", mustErr(t, "sqrt(-1)"), linecalc.KindUndefinedResult},
		{"div-zero", mustErr(t, "1/0"), linecalc.KindUndefinedResult},
		{"unresolved", &linecalc.UnknownFuncError{Col: 1, Name: "ghost"}, linecalc.KindUnresolvedFunction},
		{"other", errors.New("boom"), linecalc.KindInternal},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := linecalc.Classify(c.err); got != c.want {
				t.Errorf("Classify(%v) = %v, want %v", c.err, got, c.want)
			}
		})
	}
}

func mustErr(t *testing.T, src string) error {
	t.Helper()
	_, err := linecalc.EvalString(src)
	if err == nil {
		t.Fatalf("EvalString(%q) succeeded", src)
	}
	return err
}

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		src     string
		mention string
	}{
		{"2++2", `"++"`},
		{"foo(2)", `"foo"`},
		{"sqrt(-1)", "sqrt"},
		{"log(8)", "log"},
		{"1.2.3", "decimal point"},
		{"(2+3", "never closed"},
	}
	for _, c := range cases {
		_, err := linecalc.EvalString(c.src)
		if err == nil {
			t.Errorf("EvalString(%q) succeeded", c.src)
			continue
		}
		if !strings.Contains(err.Error(), c.mention) {
			t.Errorf("error for %q does not mention %s: %q", c.src, c.mention, err.Error())
		}
	}
}
