package main

import (
	"reflect"
	"testing"

	"github.com/lib/pq"
)

func TestFunctionsUsed(t *testing.T) {
	cases := []struct {
		src  string
		want pq.StringArray
	}{
		{"2 + 3", pq.StringArray{}},
		{"sqrt(4)", pq.StringArray{"sqrt"}},
		{"root(4) + sqrt(9)", pq.StringArray{"sqrt"}},
		{"TG(1) * sin(2)", pq.StringArray{"sin", "tan"}},
		{"min(sin(1), cos(2))", pq.StringArray{"cos", "min", "sin"}},
		{"foo(2)", pq.StringArray{}},
	}
	for _, c := range cases {
		got := functionsUsed(c.src)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("functionsUsed(%q) = %v, want %v", c.src, got, c.want)
		}
	}
}
