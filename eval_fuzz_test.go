package calc_test

import (
	"math"
	"strings"
	"testing"

	"github.com/zephyrtronium/calc"
)

func FuzzEval(f *testing.F) {
	f.Add("2 + 3 * 4")
	f.Add("-(-5)")
	f.Add("(1")
	f.Add("1/0")
	f.Add("5.")
	f.Add("2 % 3")
	f.Fuzz(func(t *testing.T, s string) {
		r1, err1 := calc.EvalString(s)
		r2, err2 := calc.EvalString(s)
		if calc.KindOf(err1) != calc.KindOf(err2) {
			t.Fatalf("%q: different errors %v and %v", s, err1, err2)
		}
		if err1 == nil && r1 != r2 && !(math.IsNaN(r1) && math.IsNaN(r2)) {
			t.Fatalf("%q: different results %g and %g", s, r1, r2)
		}
		if err1 != nil && calc.KindOf(err1) == nil {
			t.Fatalf("%q: unclassified error %#v", s, err1)
		}
		if err1 != nil && strings.Contains(err1.Error(), "%!") {
			t.Fatalf("%q: malformed message %q", s, err1.Error())
		}
	})
}
