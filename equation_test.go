package equation_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/zephyrtronium/equation"
)

func TestSetFloat(t *testing.T) {
	values := []float64{0, 1, -3, 0.1, 12345.678, 1e-07, 2.718281828459045}
	for _, v := range values {
		var e equation.Equation
		if err := e.SetFloat(v, ""); err != nil {
			t.Fatalf("SetFloat(%g): %v", v, err)
		}
		if want := fmt.Sprintf("%g", v); e.Source() != want {
			t.Errorf("source is %q, want %q", e.Source(), want)
		}
		got, u, err := e.Eval(nil)
		if err != nil {
			t.Fatalf("evaluating %g: %v", v, err)
		}
		if got != v || u != "" {
			t.Errorf("SetFloat(%g) evaluates to %g %q", v, got, u)
		}
		// The printed source must parse back to the same value: %g
		// produces the shortest representation that round-trips.
		var e2 equation.Equation
		if err := e2.Parse(e.Source(), nil); err != nil {
			t.Fatalf("%q failed to parse: %v", e.Source(), err)
		}
		if got, _, _ := e2.Eval(nil); got != v {
			t.Errorf("%q round-trips to %g, want %g", e.Source(), got, v)
		}
	}
}

func TestAnswer(t *testing.T) {
	var e equation.Equation
	if err := e.Parse("1 + 2", nil); err != nil {
		t.Fatal(err)
	}
	if got := e.Answer(nil); got != 3 {
		t.Errorf("want 3, got %g", got)
	}
	if err := e.Parse("1/0", nil); err != nil {
		t.Fatal(err)
	}
	// Answer swallows errors and yields 0.
	if got := e.Answer(nil); got != 0 {
		t.Errorf("want 0 on error, got %g", got)
	}
	if e.LastError() == nil {
		t.Error("LastError is nil after failed Answer")
	}
}

func TestParseConstant(t *testing.T) {
	var e equation.Equation
	v, err := e.ParseConstant("2 * pi")
	if err != nil {
		t.Fatal(err)
	}
	if !approx(v, 6.283185307179586) {
		t.Errorf("want 2pi, got %g", v)
	}
	if _, err := e.ParseConstant("x + 1"); err == nil {
		t.Error("constant expression with a variable parsed")
	}
}

func TestContains(t *testing.T) {
	var e equation.Equation
	if err := e.Parse("x + 2 m + y", []string{"x", "y"}); err != nil {
		t.Fatal(err)
	}
	if !e.ContainsVariables() {
		t.Error("ContainsVariables is false")
	}
	if le := e.LastError(); le == nil || le.Code != equation.ErrContainsVar || le.Off != 0 {
		t.Errorf("wrong recorded error: %v", le)
	}
	if !e.ContainsVariable(0) || !e.ContainsVariable(1) {
		t.Error("ContainsVariable misses a used variable")
	}
	if e.ContainsVariable(2) {
		t.Error("ContainsVariable reports an unused variable")
	}
	if !e.ContainsUnits() {
		t.Error("ContainsUnits is false")
	}
	if err := e.Parse("1 + 2", nil); err != nil {
		t.Fatal(err)
	}
	if e.ContainsVariables() || e.ContainsUnits() {
		t.Error("pure arithmetic reports variables or units")
	}
}

func TestParseKeepsStateOnError(t *testing.T) {
	var e equation.Equation
	if err := e.Parse("1 + 2", nil); err != nil {
		t.Fatal(err)
	}
	if err := e.Parse("1 +", nil); err == nil {
		t.Fatal("bad source parsed")
	}
	if e.Source() != "1 + 2" {
		t.Errorf("failed parse clobbered source: %q", e.Source())
	}
	got, _, err := e.Eval(nil)
	if err != nil {
		t.Fatalf("old equation no longer evaluates: %v", err)
	}
	if got != 3 {
		t.Errorf("old equation gives %g, want 3", got)
	}
}

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"trailing-op", "1 +", "Equation error: 1 + <-- Number, function, or variable expected"},
		{"unknown", "foobar", "Equation error: foobar <-- Unknown function or variable"},
		{"unknown-long", "11111111111111111111 + foobar", "Equation error: ...1111111111111 + foobar <-- Unknown function or variable"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var e equation.Equation
			if err := e.Parse(c.src, nil); err == nil {
				t.Fatalf("%q parsed but should not have", c.src)
			}
			if got := e.ErrorMessage(); got != c.want {
				t.Errorf("wrong message:\n\twant %q\n\tgot  %q", c.want, got)
			}
		})
	}
	var e equation.Equation
	if err := e.Parse("1 + 2", nil); err != nil {
		t.Fatal(err)
	}
	if got := e.ErrorMessage(); got != "Equation error: No error" {
		t.Errorf("message after success: %q", got)
	}
}

func TestEvalErrorMessage(t *testing.T) {
	var e equation.Equation
	if err := e.Parse("1/0", nil); err != nil {
		t.Fatal(err)
	}
	if _, _, err := e.Eval(nil); err == nil {
		t.Fatal("1/0 evaluated")
	}
	msg := e.ErrorMessage()
	if !strings.Contains(msg, "Division by zero") || !strings.Contains(msg, "<--") {
		t.Errorf("unhelpful message: %q", msg)
	}
}

func TestEvalString(t *testing.T) {
	v, u, err := equation.EvalString("3.1 V / 1 A")
	if err != nil {
		t.Fatal(err)
	}
	if v != 3.1 || u != "Ohm" {
		t.Errorf("want 3.1 Ohm, got %g %q", v, u)
	}
}

func TestPositionedErrors(t *testing.T) {
	var e equation.Equation
	err := e.Parse("1 + @", nil)
	if err == nil {
		t.Fatal("illegal character parsed")
	}
	pe, ok := err.(equation.PositionedError)
	if !ok {
		t.Fatalf("%T does not implement PositionedError", err)
	}
	if pe.Pos() != 4 {
		t.Errorf("wrong position: want 4, got %d", pe.Pos())
	}
}
