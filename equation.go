package equation

import (
	"fmt"
	"strings"
)

// An Equation is a compiled expression: the source text and the flat
// token array it parses to, plus the target unit when the source ends
// in a "# unit" clause. The zero value is an empty equation, ready for
// Parse. An Equation must not be used concurrently, but separate
// instances are independent.
type Equation struct {
	src  string
	toks []token

	tgtUnit   dims
	tgtScale  float64 // 0 when no target unit was given
	tgtOffset float64
	tgtText   string

	err    *Error
	errSrc string // the source the last parse error refers to
}

// Parse compiles an expression. Identifiers in src are resolved
// against vars in order; Eval reads variable values at the same
// indices. On failure the equation keeps whatever it held before, and
// the error is also available from LastError.
func (e *Equation) Parse(src string, vars []string) error {
	p := parser{src: src, vars: vars}
	p.run()
	if p.err != nil {
		e.err = p.err
		e.errSrc = src
		return p.err
	}
	e.src = src
	e.toks = p.tokens()
	e.tgtUnit = p.tgtUnit
	e.tgtScale = p.tgtScale
	e.tgtOffset = p.tgtOffset
	e.tgtText = p.tgtText
	e.err = nil
	e.errSrc = ""
	return nil
}

// Answer evaluates the equation and returns only the value, 0 if any
// error occurs.
func (e *Equation) Answer(vars []float64, opts ...EvalOption) float64 {
	v, _, err := e.Eval(vars, opts...)
	if err != nil {
		return 0
	}
	return v
}

// ParseConstant compiles and evaluates an expression that must not
// reference any variable.
func (e *Equation) ParseConstant(src string) (float64, error) {
	if err := e.Parse(src, nil); err != nil {
		return 0, err
	}
	if e.ContainsVariables() {
		return 0, e.err
	}
	v, _, err := e.Eval(nil)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// SetFloat installs a trivial equation holding a single value, whose
// source text is the value formatted with the given verb, or %g if
// format is empty.
func (e *Equation) SetFloat(v float64, format string) error {
	if format == "" {
		format = "%g"
	}
	e.src = fmt.Sprintf(format, v)
	e.toks = []token{{kind: tokenVal, val: v}}
	e.tgtUnit = dims{}
	e.tgtScale = 0
	e.tgtOffset = 0
	e.tgtText = ""
	e.err = nil
	e.errSrc = ""
	return nil
}

// ContainsVariables reports whether the compiled equation references
// any variable. If it does, the position of the first reference is
// recorded as the last error.
func (e *Equation) ContainsVariables() bool {
	for _, t := range e.toks {
		if t.kind == tokenRef {
			e.err = &Error{Code: ErrContainsVar, Off: t.pos}
			return true
		}
	}
	return false
}

// ContainsVariable reports whether the compiled equation references
// the variable at index i. If it does, the position of the first
// reference is recorded as the last error.
func (e *Equation) ContainsVariable(i int) bool {
	for _, t := range e.toks {
		if t.kind == tokenRef && t.ref == i {
			e.err = &Error{Code: ErrContainsVar, Off: t.pos}
			return true
		}
	}
	return false
}

// ContainsUnits reports whether the compiled equation applies any
// unit.
func (e *Equation) ContainsUnits() bool {
	for _, t := range e.toks {
		if t.kind == tokenUnit {
			return true
		}
	}
	return false
}

// Source returns the source text of the compiled equation.
func (e *Equation) Source() string {
	return e.src
}

// LastError returns the error recorded by the most recent operation,
// or nil if it succeeded.
func (e *Equation) LastError() *Error {
	return e.err
}

// Tokens renders the compiled token array one token per line, for
// debugging.
func (e *Equation) Tokens() string {
	var b strings.Builder
	for i, t := range e.toks {
		fmt.Fprintf(&b, "%d: %v\n", i, t)
	}
	return b.String()
}

// ErrorMessage renders the last error with a window of the source
// around the failure:
//
//	Equation error: ...1111111111111 + foobar <-- Unknown function or variable
//
// The window holds up to 16 characters of source before the error
// position, with "..." when earlier text is cut off. For parse errors
// it then continues with the character at the error position or, for
// an unknown name, with the whole name.
func (e *Equation) ErrorMessage() string {
	const prefix = "Equation error: "
	if e.err == nil {
		return prefix + ErrNone.String()
	}
	code, off := e.err.Code, e.err.Off
	src := e.src
	if e.errSrc != "" {
		src = e.errSrc
	}
	switch code {
	case ErrAllocFail, ErrNoEquation, ErrEvalNoEquation:
		return prefix + code.String()
	}
	if off > len(src) {
		off = len(src)
	}
	end := off
	switch {
	case code == ErrUnknownName:
		// Show the whole unrecognized name.
		for end < len(src) && strings.IndexByte(nameChars, src[end]) >= 0 {
			end++
		}
	case code > 0 && code < 100 && off < len(src):
		end = off + 1 // include the offending character
	}
	start := off - 16
	dots := ""
	if start > 0 {
		dots = "..."
	} else {
		start = 0
	}
	return prefix + dots + src[start:end] + " <-- " + code.String()
}

// EvalString parses and evaluates an expression with no variables,
// reporting derived units.
func EvalString(src string) (float64, string, error) {
	var e Equation
	if err := e.Parse(src, nil); err != nil {
		return 0, "", err
	}
	return e.Eval(nil, DerivedUnits())
}
