package equation

import "math"

// Degree conversion factors.
const (
	degToRad = 0.01745329251994
	radToDeg = 57.29577951308232
)

type evalcfg struct {
	assign  bool
	derived bool
}

// An EvalOption adjusts how an equation is evaluated.
type EvalOption interface {
	evalOption(evalcfg) evalcfg
}

type (
	assignopt  struct{}
	derivedopt struct{}
)

func (assignopt) evalOption(c evalcfg) evalcfg  { c.assign = true; return c }
func (derivedopt) evalOption(c evalcfg) evalcfg { c.derived = true; return c }

// AllowAssign permits assignment operators to write through to the
// variable slice. Without it, evaluating an equation containing = is
// an error and the variable slice is never modified.
func AllowAssign() EvalOption {
	return assignopt{}
}

// DerivedUnits lets the answer formatter describe results with derived
// units such as Ohm or Hz; otherwise only base units appear.
func DerivedUnits() EvalOption {
	return derivedopt{}
}

// evaluator is the call-local state of one evaluation: a value stack
// and a dimension stack maintained in lock step.
type evaluator struct {
	vals  []float64
	units []dims
	err   *Error
}

func (ev *evaluator) push(v float64, u dims) {
	ev.vals = append(ev.vals, v)
	ev.units = append(ev.units, u)
}

func (ev *evaluator) pop() (float64, dims) {
	v := ev.vals[len(ev.vals)-1]
	u := ev.units[len(ev.units)-1]
	ev.vals = ev.vals[:len(ev.vals)-1]
	ev.units = ev.units[:len(ev.units)-1]
	return v, u
}

func (ev *evaluator) fail(code ErrCode, off int) {
	if ev.err == nil {
		ev.err = &Error{Code: code, Off: off}
	}
}

// Eval executes the compiled equation against the given variable
// values and returns the numeric answer along with the unit string
// that describes it. Variable references index into vars.
func (e *Equation) Eval(vars []float64, opts ...EvalOption) (float64, string, error) {
	var cfg evalcfg
	for _, o := range opts {
		cfg = o.evalOption(cfg)
	}
	if len(e.toks) == 0 {
		e.err = &Error{Code: ErrEvalNoEquation}
		return 0, "", e.err
	}
	ev := evaluator{
		vals:  make([]float64, 0, len(e.toks)),
		units: make([]dims, 0, len(e.toks)),
	}
	for i := 0; i < len(e.toks) && ev.err == nil; i++ {
		t := e.toks[i]
		switch t.kind {
		case tokenVal, tokenPrefix:
			ev.push(t.val, dims{})
		case tokenRef:
			if t.ref >= len(vars) {
				ev.push(0, dims{})
				ev.fail(ErrEvalContainsVar, t.pos)
				break
			}
			ev.push(vars[t.ref], dims{})
		case tokenUnit:
			if len(ev.vals) < 1 {
				ev.fail(ErrEvalStackUnderflow, t.pos)
				break
			}
			u := &siUnits[t.unit]
			top := len(ev.vals) - 1
			ev.vals[top] = u.offset + ev.vals[top]*u.scale
			ev.units[top] = ev.units[top].add(u.dim)
		case tokenOp:
			i = ev.operate(e, i, vars, cfg)
		default:
			ev.fail(ErrEvalUnknownToken, t.pos)
		}
	}
	if ev.err == nil && len(ev.vals) != 1 {
		ev.fail(ErrEvalStackNotEmpty, e.toks[len(e.toks)-1].pos)
	}
	if ev.err != nil {
		e.err = ev.err
		return 0, "", ev.err
	}
	v, u := ev.pop()

	// Target unit, if one was given with #.
	if e.tgtScale != 0 {
		if u != e.tgtUnit {
			e.err = &Error{Code: ErrEvalUnitMismatch, Off: len(e.src)}
			return 0, "", e.err
		}
		e.err = nil
		return (v - e.tgtOffset) / e.tgtScale, e.tgtText, nil
	}
	e.err = nil
	return v, formatAnswer(u, cfg.derived), nil
}

// operate applies the operator token at index i and returns the index
// of the last token it consumed.
func (ev *evaluator) operate(e *Equation, i int, vars []float64, cfg evalcfg) int {
	t := e.toks[i]
	op := t.op
	switch {
	case op == opSet:
		if !cfg.assign || vars == nil {
			ev.fail(ErrEvalAssignNotAllowed, t.pos)
			return i
		}
		if len(ev.vals) < 1 {
			ev.fail(ErrEvalStackUnderflow, t.pos)
			return i
		}
		i++
		if i >= len(e.toks) || e.toks[i].kind != tokenRef {
			ev.fail(ErrEvalBadToken, t.pos)
			return i
		}
		ref := e.toks[i].ref
		if ref >= len(vars) {
			ev.fail(ErrEvalContainsVar, e.toks[i].pos)
			return i
		}
		// The assigned value stays on the stack, so an assignment
		// expression has a value.
		vars[ref] = ev.vals[len(ev.vals)-1]
		return i
	case op < opUnary:
		ev.binary(op, t.pos)
		return i
	case op < opNArg:
		ev.unary(op, t.pos)
		return i
	default:
		return ev.nargs(e, i)
	}
}

func (ev *evaluator) binary(op opcode, pos int) {
	if len(ev.vals) < 2 {
		ev.fail(ErrEvalStackUnderflow, pos)
		return
	}
	arg2, unit2 := ev.pop()
	arg1, unit1 := ev.pop()

	// Easy math errors first. A negative base forces an integer
	// exponent rather than producing a complex result, and that
	// rounded exponent is also what scales the dimensions.
	switch op {
	case opDiv:
		if arg2 == 0 {
			ev.fail(ErrMathDivZero, pos)
			return
		}
	case opPow:
		if arg1 < 0 {
			arg2 = math.Floor(arg2 + 0.5)
		}
		if arg1 == 0 && arg2 < 0 {
			ev.fail(ErrMathDivZero, pos)
			return
		}
	}

	var unit dims
	switch op {
	case opAdd, opSub, opOr, opAnd, opLte, opGte, opLt, opGt, opNeq, opEq:
		if unit1 != unit2 {
			ev.fail(ErrEvalUnitMismatch, pos)
			return
		}
		if op == opAdd || op == opSub {
			unit = unit2
		}
	case opMul:
		unit = unit1.add(unit2)
	case opDiv:
		unit = unit1.sub(unit2)
	case opPow:
		if !unit2.isZero() {
			ev.fail(ErrEvalUnitNotDimless, pos)
			return
		}
		unit = unit1.scale(arg2)
	}

	var val float64
	switch op {
	case opPsh:
		ev.push(arg1, unit1)
		val, unit = arg2, unit2
	case opPop:
		val, unit = arg2, unit2
	case opAdd:
		val = arg1 + arg2
	case opSub:
		val = arg1 - arg2
	case opMul:
		val = arg1 * arg2
	case opDiv:
		val = arg1 / arg2
	case opPow:
		if arg1 == 0 && arg2 == 0 {
			val = 1
		} else {
			val = math.Pow(arg1, arg2)
		}
	case opOr:
		val = truth(arg1 != 0 || arg2 != 0)
	case opAnd:
		val = truth(arg1 != 0 && arg2 != 0)
	case opLte:
		val = truth(arg1 <= arg2)
	case opGte:
		val = truth(arg1 >= arg2)
	case opLt:
		val = truth(arg1 < arg2)
	case opGt:
		val = truth(arg1 > arg2)
	case opNeq:
		val = truth(arg1 != arg2)
	case opEq:
		val = truth(arg1 == arg2)
	default:
		ev.fail(ErrEvalUnknownBinaryOp, pos)
		return
	}
	ev.push(val, unit)
}

func (ev *evaluator) unary(op opcode, pos int) {
	if len(ev.vals) < 1 {
		ev.fail(ErrEvalStackUnderflow, pos)
		return
	}
	arg, unit := ev.pop()

	switch op - opUnary {
	case fnAcos, fnAsin:
		if math.Abs(arg) > 1 {
			ev.fail(ErrMathDomain, pos)
			return
		}
	case fnLog, fnLog10:
		if arg == 0 {
			ev.fail(ErrMathLogZero, pos)
			return
		}
		if arg < 0 {
			ev.fail(ErrMathLogNeg, pos)
			return
		}
	case fnSqrt:
		if arg < 0 {
			ev.fail(ErrMathSqrtNeg, pos)
			return
		}
	case fnExp:
		if arg > 709 {
			ev.fail(ErrMathOverflow, pos)
			return
		}
	}

	switch op - opUnary {
	case fnAbs, fnCeil, fnFloor, fnRound:
		// dimensions preserved
	case fnSqrt:
		unit = unit.scale(0.5)
	default:
		if !unit.isZero() {
			ev.fail(ErrEvalUnitNotDimless, pos)
			return
		}
	}

	var val float64
	switch op - opUnary {
	case fnAbs:
		val = math.Abs(arg)
	case fnSqrt:
		val = math.Sqrt(arg)
	case fnExp:
		val = math.Exp(arg)
	case fnLog:
		val = math.Log(arg)
	case fnLog10:
		val = math.Log10(arg)
	case fnCeil:
		val = math.Ceil(arg)
	case fnFloor:
		val = math.Floor(arg)
	case fnRound:
		val = math.Floor(arg + 0.5)
	case fnCos:
		val = math.Cos(arg)
	case fnSin:
		val = math.Sin(arg)
	case fnTan:
		val = math.Tan(arg)
	case fnAcos:
		val = math.Acos(arg)
	case fnAsin:
		val = math.Asin(arg)
	case fnAtan:
		val = math.Atan(arg)
	case fnCosh:
		val = math.Cosh(arg)
	case fnSinh:
		val = math.Sinh(arg)
	case fnTanh:
		val = math.Tanh(arg)
	case fnSind:
		val = math.Sin(arg * degToRad)
	case fnCosd:
		val = math.Cos(arg * degToRad)
	case fnTand:
		val = math.Tan(arg * degToRad)
	case fnAsind:
		val = radToDeg * math.Asin(arg)
	case fnAcosd:
		val = radToDeg * math.Acos(arg)
	case fnAtand:
		val = radToDeg * math.Atan(arg)
	case fnNot:
		val = truth(arg == 0)
	case fnSign:
		switch {
		case arg > 0:
			val = 1
		case arg < 0:
			val = -1
		}
	default:
		ev.fail(ErrEvalUnknownUnaryOp, pos)
		return
	}
	ev.push(val, unit)
}

// nargs applies the variable-argument operator at token index i and
// returns the index of the last token consumed.
func (ev *evaluator) nargs(e *Equation, i int) int {
	t := e.toks[i]
	fn := int(t.op - opNArg)
	if fn < 0 || fn >= numNArg {
		ev.fail(ErrEvalUnknownNArgOp, t.pos)
		return i
	}
	switch argc := nargArgc[fn]; {
	case argc == 2:
		if len(ev.vals) < 2 {
			ev.fail(ErrEvalStackUnderflow, t.pos)
			return i
		}
		arg2, unit2 := ev.pop()
		arg1, unit1 := ev.pop()
		switch fn {
		case fnMod, fnRem:
			if arg2 == 0 {
				if fn == fnRem {
					ev.fail(ErrMathDivZero, t.pos)
					return i
				}
				ev.push(arg1, unit1) // mod(a, 0) is a
				return i
			}
			if unit1 != unit2 {
				ev.fail(ErrEvalUnitMismatch, t.pos)
				return i
			}
			val := arg1 - arg2*math.Floor(arg1/arg2)
			if fn == fnRem && sign(arg1) != sign(arg2) {
				val -= arg2
			}
			ev.push(val, unit2)
		case fnAtan2, fnAtan2d:
			if unit1 != unit2 {
				ev.fail(ErrEvalUnitMismatch, t.pos)
				return i
			}
			var val float64
			switch {
			case arg2 != 0:
				val = math.Atan2(arg1, arg2)
			case arg1 > 0:
				val = math.Pi / 2
			case arg1 < 0:
				val = -math.Pi / 2
			}
			if fn == fnAtan2d {
				val *= radToDeg
			}
			ev.push(val, dims{})
		default:
			ev.fail(ErrEvalUnknownNArgOp, t.pos)
		}
		return i
	case argc < 0:
		i++
		if i >= len(e.toks) || e.toks[i].kind != tokenNargc {
			ev.fail(ErrEvalUnknownNArgOp, t.pos)
			return i
		}
		n := e.toks[i].argc
		if fn != fnMax && fn != fnMin {
			ev.fail(ErrEvalUnknownNArgOp, t.pos)
			return i
		}
		if n < 1 || len(ev.vals) < n {
			ev.fail(ErrEvalStackUnderflow, t.pos)
			return i
		}
		val, unit := ev.pop()
		for k := 1; k < n; k++ {
			arg, au := ev.pop()
			if au != unit {
				ev.fail(ErrEvalUnitMismatch, t.pos)
				return i
			}
			if (fn == fnMax && arg > val) || (fn == fnMin && arg < val) {
				val = arg
			}
		}
		ev.push(val, unit)
		return i
	default: // if(cond, then, else)
		if fn != fnIf {
			ev.fail(ErrEvalUnknownNArgOp, t.pos)
			return i
		}
		if len(ev.vals) < 3 {
			ev.fail(ErrEvalStackUnderflow, t.pos)
			return i
		}
		alt, altU := ev.pop()
		then, thenU := ev.pop()
		cond, condU := ev.pop()
		if !condU.isZero() {
			ev.fail(ErrEvalUnitNotDimless, t.pos)
			return i
		}
		if cond != 0 {
			ev.push(then, thenU)
		} else {
			ev.push(alt, altU)
		}
		return i
	}
}

func truth(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
