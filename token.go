package equation

import "strconv"

// A token is one element of a compiled equation: a literal, an
// operator, a variable reference, a unit application, a prefix scalar,
// or the argument count trailing a variable-arity operator. Every
// token records the byte offset of the source text that produced it,
// for error reporting.
type token struct {
	kind tokenKind

	val  float64 // tokenVal, tokenPrefix
	op   opcode  // tokenOp
	ref  int     // tokenRef
	unit int     // tokenUnit
	argc int     // tokenNargc

	pos int
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenVal pushes a literal value.
	tokenVal
	// tokenOp applies an operator.
	tokenOp
	// tokenRef pushes a variable's current value.
	tokenRef
	// tokenUnit scales and offsets the top value and adds the unit's
	// dimension vector to it.
	tokenUnit
	// tokenNargc is the argument count for the preceding operator.
	tokenNargc
	// tokenPrefix pushes a pure scalar: an SI prefix multiplier or the
	// 1 synthesized for a hanging unit.
	tokenPrefix
)

func (t token) String() string {
	at := "@" + strconv.Itoa(t.pos)
	switch t.kind {
	case tokenVal:
		return "Value " + strconv.FormatFloat(t.val, 'g', -1, 64) + at
	case tokenOp:
		return "Operator " + t.op.String() + at
	case tokenRef:
		return "Variable [" + strconv.Itoa(t.ref) + "]" + at
	case tokenUnit:
		return "Unit " + siUnits[t.unit].name + at
	case tokenNargc:
		return "Argc " + strconv.Itoa(t.argc) + at
	case tokenPrefix:
		return "Prefix " + strconv.FormatFloat(t.val, 'g', -1, 64) + at
	}
	return "Undefined" + at
}

// An opcode identifies an operation in the compiled token array and,
// during parsing, an entry on the pending-operator stack. Stack
// entries have bracketUnit added once per nesting level, which folds
// parenthesis depth into ordinary precedence comparison; strip removes
// the levels again. Larger stripped codes bind tighter.
type opcode int

const (
	opNone opcode = iota
	opPsh         // comma inside call brackets; counts arguments, stripped after parsing
	opPop         // comma elsewhere; discards its first operand
	opSet         // assignment; its variable reference follows in the output

	opBinaryMin // first true binary operator
)

const (
	opOr  opcode = opBinaryMin + iota // ||
	opAnd                             // &&

	opLte // <=
	opGte // >=
	opLt  // <
	opGt  // >
	opNeq // !=
	opEq  // ==

	opAdd
	opSub
	opMul
	opDiv
	opPow

	opBinaryEnd
)

// Relational operators form a block that associates left to right even
// though their codes differ.
const (
	opRelMin = opLte
	opRelMax = opEq
)

// Unary function opcodes are opUnary plus an index into unaryNames;
// variable-argument opcodes are opNArg plus an index into nargNames.
const (
	opUnary opcode = 20
	opNArg  opcode = 50
)

const (
	fnAbs = iota
	fnSqrt
	fnExp
	fnLog
	fnLog10
	fnCeil
	fnFloor
	fnCos
	fnSin
	fnTan
	fnAcos
	fnAsin
	fnAtan
	fnCosh
	fnSinh
	fnTanh
	fnSind
	fnCosd
	fnTand
	fnAsind
	fnAcosd
	fnAtand
	fnNot
	fnSign
	fnRound
	numUnary
)

var unaryNames = [numUnary]string{
	"abs", "sqrt", "exp", "log", "log10", "ceil", "floor", "cos", "sin", "tan",
	"acos", "asin", "atan", "cosh", "sinh", "tanh", "sind", "cosd", "tand", "asind",
	"acosd", "atand", "!", "sign", "round",
}

const (
	fnMod = iota
	fnRem
	fnAtan2
	fnAtan2d
	fnMax
	fnMin
	fnIf
	numNArg
)

var nargNames = [numNArg]string{"mod", "rem", "atan2", "atan2d", "max", "min", "if"}

// nargArgc is the declared argument count per variable-argument
// operator. A negative count means at least that many; those operators
// carry a tokenNargc in the compiled output.
var nargArgc = [numNArg]int{2, 2, 2, 2, -2, -2, 3}

// bracketUnit is added to a pending opcode once per bracket nesting
// level.
const bracketUnit opcode = 100

// strip removes bracket levels from a pending opcode.
func (op opcode) strip() opcode {
	for op >= bracketUnit {
		op -= bracketUnit
	}
	return op
}

// isNArg reports whether a stripped opcode is a variable-argument
// operator, and if so which.
func (op opcode) isNArg() (int, bool) {
	if op >= opNArg && op < opNArg+numNArg {
		return int(op - opNArg), true
	}
	return 0, false
}

func (op opcode) String() string {
	switch op {
	case opPsh:
		return "Push"
	case opPop:
		return "Pop"
	case opSet:
		return "Assign"
	case opOr:
		return "||"
	case opAnd:
		return "&&"
	case opLte:
		return "<="
	case opGte:
		return ">="
	case opLt:
		return "<"
	case opGt:
		return ">"
	case opNeq:
		return "!="
	case opEq:
		return "=="
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "*"
	case opDiv:
		return "/"
	case opPow:
		return "^"
	}
	if op >= opUnary && op < opUnary+numUnary {
		return unaryNames[op-opUnary]
	}
	if k, ok := op.isNArg(); ok {
		return nargNames[k]
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}
