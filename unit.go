package equation

import "math"

// dimCount is the number of SI base dimensions tracked per value.
const dimCount = 7

// dims is a vector of exponents over the base dimensions
// (kg, m, A, s, K, mol, cd). It adds componentwise under
// multiplication and scales under exponentiation.
type dims [dimCount]float64

func (d dims) isZero() bool {
	return d == dims{}
}

func (d dims) add(e dims) dims {
	for i := range d {
		d[i] += e[i]
	}
	return d
}

func (d dims) sub(e dims) dims {
	for i := range d {
		d[i] -= e[i]
	}
	return d
}

func (d dims) scale(k float64) dims {
	for i := range d {
		d[i] *= k
	}
	return d
}

// A unitDef maps a unit name onto base dimensions. A literal written
// as "x unit" is scale*x + offset in base units. Offsets appear only
// on the affine temperature scales.
type unitDef struct {
	name   string
	dim    dims
	scale  float64
	offset float64
}

// Table layout: base units first, then the derived units used for
// output, then input-only units, then the units of the dimensioned
// constants. Earlier rows take precedence when matching input, and
// only the first numOutputUnits rows are candidates for output.
const (
	numBaseUnits   = 7  // kg m A s K mol cd
	numOutputUnits = 16 // base plus derived
	numInputUnits  = 26 // recognized in source text
)

var siUnits = [...]unitDef{
	//                 kg    m    A    s    K  mol   cd
	{"kg", dims{1, 0, 0, 0, 0, 0, 0}, 1, 0},
	{"m", dims{0, 1, 0, 0, 0, 0, 0}, 1, 0},
	{"A", dims{0, 0, 1, 0, 0, 0, 0}, 1, 0},
	{"s", dims{0, 0, 0, 1, 0, 0, 0}, 1, 0},
	{"K", dims{0, 0, 0, 0, 1, 0, 0}, 1, 0},
	{"mol", dims{0, 0, 0, 0, 0, 1, 0}, 1, 0},
	{"cd", dims{0, 0, 0, 0, 0, 0, 1}, 1, 0},
	// derived
	{"W", dims{1, 2, 0, -3, 0, 0, 0}, 1, 0},   // J/s
	{"J", dims{1, 2, 0, -2, 0, 0, 0}, 1, 0},   // N m
	{"Pa", dims{1, -1, 0, -2, 0, 0, 0}, 1, 0}, // N/m2
	{"N", dims{1, 1, 0, -2, 0, 0, 0}, 1, 0},   // kg m/s2
	{"Hz", dims{0, 0, 0, -1, 0, 0, 0}, 1, 0},  // 1/s
	{"C", dims{0, 0, 1, 1, 0, 0, 0}, 1, 0},    // A s
	{"V", dims{1, 2, -1, -3, 0, 0, 0}, 1, 0},  // W/A
	{"F", dims{-1, -2, 2, 4, 0, 0, 0}, 1, 0},  // C/V
	{"Ohm", dims{1, 2, -2, -3, 0, 0, 0}, 1, 0},
	// input only
	{"g", dims{1, 0, 0, 0, 0, 0, 0}, 1e-3, 0},
	{"L", dims{0, 3, 0, 0, 0, 0, 0}, 1e-3, 0},
	{"degC", dims{0, 0, 0, 0, 1, 0, 0}, 1, 273.15},
	{"degF", dims{0, 0, 0, 0, 1, 0, 0}, 5.0 / 9.0, 273.15 - 5.0/9.0*32.0},
	{"mi", dims{0, 1, 0, 0, 0, 0, 0}, 1609.344, 0},
	{"nmi", dims{0, 1, 0, 0, 0, 0, 0}, 1852, 0},
	{"yd", dims{0, 1, 0, 0, 0, 0, 0}, 0.9144, 0},
	{"ft", dims{0, 1, 0, 0, 0, 0, 0}, 0.3048, 0},
	{"in", dims{0, 1, 0, 0, 0, 0, 0}, 2.54e-2, 0},
	{"eV", dims{1, 2, 0, -2, 0, 0, 0}, 1.60217646e-19, 0},
	// units of the dimensioned constants, not matched in input
	{"m/s", dims{0, 1, 0, -1, 0, 0, 0}, 1, 0},
	{"F/m", dims{-1, -3, 2, 4, 0, 0, 0}, 1, 0},
	{"N/A2", dims{1, 1, -2, -2, 0, 0, 0}, 1, 0},
	{"m3/kg s2", dims{-1, 3, 0, -2, 0, 0, 0}, 1, 0},
	{"J s", dims{1, 2, 0, -1, 0, 0, 0}, 1, 0},
	{"/mol", dims{0, 0, 0, 0, 0, -1, 0}, 1, 0},
	{"J/K", dims{1, 2, 0, -2, -1, 0, 0}, 1, 0},
	{"J/K mol", dims{1, 2, 0, -2, -1, -1, 0}, 1, 0},
}

// Indices of units referenced by the constant table.
const (
	unitC      = 12 // coulomb
	unitOhm    = 15
	unitSpeed  = 26 // m/s
	unitFPerM  = 27
	unitNPerA2 = 28
	unitGrav   = 29
	unitJS     = 30
	unitPerMol = 31
	unitJPerK  = 32
	unitGasR   = 33
)

// A constDef is a named constant with its value in base units and the
// index of its unit row, or -1 if dimensionless.
type constDef struct {
	name string
	val  float64
	unit int
}

var siConsts = [...]constDef{
	{"pi", math.Pi, -1},
	{"c", 299792458, unitSpeed},
	{"Z0", 376.730313461, unitOhm},
	{"e0", 8.854187817e-12, unitFPerM},
	{"mu0", 4e-7 * math.Pi, unitNPerA2},
	{"G", 6.67428e-11, unitGrav},
	{"h", 6.62606896e-34, unitJS},
	{"hbar", 6.62606896e-34 / (2 * math.Pi), unitJS},
	{"e", 1.602176487e-19, unitC},
	{"m_alpha", 6.64465620e-27, 0},
	{"m_e", 9.10938215e-31, 0},
	{"m_n", 1.674927211e-27, 0},
	{"m_p", 1.672621637e-27, 0},
	{"m_u", 1.660538782e-27, 0},
	{"N_A", 6.02214179e23, unitPerMol},
	{"kB", 1.3806504e-23, unitJPerK},
	{"R", 8.314472, unitGasR},
}

// SI prefixes recognized before a unit name, largest first.
var prefixes = [...]struct {
	c   byte
	val float64
}{
	{'T', 1e12},
	{'G', 1e9},
	{'M', 1e6},
	{'k', 1e3},
	{'h', 100},
	{'c', 0.01},
	{'m', 1e-3},
	{'u', 1e-6},
	{'n', 1e-9},
	{'p', 1e-12},
	{'f', 1e-15},
}

func prefixIndex(c byte) int {
	for i := range prefixes {
		if prefixes[i].c == c {
			return i
		}
	}
	return -1
}
