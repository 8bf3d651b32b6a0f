package equation

import (
	"fmt"
	"math"
	"strings"
)

// formatAnswer renders the unit string describing a result's dimension
// vector. It searches the named units for the single one that best
// explains the vector: for each candidate and each base axis shared
// with the vector, the candidate is scaled to cancel that axis, and
// what remains is scored by how many base units it still needs and the
// total exponent it carries, penalizing fractional exponents heavily.
// Ties between a unit and its reciprocal prefer the positive power, so
// Hz wins over 1/s. With derived false only base units are candidates.
func formatAnswer(d dims, derived bool) string {
	work := d
	limit := numBaseUnits
	if derived {
		limit = numOutputUnits
	}
	bestN := 9999
	best := -1
	bestPwr := 999.999
	bestScl := -999.999
	for u := 0; u < limit; u++ {
		row := &siUnits[u]
		for b := 0; b < dimCount; b++ {
			if work[b] == 0 || row.dim[b] == 0 {
				continue
			}
			scl := work[b] / row.dim[b]
			pwr := math.Abs(scl)
			n := 1 // the matched unit itself
			for k := 0; k < dimCount; k++ {
				if k == b {
					continue
				}
				r := work[k] - scl*row.dim[k]
				if r == 0 {
					continue
				}
				n++
				pwr += math.Ceil(math.Abs(r))
				if r != math.Floor(r) {
					pwr += 10
				}
			}
			if n < bestN || pwr < bestPwr || (n == bestN && scl > 0 && bestScl < 0) {
				bestN, best, bestPwr, bestScl = n, u, pwr, scl
			}
		}
	}
	if best >= 0 {
		work = work.sub(siUnits[best].dim.scale(bestScl))
	}

	// Numerator and denominator lines: the matched unit first, then
	// whatever base units remain.
	line := func(sgn float64) string {
		var parts []string
		if best >= 0 && math.Signbit(bestScl) == (sgn < 0) {
			s := siUnits[best].name
			if math.Abs(bestScl) != 1 {
				s += fmt.Sprintf("%g", sgn*bestScl)
			}
			parts = append(parts, s)
		}
		for b := 0; b < dimCount; b++ {
			if sgn*work[b] <= 0 {
				continue
			}
			s := siUnits[b].name
			if sgn*work[b] != 1 {
				s += fmt.Sprintf("%g", sgn*work[b])
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, " ")
	}
	num, den := line(1), line(-1)
	switch {
	case den == "":
		return num
	case num == "":
		return "/" + den
	}
	return num + " /" + den
}
