package equation

import "testing"

func TestFormatAnswer(t *testing.T) {
	cases := []struct {
		name    string
		dim     dims
		derived bool
		want    string
	}{
		{"dimensionless", dims{}, true, ""},
		{"dimensionless-base", dims{}, false, ""},
		{"ohm", dims{1, 2, -2, -3, 0, 0, 0}, true, "Ohm"},
		{"ohm-base", dims{1, 2, -2, -3, 0, 0, 0}, false, "kg m2 /A2 s3"},
		{"hz", dims{0, 0, 0, -1, 0, 0, 0}, true, "Hz"},
		{"hz-base", dims{0, 0, 0, -1, 0, 0, 0}, false, "/s"},
		{"meter", dims{0, 1, 0, 0, 0, 0, 0}, true, "m"},
		{"speed", dims{0, 1, 0, -1, 0, 0, 0}, false, "m /s"},
		{"action", dims{1, 2, 0, -1, 0, 0, 0}, true, "J s"},
		{"volt", dims{1, 2, -1, -3, 0, 0, 0}, true, "V"},
		{"newton", dims{1, 1, 0, -2, 0, 0, 0}, true, "N"},
		{"area", dims{0, 2, 0, 0, 0, 0, 0}, false, "m2"},
		{"per-area", dims{0, -2, 0, 0, 0, 0, 0}, false, "/m2"},
		{"kelvin", dims{0, 0, 0, 0, 1, 0, 0}, true, "K"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := formatAnswer(c.dim, c.derived)
			if got != c.want {
				t.Errorf("formatAnswer(%v, %v) = %q, want %q", c.dim, c.derived, got, c.want)
			}
		})
	}
}

func TestFormatAnswerPrefersDerived(t *testing.T) {
	// The reciprocal tie must choose the positive power: Hz, not 1/s.
	d := dims{0, 0, 0, -1, 0, 0, 0}
	if got := formatAnswer(d, true); got != "Hz" {
		t.Errorf("reciprocal second gave %q", got)
	}
}
