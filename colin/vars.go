package colin

import (
	"strconv"
	"strings"
)

// MixedIntVars is a point in a mixed real/integer/binary decision space.
// Position within each sequence is significant: evaluators weight entries by index.
// Bits only ever hold 0 or 1.
type MixedIntVars struct {
	Reals []float64
	Ints  []int64
	Bits  []uint8
}

// NewMixedIntVars creates an empty point with non-nil sequences.
func NewMixedIntVars() *MixedIntVars {
	return &MixedIntVars{
		Reals: make([]float64, 0),
		Ints:  make([]int64, 0),
		Bits:  make([]uint8, 0),
	}
}

// Dimensions returns the number of real, integer and binary variables.
func (v *MixedIntVars) Dimensions() (reals, ints, bits int) {
	return len(v.Reals), len(v.Ints), len(v.Bits)
}

// String renders one line per variable kind, e.g. "Reals 1 2\nIntegers\nBinary 0 1".
func (v *MixedIntVars) String() string {
	var sb strings.Builder
	sb.WriteString("Reals")
	for _, r := range v.Reals {
		sb.WriteByte(' ')
		sb.WriteString(FormatNumber(r))
	}
	sb.WriteString("\nIntegers")
	for _, i := range v.Ints {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatInt(i, 10))
	}
	sb.WriteString("\nBinary")
	for _, b := range v.Bits {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(int(b)))
	}
	return sb.String()
}
