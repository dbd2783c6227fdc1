package colin

import "fmt"

// Application computes the outputs an optimizer can request for a point.
// Implementations must be total over any MixedIntVars and must not modify it.
type Application interface {
	FunctionValue(p *MixedIntVars) float64
	ConstraintValues(p *MixedIntVars) []float64
	Gradient(p *MixedIntVars) []float64
}

// ObjectiveMode selects how TestFunction combines its per-variable terms.
type ObjectiveMode string

const (
	// ObjectiveSum adds every weighted term.
	ObjectiveSum ObjectiveMode = "sum"
	// ObjectiveLastTerm returns only the last term evaluated (binary, then
	// integer, then real), for drivers that expect each loop to overwrite the last.
	ObjectiveLastTerm ObjectiveMode = "last-term"
)

// validObjectiveModes maps accepted objective mode strings.
var validObjectiveModes = map[ObjectiveMode]bool{
	ObjectiveSum:      true,
	ObjectiveLastTerm: true,
	"":                true, // empty defaults to sum
}

// IsValidObjectiveMode returns true if mode is a recognized objective mode.
func IsValidObjectiveMode(mode string) bool {
	return validObjectiveModes[ObjectiveMode(mode)]
}

// Default TestFunction weights per variable kind.
const (
	DefaultRealWeight    = 1.0
	DefaultIntegerWeight = 1000.0
	DefaultBinaryWeight  = 1000000.0
)

// TestFunction is the built-in Application.
//
// Objective:   sum over i of (i+1)*Wr*real[i] + (i+1)*Wi*int[i] + (i+1)*Wb*bit[i]
// Gradient:    (i+1)*Wr for each real variable
// Constraints: (i+1) + W*x[i]^2 for each variable, reals then integers then bits
type TestFunction struct {
	Mode          ObjectiveMode
	RealWeight    float64
	IntegerWeight float64
	BinaryWeight  float64
}

// NewTestFunction creates a TestFunction with default weights and the given mode.
// Panics on unrecognized modes.
func NewTestFunction(mode ObjectiveMode) *TestFunction {
	if !validObjectiveModes[mode] {
		panic(fmt.Sprintf("unknown objective mode %q", mode))
	}
	if mode == "" {
		mode = ObjectiveSum
	}
	return &TestFunction{
		Mode:          mode,
		RealWeight:    DefaultRealWeight,
		IntegerWeight: DefaultIntegerWeight,
		BinaryWeight:  DefaultBinaryWeight,
	}
}

func (f *TestFunction) FunctionValue(p *MixedIntVars) float64 {
	sum, last := 0.0, 0.0
	for i, x := range p.Reals {
		last = float64(i+1) * f.RealWeight * x
		sum += last
	}
	for i, x := range p.Ints {
		last = float64(i+1) * f.IntegerWeight * float64(x)
		sum += last
	}
	for i, x := range p.Bits {
		last = float64(i+1) * f.BinaryWeight * float64(x)
		sum += last
	}
	if f.Mode == ObjectiveLastTerm {
		return last
	}
	return sum
}

func (f *TestFunction) Gradient(p *MixedIntVars) []float64 {
	grad := make([]float64, len(p.Reals))
	for i := range p.Reals {
		grad[i] = float64(i+1) * f.RealWeight
	}
	return grad
}

func (f *TestFunction) ConstraintValues(p *MixedIntVars) []float64 {
	vals := make([]float64, 0, len(p.Reals)+len(p.Ints)+len(p.Bits))
	for i, x := range p.Reals {
		vals = append(vals, float64(i+1)+f.RealWeight*x*x)
	}
	for i, x := range p.Ints {
		xf := float64(x)
		vals = append(vals, float64(i+1)+f.IntegerWeight*xf*xf)
	}
	for i, x := range p.Bits {
		xf := float64(x)
		vals = append(vals, float64(i+1)+f.BinaryWeight*xf*xf)
	}
	return vals
}
