// Package photon models single polarized photons and entangled photon
// pairs under three rival pictures of measurement: local hidden
// variables, one bit of superluminal communication, and (as a reference
// curve elsewhere) quantum mechanics.
package photon

// Outcome is the binary result of a polarization measurement: the photon
// either passes the polarizer or is absorbed by it.
type Outcome bool

const (
	Passed   Outcome = true
	Absorbed Outcome = false
)

// Bool reports the outcome as a plain boolean (true = passed), the form
// trial records carry.
func (o Outcome) Bool() bool {
	return bool(o)
}

func (o Outcome) String() string {
	if o == Passed {
		return "PASSED"
	}
	return "ABSORBED"
}
