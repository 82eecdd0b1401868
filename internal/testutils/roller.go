package testutils

// ScriptedRoller replays queued rolls so combat resolution is deterministic
// in tests. Draining either queue past its end panics, which surfaces a test
// that scripted too few rolls.
type ScriptedRoller struct {
	Ints   []int
	Floats []float64

	intIdx   int
	floatIdx int
}

// IntN returns the next queued int. The queued value must already be in
// [0, n); the bound is not re-checked here.
func (r *ScriptedRoller) IntN(n int) int {
	if r.intIdx >= len(r.Ints) {
		panic("scripted roller: out of queued ints")
	}
	v := r.Ints[r.intIdx]
	r.intIdx++
	return v
}

// Float64 returns the next queued float.
func (r *ScriptedRoller) Float64() float64 {
	if r.floatIdx >= len(r.Floats) {
		panic("scripted roller: out of queued floats")
	}
	v := r.Floats[r.floatIdx]
	r.floatIdx++
	return v
}
