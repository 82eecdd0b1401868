package rules

import "math/rand"

// Roller is the randomness source for combat resolution. Both resolvers take
// a Roller so a turn is deterministic given its rolls: tests inject scripted
// sources, production uses the PRNG-backed one.
type Roller interface {
	// IntN returns a uniform integer in [0, n). Panics if n <= 0.
	IntN(n int) int
	// Float64 returns a uniform float in [0.0, 1.0).
	Float64() float64
}

type randRoller struct{}

func (randRoller) IntN(n int) int   { return rand.Intn(n) }
func (randRoller) Float64() float64 { return rand.Float64() }

// NewRoller returns the default pseudo-random roller.
func NewRoller() Roller {
	return randRoller{}
}
