// Package anim drives the wandering Julia parameter as a damped random
// walk around a fixed base value.
package anim

import (
	"math"
	"math/cmplx"
)

// Config holds the walk parameters. The zero value is unusable; start from
// DefaultConfig.
type Config struct {
	Base    complex128 // Julia parameter center
	Radius  float64    // soft bound for |offset|
	Accel   float64    // random acceleration magnitude baseline
	Damping float64    // velocity damping, higher means more damping
	Seed    uint64
}

func DefaultConfig() Config {
	return Config{
		Base:    complex(-0.8, 0.156),
		Radius:  0.40,
		Accel:   1.2,
		Damping: 0.85,
		Seed:    DefaultSeed,
	}
}

// State is the full animation state: parameter offset from the base,
// offset velocity, and the generator word. It is a value; Advance returns
// a new one rather than mutating in place.
type State struct {
	Offset complex128
	Vel    complex128
	Rng    Rand
}

// NewState returns the initial state for a seed. Seed zero falls back to
// DefaultSeed since xorshift cannot leave the zero word.
func NewState(seed uint64) State {
	if seed == 0 {
		seed = DefaultSeed
	}
	return State{Rng: Rand(seed)}
}

// maxDt bounds the effect of long pauses (a resume-from-suspend tick must
// not slingshot the velocity).
const maxDt = 0.1

// Advance steps the walk by dt and returns the new state together with the
// effective Julia parameter base + offset. It is total: any finite dt >= 0
// yields finite state.
func Advance(cfg Config, s State, dt float64) (State, complex128) {
	if dt > maxDt {
		dt = maxDt
	}

	ax := s.Rng.Next() * cfg.Accel
	ay := s.Rng.Next() * cfg.Accel
	acc := complex(ax, ay)

	vel := s.Vel*complex(1.0-cfg.Damping*dt, 0) + acc*complex(dt, 0)
	off := s.Offset + vel*complex(dt, 0)

	// Soft boundary: outside the radius, pull inward and bleed off the
	// outward velocity component.
	if rlen := cmplx.Abs(off); rlen > cfg.Radius {
		pull := (rlen - cfg.Radius) / rlen
		off -= off * complex(pull*0.6, 0)
		dot := real(vel)*real(off) + imag(vel)*imag(off)
		normSq := real(off)*real(off) + imag(off)*imag(off) + 1e-12
		vel -= off * complex(dot/normSq*0.5, 0)
	}

	if cmplx.Abs(vel) > cfg.Radius*2 {
		vel *= 0.5
	}

	s.Offset = off
	s.Vel = vel
	return s, cfg.Base + off
}

// Parameter returns base + offset without advancing the walk.
func Parameter(cfg Config, s State) complex128 {
	return cfg.Base + s.Offset
}

// Valid reports whether the state is finite in every component.
func (s State) Valid() bool {
	for _, v := range []float64{real(s.Offset), imag(s.Offset), real(s.Vel), imag(s.Vel)} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
