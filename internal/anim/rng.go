package anim

// Rand is a xorshift64* generator. The zero value is degenerate; seed it
// through NewState or with any non-zero word.
type Rand uint64

const (
	// DefaultSeed is the golden-ratio word used when no seed is given.
	DefaultSeed uint64 = 0x9e3779b97f4a7c15

	randMultiplier uint64 = 0x2545F4914F6CDD1D
)

// Next advances the generator and returns a sample in [-1, 1].
func (r *Rand) Next() float64 {
	x := uint64(*r)
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	*r = Rand(x)
	v := x * randMultiplier
	return float64(v>>11)*(1.0/float64(uint64(1)<<53))*2.0 - 1.0
}
