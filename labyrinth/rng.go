package labyrinth

// Generator parameters for the 48-bit linear congruential source.
const (
	rngMultiplier uint64 = 0x5DEECE66D
	rngIncrement  uint64 = 0xB
	rngMask       uint64 = (1 << 48) - 1
)

// Source is the seeded random stream a maze is grown from. It implements the
// java.util.Random contract: the seed is scrambled with the multiplier, each
// step advances the 48-bit state once, Intn rejection-samples to stay
// uniform, and Float64 concatenates a 26-bit and a 27-bit draw. Two Sources
// built from the same seed yield bit-identical streams, which is what makes
// maze generation reproducible per display name.
type Source struct {
	state uint64
}

// NewSource returns a Source seeded for a reproducible stream.
func NewSource(seed int64) *Source {
	return &Source{state: (uint64(seed) ^ rngMultiplier) & rngMask}
}

// next advances the state once and returns the top bits of it.
func (s *Source) next(bits uint) int32 {
	s.state = (s.state*rngMultiplier + rngIncrement) & rngMask
	return int32(s.state >> (48 - bits))
}

// Intn returns a uniform int in [0, bound). A non-positive bound is a
// programming defect and panics.
func (s *Source) Intn(bound int) int {
	if bound <= 0 {
		panic("labyrinth: Intn bound must be positive")
	}

	b := int32(bound)
	if b&-b == b { // power of two
		return int((int64(b) * int64(s.next(31))) >> 31)
	}

	for {
		bits := s.next(31)
		val := bits % b
		if bits-val+(b-1) >= 0 {
			return int(val)
		}
	}
}

// Float64 returns a uniform float64 in [0, 1).
func (s *Source) Float64() float64 {
	return float64(int64(s.next(26))<<27+int64(s.next(27))) / (1 << 53)
}
