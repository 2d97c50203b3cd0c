package labyrinth

// Hashing constants for seed derivation.
const (
	hashSeed       = 5381
	hashMultiplier = 33
	hashMask       = 0x7FFFFFFF
)

// HashCode derives the maze seed from a display name and the structural
// dimensions of the maze being built. It is a rolling multiplicative hash
// over the name's code points followed by the dims, computed in wrapping
// 32-bit arithmetic so the result is identical on every platform. The sign
// bit is masked off after the name pass and again at the end.
//
// An empty name with no dims hashes to the seed constant.
func HashCode(name string, dims ...int) int32 {
	hash := int32(hashSeed)
	for _, ch := range name {
		hash = hash*hashMultiplier + int32(ch)
	}
	hash &= hashMask

	for _, dim := range dims {
		hash = hash*hashMultiplier + int32(dim)
	}
	return hash & hashMask
}
