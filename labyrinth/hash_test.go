package labyrinth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashCode(t *testing.T) {
	t.Run("empty name and no dims hash to the seed constant", func(t *testing.T) {
		assert.Equal(t, int32(5381), HashCode(""))
	})

	t.Run("known values", func(t *testing.T) {
		assert.Equal(t, int32(177574), HashCode("", 1))
		assert.Equal(t, int32(5862120), HashCode("AB"))
		assert.Equal(t, int32(2088881520), HashCode("AB", 4, 4))
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, HashCode("Frodo Baggins", 4, 4), HashCode("Frodo Baggins", 4, 4))
	})

	t.Run("dims order matters", func(t *testing.T) {
		assert.NotEqual(t, HashCode("AB", 1, 2), HashCode("AB", 2, 1))
	})

	t.Run("never negative", func(t *testing.T) {
		long := "a name long enough to overflow 32-bit accumulation several times over"
		assert.GreaterOrEqual(t, HashCode(long, 12, 19), int32(0))
	})
}
