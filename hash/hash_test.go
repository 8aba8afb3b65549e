package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// performance benchmark
func BenchmarkHash(b *testing.B) {
	n := uint32(0)
	s := uint32(0)
	for i := 0; i < b.N; i++ {
		n = Hash(n, s, 1<<20)
		s++
	}
}

func TestHashRange(t *testing.T) {
	for max := uint32(1); max <= 1<<20; max <<= 1 {
		for n := uint32(0); n < 1000; n++ {
			require.Less(t, Hash(n, n*7, max), max)
		}
	}
	assert.Equal(t, uint32(0), Hash(12345, 678, 0))
}

func TestStringHash(t *testing.T) {
	assert.Equal(t, StringHash(1, "movie"), StringHash(1, "movie"))
	assert.NotEqual(t, StringHash(1, "movie"), StringHash(2, "movie"))
	assert.NotEqual(t, StringHash(1, "good"), StringHash(1, "bad"))
	assert.Equal(t, uint32(9), StringHash(9, ""))
}

func TestFold(t *testing.T) {
	values := []uint32{3, 1, 4, 1, 5}
	assert.Equal(t, Fold(values, 7, 2), Fold(values, 7, 2))
	assert.Less(t, Fold(values, 7, 5), uint32(5))
	assert.Less(t, Fold(nil, 7, 3), uint32(3))

	// different salts should not collapse onto a single output everywhere
	var seen = make(map[uint32]struct{})
	for s := uint32(0); s < 64; s++ {
		seen[Fold(values, s, 1<<16)] = struct{}{}
	}
	assert.Greater(t, len(seen), 32)
}

// sanity check fuzz
func FuzzHash(f *testing.F) {
	f.Add(uint32(0), uint32(0), uint32(0))
	f.Fuzz(func(t *testing.T, n, s, max uint32) {
		out := Hash(n, s, max)
		if max == 0 && out != 0 {
			t.Errorf("Hash(%d, %d, 0) == %d (max=0 should be 0)", n, s, out)
		}
		if max > 0 && out >= max {
			t.Errorf("Hash(%d, %d, %d) == %d (output bigger or equal than max)", n, s, max, out)
		}
	})
}
