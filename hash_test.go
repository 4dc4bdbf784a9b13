package incmap

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFNV1a_Vectors(t *testing.T) {
	// Published 64-bit FNV-1a test vectors.
	tests := []struct {
		input string
		want  uint64
	}{
		{"", 0xcbf29ce484222325},
		{"a", 0xaf63dc4c8601ec8c},
		{"b", 0xaf63df4c8601f1a5},
		{"c", 0xaf63de4c8601eff2},
		{"foobar", 0x85944171f73967e8},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.want, FNV1a([]byte(tt.input)))
			require.Equal(t, tt.want, FNV1aString(tt.input))
		})
	}
}

func TestFNV1a_TailLengths(t *testing.T) {
	// Inputs of every length mod 4, so both the unrolled loop and the tail
	// loop get exercised.
	for n := 0; n < 10; n++ {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i * 37)
		}

		require.Equal(t, FNV1a(data), FNV1aString(string(data)), "length %d", n)
	}
}

func TestHash_Deterministic(t *testing.T) {
	data := []byte("the same input always yields the same code")

	assert.Equal(t, FNV1a(data), FNV1a(data))
	assert.Equal(t, XXHash(data), XXHash(data))
}

func TestXXHash(t *testing.T) {
	data := []byte("collision resolver")

	require.Equal(t, xxhash.Sum64(data), XXHash(data))
	require.Equal(t, xxhash.Sum64String("collision resolver"), XXHashString("collision resolver"))
	require.Equal(t, XXHash(data), XXHashString(string(data)))
}
