package incmap

import "github.com/cespare/xxhash/v2"

// HashFunc produces a 64-bit code from a byte sequence. Any deterministic
// function satisfies the node contract: the same input must always yield the
// same code, since the map reapplies stored codes on migration instead of
// re-hashing content.
type HashFunc func(data []byte) uint64

const (
	fnvOffset64 = 0xcbf29ce484222325
	fnvPrime64  = 0x100000001b3
)

// FNV1a is the 64-bit FNV-1a hash. The inner loop consumes four bytes per
// iteration.
func FNV1a(data []byte) uint64 {
	hash := uint64(fnvOffset64)

	i := 0
	for ; i+4 <= len(data); i += 4 {
		hash = (hash ^ uint64(data[i])) * fnvPrime64
		hash = (hash ^ uint64(data[i+1])) * fnvPrime64
		hash = (hash ^ uint64(data[i+2])) * fnvPrime64
		hash = (hash ^ uint64(data[i+3])) * fnvPrime64
	}
	for ; i < len(data); i++ {
		hash = (hash ^ uint64(data[i])) * fnvPrime64
	}

	return hash
}

// FNV1aString is FNV1a over the bytes of s, without copying.
func FNV1aString(s string) uint64 {
	hash := uint64(fnvOffset64)

	i := 0
	for ; i+4 <= len(s); i += 4 {
		hash = (hash ^ uint64(s[i])) * fnvPrime64
		hash = (hash ^ uint64(s[i+1])) * fnvPrime64
		hash = (hash ^ uint64(s[i+2])) * fnvPrime64
		hash = (hash ^ uint64(s[i+3])) * fnvPrime64
	}
	for ; i < len(s); i++ {
		hash = (hash ^ uint64(s[i])) * fnvPrime64
	}

	return hash
}

// XXHash hashes data with xxHash64. Faster than FNV-1a on anything beyond a
// few bytes; the default for StringMap.
func XXHash(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// XXHashString is XXHash over the bytes of s, without copying.
func XXHashString(s string) uint64 {
	return xxhash.Sum64String(s)
}
