package incmap

// StringMap is a string-keyed convenience layer over Map. It owns the node
// allocation and hashing that the raw Map API leaves to the caller: each
// entry is a node stamped with the hash of its key, and lookups go through a
// stack-probe node carrying the key alone.
type StringMap[V any] struct {
	m        Map[strEntry[V]]
	hashFunc func(string) uint64
}

type strEntry[V any] struct {
	key   string
	value V
}

type Option[V any] func(sm *StringMap[V])

// Override default hash function.
func WithHashFunc[V any](f func(string) uint64) Option[V] {
	return func(sm *StringMap[V]) {
		sm.hashFunc = f
	}
}

// NewStringMap returns an empty string-keyed map hashing with xxHash64 unless
// overridden.
func NewStringMap[V any](opts ...Option[V]) *StringMap[V] {
	sm := &StringMap[V]{}

	for _, opt := range opts {
		opt(sm)
	}

	if sm.hashFunc == nil {
		sm.hashFunc = XXHashString
	}

	return sm
}

// Set stores value under key, replacing any previous value in place.
func (sm *StringMap[V]) Set(key string, value V) {
	probe := sm.probe(key)

	if node := sm.m.Find(probe, strKeyEqual[V]); node != nil {
		node.Value.value = value
		return
	}

	probe.Value.value = value
	sm.m.Insert(probe)
}

// Get returns the value stored under key.
func (sm *StringMap[V]) Get(key string) (V, bool) {
	if node := sm.m.Find(sm.probe(key), strKeyEqual[V]); node != nil {
		return node.Value.value, true
	}

	var zero V
	return zero, false
}

// Delete removes key and reports whether it was present.
func (sm *StringMap[V]) Delete(key string) bool {
	return sm.m.Remove(sm.probe(key), strKeyEqual[V]) != nil
}

func (sm *StringMap[V]) Len() int {
	return sm.m.Size()
}

func (sm *StringMap[V]) Stats() Stats {
	return sm.m.Stats()
}

func (sm *StringMap[V]) probe(key string) *Node[strEntry[V]] {
	return NewNode(sm.hashFunc(key), strEntry[V]{key: key})
}

// strKeyEqual only ever sees nodes that already share a bucket, so comparing
// keys directly is all the collision resolution needed.
func strKeyEqual[V any](a, b *Node[strEntry[V]]) bool {
	return a.Value.key == b.Value.key
}
