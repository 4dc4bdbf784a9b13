package incmap

import "math/bits"

const minCapacity = 4

// EqualFunc reports whether two nodes carry the same logical key. It is only
// ever invoked on nodes that already hash to the same bucket under the
// relevant table's mask, so it resolves collisions rather than acting as a
// general predicate. It must be consistent: the same pair always yields the
// same answer.
type EqualFunc[T any] func(a, b *Node[T]) bool

// table is a fixed-capacity chained hash table: an array of chain heads, a
// bitmask for bucket selection and a node count. It has no growth policy of
// its own; Map layers incremental resizing on top.
type table[T any] struct {
	buckets []*Node[T]
	mask    uint64
	size    int
}

func newTable[T any](capacity int) *table[T] {
	var t table[T]
	t.init(int(NextPowerOf2(uint64(max(capacity, minCapacity)))))

	return &t
}

// init allocates the bucket array. Capacity must already be a power of two of
// at least minCapacity; newTable normalizes arbitrary requests.
func (t *table[T]) init(capacity int) {
	if capacity < minCapacity || bits.OnesCount64(uint64(capacity)) != 1 {
		panic("incmap: table capacity must be a power of two >= 4")
	}

	t.buckets = make([]*Node[T], capacity)
	t.mask = uint64(capacity - 1)
	t.size = 0
}

// insert links node in as the head of its bucket's chain. Chains are LIFO:
// the most recently inserted node is found first. Duplicate keys are not
// detected here; callers that care check with lookup first.
func (t *table[T]) insert(node *Node[T]) {
	pos := node.hcode & t.mask
	node.next = t.buckets[pos]
	t.buckets[pos] = node
	t.size++
}

// lookup walks the chain the probe key hashes to and returns the first node
// the comparator matches, or nil.
func (t *table[T]) lookup(key *Node[T], equals EqualFunc[T]) *Node[T] {
	if len(t.buckets) == 0 {
		return nil
	}

	for cur := t.buckets[key.hcode&t.mask]; cur != nil; cur = cur.next {
		if equals(cur, key) {
			return cur
		}
	}

	return nil
}

// remove splices the first matching node out of its chain and returns it with
// its link cleared, transferring ownership back to the caller. Returns nil if
// no node matches.
func (t *table[T]) remove(key *Node[T], equals EqualFunc[T]) *Node[T] {
	if len(t.buckets) == 0 {
		return nil
	}

	pos := key.hcode & t.mask

	var prev *Node[T]
	for cur := t.buckets[pos]; cur != nil; cur = cur.next {
		if equals(cur, key) {
			if prev != nil {
				prev.next = cur.next
			} else {
				t.buckets[pos] = cur.next
			}

			cur.next = nil
			t.size--

			return cur
		}

		prev = cur
	}

	return nil
}

func (t *table[T]) capacity() int {
	return len(t.buckets)
}

func (t *table[T]) empty() bool {
	return t.size == 0
}
