package incmap

// Node is the storage cell of the map. The caller allocates one per entry,
// stamps it with a 64-bit hash code and hands it to Insert; ownership returns
// to the caller only when Remove succeeds. Nodes hashing to the same bucket
// are linked into a chain through next.
//
// The hash code is computed once and never changes. Migration re-applies the
// stored code against the destination table's mask; it never re-hashes the
// payload, so the code must be derived from state that stays stable while the
// node is in the map.
type Node[T any] struct {
	Value T

	hcode uint64
	next  *Node[T]
}

// NewNode wraps value in a node stamped with the given hash code.
func NewNode[T any](hcode uint64, value T) *Node[T] {
	return &Node[T]{Value: value, hcode: hcode}
}

// HashCode returns the code the node was stamped with at creation.
func (n *Node[T]) HashCode() uint64 {
	return n.hcode
}
