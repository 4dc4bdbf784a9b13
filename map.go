package incmap

const (
	// maxLoadFactor is the average chain length that triggers a resize.
	maxLoadFactor = 8

	// resizeWork caps the number of nodes transferred per help step, bounding
	// the migration work attached to any single operation.
	resizeWork = 15
)

// Map is an incrementally resized chained hash map. It owns one active table
// and, while growing, one migrating table plus a cursor into it. Instead of
// rehashing everything in one pass, every operation transfers at most
// resizeWork nodes from the migrating table into the active one, so no call
// ever does unbounded work.
//
// Map is not synchronized. Concurrent use requires external locking around
// every call.
type Map[T any] struct {
	active    *table[T]
	migrating *table[T]
	cursor    uint64
}

// New returns an empty map. The backing table is allocated on first insert.
func New[T any]() *Map[T] {
	return &Map[T]{}
}

// Insert takes ownership of node and adds it to the map. If the active
// table's load factor reaches maxLoadFactor and no migration is in progress,
// a resize starts; either way the call advances migration by one bounded
// step. Duplicate keys are not detected — callers that need set-or-update
// semantics check with Find first.
func (m *Map[T]) Insert(node *Node[T]) {
	if m.active == nil {
		m.active = newTable[T](minCapacity)
	}

	m.active.insert(node)

	if m.migrating == nil {
		loadFactor := m.active.size / m.active.capacity()
		if loadFactor >= maxLoadFactor {
			m.startResize()
		}
	}

	m.helpResize()
}

// Find returns the node matching the probe key, or nil. Migration is advanced
// before searching: transferred nodes land in the active table, so later
// lookups for the same key tend to hit the first probe.
func (m *Map[T]) Find(key *Node[T], equals EqualFunc[T]) *Node[T] {
	m.helpResize()

	if m.active != nil {
		if node := m.active.lookup(key, equals); node != nil {
			return node
		}
	}

	if m.migrating != nil {
		if node := m.migrating.lookup(key, equals); node != nil {
			return node
		}
	}

	return nil
}

// Remove detaches the node matching the probe key and returns it, handing
// ownership back to the caller. Returns nil if no node matches.
func (m *Map[T]) Remove(key *Node[T], equals EqualFunc[T]) *Node[T] {
	m.helpResize()

	if m.active != nil {
		if node := m.active.remove(key, equals); node != nil {
			return node
		}
	}

	if m.migrating != nil {
		if node := m.migrating.remove(key, equals); node != nil {
			return node
		}
	}

	return nil
}

// Size returns the total node count across both tables.
func (m *Map[T]) Size() int {
	size := 0
	if m.active != nil {
		size += m.active.size
	}
	if m.migrating != nil {
		size += m.migrating.size
	}

	return size
}

func (m *Map[T]) Empty() bool {
	return m.Size() == 0
}

// Capacity returns the active table's bucket count, 0 before the first
// insert.
func (m *Map[T]) Capacity() int {
	if m.active == nil {
		return 0
	}

	return m.active.capacity()
}

// Migrating reports whether a resize is in progress.
func (m *Map[T]) Migrating() bool {
	return m.migrating != nil
}

// Stats returns a snapshot of the map's current shape.
func (m *Map[T]) Stats() Stats {
	s := Stats{
		Size:     m.Size(),
		Capacity: m.Capacity(),
	}

	if m.active != nil {
		s.LoadFactor = float64(m.active.size) / float64(m.active.capacity())
	}

	if m.migrating != nil {
		s.Migrating = true
		s.MigratingSize = m.migrating.size
		s.MigrationCursor = m.cursor
	}

	return s
}

// startResize retires the active table into the migrating slot and replaces
// it with a fresh table of twice the capacity. Only legal while no migration
// is in progress; migration always drains completely before the next resize
// may begin.
func (m *Map[T]) startResize() {
	if m.migrating != nil {
		panic("incmap: resize already in progress")
	}

	newCapacity := m.active.capacity() * 2
	m.migrating = m.active
	m.active = newTable[T](newCapacity)
	m.cursor = 0
}

// helpResize transfers up to resizeWork nodes from the migrating table into
// the active one. Each transfer detaches the head of the chain at the cursor
// and re-inserts it under the active table's mask using the node's stored
// hash code. Empty buckets advance the cursor without consuming a work unit.
// Once the migrating table drains it is discarded and the map is stable
// again.
func (m *Map[T]) helpResize() {
	if m.migrating == nil {
		return
	}

	workDone := 0
	for workDone < resizeWork && !m.migrating.empty() {
		// Buckets drain in order, so the cursor should never pass capacity
		// while nodes remain.
		if m.cursor >= uint64(m.migrating.capacity()) {
			m.cursor = 0
		}

		node := m.migrating.buckets[m.cursor]
		if node != nil {
			m.migrating.buckets[m.cursor] = node.next
			node.next = nil
			m.active.insert(node)
			m.migrating.size--
			workDone++
		} else {
			m.cursor++
		}
	}

	if m.migrating.empty() {
		m.migrating = nil
		m.cursor = 0
	}
}
