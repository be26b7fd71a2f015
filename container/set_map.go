package container

// SetMap is the set-keyed specialization of the hash map: keys are
// *Set[T] values, hashed by Set.Hash (order-independent, summed
// element identities) and compared by Set.Equal (size check plus
// subset test), per the container's set-key contract. It shares Map's
// open-addressing/tombstone discipline but cannot reuse Map directly
// since *Set[T] is not comparable via Go's built-in ==.
//
// SetMap owns every key set inserted into it: callers must not mutate
// or free a set still registered as a key.
type SetMap[T any, V any] struct {
	slots []setMapSlot[T, V]
	size  int
	tomb  int
}

type setMapSlot[T any, V any] struct {
	state slotState
	key   *Set[T]
	val   V
}

// NewSetMap creates an empty set-keyed map.
func NewSetMap[T any, V any]() *SetMap[T, V] {
	return &SetMap[T, V]{slots: make([]setMapSlot[T, V], initialCapacity)}
}

func (m *SetMap[T, V]) mask() uint64 { return uint64(len(m.slots) - 1) }

func (m *SetMap[T, V]) probe(key *Set[T]) (idx int, found bool) {
	i := key.Hash() & m.mask()
	firstTomb := -1
	for {
		s := &m.slots[i]
		switch s.state {
		case slotEmpty:
			if firstTomb >= 0 {
				return firstTomb, false
			}
			return int(i), false
		case slotTomb:
			if firstTomb < 0 {
				firstTomb = int(i)
			}
		case slotOccupied:
			if s.key.Equal(key) {
				return int(i), true
			}
		}
		i = (i + 1) & m.mask()
	}
}

// Get looks up the set of NFA/DFA states equivalent to key.
func (m *SetMap[T, V]) Get(key *Set[T]) (V, bool) {
	idx, found := m.probe(key)
	if !found {
		var zero V
		return zero, false
	}
	return m.slots[idx].val, true
}

// Contains reports whether an equivalent set is already a key.
func (m *SetMap[T, V]) Contains(key *Set[T]) bool {
	_, found := m.probe(key)
	return found
}

// Put inserts key (taking ownership of it) mapped to val. If an
// equivalent set is already a key, its value is overwritten and the
// newly supplied key is discarded (the memo keeps its original key).
func (m *SetMap[T, V]) Put(key *Set[T], val V) {
	if m.needsGrow() {
		m.grow()
	}
	idx, found := m.probe(key)
	s := &m.slots[idx]
	if found {
		s.val = val
		return
	}
	if s.state == slotTomb {
		m.tomb--
	}
	s.state = slotOccupied
	s.key = key
	s.val = val
	m.size++
}

// Len returns the number of live entries.
func (m *SetMap[T, V]) Len() int { return m.size }

func (m *SetMap[T, V]) needsGrow() bool {
	return (m.size+m.tomb+1)*2 > len(m.slots)
}

func (m *SetMap[T, V]) grow() {
	old := m.slots
	m.slots = make([]setMapSlot[T, V], len(m.slots)*2)
	m.size = 0
	m.tomb = 0
	for _, s := range old {
		if s.state == slotOccupied {
			m.Put(s.key, s.val)
		}
	}
}
