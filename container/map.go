// Package container implements the hash map, hash set, stack, and
// doubly-linked list the rest of the pipeline is built on.
//
// The map is open addressing with linear probing, a power-of-two
// capacity, a load factor of 0.5, and tombstones to support deletion.
// Three specializations are used by the core: int keys, pointer keys,
// and pointer-set keys (SetMap, in set_map.go). Iterators become
// invalid on any structural mutation.
package container

// slotState records whether a slot is free, holds a live entry, or
// holds a tombstone left behind by a deletion.
type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotTomb
)

const initialCapacity = 8

// Map is a generic open-addressing hash map. K must be comparable so
// that == can serve as the equality test once a bucket is located by
// hash; hash collisions are resolved by linear probing.
type Map[K comparable, V any] struct {
	slots []mapSlot[K, V]
	size  int // live entries
	tomb  int // tombstones
	hash  func(K) uint64
}

type mapSlot[K comparable, V any] struct {
	state slotState
	key   K
	val   V
}

func newMap[K comparable, V any](hash func(K) uint64) *Map[K, V] {
	return &Map[K, V]{
		slots: make([]mapSlot[K, V], initialCapacity),
		hash:  hash,
	}
}

// hashInt mixes an int key with an xor-shift, a multiplication by
// MurmurHash3's 64-bit finalizer constant, and a second xor-shift.
func hashInt(k int) uint64 {
	u := uint64(k)
	u ^= u >> 33
	u *= 0xff51afd7ed558ccd
	u ^= u >> 33
	return u
}

// hashPtr mixes a pointer's identity (its address) into a 64-bit hash.
func hashPtr[T any](p *T) uint64 {
	return hashInt(int(uintptr(pointerBits(p))))
}

// NewIntMap creates the int-keyed specialization of Map.
func NewIntMap[V any]() *Map[int, V] {
	return newMap[int, V](hashInt)
}

// NewPtrMap creates the pointer-keyed specialization of Map.
func NewPtrMap[T any, V any]() *Map[*T, V] {
	return newMap[*T, V](hashPtr[T])
}

func (m *Map[K, V]) mask() uint64 { return uint64(len(m.slots) - 1) }

// probe returns the slot index holding key, or the first empty/tombstone
// slot index suitable for inserting it, plus whether key was found.
func (m *Map[K, V]) probe(key K) (idx int, found bool) {
	i := m.hash(key) & m.mask()
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
			if s.key == key {
				return int(i), true
			}
		}
		i = (i + 1) & m.mask()
	}
}

// Get returns the value stored under key, if any.
func (m *Map[K, V]) Get(key K) (V, bool) {
	idx, found := m.probe(key)
	if !found {
		var zero V
		return zero, false
	}
	return m.slots[idx].val, true
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, found := m.probe(key)
	return found
}

// Put inserts or overwrites the value stored under key.
func (m *Map[K, V]) Put(key K, val V) {
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

// Delete removes key from the map, if present. Iterators in progress
// over the map become invalid.
func (m *Map[K, V]) Delete(key K) bool {
	idx, found := m.probe(key)
	if !found {
		return false
	}
	s := &m.slots[idx]
	var zeroK K
	var zeroV V
	s.state = slotTomb
	s.key = zeroK
	s.val = zeroV
	m.size--
	m.tomb++
	return true
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int { return m.size }

func (m *Map[K, V]) needsGrow() bool {
	// load factor 0.5 counting both live entries and tombstones, since
	// tombstones also lengthen probe sequences.
	return (m.size+m.tomb+1)*2 > len(m.slots)
}

func (m *Map[K, V]) grow() {
	old := m.slots
	newCap := len(m.slots) * 2
	m.slots = make([]mapSlot[K, V], newCap)
	m.size = 0
	m.tomb = 0
	for _, s := range old {
		if s.state == slotOccupied {
			m.Put(s.key, s.val)
		}
	}
}

// Keys returns the live keys in unspecified order. The returned slice
// is a snapshot; it is not kept live by the map.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for _, s := range m.slots {
		if s.state == slotOccupied {
			keys = append(keys, s.key)
		}
	}
	return keys
}

// Values returns the live values in unspecified order. The returned
// slice is a snapshot.
func (m *Map[K, V]) Values() []V {
	vals := make([]V, 0, m.size)
	for _, s := range m.slots {
		if s.state == slotOccupied {
			vals = append(vals, s.val)
		}
	}
	return vals
}

// Iter calls f for every live entry. f returning false stops iteration
// early. Mutating the map from within f is not supported.
func (m *Map[K, V]) Iter(f func(K, V) bool) {
	for _, s := range m.slots {
		if s.state == slotOccupied {
			if !f(s.key, s.val) {
				return
			}
		}
	}
}
