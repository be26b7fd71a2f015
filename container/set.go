package container

// Set is a hash set of pointers, mirroring Map's open-addressing
// probing scheme.
type Set[T any] struct {
	m *Map[*T, struct{}]
}

// NewSet creates an empty pointer set.
func NewSet[T any]() *Set[T] {
	return &Set[T]{m: NewPtrMap[T, struct{}]()}
}

// Add inserts e into the set. Adding an element already present is a
// no-op.
func (s *Set[T]) Add(e *T) { s.m.Put(e, struct{}{}) }

// Remove deletes e from the set, if present.
func (s *Set[T]) Remove(e *T) bool { return s.m.Delete(e) }

// Contains reports whether e is a member.
func (s *Set[T]) Contains(e *T) bool { return s.m.Contains(e) }

// Len returns the number of members.
func (s *Set[T]) Len() int { return s.m.Len() }

// Elements returns the members in unspecified order.
func (s *Set[T]) Elements() []*T { return s.m.Keys() }

// Union adds every member of other into s.
func (s *Set[T]) Union(other *Set[T]) {
	for _, e := range other.Elements() {
		s.Add(e)
	}
}

// Clone returns an independent copy of s.
func (s *Set[T]) Clone() *Set[T] {
	c := NewSet[T]()
	c.Union(s)
	return c
}

// Hash returns an order-independent hash of the set's membership,
// computed by summing each element's pointer identity. This lets two
// sets built by inserting the same elements in different orders
// produce the same hash, as required by SetMap.
func (s *Set[T]) Hash() uint64 {
	var sum uint64
	for _, e := range s.Elements() {
		sum += hashPtr(e)
	}
	return sum
}

// Equal reports whether s and other contain exactly the same elements:
// a size check followed by a subset test, per the container's set-key
// equality contract.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, e := range s.Elements() {
		if !other.Contains(e) {
			return false
		}
	}
	return true
}
