package container

// Node is a handle to a single element of a List, returned by PushBack/
// PushFront so callers can remove it later in O(1) without a search.
type Node[T any] struct {
	prev, next *Node[T]
	list       *List[T]
	val        T
}

// Value returns the element stored at this node.
func (n *Node[T]) Value() T { return n.val }

// SetValue replaces the element stored at this node.
func (n *Node[T]) SetValue(v T) { n.val = v }

// Next returns the following node, or nil at the end of the list.
func (n *Node[T]) Next() *Node[T] {
	if n.next == n.list.sentinel {
		return nil
	}
	return n.next
}

// Prev returns the preceding node, or nil at the start of the list.
func (n *Node[T]) Prev() *Node[T] {
	if n.prev == n.list.sentinel {
		return nil
	}
	return n.prev
}

// List is a doubly-linked list built around a sentinel node, so push,
// pop, and arbitrary-node insert/remove never need to branch on
// whether the list is empty or the node is an endpoint.
type List[T any] struct {
	sentinel *Node[T]
	size     int
}

// NewList creates an empty list.
func NewList[T any]() *List[T] {
	l := &List[T]{}
	s := &Node[T]{list: l}
	s.prev, s.next = s, s
	l.sentinel = s
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return l.size }

// Front returns the first node, or nil if the list is empty.
func (l *List[T]) Front() *Node[T] {
	if l.size == 0 {
		return nil
	}
	return l.sentinel.next
}

// Back returns the last node, or nil if the list is empty.
func (l *List[T]) Back() *Node[T] {
	if l.size == 0 {
		return nil
	}
	return l.sentinel.prev
}

// insertAfter splices a new node holding v in immediately after at,
// which may be the sentinel itself.
func (l *List[T]) insertAfter(at *Node[T], v T) *Node[T] {
	n := &Node[T]{list: l, val: v, prev: at, next: at.next}
	at.next.prev = n
	at.next = n
	l.size++
	return n
}

// PushBack appends v and returns its node handle.
func (l *List[T]) PushBack(v T) *Node[T] {
	return l.insertAfter(l.sentinel.prev, v)
}

// PushFront prepends v and returns its node handle.
func (l *List[T]) PushFront(v T) *Node[T] {
	return l.insertAfter(l.sentinel, v)
}

// Remove splices n out of the list. n must belong to l.
func (l *List[T]) Remove(n *Node[T]) {
	if n == l.sentinel || n.list != l {
		return
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next, n.prev = nil, nil
	l.size--
}

// PopFront removes and returns the first element. ok is false if empty.
func (l *List[T]) PopFront() (v T, ok bool) {
	n := l.Front()
	if n == nil {
		return v, false
	}
	v = n.val
	l.Remove(n)
	return v, true
}

// PopBack removes and returns the last element. ok is false if empty.
func (l *List[T]) PopBack() (v T, ok bool) {
	n := l.Back()
	if n == nil {
		return v, false
	}
	v = n.val
	l.Remove(n)
	return v, true
}

// Iter calls f for every element from front to back. f returning false
// stops iteration early. Mutating the list from within f is not
// supported.
func (l *List[T]) Iter(f func(T) bool) {
	for n := l.Front(); n != nil; n = n.Next() {
		if !f(n.val) {
			return
		}
	}
}
