package container

import "testing"

func TestStackPushPop(t *testing.T) {
	s := NewStack[int]()
	if !s.Empty() {
		t.Fatalf("new stack not empty")
	}
	s.Push(1)
	s.Push(2)
	s.Push(3)
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	for _, want := range []int{3, 2, 1} {
		v, ok := s.Pop()
		if !ok || v != want {
			t.Fatalf("Pop() = (%d, %v), want (%d, true)", v, ok, want)
		}
	}
	if _, ok := s.Pop(); ok {
		t.Fatalf("Pop() on empty stack returned ok")
	}
}

func TestStackPeekDoesNotRemove(t *testing.T) {
	s := NewStack[string]()
	s.Push("x")
	v, ok := s.Peek()
	if !ok || v != "x" {
		t.Fatalf("Peek() = (%q, %v)", v, ok)
	}
	if s.Len() != 1 {
		t.Fatalf("Len() after Peek = %d, want 1", s.Len())
	}
}

func TestStackGrowsBeyondInitialCapacity(t *testing.T) {
	s := NewStack[int]()
	const n = 1000
	for i := 0; i < n; i++ {
		s.Push(i)
	}
	if s.Len() != n {
		t.Fatalf("Len() = %d, want %d", s.Len(), n)
	}
	for i := n - 1; i >= 0; i-- {
		v, ok := s.Pop()
		if !ok || v != i {
			t.Fatalf("Pop() = (%d, %v), want (%d, true)", v, ok, i)
		}
	}
}
