// Package stack provides the LIFO container used by the validation,
// conversion, and evaluation stages. Each stage owns its own instance for
// the duration of one call and discards it afterwards.
package stack

// Stack is a slice-backed LIFO.
type Stack[T any] struct {
	items []T
}

// New returns a stack with room for n items preallocated.
func New[T any](n int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, n)}
}

func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top item. The second result is false when the
// stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, true
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

func (s *Stack[T]) Empty() bool {
	return len(s.items) == 0
}
