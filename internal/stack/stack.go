// Package stack provides the slice backed LIFO used for iterative
// tree traversal.
package stack

// Stack is a LIFO of T. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(items ...T) {
	s.items = append(s.items, items...)
}

// Pop removes and returns the last item. ok is false if the stack
// is empty.
func (s *Stack[T]) Pop() (item T, ok bool) {
	l := len(s.items)
	if l == 0 {
		return item, false
	}
	item = s.items[l-1]
	var zero T
	s.items[l-1] = zero
	s.items = s.items[:l-1]
	s.shrink()
	return item, true
}

// Discard drops up to n items from the top of the stack.
func (s *Stack[T]) Discard(n int) {
	if n <= 0 {
		return
	}
	if n > len(s.items) {
		n = len(s.items)
	}
	var zero T
	for i := len(s.items) - n; i < len(s.items); i++ {
		s.items[i] = zero
	}
	s.items = s.items[:len(s.items)-n]
	s.shrink()
}

// Peek returns the top n items, bottom first. The returned slice
// aliases the stack.
func (s *Stack[T]) Peek(n int) []T {
	if l := len(s.items); l > n {
		return s.items[l-n : l]
	}
	return s.items
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

func (s *Stack[T]) Cap() int {
	return cap(s.items)
}

func (s *Stack[T]) shrink() {
	if c := cap(s.items); c > 20 && c > len(s.items)*2 {
		s.items = append([]T(nil), s.items...)
	}
}
