package util

// Stack is a generic LIFO container backing the watch loop's state history.
// The zero value is an empty stack ready for use.
type Stack[T any] struct {
	items []T
}

// Push puts an item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top item, or the zero value when empty.
func (s *Stack[T]) Pop() (item T) {
	if len(s.items) == 0 {
		return
	}

	idx := len(s.items) - 1
	item = s.items[idx]
	s.items = s.items[:idx]
	return
}

// Len reports how many items the stack holds.
func (s *Stack[T]) Len() int {
	return len(s.items)
}
