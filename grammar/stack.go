package grammar

type stack[T any] []T

func (s *stack[T]) push(e T) {
	*s = append(*s, e)
}

func (s *stack[T]) pop() T {
	l := len(*s)
	if l == 0 {
		var noop T
		return noop
	}

	e := (*s)[l-1]
	*s = (*s)[:l-1]

	return e
}

// peek returns the top element without removing it, or the zero value.
func (s *stack[T]) peek() T {
	l := len(*s)
	if l == 0 {
		var noop T
		return noop
	}

	return (*s)[l-1]
}
