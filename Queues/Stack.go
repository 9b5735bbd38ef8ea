package Queues

import "github.com/g-m-twostay/go-linked/Lists"

// Stack is LIFO, items enter and leave at the back of a Lists.List.
type Stack[T any] struct {
	l *Lists.List[T, uint]
}

func MakeStack[T any]() *Stack[T] {
	return &Stack[T]{Lists.New[T, uint](0)}
}

func (u *Stack[T]) Empty() bool {
	return u.l.Empty()
}

func (u *Stack[T]) Size() uint {
	return u.l.Len()
}

// Time: O(1)
func (u *Stack[T]) Push(item T) {
	u.l.InsertBack(item)
}

// Time: O(1)
func (u *Stack[T]) Pop() (T, error) {
	if v, ok := u.l.DetachBack(); ok {
		return v, nil
	}
	return *new(T), &EmptyQueueError{}
}

func (u *Stack[T]) Peek() (T, bool) {
	return u.l.PeekBack()
}

// Top points to the last pushed item, nil if empty. Invalidated by the next Push.
func (u *Stack[T]) Top() *T {
	if p, ok := u.l.Back(); ok {
		return p.Ptr()
	}
	return nil
}
