package Queues

import "github.com/g-m-twostay/go-linked/Lists"

// LinkedQueue is FIFO: items enter at the front of a Lists.List and leave at the back.
type LinkedQueue[T any] struct {
	l *Lists.List[T, uint]
}

func MakeLinkedQueue[T any]() *LinkedQueue[T] {
	return &LinkedQueue[T]{Lists.New[T, uint](0)}
}

func (u *LinkedQueue[T]) Empty() bool {
	return u.l.Empty()
}

func (u *LinkedQueue[T]) Size() uint {
	return u.l.Len()
}

// Time: O(1)
func (u *LinkedQueue[T]) Push(item T) {
	u.l.InsertFront(item)
}

func (u *LinkedQueue[T]) Enqueue(item T) {
	u.Push(item)
}

// Time: O(1)
func (u *LinkedQueue[T]) Pop() (T, error) {
	if v, ok := u.l.DetachBack(); ok {
		return v, nil
	}
	return *new(T), &EmptyQueueError{}
}

func (u *LinkedQueue[T]) Dequeue() (T, error) {
	return u.Pop()
}

// Peek at the oldest item.
func (u *LinkedQueue[T]) Peek() (T, bool) {
	return u.l.PeekBack()
}

// PeekPtr points to the oldest item, nil if empty. Invalidated by the next Push.
func (u *LinkedQueue[T]) PeekPtr() *T {
	if p, ok := u.l.Back(); ok {
		return p.Ptr()
	}
	return nil
}
