package Lists

import (
	"iter"

	"github.com/g-m-twostay/go-linked/internal"
	"golang.org/x/exp/constraints"
)

// List is a doubly linked list. Ownership runs from head to tail: the list owns the head,
// every node owns its next node and refers back to its previous one. tail is a non-owning
// shortcut to the last node.
// All nodes live in one arena indexed by S, so S bounds the length of the list.
type List[T any, S constraints.Unsigned] struct {
	a    internal.Arena[T, S]
	tail S
}

type (
	NilCursorError   = internal.NilCursorError
	StaleCursorError = internal.StaleCursorError
	CapacityError    = internal.CapacityError
)

// New returns an empty list with room for hint nodes.
func New[T any, S constraints.Unsigned](hint S) *List[T, S] {
	return &List[T, S]{a: internal.New[T, S](hint)}
}

// Len of the list.
// Time: O(1)
func (u *List[T, S]) Len() S {
	return u.a.Size()
}

func (u *List[T, S]) Empty() bool {
	return u.a.Root == 0
}

func (u *List[T, S]) next(i S) S {
	return u.a.At(i).Own[internal.Next]
}

func (u *List[T, S]) prev(i S) S {
	return u.a.At(i).Back
}

// link installs the detached node n right after prev, 0 meaning at the front, and fixes tail.
func (u *List[T, S]) link(prev, n S) {
	slot := internal.Next
	if prev == 0 {
		slot = internal.Root
	}
	rest := u.a.Replace(prev, slot, 0)
	u.a.Replace(n, internal.Next, rest)
	u.a.Replace(prev, slot, n)
	if rest == 0 {
		u.tail = n
	}
}

// unlink detaches node i, splicing its neighbours together, and fixes tail.
func (u *List[T, S]) unlink(i S) {
	p := u.prev(i)
	slot := internal.Next
	if p == 0 {
		slot = internal.Root
	}
	rest := u.a.Replace(i, internal.Next, 0)
	u.a.Replace(p, slot, rest)
	if rest == 0 {
		u.tail = p
	}
}

// InsertFront puts v before the head.
// Time: O(1)
func (u *List[T, S]) InsertFront(v T) Position[T, S] {
	i := u.a.Alloc(v)
	u.link(0, i)
	return u.position(i)
}

// InsertBack puts v after the tail.
// Time: O(1)
func (u *List[T, S]) InsertBack(v T) Position[T, S] {
	i := u.a.Alloc(v)
	u.link(u.tail, i)
	return u.position(i)
}

// DetachFront removes the head and returns its value, false if the list is empty.
// Time: O(1)
func (u *List[T, S]) DetachFront() (v T, ok bool) {
	if u.a.Root == 0 {
		return
	}
	i := u.a.Root
	u.unlink(i)
	return u.a.Release(i), true
}

// DetachBack removes the tail and returns its value, false if the list is empty.
// Time: O(1)
func (u *List[T, S]) DetachBack() (v T, ok bool) {
	if u.tail == 0 {
		return
	}
	i := u.tail
	u.unlink(i)
	return u.a.Release(i), true
}

// Front is the head of the list, false if the list is empty.
func (u *List[T, S]) Front() (Position[T, S], bool) {
	return u.maybe(u.a.Root)
}

// Back is the tail of the list, false if the list is empty.
func (u *List[T, S]) Back() (Position[T, S], bool) {
	return u.maybe(u.tail)
}

// PeekFront returns the value of the head without removing it.
func (u *List[T, S]) PeekFront() (v T, ok bool) {
	if u.a.Root == 0 {
		return
	}
	return u.a.At(u.a.Root).V, true
}

// PeekBack returns the value of the tail without removing it.
func (u *List[T, S]) PeekBack() (v T, ok bool) {
	if u.tail == 0 {
		return
	}
	return u.a.At(u.tail).V, true
}

// Free releases every node, calling f (if not nil) exactly once with each value, from head
// to tail. The list is empty and reusable afterwards.
// Time: O(n)
func (u *List[T, S]) Free(f func(T)) {
	u.tail = 0
	u.a.Drain(u.a.Replace(0, internal.Root, 0), f)
}

// All yields the positions from head to tail. The list must not be structurally modified
// while iterating, except through the yielded position as long as iteration stops right after.
func (u *List[T, S]) All() iter.Seq[Position[T, S]] {
	return func(yield func(Position[T, S]) bool) {
		for i := u.a.Root; i != 0; {
			nx := u.next(i)
			if !yield(u.position(i)) {
				return
			}
			i = nx
		}
	}
}

// Backward yields the positions from tail to head.
func (u *List[T, S]) Backward() iter.Seq[Position[T, S]] {
	return func(yield func(Position[T, S]) bool) {
		for i := u.tail; i != 0; {
			pv := u.prev(i)
			if !yield(u.position(i)) {
				return
			}
			i = pv
		}
	}
}

// Values yields the values from head to tail.
func (u *List[T, S]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := u.a.Root; i != 0; i = u.next(i) {
			if !yield(u.a.At(i).V) {
				return
			}
		}
	}
}

// consistent checks the links, the length and that tail is the last node.
func (u *List[T, S]) consistent() bool {
	if !u.a.Consistent() {
		return false
	}
	last := u.a.Root
	for i := u.a.Root; i != 0; i = u.next(i) {
		last = i
	}
	return last == u.tail
}
