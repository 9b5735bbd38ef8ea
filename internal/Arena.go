package internal

import (
	"golang.org/x/exp/constraints"
)

// Arena stores every node of one container in a single slice, links are indexes into it.
// ns[0] is the nil node, it's never handed out and its fields are never written. Released
// indexes form a free list threaded through Own[0], and are reused by Alloc before the slice
// grows.
// Root is the container's owning reference: the tree root, or the list head.
type Arena[T any, S constraints.Unsigned] struct {
	ns         []Node[T, S]
	Root, free S
	size       S
	st         []S // reused worklist.
}

// New returns an empty arena with room for hint nodes.
func New[T any, S constraints.Unsigned](hint S) Arena[T, S] {
	return Arena[T, S]{ns: make([]Node[T, S], 1, uint(hint)+1)}
}

// At returns the node at index i. The pointer is invalidated by the next Alloc.
func (u *Arena[T, S]) At(i S) *Node[T, S] {
	return &u.ns[i]
}

// Size is the number of allocated nodes, attached or not.
func (u *Arena[T, S]) Size() S {
	return u.size
}

// Alloc a detached node holding v. Holes are filled first before appending.
// Time: amortized O(1)
func (u *Arena[T, S]) Alloc(v T) S {
	var i S
	if u.free != 0 {
		i, u.free = u.free, u.ns[u.free].Own[0]
		u.ns[i] = Node[T, S]{V: v, Slot: Root, Gen: u.ns[i].Gen}
	} else {
		if uint64(len(u.ns)) > uint64(^S(0)) {
			panic(CapacityError{uint64(^S(0))})
		}
		i = S(len(u.ns))
		u.ns = append(u.ns, Node[T, S]{V: v, Slot: Root})
	}
	u.size++
	return i
}

// Release the node at i and return its value. The node must be detached and its owned slots
// must be empty or already accounted for by the caller. Its generation is bumped so handles to
// it stop being Live.
// Time: O(1)
func (u *Arena[T, S]) Release(i S) T {
	n := &u.ns[i]
	v := n.V
	*n = Node[T, S]{Own: [2]S{u.free}, Slot: dead, Gen: n.Gen + 1}
	u.free = i
	u.size--
	return v
}

// Live reports whether i still refers to the allocation that had generation gen.
func (u *Arena[T, S]) Live(i S, gen uint32) bool {
	return i != 0 && uint64(i) < uint64(len(u.ns)) && u.ns[i].Slot != dead && u.ns[i].Gen == gen
}

// Owned reports whether some node, or the container, holds i in an owning slot.
func (u *Arena[T, S]) Owned(i S) bool {
	n := &u.ns[i]
	return n.Back != 0 || n.Slot != Root || u.Root == i
}

// Replace installs n into the owner's slot and returns the node previously there, now
// detached. When slot is Root, the owner is the container and owner is ignored. n may be 0 to
// empty the slot, otherwise it must be detached.
// This is the only place links are written; every insert, delete and detach is built on it.
// Time: O(1)
func (u *Arena[T, S]) Replace(owner S, slot Slot, n S) (old S) {
	if n != 0 {
		if u.Owned(n) {
			panic(OwnedNodeError{uint64(n), u.ns[n].Slot})
		}
		if slot == Root {
			owner = 0
		}
		u.ns[n].Back, u.ns[n].Slot = owner, slot
	}
	if slot == Root {
		old, u.Root = u.Root, n
	} else {
		if owner == 0 {
			panic("internal: write to a slot of the nil node")
		}
		o := &u.ns[owner].Own[slot]
		old, *o = *o, n
	}
	if old != 0 {
		u.ns[old].Back, u.ns[old].Slot = 0, Root
	}
	return
}

// Drain releases the detached node i and everything it transitively owns, calling f (if not
// nil) once with each value. Iterative, so depth is unbounded.
// Time: O(n)
func (u *Arena[T, S]) Drain(i S, f func(T)) {
	if i == 0 {
		return
	}
	st := append(u.st[:0], i)
	for len(st) > 0 {
		i, st = st[len(st)-1], st[:len(st)-1]
		for _, c := range u.ns[i].Own {
			if c != 0 {
				st = append(st, c)
			}
		}
		if v := u.Release(i); f != nil {
			f(v)
		}
	}
	u.st = st
}

type move[S constraints.Unsigned] struct {
	src, owner S
	slot       Slot
}

// MoveTo moves the detached node i and everything it owns into dst, releasing them here.
// Returns the index of the moved node in dst, which is detached there.
// Time: O(n)
func (u *Arena[T, S]) MoveTo(dst *Arena[T, S], i S) (top S) {
	if i == 0 {
		return 0
	}
	st := []move[S]{{src: i, slot: Root}}
	for len(st) > 0 {
		m := st[len(st)-1]
		st = st[:len(st)-1]
		n := u.ns[m.src]
		j := dst.Alloc(n.V)
		if m.slot == Root {
			top = j
		} else {
			dst.Replace(m.owner, m.slot, j)
		}
		for s, c := range n.Own {
			if c != 0 {
				st = append(st, move[S]{c, j, Slot(s)})
			}
		}
		u.Release(m.src)
	}
	return
}

// Consistent walks everything reachable from Root and checks that each owned node points back
// at its owner through the right slot, and that the reachable count equals Size.
// Only meaningful when no detached nodes are outstanding.
// Time: O(n)
func (u *Arena[T, S]) Consistent() bool {
	if u.Root == 0 {
		return u.size == 0
	}
	if r := u.ns[u.Root]; r.Back != 0 || r.Slot != Root {
		return false
	}
	var cnt S
	st := append(u.st[:0], u.Root)
	for len(st) > 0 {
		i := st[len(st)-1]
		st = st[:len(st)-1]
		if cnt++; cnt > u.size {
			u.st = st
			return false
		}
		for s, c := range u.ns[i].Own {
			if c == 0 {
				continue
			}
			if n := u.ns[c]; n.Back != i || n.Slot != Slot(s) {
				u.st = st
				return false
			}
			st = append(st, c)
		}
	}
	u.st = st
	return cnt == u.size
}
