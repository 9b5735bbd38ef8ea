package Trees

import (
	"fmt"
	"strings"

	"github.com/g-m-twostay/go-linked/internal"
	"golang.org/x/exp/constraints"
)

// BinaryTree owns a set of nodes linked as a binary tree. All nodes live in one arena
// indexed by S, so S bounds the number of nodes the tree can hold.
// The tree is the only owner of its root; every other node is owned by its parent.
type BinaryTree[T any, S constraints.Unsigned] struct {
	a  internal.Arena[T, S]
	st []S
}

// New returns an empty tree with room for hint nodes.
func New[T any, S constraints.Unsigned](hint S) *BinaryTree[T, S] {
	return &BinaryTree[T, S]{a: internal.New[T, S](hint)}
}

// Size returns the number of nodes.
// Time: O(1); Space: O(1)
func (u *BinaryTree[T, S]) Size() S {
	return u.a.Size()
}

func (u *BinaryTree[T, S]) Empty() bool {
	return u.a.Root == 0
}

// Root of the tree, false if the tree is empty.
func (u *BinaryTree[T, S]) Root() (Anchor[T, S], bool) {
	return u.maybe(u.a.Root)
}

// ReplaceRoot moves the content of sub into u, leaving sub empty, and returns the previous
// content of u as a new tree, nil if u was empty. sub may be nil.
// Time: O(n)
func (u *BinaryTree[T, S]) ReplaceRoot(sub *BinaryTree[T, S]) *BinaryTree[T, S] {
	return u.evict(u.a.Replace(0, internal.Root, u.adopt(sub)))
}

// Free releases every node, calling f (if not nil) exactly once with each value.
// The tree is empty and reusable afterwards.
// Time: O(n)
func (u *BinaryTree[T, S]) Free(f func(T)) {
	u.a.Drain(u.a.Replace(0, internal.Root, 0), f)
}

// adopt moves every node of sub into u and returns the detached top. It must run before u
// detaches anything, so a panic leaves u untouched.
func (u *BinaryTree[T, S]) adopt(sub *BinaryTree[T, S]) S {
	if sub == nil {
		return 0
	}
	if sub == u {
		panic(OwnedNodeError{Index: uint64(u.a.Root), Slot: internal.Root})
	}
	return sub.a.MoveTo(&u.a, sub.a.Replace(0, internal.Root, 0))
}

// evict moves the detached subtree i out of u into a tree of its own.
func (u *BinaryTree[T, S]) evict(i S) *BinaryTree[T, S] {
	if i == 0 {
		return nil
	}
	t := New[T, S](0)
	t.a.Replace(0, internal.Root, u.a.MoveTo(&t.a, i))
	return t
}

// stack hands out the traversal buffer; nested traversals get a fresh one.
func (u *BinaryTree[T, S]) stack() []S {
	st := u.st[:0]
	u.st = nil
	return st
}

// PreOrder calls f on each value, parent before its left then right subtree, until f returns
// false. f must not modify the structure of the tree.
// Time: O(n); Space: O(D)
func (u *BinaryTree[T, S]) PreOrder(f func(*T) bool) {
	st := u.stack()
	if u.a.Root != 0 {
		st = append(st, u.a.Root)
	}
	for len(st) > 0 {
		n := u.a.At(st[len(st)-1])
		st = st[:len(st)-1]
		if !f(&n.V) {
			break
		}
		if r := n.Own[Right]; r != 0 {
			st = append(st, r)
		}
		if l := n.Own[Left]; l != 0 {
			st = append(st, l)
		}
	}
	u.st = st
}

// InOrder calls f on each value, left subtree before parent before right subtree, until f
// returns false. On a BST this is ascending order.
// Time: O(n); Space: O(D)
func (u *BinaryTree[T, S]) InOrder(f func(*T) bool) {
	st := u.stack()
	for curI := u.a.Root; curI != 0 || len(st) > 0; {
		for ; curI != 0; curI = u.a.At(curI).Own[Left] {
			st = append(st, curI)
		}
		n := u.a.At(st[len(st)-1])
		st = st[:len(st)-1]
		if !f(&n.V) {
			break
		}
		curI = n.Own[Right]
	}
	u.st = st
}

// PostOrder calls f on each value, both subtrees before their parent, until f returns false.
// Time: O(n); Space: O(D)
func (u *BinaryTree[T, S]) PostOrder(f func(*T) bool) {
	st := u.stack()
	var last S
	for curI := u.a.Root; curI != 0 || len(st) > 0; {
		if curI != 0 {
			st = append(st, curI)
			curI = u.a.At(curI).Own[Left]
			continue
		}
		top := st[len(st)-1]
		n := u.a.At(top)
		if r := n.Own[Right]; r != 0 && r != last {
			curI = r
			continue
		}
		if !f(&n.V) {
			break
		}
		last, st = top, st[:len(st)-1]
	}
	u.st = st
}

// Height is the number of nodes on the longest root to leaf path.
// Time: O(n); Space: O(D)
func (u *BinaryTree[T, S]) Height() int {
	type level struct {
		i S
		d int
	}
	h := 0
	var st []level
	if u.a.Root != 0 {
		st = append(st, level{u.a.Root, 1})
	}
	for len(st) > 0 {
		c := st[len(st)-1]
		st = st[:len(st)-1]
		h = max(h, c.d)
		for _, k := range u.a.At(c.i).Own {
			if k != 0 {
				st = append(st, level{k, c.d + 1})
			}
		}
	}
	return h
}

// String renders the tree as `v { left: ..., right: ... }`, with `null` for a missing child
// and leaves printed as their bare value. Recursive.
func (u *BinaryTree[T, S]) String() string {
	if u.a.Root == 0 {
		return "null"
	}
	var b strings.Builder
	u.format(&b, u.a.Root)
	return b.String()
}

func (u *BinaryTree[T, S]) format(b *strings.Builder, i S) {
	n := u.a.At(i)
	fmt.Fprint(b, n.V)
	if n.Own[Left] == 0 && n.Own[Right] == 0 {
		return
	}
	for s, name := range [2]string{" { left: ", ", right: "} {
		b.WriteString(name)
		if c := n.Own[s]; c == 0 {
			b.WriteString("null")
		} else {
			u.format(b, c)
		}
	}
	b.WriteString(" }")
}

// Equal reports whether a and b have the same shape with equal values at each position.
// Time: O(n)
func Equal[T comparable, S constraints.Unsigned](a, b *BinaryTree[T, S]) bool {
	if a.Size() != b.Size() {
		return false
	}
	st := [][2]S{{a.a.Root, b.a.Root}}
	for len(st) > 0 {
		p := st[len(st)-1]
		st = st[:len(st)-1]
		if p[0] == 0 || p[1] == 0 {
			if p[0] != p[1] {
				return false
			}
			continue
		}
		x, y := a.a.At(p[0]), b.a.At(p[1])
		if x.V != y.V {
			return false
		}
		st = append(st, [2]S{x.Own[Left], y.Own[Left]}, [2]S{x.Own[Right], y.Own[Right]})
	}
	return true
}
