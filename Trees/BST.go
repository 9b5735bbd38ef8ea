package Trees

import (
	"cmp"

	"github.com/g-m-twostay/go-linked/internal"
	"golang.org/x/exp/constraints"
)

// BST is an unbalanced binary search tree. For every node, values in its left subtree
// compare less than it and values in its right subtree compare greater or equal; equal
// values are inserted to the right. Structural edits go through the ownership protocol of
// BinaryTree, so no node is ever lost or owned twice.
// The height D of the tree depends only on the insertion order, it's O(n) in the worst case.
// The embedded BinaryTree edits (ReplaceRoot, Anchor.ReplaceLeft/ReplaceRight, Anchor.Set and
// writes through Anchor.Ptr) don't look at the order; after using them only Corrupt tells
// whether the tree is still a search tree.
type BST[T any, S constraints.Unsigned] struct {
	BinaryTree[T, S]
	cmp func(a, b T) int
}

// NewBST returns an empty BST ordered by cmp.Compare.
func NewBST[T cmp.Ordered, S constraints.Unsigned](hint S) *BST[T, S] {
	return NewBSTFunc[T, S](hint, cmp.Compare[T])
}

// NewBSTFunc returns an empty BST ordered by c, which returns a negative number when a<b,
// 0 when a==b and a positive number when a>b.
func NewBSTFunc[T any, S constraints.Unsigned](hint S, c func(a, b T) int) *BST[T, S] {
	return &BST[T, S]{BinaryTree: BinaryTree[T, S]{a: internal.New[T, S](hint)}, cmp: c}
}

// own returns the index of a after checking it belongs to u.
func (u *BST[T, S]) own(a Anchor[T, S]) S {
	a.node()
	if a.t != &u.BinaryTree {
		panic(ForeignCursorError{})
	}
	return a.i
}

// Insert [SearchTree.Insert]
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Insert(v T) Anchor[T, S] {
	var y S
	s := internal.Root
	for x := u.a.Root; x != 0; x = u.a.At(x).Own[s] {
		if y = x; u.cmp(v, u.a.At(x).V) < 0 {
			s = Left
		} else {
			s = Right
		}
	}
	z := u.a.Alloc(v)
	u.a.Replace(y, s, z)
	return u.anchor(z)
}

func (u *BST[T, S]) search(v T) S {
	for x := u.a.Root; x != 0; {
		if c := u.cmp(v, u.a.At(x).V); c == 0 {
			return x
		} else if c < 0 {
			x = u.a.At(x).Own[Left]
		} else {
			x = u.a.At(x).Own[Right]
		}
	}
	return 0
}

// Search [SearchTree.Search]
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Search(v T) (Anchor[T, S], bool) {
	return u.maybe(u.search(v))
}

// Has [SearchTree.Has]
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Has(v T) bool {
	return u.search(v) != 0
}

func (u *BST[T, S]) extreme(x S, s Slot) S {
	for c := x; c != 0; c = u.a.At(c).Own[s] {
		x = c
	}
	return x
}

// MinimumFrom returns the smallest node in the subtree rooted at a.
// Time: O(D); Space: O(1)
func (u *BST[T, S]) MinimumFrom(a Anchor[T, S]) Anchor[T, S] {
	return u.anchor(u.extreme(u.own(a), Left))
}

// MaximumFrom returns the largest node in the subtree rooted at a.
// Time: O(D); Space: O(1)
func (u *BST[T, S]) MaximumFrom(a Anchor[T, S]) Anchor[T, S] {
	return u.anchor(u.extreme(u.own(a), Right))
}

// Minimum [SearchTree.Minimum]
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Minimum() (Anchor[T, S], bool) {
	return u.maybe(u.extreme(u.a.Root, Left))
}

// Maximum [SearchTree.Maximum]
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Maximum() (Anchor[T, S], bool) {
	return u.maybe(u.extreme(u.a.Root, Right))
}

// neighbour walks to the in-order neighbour of x on side s: Right for the successor,
// Left for the predecessor.
func (u *BST[T, S]) neighbour(x S, s Slot) S {
	if c := u.a.At(x).Own[s]; c != 0 {
		return u.extreme(c, 1-s)
	}
	for n := u.a.At(x); n.Slot == s; n = u.a.At(x) {
		x = n.Back
	}
	return u.a.At(x).Back
}

// Successor [SearchTree.Successor]
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Successor(a Anchor[T, S]) (Anchor[T, S], bool) {
	return u.maybe(u.neighbour(u.own(a), Right))
}

// Predecessor [SearchTree.Predecessor]
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Predecessor(a Anchor[T, S]) (Anchor[T, S], bool) {
	return u.maybe(u.neighbour(u.own(a), Left))
}

// transplant puts the detached subtree v where z is, and returns z detached.
func (u *BST[T, S]) transplant(z, v S) S {
	n := u.a.At(z)
	return u.a.Replace(n.Back, n.Slot, v)
}

// Delete the node z and return its value. z and every other anchor to that node become
// stale; anchors to other nodes stay valid.
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Delete(z Anchor[T, S]) T {
	zi := u.own(z)
	if n := u.a.At(zi); n.Own[Left] == 0 {
		u.transplant(zi, u.a.Replace(zi, Right, 0))
	} else if n.Own[Right] == 0 {
		u.transplant(zi, u.a.Replace(zi, Left, 0))
	} else {
		y := u.extreme(n.Own[Right], Left)
		if yp := u.a.At(y).Back; yp != zi {
			u.a.Replace(yp, Left, u.a.Replace(y, Right, 0))
			u.a.Replace(y, Right, u.a.Replace(zi, Right, 0))
		} else {
			u.a.Replace(zi, Right, 0)
		}
		u.a.Replace(y, Left, u.a.Replace(zi, Left, 0))
		u.transplant(zi, y)
	}
	return u.a.Release(zi)
}

// Remove [SearchTree.Remove]
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Remove(v T) bool {
	if x := u.search(v); x != 0 {
		u.Delete(u.anchor(x))
		return true
	}
	return false
}

// Corrupt [SearchTree.Corrupt]
// Time: O(n); Space: O(D)
func (u *BST[T, S]) Corrupt() bool {
	if !u.a.Consistent() {
		return true
	}
	// lo is an inclusive lower bound, hi an exclusive upper bound, 0 for none.
	type bound struct{ i, lo, hi S }
	var st []bound
	if u.a.Root != 0 {
		st = append(st, bound{u.a.Root, 0, 0})
	}
	for len(st) > 0 {
		b := st[len(st)-1]
		st = st[:len(st)-1]
		n := u.a.At(b.i)
		if b.lo != 0 && u.cmp(n.V, u.a.At(b.lo).V) < 0 || b.hi != 0 && u.cmp(n.V, u.a.At(b.hi).V) >= 0 {
			return true
		}
		if l := n.Own[Left]; l != 0 {
			st = append(st, bound{l, b.lo, b.i})
		}
		if r := n.Own[Right]; r != 0 {
			st = append(st, bound{r, b.i, b.hi})
		}
	}
	return false
}
