package Trees

import (
	"github.com/g-m-twostay/go-linked/internal"
	"golang.org/x/exp/constraints"
)

// SearchTree represents an ordered tree whose nodes can be reached through Anchors.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the returned Anchor is the zero value and must not be used.
// Methods implemented recursively should be noted, otherwise they are
// implemented iteratively.
type SearchTree[T any, S constraints.Unsigned] interface {
	//Insert v to the tree. Duplicates are kept.
	Insert(v T) Anchor[T, S]
	//Remove one element equal to v. Returning true if there was one.
	Remove(v T) bool
	//Search returns the first node equal to v on the path from the root.
	Search(v T) (Anchor[T, S], bool)
	//Minimum element of the tree.
	Minimum() (Anchor[T, S], bool)
	//Maximum element of the tree.
	Maximum() (Anchor[T, S], bool)
	//Predecessor returns the node before a in in-order.
	Predecessor(a Anchor[T, S]) (Anchor[T, S], bool)
	//Successor returns the node after a in in-order.
	Successor(a Anchor[T, S]) (Anchor[T, S], bool)
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() S
	//InOrder calls f on the values in in-order until f returns false.
	//The tree must not be modified during the traversal.
	InOrder(f func(*T) bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering, or a link doesn't point back to its owner.
	Corrupt() bool
}

// Slot names a child position of a tree node.
type Slot = internal.Slot

const (
	Left  = internal.L
	Right = internal.R
)

type (
	NilCursorError     = internal.NilCursorError
	StaleCursorError   = internal.StaleCursorError
	ForeignCursorError = internal.ForeignCursorError
	OwnedNodeError     = internal.OwnedNodeError
	CapacityError      = internal.CapacityError
)

// DanglingNodeError is raised by Detach on a node that has no parent to be detached from.
type DanglingNodeError struct{}

func (DanglingNodeError) Error() string {
	return "cannot detach a dangling node"
}

// OccupiedSlotError is returned by Build when a Builder had a child slot set twice.
type OccupiedSlotError struct {
	Slot Slot
}

func (e OccupiedSlotError) Error() string {
	return "cannot set " + e.Slot.String() + " child, as it's not empty"
}

// CyclicLiteralError is returned by Build when a Builder was given a child that contains it.
type CyclicLiteralError struct{}

func (CyclicLiteralError) Error() string {
	return "cannot set a child that contains its parent"
}

var _ SearchTree[int, uint] = (*BST[int, uint])(nil)
