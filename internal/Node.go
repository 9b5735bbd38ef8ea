package internal

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Slot tags the position a node occupies in its owner.
type Slot uint8

const (
	L    Slot = 0 // left child of a tree node.
	R    Slot = 1 // right child of a tree node.
	Next      = L // the only owned link of a list node.
	Root Slot = 2 // owned by the container, or detached when the container doesn't point at it.
	dead Slot = 3 // on the free list.
)

func (s Slot) String() string {
	switch s {
	case L:
		return "left"
	case R:
		return "right"
	case Root:
		return "root"
	}
	return "free"
}

// Node is a single value cell in an Arena. Own holds the indexes this node owns, Back is the
// non-owning reference to its owner (parent or prev), 0 when there's none.
// The zero value is a detached node holding the zero value of T.
type Node[T any, S constraints.Unsigned] struct {
	V    T
	Own  [2]S
	Back S
	Slot Slot
	Gen  uint32
}

// OwnedNodeError is raised when a node that already has an owner is installed into another slot.
type OwnedNodeError struct {
	Index uint64
	Slot  Slot
}

func (e OwnedNodeError) Error() string {
	return fmt.Sprintf("node %d is already owned as %s child", e.Index, e.Slot)
}

// CapacityError is raised when an arena can't address one more node with its index type.
type CapacityError struct {
	Max uint64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("arena is full: index type can address at most %d nodes", e.Max)
}

// NilCursorError is raised when a cursor is made from, or used as, a reference to no node.
type NilCursorError struct{}

func (NilCursorError) Error() string {
	return "cannot create a cursor for the nil node"
}

// StaleCursorError is raised when a cursor is used after the node it referred to was released.
type StaleCursorError struct {
	Index uint64
}

func (e StaleCursorError) Error() string {
	return fmt.Sprintf("cursor to node %d outlived its node", e.Index)
}

// ForeignCursorError is raised when a container is handed a cursor into another container.
type ForeignCursorError struct{}

func (ForeignCursorError) Error() string {
	return "cursor belongs to another container"
}
