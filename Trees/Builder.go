package Trees

import (
	"github.com/g-m-twostay/go-linked/internal"
	"golang.org/x/exp/constraints"
)

// Builder describes a tree literal, for example
//
//	Node(2).L(Node(1)).R(Node(3).R(Node(4)))
//
// Setting a child slot twice, or a child that contains its parent, doesn't panic; the error
// is kept and reported by Build, wherever it happened in the literal. A Builder may appear
// more than once in a literal, each appearance is copied.
type Builder[T any] struct {
	v    T
	kids [2]*Builder[T]
	err  error
}

// Node starts a literal with value v and no children.
func Node[T any](v T) *Builder[T] {
	return &Builder[T]{v: v}
}

// L sets the left child.
func (b *Builder[T]) L(c *Builder[T]) *Builder[T] {
	return b.set(Left, c)
}

// R sets the right child.
func (b *Builder[T]) R(c *Builder[T]) *Builder[T] {
	return b.set(Right, c)
}

func (b *Builder[T]) set(s Slot, c *Builder[T]) *Builder[T] {
	if b.err != nil {
		return b
	}
	if b.kids[s] != nil {
		b.err = OccupiedSlotError{s}
	} else if c.reaches(b) {
		b.err = CyclicLiteralError{}
	} else if c != nil && c.err != nil {
		b.err = c.err
	} else {
		b.kids[s] = c
	}
	return b
}

// reaches reports whether o is b or one of its descendants.
func (b *Builder[T]) reaches(o *Builder[T]) bool {
	for st := []*Builder[T]{b}; len(st) > 0; {
		c := st[len(st)-1]
		st = st[:len(st)-1]
		if c == nil {
			continue
		}
		if c == o {
			return true
		}
		st = append(st, c.kids[Left], c.kids[Right])
	}
	return false
}

// Err returns the first error recorded while describing the literal.
func (b *Builder[T]) Err() error {
	return b.err
}

// Build a tree from the literal b. b can be built again, each call copies it. Nothing is
// built if any Builder in the literal recorded an error.
// Time: O(n)
func Build[S constraints.Unsigned, T any](b *Builder[T]) (*BinaryTree[T, S], error) {
	for st := []*Builder[T]{b}; len(st) > 0; {
		c := st[len(st)-1]
		st = st[:len(st)-1]
		if c.err != nil {
			return nil, c.err
		}
		for _, k := range c.kids {
			if k != nil {
				st = append(st, k)
			}
		}
	}
	t := New[T, S](0)
	type frame struct {
		b     *Builder[T]
		owner S
		slot  Slot
	}
	st := []frame{{b, 0, internal.Root}}
	for len(st) > 0 {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		i := t.a.Alloc(f.b.v)
		t.a.Replace(f.owner, f.slot, i)
		for s, c := range f.b.kids {
			if c != nil {
				st = append(st, frame{c, i, Slot(s)})
			}
		}
	}
	return t, nil
}

// MustBuild is Build that panics with the error.
func MustBuild[S constraints.Unsigned, T any](b *Builder[T]) *BinaryTree[T, S] {
	t, err := Build[S](b)
	if err != nil {
		panic(err)
	}
	return t
}
