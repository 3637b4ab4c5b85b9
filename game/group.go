package game

import (
	"iter"
	"slices"
)

// Member is an entity that can live in a Group
type Member interface {
	comparable
	Mover
}

// Group is an ordered set of live entities of one kind
type Group[T Member] struct {
	// Members in insertion order
	members []T
}

// NewGroup creates an empty group with preallocated storage
func NewGroup[T Member](initialCapacity int) *Group[T] {
	return &Group[T]{
		members: make([]T, 0, initialCapacity),
	}
}

// Add appends an entity unless it is already a member
func (g *Group[T]) Add(entity T) {
	if slices.Contains(g.members, entity) {
		return
	}
	g.members = append(g.members, entity)
}

// Remove deletes an entity, reporting whether it was a member
func (g *Group[T]) Remove(entity T) bool {
	i := slices.Index(g.members, entity)
	if i < 0 {
		return false
	}
	g.members = slices.Delete(g.members, i, i+1)
	return true
}

// RemoveSet deletes every member present in the set and returns how many were removed
func (g *Group[T]) RemoveSet(set map[T]struct{}) int {
	if len(set) == 0 {
		return 0
	}

	// Compact in place, keeping survivors in order
	kept := g.members[:0]
	for _, m := range g.members {
		if _, gone := set[m]; !gone {
			kept = append(kept, m)
		}
	}
	removed := len(g.members) - len(kept)
	clear(g.members[len(kept):])
	g.members = kept
	return removed
}

// RemoveFunc deletes every member for which drop returns true
func (g *Group[T]) RemoveFunc(drop func(T) bool) int {
	before := len(g.members)
	g.members = slices.DeleteFunc(g.members, drop)
	return before - len(g.members)
}

// Clear removes all members but keeps capacity
func (g *Group[T]) Clear() {
	clear(g.members)
	g.members = g.members[:0]
}

// Len returns the number of members
func (g *Group[T]) Len() int {
	return len(g.members)
}

// Empty reports whether the group has no members
func (g *Group[T]) Empty() bool {
	return len(g.members) == 0
}

// Contains reports whether the entity is a member
func (g *Group[T]) Contains(entity T) bool {
	return slices.Contains(g.members, entity)
}

// AdvanceAll advances every member by one tick
func (g *Group[T]) AdvanceAll() {
	for _, m := range g.members {
		m.Advance()
	}
}

// All iterates the members in insertion order.
// The group must not be modified during iteration; use Snapshot for that.
func (g *Group[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, m := range g.members {
			if !yield(m) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the members that stays valid while the group changes
func (g *Group[T]) Snapshot() []T {
	return slices.Clone(g.members)
}
