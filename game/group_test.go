package game_test

import (
	"image"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alieninvasion/game"
)

func newAliens(s *game.Settings, n int) []*game.Alien {
	aliens := make([]*game.Alien, n)
	for i := range aliens {
		aliens[i] = game.NewAlien(s, image.Pt(10, 10))
		aliens[i].MoveTo(20*i, 0)
	}
	return aliens
}

func TestGroupAddIgnoresDuplicates(t *testing.T) {
	s := game.DefaultSettings()
	aliens := newAliens(s, 2)
	g := game.NewGroup[*game.Alien](0)

	g.Add(aliens[0])
	g.Add(aliens[1])
	g.Add(aliens[0])

	assert.Equal(t, 2, g.Len())
	assert.Equal(t, aliens, g.Snapshot())
}

func TestGroupRemove(t *testing.T) {
	s := game.DefaultSettings()
	aliens := newAliens(s, 3)
	g := game.NewGroup[*game.Alien](3)
	for _, a := range aliens {
		g.Add(a)
	}

	assert.True(t, g.Remove(aliens[1]))
	assert.False(t, g.Remove(aliens[1]))
	assert.False(t, g.Contains(aliens[1]))
	assert.Equal(t, []*game.Alien{aliens[0], aliens[2]}, g.Snapshot())
}

func TestGroupRemoveSet(t *testing.T) {
	s := game.DefaultSettings()
	aliens := newAliens(s, 5)
	stranger := game.NewAlien(s, image.Pt(10, 10))
	g := game.NewGroup[*game.Alien](5)
	for _, a := range aliens {
		g.Add(a)
	}

	removed := g.RemoveSet(map[*game.Alien]struct{}{
		aliens[0]: {},
		aliens[3]: {},
		stranger:  {},
	})

	assert.Equal(t, 2, removed)
	assert.Equal(t, []*game.Alien{aliens[1], aliens[2], aliens[4]}, g.Snapshot())
	assert.Zero(t, g.RemoveSet(nil))
}

func TestGroupRemoveFunc(t *testing.T) {
	s := game.DefaultSettings()
	aliens := newAliens(s, 4)
	g := game.NewGroup[*game.Alien](4)
	for _, a := range aliens {
		g.Add(a)
	}

	removed := g.RemoveFunc(func(a *game.Alien) bool {
		return a.Bounds().Min.X >= 40
	})

	assert.Equal(t, 2, removed)
	assert.Equal(t, aliens[:2], g.Snapshot())
}

func TestGroupSnapshotSurvivesRemoval(t *testing.T) {
	s := game.DefaultSettings()
	aliens := newAliens(s, 4)
	g := game.NewGroup[*game.Alien](4)
	for _, a := range aliens {
		g.Add(a)
	}

	visited := 0
	for _, a := range g.Snapshot() {
		visited++
		g.Remove(a)
	}

	assert.Equal(t, 4, visited)
	assert.True(t, g.Empty())
}

func TestGroupAllStopsEarly(t *testing.T) {
	s := game.DefaultSettings()
	g := game.NewGroup[*game.Alien](3)
	for _, a := range newAliens(s, 3) {
		g.Add(a)
	}

	var seen []*game.Alien
	for a := range g.All() {
		seen = append(seen, a)
		if len(seen) == 2 {
			break
		}
	}
	require.Len(t, seen, 2)
	assert.Equal(t, g.Snapshot()[:2], seen)
}

func TestGroupAdvanceAllAndClear(t *testing.T) {
	s := game.DefaultSettings()
	g := game.NewGroup[*game.Alien](3)
	for _, a := range newAliens(s, 3) {
		g.Add(a)
	}

	g.AdvanceAll()
	xs := slices.Collect(func(yield func(int) bool) {
		for a := range g.All() {
			if !yield(a.Bounds().Min.X) {
				return
			}
		}
	})
	assert.Equal(t, []int{1, 21, 41}, xs)

	g.Clear()
	assert.True(t, g.Empty())
	assert.Zero(t, g.Len())
}
