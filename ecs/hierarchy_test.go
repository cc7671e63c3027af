package ecs

import (
	"testing"

	"github.com/milk9111/camrig/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHierarchy(t *testing.T) {
	w := NewWorld()
	root := CreateEntity(w)
	child := CreateEntity(w)
	grandchild := CreateEntity(w)

	require.NoError(t, SetParent(w, child, root))
	require.NoError(t, SetParent(w, grandchild, child))

	t.Run("parent_of", func(t *testing.T) {
		p, ok := ParentOf(w, grandchild)
		require.True(t, ok)
		assert.Equal(t, child, p)

		_, ok = ParentOf(w, root)
		assert.False(t, ok)
	})

	t.Run("subtree_depth_first", func(t *testing.T) {
		assert.Equal(t, []Entity{root, child, grandchild}, Subtree(w, root))
		assert.Equal(t, []Entity{grandchild}, Subtree(w, grandchild))
	})

	t.Run("rejects_cycles", func(t *testing.T) {
		assert.Error(t, SetParent(w, root, grandchild))
		assert.Error(t, SetParent(w, root, root))
	})

	t.Run("detach", func(t *testing.T) {
		require.NoError(t, SetParent(w, grandchild, 0))
		_, ok := ParentOf(w, grandchild)
		assert.False(t, ok)
		assert.Equal(t, []Entity{root, child}, Subtree(w, root))
	})

	t.Run("dead_parent_is_ignored", func(t *testing.T) {
		orphan := CreateEntity(w)
		doomed := CreateEntity(w)
		require.NoError(t, SetParent(w, orphan, doomed))
		require.True(t, DestroyEntity(w, doomed))

		_, ok := ParentOf(w, orphan)
		assert.False(t, ok)
		assert.ErrorIs(t, SetParent(w, orphan, doomed), component.ErrEntityNotAlive)
	})
}

func TestFindByName(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	require.NoError(t, Add(w, e, component.NameComponent.Kind(), &component.Name{Value: "panel"}))

	found, ok := FindByName(w, "panel")
	require.True(t, ok)
	assert.Equal(t, e, found)
	assert.Equal(t, "panel", NameOf(w, e))

	_, ok = FindByName(w, "missing")
	assert.False(t, ok)

	anon := CreateEntity(w)
	assert.Equal(t, anon.String(), NameOf(w, anon))
}

func TestSchedulerEvents(t *testing.T) {
	w := NewWorld()
	var seen []string
	first := SystemFunc(func(w *World) {
		seen = append(seen, "first")
		w.Events().Push(Event{Type: EventFit})
	})
	second := SystemFunc(func(w *World) {
		seen = append(seen, "second")
		if w.Events().Has(EventFit) {
			seen = append(seen, "second saw fit")
		}
	})
	s := NewScheduler(first, nil, second)
	require.Equal(t, 2, s.Len())

	w.Events().Push(Event{Type: EventSceneReady})
	w.Advance(0)
	s.Update(w)

	assert.Equal(t, []string{"first", "second", "second saw fit"}, seen)
	assert.False(t, w.Events().Has(EventSceneReady), "events are dropped at the end of a tick")
	assert.Empty(t, w.Events().Drain())
}

func TestEventQueue(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: EventFit, Data: Entity(3)})
	q.Push(Event{Type: EventCameraReloaded})
	q.Push(Event{Type: EventFit})

	assert.True(t, q.Has(EventCameraReloaded))
	assert.False(t, q.Has(EventSceneReady))
	assert.Len(t, q.Filter(EventFit), 2)

	drained := q.Drain()
	assert.Len(t, drained, 3)
	assert.Nil(t, q.Drain())

	var nilQueue *EventQueue
	nilQueue.Push(Event{Type: EventFit})
	assert.False(t, nilQueue.Has(EventFit))
}

func TestClock(t *testing.T) {
	w := NewWorld()
	assert.Equal(t, uint64(0), w.Frame())

	w.Advance(16)
	w.Advance(-5)
	assert.Equal(t, uint64(2), w.Frame())
	assert.Zero(t, w.Delta())
}
