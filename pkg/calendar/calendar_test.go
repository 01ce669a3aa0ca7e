package calendar

import (
	"testing"
	"time"

	"github.com/kalendu/kalendu/pkg/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timedEvent(name string, start, end string) event.Event {
	s, _ := time.Parse("2006-01-02T15:04", start)
	e, _ := time.Parse("2006-01-02T15:04", end)
	return event.New(name, s, e)
}

func TestAddEventConflicts(t *testing.T) {
	t.Run("autoDecline rejects an overlapping insert", func(t *testing.T) {
		c := New("work", "UTC")
		require.NoError(t, c.AddEvent(timedEvent("Meeting", "2025-04-01T10:00", "2025-04-01T11:00"), true))

		err := c.AddEvent(timedEvent("Event2", "2025-04-01T10:30", "2025-04-01T11:30"), true)
		assert.ErrorIs(t, err, ErrConflict)
		require.Len(t, c.Events(), 1)
		assert.Equal(t, "Meeting", c.Events()[0].Name)
	})

	t.Run("touching endpoints count as conflict", func(t *testing.T) {
		c := New("work", "UTC")
		require.NoError(t, c.AddEvent(timedEvent("A", "2025-04-01T10:00", "2025-04-01T11:00"), true))

		err := c.AddEvent(timedEvent("B", "2025-04-01T11:00", "2025-04-01T12:00"), true)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("without autoDecline overlapping inserts succeed", func(t *testing.T) {
		c := New("work", "UTC")
		require.NoError(t, c.AddEvent(timedEvent("A", "2025-04-01T10:00", "2025-04-01T11:00"), false))
		require.NoError(t, c.AddEvent(timedEvent("B", "2025-04-01T10:30", "2025-04-01T11:30"), false))
		assert.Len(t, c.Events(), 2)
	})

	t.Run("conflict detection is symmetric", func(t *testing.T) {
		a := timedEvent("A", "2025-04-01T10:00", "2025-04-01T11:00")
		b := timedEvent("B", "2025-04-01T10:30", "2025-04-01T11:30")

		forward := New("x", "UTC")
		require.NoError(t, forward.AddEvent(a, true))
		forwardErr := forward.AddEvent(b, true)

		backward := New("x", "UTC")
		require.NoError(t, backward.AddEvent(b, true))
		backwardErr := backward.AddEvent(a, true)

		assert.Equal(t, forwardErr != nil, backwardErr != nil)
	})
}

func TestEventsOn(t *testing.T) {
	c := New("work", "UTC")
	require.NoError(t, c.AddEvent(timedEvent("Morning", "2025-04-01T09:00", "2025-04-01T10:00"), false))
	require.NoError(t, c.AddEvent(timedEvent("Afternoon", "2025-04-01T14:00", "2025-04-01T15:00"), false))
	require.NoError(t, c.AddEvent(timedEvent("Other", "2025-04-02T09:00", "2025-04-02T10:00"), false))

	onFirst := c.EventsOn(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, onFirst, 2)
	// Insertion order is the only order.
	assert.Equal(t, "Morning", onFirst[0].Name)
	assert.Equal(t, "Afternoon", onFirst[1].Name)

	assert.Empty(t, c.EventsOn(time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC)))
}

func TestEventsBetween(t *testing.T) {
	c := New("work", "UTC")
	require.NoError(t, c.AddEvent(timedEvent("A", "2025-04-01T09:00", "2025-04-01T10:00"), false))
	require.NoError(t, c.AddEvent(timedEvent("B", "2025-04-02T09:00", "2025-04-02T10:00"), false))

	t.Run("window touching an event start includes it", func(t *testing.T) {
		found := c.EventsBetween(
			time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC))
		require.Len(t, found, 1)
		assert.Equal(t, "A", found[0].Name)
	})

	t.Run("window spanning both days returns both", func(t *testing.T) {
		found := c.EventsBetween(
			time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 4, 2, 23, 59, 0, 0, time.UTC))
		assert.Len(t, found, 2)
	})

	t.Run("disjoint window returns nothing", func(t *testing.T) {
		assert.Empty(t, c.EventsBetween(
			time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 4, 4, 0, 0, 0, 0, time.UTC)))
	})
}

func TestIsBusy(t *testing.T) {
	c := New("work", "UTC")
	require.NoError(t, c.AddEvent(timedEvent("A", "2025-04-01T10:00", "2025-04-01T11:00"), false))

	assert.True(t, c.IsBusy(time.Date(2025, 4, 1, 10, 30, 0, 0, time.UTC)))
	assert.True(t, c.IsBusy(time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)), "start endpoint is inclusive")
	assert.True(t, c.IsBusy(time.Date(2025, 4, 1, 11, 0, 0, 0, time.UTC)), "end endpoint is inclusive")
	assert.False(t, c.IsBusy(time.Date(2025, 4, 1, 11, 1, 0, 0, time.UTC)))
}

func TestFindByNameAndStart(t *testing.T) {
	c := New("work", "UTC")
	require.NoError(t, c.AddEvent(timedEvent("A", "2025-04-01T10:00", "2025-04-01T11:00"), false))

	found, ok := c.FindByNameAndStart("A", time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "A", found.Name)

	_, ok = c.FindByNameAndStart("A", time.Date(2025, 4, 1, 10, 1, 0, 0, time.UTC))
	assert.False(t, ok)
	_, ok = c.FindByNameAndStart("B", time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestEditSingle(t *testing.T) {
	c := New("work", "UTC")
	require.NoError(t, c.AddEvent(timedEvent("A", "2025-04-01T10:00", "2025-04-01T11:00"), false))

	t.Run("exact match is edited", func(t *testing.T) {
		ok := c.EditSingle("location", "A",
			time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 4, 1, 11, 0, 0, 0, time.UTC), "room 7")
		assert.True(t, ok)
		assert.Equal(t, "room 7", c.Events()[0].Location)
	})

	t.Run("end mismatch edits nothing", func(t *testing.T) {
		ok := c.EditSingle("location", "A",
			time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 4, 1, 11, 30, 0, 0, time.UTC), "room 9")
		assert.False(t, ok)
	})

	t.Run("unknown property still reports the match but changes nothing", func(t *testing.T) {
		before := c.Events()[0]
		ok := c.EditSingle("color", "A", before.Start, before.End, "red")
		assert.True(t, ok)
		assert.Equal(t, before, c.Events()[0])
	})
}

func TestEditFromAndAll(t *testing.T) {
	c := New("work", "UTC")
	// Two duplicates at the same start plus one later event, all sharing a name.
	require.NoError(t, c.AddEvent(timedEvent("Standup", "2025-04-01T09:00", "2025-04-01T09:15"), false))
	require.NoError(t, c.AddEvent(timedEvent("Standup", "2025-04-01T09:00", "2025-04-01T09:15"), false))
	require.NoError(t, c.AddEvent(timedEvent("Standup", "2025-04-02T09:00", "2025-04-02T09:15"), false))

	t.Run("from scope edits every (name, start) match", func(t *testing.T) {
		count := c.EditFrom("description", "Standup",
			time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC), "daily")
		assert.Equal(t, 2, count)
		assert.Equal(t, "daily", c.Events()[0].Description)
		assert.Equal(t, "daily", c.Events()[1].Description)
		assert.Empty(t, c.Events()[2].Description)
	})

	t.Run("all scope edits every name match", func(t *testing.T) {
		count := c.EditAll("ispublic", "Standup", "false")
		assert.Equal(t, 3, count)
		for _, e := range c.Events() {
			assert.False(t, e.IsPublic)
		}
	})

	t.Run("no match reports zero", func(t *testing.T) {
		assert.Zero(t, c.EditAll("name", "Missing", "X"))
		assert.Zero(t, c.EditFrom("name", "Standup", time.Date(2025, 4, 9, 9, 0, 0, 0, time.UTC), "X"))
	})
}
