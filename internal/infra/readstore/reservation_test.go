//go:build unit

package readstore_test

import (
	"sync"
	"testing"

	"reservation-calendar/internal/domain/reservation"
	"reservation-calendar/internal/infra/readstore"
	"reservation-calendar/internal/pkg/ptr"
	"reservation-calendar/internal/testutil/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed() []reservation.Reservation {
	return []reservation.Reservation{
		builder.NewReservationBuilder().WithID(1).Build(),
		builder.NewReservationBuilder().WithID(2).WithStatus(2, "Potvrđeno").Build(),
	}
}

type recorder struct {
	mu    sync.Mutex
	calls [][]reservation.Reservation
}

func (r *recorder) listen(snapshot []reservation.Reservation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, snapshot)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func TestReplaceAll(t *testing.T) {
	store := readstore.NewReservationStore()
	rec := &recorder{}
	store.Subscribe(rec.listen)

	store.ReplaceAll(seed())
	assert.Equal(t, 2, store.Len())

	store.ReplaceAll([]reservation.Reservation{builder.NewReservationBuilder().WithID(5).Build()})

	assert.Equal(t, 1, store.Len())
	_, ok := store.Get(1)
	assert.False(t, ok, "previous records must be discarded")
	_, ok = store.Get(5)
	assert.True(t, ok)
	require.Equal(t, 2, rec.count())
	assert.Len(t, rec.calls[1], 1)
}

func TestPatchOne(t *testing.T) {
	t.Run("patches only the matching record", func(t *testing.T) {
		store := readstore.NewReservationStore()
		store.ReplaceAll(seed())
		before, _ := store.Get(2)

		ok := store.PatchOne(1, reservation.Partial{
			StatusID:   ptr.Of(3),
			StatusName: ptr.Of("Otkazano"),
			NoteSet:    true,
		})

		require.True(t, ok)
		got, _ := store.Get(1)
		assert.Equal(t, 3, got.StatusID)
		assert.Equal(t, "Otkazano", got.StatusName)
		assert.Nil(t, got.Note)
		assert.Equal(t, 60, got.DurationMinutes, "absent fields stay")

		other, _ := store.Get(2)
		assert.Equal(t, before, other)
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		store := readstore.NewReservationStore()
		store.ReplaceAll(seed())
		rec := &recorder{}
		store.Subscribe(rec.listen)
		before := store.Snapshot()

		ok := store.PatchOne(99, reservation.Partial{StatusID: ptr.Of(3)})

		assert.False(t, ok)
		assert.Equal(t, before, store.Snapshot())
		assert.Equal(t, 0, rec.count(), "no-op must not notify")
	})

	t.Run("patch keeps position", func(t *testing.T) {
		store := readstore.NewReservationStore()
		store.ReplaceAll(seed())

		store.PatchOne(2, reservation.Partial{Note: ptr.Of("novo"), NoteSet: true})

		snap := store.Snapshot()
		require.Len(t, snap, 2)
		assert.Equal(t, 1, snap[0].ReservationID)
		assert.Equal(t, "novo", snap[1].NoteText())
	})
}

func TestSnapshotIsolation(t *testing.T) {
	store := readstore.NewReservationStore()
	input := seed()
	store.ReplaceAll(input)

	*input[0].Note = "mutated input"
	snap := store.Snapshot()
	*snap[1].Note = "mutated snapshot"

	got1, _ := store.Get(1)
	got2, _ := store.Get(2)
	assert.Equal(t, "Prvi dolazak", got1.NoteText())
	assert.Equal(t, "Prvi dolazak", got2.NoteText())
}

func TestSubscribe(t *testing.T) {
	store := readstore.NewReservationStore()
	rec := &recorder{}
	unsubscribe := store.Subscribe(rec.listen)

	t.Run("listeners may read the store", func(t *testing.T) {
		var seen int
		unsub := store.Subscribe(func([]reservation.Reservation) {
			seen = store.Len()
		})
		store.ReplaceAll(seed())
		unsub()
		assert.Equal(t, 2, seen)
	})

	unsubscribe()
	unsubscribe()
	store.ReplaceAll(nil)

	assert.Equal(t, 1, rec.count(), "unsubscribed listener must not be called")
}
