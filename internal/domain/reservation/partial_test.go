//go:build unit

package reservation_test

import (
	"encoding/json"
	"testing"

	"reservation-calendar/internal/domain/reservation"
	"reservation-calendar/internal/pkg/ptr"
	"reservation-calendar/internal/testutil/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b reservation.LocalTime) bool { return a.Equal(b) }),
}

func TestPartialUnmarshal(t *testing.T) {
	t.Run("only present keys are set", func(t *testing.T) {
		var p reservation.Partial
		require.NoError(t, json.Unmarshal([]byte(`{"statusId": 3, "statusName": "Otkazano", "unknown": true}`), &p))

		want := reservation.Partial{StatusID: ptr.Of(3), StatusName: ptr.Of("Otkazano")}
		if diff := cmp.Diff(want, p, cmpOpts...); diff != "" {
			t.Errorf("Partial mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, []string{"statusId", "statusName"}, p.Fields())
	})

	t.Run("explicit null note is a clear", func(t *testing.T) {
		var p reservation.Partial
		require.NoError(t, json.Unmarshal([]byte(`{"note": null}`), &p))
		assert.True(t, p.NoteSet)
		assert.Nil(t, p.Note)
		assert.Equal(t, []string{"note"}, p.Fields())
	})

	t.Run("missing note is not a clear", func(t *testing.T) {
		var p reservation.Partial
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.NoteSet)
		assert.Empty(t, p.Fields())
	})

	t.Run("edit result envelope", func(t *testing.T) {
		var res reservation.EditResult
		require.NoError(t, json.Unmarshal([]byte(`{"data": {"statusId": 2, "note": "x", "startDate": "2024-03-15T11:00:00"}}`), &res))
		assert.Equal(t, []string{"note", "startDate", "statusId"}, res.Data.Fields())
		assert.Equal(t, "2024-03-15T11:00:00", res.Data.StartDate.String())
	})

	t.Run("marshal mirrors presence", func(t *testing.T) {
		p := reservation.Partial{StatusID: ptr.Of(2), NoteSet: true}
		b, err := json.Marshal(p)
		require.NoError(t, err)
		assert.JSONEq(t, `{"statusId": 2, "note": null}`, string(b))
	})
}

func TestReservationMerge(t *testing.T) {
	base := builder.NewReservationBuilder().WithID(7).Build()

	t.Run("present fields replace, absent fields stay", func(t *testing.T) {
		got := base.Merge(reservation.Partial{
			StatusID:   ptr.Of(3),
			StatusName: ptr.Of("Otkazano"),
		})

		want := base
		want.StatusID = 3
		want.StatusName = "Otkazano"
		if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
			t.Errorf("Merge mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("null note clears", func(t *testing.T) {
		got := base.Merge(reservation.Partial{NoteSet: true})
		assert.Nil(t, got.Note)
		assert.NotNil(t, base.Note, "receiver must not change")
	})

	t.Run("empty partial is identity", func(t *testing.T) {
		got := base.Merge(reservation.Partial{})
		if diff := cmp.Diff(base, got, cmpOpts...); diff != "" {
			t.Errorf("Merge mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("note is not shared with the partial", func(t *testing.T) {
		note := "nova"
		got := base.Merge(reservation.Partial{NoteSet: true, Note: &note})
		note = "changed"
		assert.Equal(t, "nova", got.NoteText())
	})
}

func TestEditDraftFrom(t *testing.T) {
	r := builder.NewReservationBuilder().WithID(4).WithStatus(2, "Potvrđeno").Build()

	d := reservation.EditDraftFrom(r)

	assert.Equal(t, reservation.ModeEdit, d.Mode())
	assert.Equal(t, 4, d.ReservationID)
	require.NotNil(t, d.StatusID)
	assert.Equal(t, 2, *d.StatusID)
	assert.Equal(t, r.NoteText(), d.Note)
}
