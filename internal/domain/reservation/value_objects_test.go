//go:build unit

package reservation_test

import (
	"encoding/json"
	"testing"
	"time"

	"reservation-calendar/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalTime(t *testing.T) {
	want := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr error
	}{
		{name: "wire format", input: "2024-03-15T10:30:00", want: want},
		{name: "picker format", input: "2024-03-15 10:30:00", want: want},
		{name: "RFC3339 keeps wall clock", input: "2024-03-15T10:30:00+01:00", want: want},
		{name: "surrounding spaces", input: "  2024-03-15T10:30:00 ", want: want},
		{name: "empty is zero", input: ""},
		{name: "date only NG", input: "2024-03-15", wantErr: reservation.ErrInvalidDate},
		{name: "garbage NG", input: "tomorrow", wantErr: reservation.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reservation.ParseLocalTime(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.want.IsZero() {
				assert.True(t, got.IsZero())
				return
			}
			assert.True(t, got.Time().Equal(tt.want), "got %s", got)
		})
	}
}

func TestLocalTimeJSON(t *testing.T) {
	t.Run("marshals in wire format", func(t *testing.T) {
		lt := reservation.NewLocalTime(time.Date(2024, 1, 2, 3, 4, 5, 999, time.UTC))
		b, err := json.Marshal(lt)
		require.NoError(t, err)
		assert.JSONEq(t, `"2024-01-02T03:04:05"`, string(b))
	})

	t.Run("zero marshals to empty string", func(t *testing.T) {
		b, err := json.Marshal(reservation.LocalTime{})
		require.NoError(t, err)
		assert.JSONEq(t, `""`, string(b))
	})

	t.Run("null and empty decode to zero", func(t *testing.T) {
		for _, raw := range []string{`null`, `""`} {
			lt := reservation.NewLocalTime(time.Now())
			require.NoError(t, json.Unmarshal([]byte(raw), &lt))
			assert.True(t, lt.IsZero(), raw)
		}
	})

	t.Run("invalid string is rejected", func(t *testing.T) {
		var lt reservation.LocalTime
		err := json.Unmarshal([]byte(`"15.03.2024"`), &lt)
		assert.ErrorIs(t, err, reservation.ErrInvalidDate)
	})
}

func TestReservationEnd(t *testing.T) {
	r := reservation.Reservation{
		StartDate:       reservation.NewLocalTime(time.Date(2024, 3, 15, 23, 30, 0, 0, time.UTC)),
		DurationMinutes: 90,
	}
	assert.Equal(t, "2024-03-16T01:00:00", r.End().String())
	assert.Equal(t, "Rezervacija #0", r.Title())
}
