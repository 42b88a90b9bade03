//go:build unit

package form_test

import (
	"testing"
	"time"

	"reservation-calendar/internal/domain/reservation"
	"reservation-calendar/internal/usecase/form"

	"github.com/stretchr/testify/assert"
)

func TestFieldSets(t *testing.T) {
	assert.Equal(t,
		[]string{form.FieldArrangementID, form.FieldStartDate, form.FieldDurationMinutes},
		form.RequiredFields(reservation.ModeCreate))
	assert.Equal(t,
		[]string{form.FieldArrangementID, form.FieldStartDate, form.FieldDurationMinutes, form.FieldNote},
		form.RenderedFields(reservation.ModeCreate))

	assert.Equal(t, []string{form.FieldStatusID}, form.RequiredFields(reservation.ModeEdit))
	assert.Equal(t, []string{form.FieldStatusID, form.FieldNote}, form.RenderedFields(reservation.ModeEdit))

	assert.False(t, form.IsEditable(reservation.ModeCreate, form.FieldStatusID))
	assert.False(t, form.IsEditable(reservation.ModeEdit, form.FieldStartDate))
	assert.True(t, form.IsEditable(reservation.ModeEdit, form.FieldNote))
}

func TestFormatPickerDate(t *testing.T) {
	picked := time.Date(2024, 3, 15, 9, 5, 7, 123, time.FixedZone("CET", 3600))

	assert.Equal(t, "2024-03-15T09:05:07", form.FormatPickerDate(&picked))
	assert.Equal(t, "", form.FormatPickerDate(nil))
}

func TestApplyNoteKey(t *testing.T) {
	tests := []struct {
		name string
		note string
		key  string
		want string
	}{
		{name: "enter appends newline", note: "prvi red", key: form.KeyEnter, want: "prvi red\n"},
		{name: "enter on empty note", note: "", key: form.KeyEnter, want: "\n"},
		{name: "other keys leave the note alone", note: "abc", key: "a", want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, submit := form.ApplyNoteKey(tt.note, tt.key)
			assert.Equal(t, tt.want, got)
			assert.False(t, submit)
		})
	}
}
