package form

import (
	"time"

	"reservation-calendar/internal/domain/reservation"
)

const KeyEnter = "Enter"

// FormatPickerDate converts a date-picker value into the draft's wire string.
// No selection becomes "", not null, so the schema sees a string either way.
func FormatPickerDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return reservation.NewLocalTime(*t).String()
}

// ApplyNoteKey handles a keypress inside the note field. Enter inserts a
// newline instead of submitting the form; every other key is left to the
// regular change path. The note field never submits the form.
func ApplyNoteKey(note, key string) (string, bool) {
	if key == KeyEnter {
		return note + "\n", false
	}
	return note, false
}
