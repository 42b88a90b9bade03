package form

import "reservation-calendar/internal/domain/reservation"

const (
	FieldArrangementID   = "arrangementId"
	FieldStartDate       = "startDate"
	FieldDurationMinutes = "durationMinutes"
	FieldStatusID        = "statusId"
	FieldNote            = "note"
)

type FieldKind string

const (
	KindSelect   FieldKind = "select"
	KindDateTime FieldKind = "datetime"
	KindNumber   FieldKind = "number"
	KindTextArea FieldKind = "textarea"
)

// Field describes one rendered form control.
type Field struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required"`
}

var (
	arrangementField = Field{Name: FieldArrangementID, Label: "Odaberi aranžman", Kind: KindSelect, Required: true}
	startDateField   = Field{Name: FieldStartDate, Label: "Datum i vrijeme termina", Kind: KindDateTime, Required: true}
	durationField    = Field{Name: FieldDurationMinutes, Label: "Trajanje termina u minutama", Kind: KindNumber, Required: true}
	statusField      = Field{Name: FieldStatusID, Label: "Odaberi status", Kind: KindSelect, Required: true}
	noteField        = Field{Name: FieldNote, Label: "Bilješka", Kind: KindTextArea}
)

// Fields returns the controls rendered for mode, in display order.
func Fields(mode reservation.Mode) []Field {
	if mode.IsEdit() {
		return []Field{statusField, noteField}
	}
	return []Field{arrangementField, startDateField, durationField, noteField}
}

func RenderedFields(mode reservation.Mode) []string {
	fields := Fields(mode)
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

func RequiredFields(mode reservation.Mode) []string {
	var names []string
	for _, f := range Fields(mode) {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// IsEditable reports whether field is rendered (and therefore settable) in mode.
func IsEditable(mode reservation.Mode, field string) bool {
	for _, name := range RenderedFields(mode) {
		if name == field {
			return true
		}
	}
	return false
}
