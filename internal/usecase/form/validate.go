package form

import (
	"errors"
	"sort"
	"strings"

	"reservation-calendar/internal/domain/reservation"
	"reservation-calendar/internal/pkg/errs"
)

const (
	MsgArrangementRequired = "Aranžman je obavezan"
	MsgStartDateRequired   = "Datum i vrijeme termina su obavezni"
	MsgStartDateInvalid    = "Datum mora biti u formatu YYYY-MM-DDTHH:mm:ss"
	MsgDurationRequired    = "Trajanje termina je obavezno"
	MsgDurationPositive    = "Trajanje termina mora biti veće od 0"
	MsgStatusRequired      = "Status je obavezan"
)

var ErrModeMismatch = errors.New("draft shape does not match the selected mode")

// ValidationErrors maps a field name to the message shown next to it.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + v[k]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) Is(target error) bool {
	return target == errs.ErrValidationFailed
}

// Without returns a copy minus the given fields, nil when nothing is left.
func (v ValidationErrors) Without(fields ...string) ValidationErrors {
	if len(v) == 0 {
		return nil
	}
	out := make(ValidationErrors, len(v))
	for k, msg := range v {
		out[k] = msg
	}
	for _, f := range fields {
		delete(out, f)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Validate checks draft against the schema selected by mode and returns the
// normalized command. Validation failures come back as ValidationErrors.
func Validate(draft reservation.Draft, mode reservation.Mode) (reservation.Command, error) {
	if draft == nil || draft.Mode() != mode {
		return nil, ErrModeMismatch
	}
	switch d := draft.(type) {
	case reservation.CreateDraft:
		return validateCreate(d)
	case reservation.EditDraft:
		return validateEdit(d)
	default:
		return nil, ErrModeMismatch
	}
}

func validateCreate(d reservation.CreateDraft) (reservation.Command, error) {
	verrs := ValidationErrors{}

	if d.ArrangementID == nil || *d.ArrangementID <= 0 {
		verrs[FieldArrangementID] = MsgArrangementRequired
	}

	var start reservation.LocalTime
	if strings.TrimSpace(d.StartDate) == "" {
		verrs[FieldStartDate] = MsgStartDateRequired
	} else if parsed, err := reservation.ParseLocalTime(d.StartDate); err != nil {
		verrs[FieldStartDate] = MsgStartDateInvalid
	} else {
		start = parsed
	}

	switch {
	case d.DurationMinutes == nil:
		verrs[FieldDurationMinutes] = MsgDurationRequired
	case *d.DurationMinutes <= 0:
		verrs[FieldDurationMinutes] = MsgDurationPositive
	}

	if len(verrs) > 0 {
		return nil, verrs
	}
	return reservation.CreateCommand{
		ArrangementID:   *d.ArrangementID,
		StartDate:       start,
		DurationMinutes: *d.DurationMinutes,
		Note:            d.Note,
	}, nil
}

func validateEdit(d reservation.EditDraft) (reservation.Command, error) {
	if d.StatusID == nil || *d.StatusID <= 0 {
		return nil, ValidationErrors{FieldStatusID: MsgStatusRequired}
	}
	return reservation.EditCommand{
		ReservationID: d.ReservationID,
		StatusID:      *d.StatusID,
		Note:          d.Note,
	}, nil
}
