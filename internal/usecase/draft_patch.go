package usecase

import (
	"time"

	"reservation-calendar/internal/domain/reservation"
	"reservation-calendar/internal/pkg/errs"
	"reservation-calendar/internal/pkg/ptr"
	"reservation-calendar/internal/usecase/form"
)

// DatePick is a value coming from the date picker. A nil Value means the
// picker was cleared.
type DatePick struct {
	Value *time.Time
}

// DraftPatch carries the fields the user changed. Nil fields are untouched.
type DraftPatch struct {
	ArrangementID   *int
	StartDate       *DatePick
	DurationMinutes *int
	StatusID        *int
	Note            *string
}

func (p DraftPatch) Fields() []string {
	var fields []string
	if p.ArrangementID != nil {
		fields = append(fields, form.FieldArrangementID)
	}
	if p.StartDate != nil {
		fields = append(fields, form.FieldStartDate)
	}
	if p.DurationMinutes != nil {
		fields = append(fields, form.FieldDurationMinutes)
	}
	if p.StatusID != nil {
		fields = append(fields, form.FieldStatusID)
	}
	if p.Note != nil {
		fields = append(fields, form.FieldNote)
	}
	return fields
}

func (p DraftPatch) applyTo(d reservation.Draft) (reservation.Draft, error) {
	mode := d.Mode()
	for _, f := range p.Fields() {
		if !form.IsEditable(mode, f) {
			return nil, errs.Wrapf(ErrFieldNotEditable, "%s in %s mode", f, mode)
		}
	}

	switch draft := d.(type) {
	case reservation.CreateDraft:
		if p.ArrangementID != nil {
			draft.ArrangementID = ptr.Clone(p.ArrangementID)
		}
		if p.StartDate != nil {
			draft.StartDate = form.FormatPickerDate(p.StartDate.Value)
		}
		if p.DurationMinutes != nil {
			draft.DurationMinutes = ptr.Clone(p.DurationMinutes)
		}
		if p.Note != nil {
			draft.Note = *p.Note
		}
		return draft, nil
	case reservation.EditDraft:
		if p.StatusID != nil {
			draft.StatusID = ptr.Clone(p.StatusID)
		}
		if p.Note != nil {
			draft.Note = *p.Note
		}
		return draft, nil
	default:
		return nil, errs.ErrDraftModeMismatch
	}
}
