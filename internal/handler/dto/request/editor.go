package request

import (
	"bytes"
	"encoding/json"
	"time"

	"reservation-calendar/internal/domain/reservation"
	"reservation-calendar/internal/pkg/errs"
	"reservation-calendar/internal/usecase"
)

var ErrInvalidPickedDate = errs.New("startDate must be RFC 3339 or YYYY-MM-DDTHH:mm:ss")

// PickedDate tells "not sent" apart from "cleared": Set is true whenever the
// key is present, Value is nil when it was null or "".
type PickedDate struct {
	Set   bool
	Value *time.Time
}

func (p *PickedDate) UnmarshalJSON(data []byte) error {
	p.Set = true
	p.Value = nil
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ErrInvalidPickedDate
	}
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		p.Value = &t
		return nil
	}
	t, err := time.Parse(reservation.WireLayout, s)
	if err != nil {
		return ErrInvalidPickedDate
	}
	p.Value = &t
	return nil
}

type UpdateDraftRequest struct {
	ArrangementID   *int       `json:"arrangementId"`
	StartDate       PickedDate `json:"startDate" swaggertype:"string"`
	DurationMinutes *int       `json:"durationMinutes"`
	StatusID        *int       `json:"statusId"`
	Note            *string    `json:"note"`
}

func (r UpdateDraftRequest) ToPatch() usecase.DraftPatch {
	p := usecase.DraftPatch{
		ArrangementID:   r.ArrangementID,
		DurationMinutes: r.DurationMinutes,
		StatusID:        r.StatusID,
		Note:            r.Note,
	}
	if r.StartDate.Set {
		p.StartDate = &usecase.DatePick{Value: r.StartDate.Value}
	}
	return p
}

type NoteKeyRequest struct {
	Key string `json:"key" binding:"required"`
}
