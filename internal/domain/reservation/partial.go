package reservation

import (
	"encoding/json"

	"reservation-calendar/internal/pkg/patch"
	"reservation-calendar/internal/pkg/ptr"
)

// Partial is the subset of reservation fields the backend returns after an
// edit. Only keys present in the payload are merged; a present "note": null
// clears the note.
type Partial struct {
	StartDate       *LocalTime
	DurationMinutes *int
	StatusID        *int
	StatusName      *string
	ArrangementID   *int
	ArrangementName *string
	NoteSet         bool
	Note            *string
}

// EditResult is the body of a successful edit call.
type EditResult struct {
	Data Partial `json:"data"`
}

func (p *Partial) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Partial{}

	targets := map[string]any{
		"startDate":       &p.StartDate,
		"durationMinutes": &p.DurationMinutes,
		"statusId":        &p.StatusID,
		"statusName":      &p.StatusName,
		"arrangementId":   &p.ArrangementID,
		"arrangementName": &p.ArrangementName,
		"note":            &p.Note,
	}
	for key, msg := range raw {
		target, ok := targets[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(msg, target); err != nil {
			return err
		}
		if key == "note" {
			p.NoteSet = true
		}
	}
	return nil
}

func (p Partial) MarshalJSON() ([]byte, error) {
	out := map[string]any{}
	if p.StartDate != nil {
		out["startDate"] = p.StartDate
	}
	if p.DurationMinutes != nil {
		out["durationMinutes"] = *p.DurationMinutes
	}
	if p.StatusID != nil {
		out["statusId"] = *p.StatusID
	}
	if p.StatusName != nil {
		out["statusName"] = *p.StatusName
	}
	if p.ArrangementID != nil {
		out["arrangementId"] = *p.ArrangementID
	}
	if p.ArrangementName != nil {
		out["arrangementName"] = *p.ArrangementName
	}
	if p.NoteSet {
		out["note"] = p.Note
	}
	return json.Marshal(out)
}

// Fields lists the wire keys the partial carries, sorted.
func (p Partial) Fields() []string {
	var fields []string
	add := func(present bool, key string) {
		if present {
			fields = append(fields, key)
		}
	}
	add(p.ArrangementID != nil, "arrangementId")
	add(p.ArrangementName != nil, "arrangementName")
	add(p.DurationMinutes != nil, "durationMinutes")
	add(p.NoteSet, "note")
	add(p.StartDate != nil, "startDate")
	add(p.StatusID != nil, "statusId")
	add(p.StatusName != nil, "statusName")
	return fields
}

// Merge returns r with the present fields of p applied. ReservationID is the
// identity and never changes.
func (r Reservation) Merge(p Partial) Reservation {
	out := r.Clone()
	out.StartDate = patch.Coalesce(p.StartDate, r.StartDate)
	out.DurationMinutes = patch.Coalesce(p.DurationMinutes, r.DurationMinutes)
	out.StatusID = patch.Coalesce(p.StatusID, r.StatusID)
	out.StatusName = patch.Coalesce(p.StatusName, r.StatusName)
	out.ArrangementID = patch.Coalesce(p.ArrangementID, r.ArrangementID)
	out.ArrangementName = patch.Coalesce(p.ArrangementName, r.ArrangementName)
	if p.NoteSet {
		out.Note = ptr.Clone(p.Note)
	}
	return out
}
