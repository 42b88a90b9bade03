package response

import (
	"reservation-calendar/internal/domain/editor"
	"reservation-calendar/internal/domain/reservation"
	"reservation-calendar/internal/infra/notify"
	"reservation-calendar/internal/usecase"
	"reservation-calendar/internal/usecase/form"
	"reservation-calendar/internal/usecase/queries"
)

type DraftResponse struct {
	Mode            string `json:"mode"`
	ReservationID   *int   `json:"reservationId,omitempty"`
	ArrangementID   *int   `json:"arrangementId,omitempty"`
	StartDate       string `json:"startDate,omitempty"`
	DurationMinutes *int   `json:"durationMinutes,omitempty"`
	StatusID        *int   `json:"statusId,omitempty"`
	Note            string `json:"note"`
}

type EditorResponse struct {
	Open          bool              `json:"open"`
	IsEdit        bool              `json:"isEdit"`
	Phase         string            `json:"phase"`
	ReservationID *int              `json:"reservationId,omitempty"`
	Layout        editor.Layout     `json:"layout"`
	Fields        []form.Field      `json:"fields"`
	Required      []string          `json:"required"`
	Draft         *DraftResponse    `json:"draft,omitempty"`
	Errors        map[string]string `json:"errors,omitempty"`
}

type CalendarResponse struct {
	Loading      bool                        `json:"loading"`
	Editor       EditorResponse              `json:"editor"`
	Events       []queries.CalendarEvent     `json:"events"`
	Statuses     []queries.StatusOption      `json:"statuses"`
	Arrangements []queries.ArrangementOption `json:"arrangements"`
}

// FromView renders the session view; arrangementSearch narrows the picker.
func FromView(v usecase.View, arrangementSearch string) *CalendarResponse {
	return &CalendarResponse{
		Loading: v.Loading,
		Editor: EditorResponse{
			Open:          v.Editor.Open,
			IsEdit:        v.Editor.IsEdit,
			Phase:         v.Editor.Phase,
			ReservationID: v.Editor.ReservationID,
			Layout:        v.Editor.Layout,
			Fields:        nonNil(v.Editor.Fields),
			Required:      nonNil(v.Editor.Required),
			Draft:         fromDraft(v.Editor.Draft),
			Errors:        v.Editor.Errors,
		},
		Events:       nonNil(v.Events),
		Statuses:     nonNil(v.Statuses),
		Arrangements: nonNil(queries.FilterArrangements(v.Arrangements, arrangementSearch)),
	}
}

func fromDraft(d reservation.Draft) *DraftResponse {
	switch draft := d.(type) {
	case reservation.CreateDraft:
		return &DraftResponse{
			Mode:            draft.Mode().String(),
			ArrangementID:   draft.ArrangementID,
			StartDate:       draft.StartDate,
			DurationMinutes: draft.DurationMinutes,
			Note:            draft.Note,
		}
	case reservation.EditDraft:
		id := draft.ReservationID
		return &DraftResponse{
			Mode:          draft.Mode().String(),
			ReservationID: &id,
			StatusID:      draft.StatusID,
			Note:          draft.Note,
		}
	default:
		return nil
	}
}

type NoticeResponse struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	At      int64  `json:"at"`
}

func FromNotices(list []notify.Notice) []*NoticeResponse {
	res := make([]*NoticeResponse, len(list))
	for i, n := range list {
		res[i] = &NoticeResponse{
			ID:      n.ID.String(),
			Kind:    string(n.Kind),
			Message: n.Message,
			At:      n.At.Unix(),
		}
	}
	return res
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
