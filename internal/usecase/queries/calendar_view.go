package queries

import (
	"strings"

	"reservation-calendar/internal/domain/reservation"
)

const canceledColor = "red"

// CalendarEvent is what the calendar widget draws for one reservation.
type CalendarEvent struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"durationMinutes"`
	StatusID        int    `json:"statusId"`
	StatusName      string `json:"statusName"`
	Note            string `json:"note"`
	Canceled        bool   `json:"canceled"`
}

type StatusOption struct {
	Value     int    `json:"value"`
	Label     string `json:"label"`
	Code      string `json:"code"`
	Color     string `json:"color,omitempty"`
	Highlight bool   `json:"highlight"`
}

type ArrangementOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

func ComposeEvents(list []reservation.Reservation, statuses []reservation.Status) []CalendarEvent {
	canceledID, hasCanceled := reservation.CanceledStatusID(statuses)
	names := make(map[int]string, len(statuses))
	for _, s := range statuses {
		names[s.StatusID] = s.StatusName
	}

	events := make([]CalendarEvent, 0, len(list))
	for _, r := range list {
		statusName := r.StatusName
		if statusName == "" {
			statusName = names[r.StatusID]
		}
		events = append(events, CalendarEvent{
			ID:              r.ReservationID,
			Title:           r.Title(),
			Start:           r.StartDate.String(),
			End:             r.End().String(),
			DurationMinutes: r.DurationMinutes,
			StatusID:        r.StatusID,
			StatusName:      statusName,
			Note:            r.NoteText(),
			Canceled:        hasCanceled && r.StatusID == canceledID,
		})
	}
	return events
}

// StatusOptions paints the canceled status red; the rest are plain.
func StatusOptions(statuses []reservation.Status) []StatusOption {
	opts := make([]StatusOption, len(statuses))
	for i, s := range statuses {
		opts[i] = StatusOption{
			Value: s.StatusID,
			Label: s.StatusName,
			Code:  s.StatusCode,
		}
		if s.IsCanceled() {
			opts[i].Color = canceledColor
			opts[i].Highlight = true
		}
	}
	return opts
}

func ArrangementOptions(list []reservation.Arrangement) []ArrangementOption {
	opts := make([]ArrangementOption, len(list))
	for i, a := range list {
		opts[i] = ArrangementOption{Value: a.ID, Label: a.Value}
	}
	return opts
}

// FilterArrangements keeps options whose label contains search, ignoring case.
func FilterArrangements(opts []ArrangementOption, search string) []ArrangementOption {
	if search == "" {
		return opts
	}
	needle := strings.ToLower(search)
	out := make([]ArrangementOption, 0, len(opts))
	for _, o := range opts {
		if strings.Contains(strings.ToLower(o.Label), needle) {
			out = append(out, o)
		}
	}
	return out
}
