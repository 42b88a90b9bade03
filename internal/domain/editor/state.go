package editor

import (
	"errors"

	"reservation-calendar/internal/domain/reservation"
)

var (
	ErrAlreadyOpen       = errors.New("editor is already open")
	ErrClosed            = errors.New("editor is closed")
	ErrDraftModeMismatch = errors.New("draft does not match editor mode")
	ErrDraftIdentity     = errors.New("draft belongs to another reservation")
)

type Phase int

const (
	PhaseClosed Phase = iota
	PhaseCreateOpen
	PhaseEditOpen
)

func (p Phase) String() string {
	switch p {
	case PhaseCreateOpen:
		return "create_open"
	case PhaseEditOpen:
		return "edit_open"
	default:
		return "closed"
	}
}

type CloseReason int

const (
	CloseCanceled CloseReason = iota
	CloseSubmitted
	CloseDeleted
)

func (r CloseReason) String() string {
	switch r {
	case CloseSubmitted:
		return "submitted"
	case CloseDeleted:
		return "deleted"
	default:
		return "canceled"
	}
}

// State is the editor's finite state plus the orthogonal loading flag. It is
// a value; transitions go through Reduce.
type State struct {
	phase         Phase
	reservationID int
	draft         reservation.Draft
	loading       bool
}

func NewState(loading bool) State {
	return State{loading: loading}
}

func (s State) Phase() Phase   { return s.phase }
func (s State) IsOpen() bool   { return s.phase != PhaseClosed }
func (s State) IsEdit() bool   { return s.phase == PhaseEditOpen }
func (s State) Loading() bool  { return s.loading }
func (s State) Layout() Layout { return LayoutFor(s.IsEdit()) }

// Draft is nil while closed.
func (s State) Draft() reservation.Draft { return s.draft }

func (s State) Mode() reservation.Mode {
	if s.IsEdit() {
		return reservation.ModeEdit
	}
	return reservation.ModeCreate
}

// ReservationID is only set in PhaseEditOpen.
func (s State) ReservationID() (int, bool) {
	if s.phase != PhaseEditOpen {
		return 0, false
	}
	return s.reservationID, true
}

type Action interface {
	apply(s State) (State, error)
}

// OpenCreate resets the draft to empty create-shaped defaults.
type OpenCreate struct{}

// OpenEdit seeds an edit draft from the selected calendar entry.
type OpenEdit struct {
	Record reservation.Reservation
}

type Close struct {
	Reason CloseReason
}

// ReplaceDraft swaps the active draft; the shape must match the open mode.
type ReplaceDraft struct {
	Draft reservation.Draft
}

type SetLoading struct {
	Loading bool
}

// Reduce applies a to s. On error s is returned unchanged.
func Reduce(s State, a Action) (State, error) {
	next, err := a.apply(s)
	if err != nil {
		return s, err
	}
	return next, nil
}

func (OpenCreate) apply(s State) (State, error) {
	if s.IsOpen() {
		return s, ErrAlreadyOpen
	}
	s.phase = PhaseCreateOpen
	s.reservationID = 0
	s.draft = reservation.NewCreateDraft()
	return s, nil
}

func (a OpenEdit) apply(s State) (State, error) {
	if s.IsOpen() {
		return s, ErrAlreadyOpen
	}
	s.phase = PhaseEditOpen
	s.reservationID = a.Record.ReservationID
	s.draft = reservation.EditDraftFrom(a.Record)
	return s, nil
}

func (Close) apply(s State) (State, error) {
	s.phase = PhaseClosed
	s.reservationID = 0
	s.draft = nil
	return s, nil
}

func (a ReplaceDraft) apply(s State) (State, error) {
	if !s.IsOpen() {
		return s, ErrClosed
	}
	if a.Draft == nil || a.Draft.Mode() != s.Mode() {
		return s, ErrDraftModeMismatch
	}
	if d, ok := a.Draft.(reservation.EditDraft); ok && d.ReservationID != s.reservationID {
		return s, ErrDraftIdentity
	}
	s.draft = a.Draft
	return s, nil
}

func (a SetLoading) apply(s State) (State, error) {
	s.loading = a.Loading
	return s, nil
}
