package usecase

import (
	"context"
	"log/slog"
	"sync"

	"reservation-calendar/internal/domain/editor"
	"reservation-calendar/internal/domain/reservation"
	"reservation-calendar/internal/infra/notify"
	"reservation-calendar/internal/infra/readstore"
	"reservation-calendar/internal/pkg/errs"
	"reservation-calendar/internal/usecase/commands"
	"reservation-calendar/internal/usecase/form"
	"reservation-calendar/internal/usecase/queries"
)

var (
	ErrBusy                = errs.New("another mutation is in flight")
	ErrFieldNotEditable    = errs.New("field is not editable in the current mode")
	ErrNotInEditMode       = errs.New("editor is not in edit mode")
	ErrAlreadyStarted      = errs.New("calendar session already started")
	ErrReservationNotFound = errs.Mark(errs.New("reservation not in calendar"), errs.ErrReservationNotFound)
)

// User-facing confirmations
const (
	MsgCreated = "Sačuvano!"
	MsgEdited  = "Ažurirano!"
	MsgDeleted = "Obrisano!"
)

type EditorView struct {
	Open          bool
	IsEdit        bool
	Phase         string
	ReservationID *int
	Layout        editor.Layout
	Fields        []form.Field
	Required      []string
	Draft         reservation.Draft
	Errors        form.ValidationErrors
}

type View struct {
	Loading      bool
	Editor       EditorView
	Events       []queries.CalendarEvent
	Statuses     []queries.StatusOption
	Arrangements []queries.ArrangementOption
}

// CalendarSession drives one calendar page: the editor modal, its form and the
// reservations shown behind it.
type CalendarSession interface {
	Start(ctx context.Context) error
	OpenCreate() error
	OpenEdit(reservationID int) error
	Cancel()
	UpdateDraft(p DraftPatch) error
	NoteKey(key string) error
	Submit(ctx context.Context) error
	Delete(ctx context.Context) error
	View() View
}

type calendarSessionImpl struct {
	coordinator commands.SyncCoordinator
	store       readstore.ReservationReader
	catalog     queries.Catalog
	sink        notify.Sink

	mu      sync.Mutex
	state   editor.State
	errors  form.ValidationErrors
	started bool
	// bumped on every open so a late mutation result cannot close a newer editor
	generation int

	eventsMu sync.RWMutex
	events   []queries.CalendarEvent
}

func NewCalendarSession(
	coordinator commands.SyncCoordinator,
	store readstore.ReservationReader,
	catalog queries.Catalog,
	sink notify.Sink,
) CalendarSession {
	s := &calendarSessionImpl{
		coordinator: coordinator,
		store:       store,
		catalog:     catalog,
		sink:        sink,
		state:       editor.NewState(true),
		events:      []queries.CalendarEvent{},
	}
	store.Subscribe(s.recompose)
	return s
}

// Start performs the initial load. On failure loading stays on and nothing is
// retried.
func (s *calendarSessionImpl) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.started = true
	s.mu.Unlock()

	if err := s.coordinator.Initialize(ctx); err != nil {
		s.sink.Error(err)
		return err
	}

	s.mu.Lock()
	s.dispatch(editor.SetLoading{Loading: false})
	s.mu.Unlock()
	slog.Info("calendar loaded", "reservations", s.store.Len())
	return nil
}

func (s *calendarSessionImpl) OpenCreate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.dispatch(editor.OpenCreate{}); err != nil {
		return err
	}
	s.opened()
	return nil
}

func (s *calendarSessionImpl) OpenEdit(reservationID int) error {
	record, ok := s.store.Get(reservationID)
	if !ok {
		return errs.Wrapf(ErrReservationNotFound, "reservation %d", reservationID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.dispatch(editor.OpenEdit{Record: record}); err != nil {
		return err
	}
	s.opened()
	return nil
}

func (s *calendarSessionImpl) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dispatch(editor.Close{Reason: editor.CloseCanceled})
	s.errors = nil
}

func (s *calendarSessionImpl) UpdateDraft(p DraftPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.IsOpen() {
		return errs.ErrEditorClosed
	}
	next, err := p.applyTo(s.state.Draft())
	if err != nil {
		return err
	}
	if err := s.dispatch(editor.ReplaceDraft{Draft: next}); err != nil {
		return err
	}
	s.errors = s.errors.Without(p.Fields()...)
	return nil
}

func (s *calendarSessionImpl) NoteKey(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.IsOpen() {
		return errs.ErrEditorClosed
	}
	draft := s.state.Draft()
	note, _ := form.ApplyNoteKey(draft.NoteText(), key)
	if note == draft.NoteText() {
		return nil
	}
	return s.dispatch(editor.ReplaceDraft{Draft: reservation.WithNote(draft, note)})
}

// Submit validates the active draft and sends it. The editor closes only after
// the store has been reconciled; on failure it stays open with the draft intact.
func (s *calendarSessionImpl) Submit(ctx context.Context) error {
	s.mu.Lock()
	if !s.state.IsOpen() {
		s.mu.Unlock()
		return errs.ErrEditorClosed
	}
	if s.state.Loading() {
		s.mu.Unlock()
		return ErrBusy
	}
	cmd, err := form.Validate(s.state.Draft(), s.state.Mode())
	if err != nil {
		var verrs form.ValidationErrors
		if errs.As(err, &verrs) {
			s.errors = verrs
		}
		s.mu.Unlock()
		return err
	}
	s.errors = nil
	s.dispatch(editor.SetLoading{Loading: true})
	generation := s.generation
	s.mu.Unlock()

	// a dispatched mutation is never canceled by the caller going away
	mctx := context.WithoutCancel(ctx)

	var msg string
	switch c := cmd.(type) {
	case reservation.CreateCommand:
		err, msg = s.coordinator.Create(mctx, c), MsgCreated
	case reservation.EditCommand:
		err, msg = s.coordinator.Edit(mctx, c), MsgEdited
	default:
		err = errs.ErrDraftModeMismatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatch(editor.SetLoading{Loading: false})
	if err != nil {
		s.sink.Error(err)
		return err
	}
	if s.generation == generation {
		s.dispatch(editor.Close{Reason: editor.CloseSubmitted})
	}
	s.sink.Success(msg)
	return nil
}

// Delete closes the editor right away and keeps loading on until the backend
// answers.
func (s *calendarSessionImpl) Delete(ctx context.Context) error {
	s.mu.Lock()
	if !s.state.IsEdit() {
		s.mu.Unlock()
		return ErrNotInEditMode
	}
	if s.state.Loading() {
		s.mu.Unlock()
		return ErrBusy
	}
	id, _ := s.state.ReservationID()
	s.dispatch(editor.Close{Reason: editor.CloseDeleted})
	s.dispatch(editor.SetLoading{Loading: true})
	s.errors = nil
	s.mu.Unlock()

	err := s.coordinator.Delete(context.WithoutCancel(ctx), id)

	s.mu.Lock()
	s.dispatch(editor.SetLoading{Loading: false})
	s.mu.Unlock()

	if err != nil {
		s.sink.Error(err)
		return err
	}
	s.sink.Success(MsgDeleted)
	return nil
}

func (s *calendarSessionImpl) View() View {
	s.mu.Lock()
	state := s.state
	verrs := s.errors.Without()
	s.mu.Unlock()

	s.eventsMu.RLock()
	events := append([]queries.CalendarEvent(nil), s.events...)
	s.eventsMu.RUnlock()

	return View{
		Loading:      state.Loading(),
		Editor:       editorView(state, verrs),
		Events:       events,
		Statuses:     queries.StatusOptions(s.catalog.Statuses()),
		Arrangements: queries.ArrangementOptions(s.catalog.Arrangements()),
	}
}

func editorView(state editor.State, verrs form.ValidationErrors) EditorView {
	v := EditorView{
		Open:   state.IsOpen(),
		IsEdit: state.IsEdit(),
		Phase:  state.Phase().String(),
		Layout: state.Layout(),
	}
	if !v.Open {
		return v
	}
	mode := state.Mode()
	v.Fields = form.Fields(mode)
	v.Required = form.RequiredFields(mode)
	v.Draft = state.Draft()
	v.Errors = verrs
	if id, ok := state.ReservationID(); ok {
		v.ReservationID = &id
	}
	return v
}

// dispatch runs the reducer and translates editor errors. Callers hold s.mu.
func (s *calendarSessionImpl) dispatch(a editor.Action) error {
	next, err := editor.Reduce(s.state, a)
	if err != nil {
		return editorErr(err)
	}
	s.state = next
	return nil
}

func (s *calendarSessionImpl) opened() {
	s.generation++
	s.errors = nil
}

// recompose reads the store under eventsMu instead of trusting the passed
// snapshot, so the last notification to run always leaves the latest contents.
func (s *calendarSessionImpl) recompose([]reservation.Reservation) {
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()
	s.events = queries.ComposeEvents(s.store.Snapshot(), s.catalog.Statuses())
}

func editorErr(err error) error {
	switch {
	case errs.Is(err, editor.ErrAlreadyOpen):
		return errs.Mark(err, errs.ErrEditorAlreadyOpen)
	case errs.Is(err, editor.ErrClosed):
		return errs.Mark(err, errs.ErrEditorClosed)
	case errs.Is(err, editor.ErrDraftModeMismatch), errs.Is(err, editor.ErrDraftIdentity):
		return errs.Mark(err, errs.ErrDraftModeMismatch)
	default:
		return err
	}
}
