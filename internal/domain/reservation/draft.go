package reservation

// Mode selects which draft shape, schema and layout the editor uses.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

func (m Mode) IsEdit() bool {
	return m == ModeEdit
}

// Draft is the editor's transient form state: either a CreateDraft or an
// EditDraft, never a mix of both.
type Draft interface {
	Mode() Mode
	NoteText() string
	withNote(note string) Draft
}

// CreateDraft carries the fields a new reservation needs. StartDate holds the
// wire-formatted value, empty when nothing is picked. The status is assigned
// by the backend.
type CreateDraft struct {
	ArrangementID   *int   `json:"arrangementId"`
	StartDate       string `json:"startDate"`
	DurationMinutes *int   `json:"durationMinutes"`
	Note            string `json:"note"`
}

func NewCreateDraft() CreateDraft {
	return CreateDraft{}
}

func (CreateDraft) Mode() Mode         { return ModeCreate }
func (d CreateDraft) NoteText() string { return d.Note }
func (d CreateDraft) withNote(n string) Draft {
	d.Note = n
	return d
}

// EditDraft only carries what stays mutable after creation.
type EditDraft struct {
	ReservationID int    `json:"reservationId"`
	StatusID      *int   `json:"statusId"`
	Note          string `json:"note"`
}

// EditDraftFrom seeds the draft from a calendar entry. Schedule and
// arrangement are left out on purpose: they are fixed once a reservation exists.
func EditDraftFrom(r Reservation) EditDraft {
	d := EditDraft{
		ReservationID: r.ReservationID,
		Note:          r.NoteText(),
	}
	if r.StatusID != 0 {
		id := r.StatusID
		d.StatusID = &id
	}
	return d
}

func (EditDraft) Mode() Mode         { return ModeEdit }
func (d EditDraft) NoteText() string { return d.Note }
func (d EditDraft) withNote(n string) Draft {
	d.Note = n
	return d
}

func WithNote(d Draft, note string) Draft {
	return d.withNote(note)
}

// Command is a validated draft ready to be sent to the backend.
type Command interface {
	Mode() Mode
}

type CreateCommand struct {
	ArrangementID   int       `json:"arrangementId"`
	StartDate       LocalTime `json:"startDate"`
	DurationMinutes int       `json:"durationMinutes"`
	Note            string    `json:"note"`
}

func (CreateCommand) Mode() Mode { return ModeCreate }

type EditCommand struct {
	ReservationID int    `json:"reservationId"`
	StatusID      int    `json:"statusId"`
	Note          string `json:"note"`
}

func (EditCommand) Mode() Mode { return ModeEdit }
