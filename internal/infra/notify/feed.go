package notify

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"reservation-calendar/internal/pkg/clock"
	"reservation-calendar/internal/pkg/errs"

	"github.com/google/uuid"
)

const GenericErrorMessage = "Došlo je do greške. Pokušajte ponovo."

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Sink receives user-facing notices. Presentation is up to the front-end.
type Sink interface {
	Success(msg string)
	Error(err error)
}

type Notice struct {
	ID      uuid.UUID `json:"id"`
	Kind    Kind      `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// publicMessager is implemented by errors that carry a message meant for users,
// such as the backend's {"message": ...} body.
type publicMessager interface {
	PublicMessage() string
}

// MessageFor picks the text shown for err.
func MessageFor(err error) string {
	var pm publicMessager
	if errs.As(err, &pm) && pm.PublicMessage() != "" {
		return pm.PublicMessage()
	}
	return GenericErrorMessage
}

// Feed logs every notice and keeps the most recent ones, newest last.
type Feed struct {
	mu      sync.RWMutex
	notices []Notice
	limit   int
	clock   clock.Clock
}

func NewFeed(limit int, c clock.Clock) *Feed {
	if limit <= 0 {
		limit = 1
	}
	return &Feed{limit: limit, clock: c}
}

func (f *Feed) Success(msg string) {
	slog.Info("notice", "kind", KindSuccess, "message", msg)
	f.push(KindSuccess, msg)
}

func (f *Feed) Error(err error) {
	msg := MessageFor(err)
	slog.Warn("notice", "kind", KindError, "message", msg, "error", err)
	f.push(KindError, msg)
}

func (f *Feed) Recent() []Notice {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.notices)
}

func (f *Feed) push(kind Kind, msg string) {
	n := Notice{
		ID:      uuid.New(),
		Kind:    kind,
		Message: msg,
		At:      f.clock.Now(),
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, n)
	if over := len(f.notices) - f.limit; over > 0 {
		f.notices = slices.Delete(f.notices, 0, over)
	}
}
