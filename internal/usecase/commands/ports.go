package commands

import (
	"context"
	"time"

	"reservation-calendar/internal/domain/reservation"
	"reservation-calendar/internal/infra/readstore"
	"reservation-calendar/internal/usecase/queries"
)

// Backend is everything the calendar needs from the reservation service.
type Backend interface {
	queries.ReferenceSource
	GetReservationsList(ctx context.Context) ([]reservation.Reservation, error)
	AddReservation(ctx context.Context, cmd reservation.CreateCommand) error
	EditReservation(ctx context.Context, cmd reservation.EditCommand) (reservation.EditResult, error)
	DeleteReservation(ctx context.Context, id int) error
}

// ReservationWriter is the only write path into the store.
type ReservationWriter interface {
	readstore.ReservationWriter
	Len() int
}

type ReferenceCatalog interface {
	Fetch(ctx context.Context) (queries.ReferenceData, error)
	Publish(data queries.ReferenceData)
	RefreshArrangements(ctx context.Context) error
}

type MutationRecorder interface {
	ObserveMutation(kind, outcome string, d time.Duration)
	SetStoreSize(n int)
}
