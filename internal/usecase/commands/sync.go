package commands

import (
	"context"
	"log/slog"

	"reservation-calendar/internal/domain/reservation"
	"reservation-calendar/internal/pkg/clock"
	"reservation-calendar/internal/pkg/errs"
	"reservation-calendar/internal/pkg/metrics"
	"reservation-calendar/internal/usecase/queries"

	"golang.org/x/sync/errgroup"
)

var (
	ErrInitialLoadFailed = errs.New("initial load failed")
	ErrCreateFailed      = errs.New("create reservation failed")
	ErrEditFailed        = errs.New("edit reservation failed")
	ErrDeleteFailed      = errs.New("delete reservation failed")
	ErrRefetchFailed     = errs.New("refetch after mutation failed")
)

// Mutation kinds used in logs and metrics
const (
	KindLoad   = "load"
	KindCreate = "create"
	KindEdit   = "edit"
	KindDelete = "delete"
)

// SyncCoordinator sends mutations to the backend and reconciles the store:
// create and delete refetch the whole list, edit patches one record with the
// backend's answer.
type SyncCoordinator interface {
	Initialize(ctx context.Context) error
	Create(ctx context.Context, cmd reservation.CreateCommand) error
	Edit(ctx context.Context, cmd reservation.EditCommand) error
	Delete(ctx context.Context, id int) error
}

type syncCoordinatorImpl struct {
	backend  Backend
	store    ReservationWriter
	catalog  ReferenceCatalog
	recorder MutationRecorder
	clock    clock.Clock
}

func NewSyncCoordinator(
	backend Backend,
	store ReservationWriter,
	catalog ReferenceCatalog,
	recorder MutationRecorder,
	clock clock.Clock,
) SyncCoordinator {
	return &syncCoordinatorImpl{
		backend:  backend,
		store:    store,
		catalog:  catalog,
		recorder: recorder,
		clock:    clock,
	}
}

// Initialize loads lookups and reservations together. Nothing is published
// unless all three requests succeed.
func (s *syncCoordinatorImpl) Initialize(ctx context.Context) (err error) {
	defer s.observe(KindLoad, &err)()

	var (
		refs queries.ReferenceData
		list []reservation.Reservation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, fetchErr := s.catalog.Fetch(gctx)
		refs = data
		return fetchErr
	})
	g.Go(func() error {
		res, fetchErr := s.backend.GetReservationsList(gctx)
		list = res
		return fetchErr
	})
	if err = g.Wait(); err != nil {
		return errs.Mark(err, ErrInitialLoadFailed)
	}

	s.catalog.Publish(refs)
	s.store.ReplaceAll(list)
	return nil
}

func (s *syncCoordinatorImpl) Create(ctx context.Context, cmd reservation.CreateCommand) (err error) {
	defer s.observe(KindCreate, &err)()

	if err = s.backend.AddReservation(ctx, cmd); err != nil {
		return errs.Mark(err, ErrCreateFailed)
	}
	if err = s.refetchReservations(ctx); err != nil {
		return err
	}
	if err = s.catalog.RefreshArrangements(ctx); err != nil {
		return errs.Mark(err, ErrRefetchFailed)
	}
	return nil
}

// Edit never refetches lookups; arrangement and schedule cannot change here.
func (s *syncCoordinatorImpl) Edit(ctx context.Context, cmd reservation.EditCommand) (err error) {
	defer s.observe(KindEdit, &err)()

	res, err := s.backend.EditReservation(ctx, cmd)
	if err != nil {
		return errs.Mark(err, ErrEditFailed)
	}
	if !s.store.PatchOne(cmd.ReservationID, res.Data) {
		slog.Warn("edited reservation not in store",
			"reservation_id", cmd.ReservationID)
	}
	return nil
}

func (s *syncCoordinatorImpl) Delete(ctx context.Context, id int) (err error) {
	defer s.observe(KindDelete, &err)()

	if err = s.backend.DeleteReservation(ctx, id); err != nil {
		return errs.Mark(err, ErrDeleteFailed)
	}
	if err = s.refetchReservations(ctx); err != nil {
		return err
	}
	// the list is already current; a stale arrangement picker is tolerable
	if refreshErr := s.catalog.RefreshArrangements(ctx); refreshErr != nil {
		slog.Warn("failed to refresh arrangements after delete",
			"reservation_id", id,
			"error", refreshErr)
	}
	return nil
}

func (s *syncCoordinatorImpl) refetchReservations(ctx context.Context) error {
	list, err := s.backend.GetReservationsList(ctx)
	if err != nil {
		return errs.Mark(err, ErrRefetchFailed)
	}
	s.store.ReplaceAll(list)
	return nil
}

func (s *syncCoordinatorImpl) observe(kind string, errp *error) func() {
	start := s.clock.Now()
	return func() {
		elapsed := s.clock.Now().Sub(start)
		outcome := metrics.OutcomeSuccess
		if *errp != nil {
			outcome = metrics.OutcomeFailure
			slog.Error("reservation sync failed",
				"kind", kind,
				"elapsed", elapsed,
				"error", *errp)
		} else {
			slog.Info("reservation sync completed",
				"kind", kind,
				"elapsed", elapsed)
		}
		s.recorder.ObserveMutation(kind, outcome, elapsed)
		s.recorder.SetStoreSize(s.store.Len())
	}
}
