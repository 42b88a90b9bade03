package queries

import (
	"context"
	"slices"
	"sync"

	"reservation-calendar/internal/domain/reservation"
	"reservation-calendar/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

var (
	ErrArrangementsFetchFailed = errs.New("failed to fetch arrangements")
	ErrStatusesFetchFailed     = errs.New("failed to fetch statuses")
)

// ReferenceSource is the read side of the backend that serves lookup data.
type ReferenceSource interface {
	GetArrangementsList(ctx context.Context) ([]reservation.Arrangement, error)
	GetStatusList(ctx context.Context, domain string) ([]reservation.Status, error)
}

type ReferenceData struct {
	Arrangements []reservation.Arrangement
	Statuses     []reservation.Status
}

// Catalog holds the status and arrangement lookups for one session. Statuses
// are loaded once; arrangements are refreshed after create and delete.
type Catalog interface {
	Fetch(ctx context.Context) (ReferenceData, error)
	Publish(data ReferenceData)
	RefreshArrangements(ctx context.Context) error
	Statuses() []reservation.Status
	Arrangements() []reservation.Arrangement
}

type catalogImpl struct {
	source       ReferenceSource
	statusDomain string

	mu           sync.RWMutex
	statuses     []reservation.Status
	arrangements []reservation.Arrangement
}

func NewCatalog(source ReferenceSource, statusDomain string) Catalog {
	return &catalogImpl{
		source:       source,
		statusDomain: statusDomain,
	}
}

// Fetch loads both lookups concurrently without publishing them.
func (c *catalogImpl) Fetch(ctx context.Context) (ReferenceData, error) {
	var data ReferenceData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := c.source.GetArrangementsList(gctx)
		if err != nil {
			return errs.Mark(err, ErrArrangementsFetchFailed)
		}
		data.Arrangements = list
		return nil
	})
	g.Go(func() error {
		list, err := c.source.GetStatusList(gctx, c.statusDomain)
		if err != nil {
			return errs.Mark(err, ErrStatusesFetchFailed)
		}
		data.Statuses = list
		return nil
	})

	if err := g.Wait(); err != nil {
		return ReferenceData{}, err
	}
	return data, nil
}

func (c *catalogImpl) Publish(data ReferenceData) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.arrangements = slices.Clone(data.Arrangements)
	c.statuses = slices.Clone(data.Statuses)
}

// RefreshArrangements replaces the arrangement list; statuses are untouched.
func (c *catalogImpl) RefreshArrangements(ctx context.Context) error {
	list, err := c.source.GetArrangementsList(ctx)
	if err != nil {
		return errs.Mark(err, ErrArrangementsFetchFailed)
	}

	c.mu.Lock()
	c.arrangements = slices.Clone(list)
	c.mu.Unlock()
	return nil
}

func (c *catalogImpl) Statuses() []reservation.Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.statuses)
}

func (c *catalogImpl) Arrangements() []reservation.Arrangement {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.arrangements)
}
