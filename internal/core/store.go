package core

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/kitaygorod/tracker/internal/csv"
	"github.com/kitaygorod/tracker/internal/schema"
	"golang.org/x/sync/errgroup"
)

// Fetcher retrieves the raw CSV text of a published sheet. Implementations
// are expected to defeat intermediate caching (see internal/sheets) and to
// fail on non-success responses.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Store holds the two in-memory datasets (orders and shipment batches) and
// loads them on demand through the injected Fetcher. A nil cache means the
// dataset has never been loaded in this session.
//
// Requests are concurrent, so the caches are guarded by a RWMutex. A cache
// is replaced only after a fetch and parse succeed: a failed load leaves
// the previous rows (or nil) in place, never a partial state.
type Store struct {
	fetcher    Fetcher
	ordersURL  string
	batchesURL string

	mu      sync.RWMutex
	orders  []csv.Row
	batches []csv.Row
}

// NewStore creates a Store over the given fetcher and sheet URLs.
func NewStore(fetcher Fetcher, ordersURL, batchesURL string) *Store {
	return &Store{
		fetcher:    fetcher,
		ordersURL:  ordersURL,
		batchesURL: batchesURL,
	}
}

// EnsureOrders returns the orders dataset, fetching it first when force is
// set or the cache has never been populated.
func (s *Store) EnsureOrders(ctx context.Context, force bool) ([]csv.Row, error) {
	return s.ensure(ctx, force, s.ordersURL, &s.orders, "orders")
}

// EnsureBatches returns the batches dataset, fetching it first when force
// is set or the cache has never been populated.
func (s *Store) EnsureBatches(ctx context.Context, force bool) ([]csv.Row, error) {
	return s.ensure(ctx, force, s.batchesURL, &s.batches, "batches")
}

func (s *Store) ensure(ctx context.Context, force bool, url string, cache *[]csv.Row, name string) ([]csv.Row, error) {
	if !force {
		s.mu.RLock()
		rows := *cache
		s.mu.RUnlock()
		if rows != nil {
			return rows, nil
		}
	}

	text, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	rows := csv.Parse(text)
	if rows == nil {
		rows = []csv.Row{}
	}

	s.mu.Lock()
	*cache = rows
	s.mu.Unlock()
	return rows, nil
}

// LoadBoth fetches both datasets concurrently and waits for both to
// complete. With force unset, already-populated caches are reused.
func (s *Store) LoadBoth(ctx context.Context, force bool) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := s.EnsureOrders(ctx, force)
		return err
	})
	g.Go(func() error {
		_, err := s.EnsureBatches(ctx, force)
		return err
	})
	return g.Wait()
}

// Refresh discards both caches and reloads both datasets from scratch.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.orders = nil
	s.batches = nil
	s.mu.Unlock()
	return s.LoadBoth(ctx, false)
}

// FindOrderByTracking scans the orders dataset for the first row whose
// tracking number matches the given value case-insensitively. The dataset
// is loaded first if needed (non-forced).
func (s *Store) FindOrderByTracking(ctx context.Context, trackingNumber string) (csv.Row, bool, error) {
	orders, err := s.EnsureOrders(ctx, false)
	if err != nil {
		return csv.Row{}, false, err
	}
	want := strings.TrimSpace(trackingNumber)
	for _, row := range orders {
		if strings.EqualFold(Field(row, schema.TrackingNumberCandidates), want) {
			return row, true, nil
		}
	}
	return csv.Row{}, false, nil
}

// FindBatchByID scans the batches dataset for the first row whose batch
// identifier equals the given id exactly (trimmed, case-sensitive — batch
// ids are machine-assigned, unlike tracking numbers typed by users).
func (s *Store) FindBatchByID(ctx context.Context, batchID string) (csv.Row, bool, error) {
	batches, err := s.EnsureBatches(ctx, false)
	if err != nil {
		return csv.Row{}, false, err
	}
	want := strings.TrimSpace(batchID)
	for _, row := range batches {
		if Field(row, schema.BatchIDCandidates) == want {
			return row, true, nil
		}
	}
	return csv.Row{}, false, nil
}
