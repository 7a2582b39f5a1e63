package core

import (
	"context"
	"errors"
	"sync"
	"testing"
)

// fakeFetcher serves canned CSV text per URL and counts fetches.
type fakeFetcher struct {
	mu    sync.Mutex
	texts map[string]string
	errs  map[string]error
	calls map[string]int
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		texts: make(map[string]string),
		errs:  make(map[string]error),
		calls: make(map[string]int),
	}
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[url]++
	if err := f.errs[url]; err != nil {
		return "", err
	}
	return f.texts[url], nil
}

func (f *fakeFetcher) callCount(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[url]
}

const (
	ordersURL  = "https://example.com/orders.csv"
	batchesURL = "https://example.com/batches.csv"
)

func newTestStore(f *fakeFetcher) *Store {
	return NewStore(f, ordersURL, batchesURL)
}

func TestEnsureOrders_CachesAcrossCalls(t *testing.T) {
	f := newFakeFetcher()
	f.texts[ordersURL] = "tracking_number,batch_id\nABC123,B1\n"
	s := newTestStore(f)
	ctx := context.Background()

	if _, err := s.EnsureOrders(ctx, false); err != nil {
		t.Fatalf("EnsureOrders() error = %v", err)
	}
	if _, err := s.EnsureOrders(ctx, false); err != nil {
		t.Fatalf("EnsureOrders() error = %v", err)
	}
	if got := f.callCount(ordersURL); got != 1 {
		t.Errorf("fetch count = %d, want 1 (cache not reused)", got)
	}
}

func TestEnsureOrders_ForceRefetches(t *testing.T) {
	f := newFakeFetcher()
	f.texts[ordersURL] = "tracking_number,batch_id\nABC123,B1\n"
	s := newTestStore(f)
	ctx := context.Background()

	if _, err := s.EnsureOrders(ctx, false); err != nil {
		t.Fatalf("EnsureOrders() error = %v", err)
	}
	if _, err := s.EnsureOrders(ctx, true); err != nil {
		t.Fatalf("EnsureOrders(force) error = %v", err)
	}
	if got := f.callCount(ordersURL); got != 2 {
		t.Errorf("fetch count = %d, want 2", got)
	}
}

func TestEnsure_EmptySheetIsCached(t *testing.T) {
	// A successfully fetched but empty sheet must not be refetched on every
	// call: empty and never-loaded are different states.
	f := newFakeFetcher()
	f.texts[batchesURL] = ""
	s := newTestStore(f)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		rows, err := s.EnsureBatches(ctx, false)
		if err != nil {
			t.Fatalf("EnsureBatches() error = %v", err)
		}
		if len(rows) != 0 {
			t.Fatalf("expected no rows, got %d", len(rows))
		}
	}
	if got := f.callCount(batchesURL); got != 1 {
		t.Errorf("fetch count = %d, want 1", got)
	}
}

func TestEnsure_FailureKeepsPreviousCache(t *testing.T) {
	f := newFakeFetcher()
	f.texts[ordersURL] = "tracking_number,batch_id\nABC123,B1\n"
	s := newTestStore(f)
	ctx := context.Background()

	if _, err := s.EnsureOrders(ctx, false); err != nil {
		t.Fatalf("EnsureOrders() error = %v", err)
	}

	f.mu.Lock()
	f.errs[ordersURL] = errors.New("boom")
	f.mu.Unlock()

	if _, err := s.EnsureOrders(ctx, true); err == nil {
		t.Fatal("EnsureOrders(force) expected error")
	}

	// The earlier rows must survive the failed reload.
	f.mu.Lock()
	delete(f.errs, ordersURL)
	f.mu.Unlock()

	rows, err := s.EnsureOrders(ctx, false)
	if err != nil {
		t.Fatalf("EnsureOrders() error = %v", err)
	}
	if len(rows) != 1 || rows[0].Get("tracking_number") != "ABC123" {
		t.Errorf("cache lost after failed reload: %v", rows)
	}
	if got := f.callCount(ordersURL); got != 2 {
		t.Errorf("fetch count = %d, want 2 (no refetch after failure)", got)
	}
}

func TestRefresh_DiscardsAndReloadsBoth(t *testing.T) {
	f := newFakeFetcher()
	f.texts[ordersURL] = "tracking_number,batch_id\nABC123,B1\n"
	f.texts[batchesURL] = "batch_id,date,status\nB1,2024-01-01,Готов к выдаче\n"
	s := newTestStore(f)
	ctx := context.Background()

	if err := s.LoadBoth(ctx, false); err != nil {
		t.Fatalf("LoadBoth() error = %v", err)
	}
	if err := s.Refresh(ctx); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	if got := f.callCount(ordersURL); got != 2 {
		t.Errorf("orders fetch count = %d, want 2", got)
	}
	if got := f.callCount(batchesURL); got != 2 {
		t.Errorf("batches fetch count = %d, want 2", got)
	}
}

func TestFindOrderByTracking_CaseInsensitive(t *testing.T) {
	f := newFakeFetcher()
	f.texts[ordersURL] = "tracking_number,batch_id\nABC123,B1\nDEF456,B2\n"
	s := newTestStore(f)

	order, found, err := s.FindOrderByTracking(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("FindOrderByTracking() error = %v", err)
	}
	if !found {
		t.Fatal("order not found for case-differing tracking number")
	}
	if got := order.Get("batch_id"); got != "B1" {
		t.Errorf("batch_id = %q, want %q", got, "B1")
	}
}

func TestFindOrderByTracking_Missing(t *testing.T) {
	f := newFakeFetcher()
	f.texts[ordersURL] = "tracking_number,batch_id\nABC123,B1\n"
	s := newTestStore(f)

	_, found, err := s.FindOrderByTracking(context.Background(), "NOPE")
	if err != nil {
		t.Fatalf("FindOrderByTracking() error = %v", err)
	}
	if found {
		t.Error("expected not found")
	}
}

func TestFindBatchByID_ExactMatch(t *testing.T) {
	f := newFakeFetcher()
	f.texts[batchesURL] = "batch_id,date,status\nB1,2024-01-01,В пути по России\n"
	s := newTestStore(f)
	ctx := context.Background()

	if _, found, _ := s.FindBatchByID(ctx, "B1"); !found {
		t.Error("batch B1 should be found")
	}
	if _, found, _ := s.FindBatchByID(ctx, " B1 "); !found {
		t.Error("batch id should be trimmed before matching")
	}
	// Batch ids are case-sensitive, unlike tracking numbers.
	if _, found, _ := s.FindBatchByID(ctx, "b1"); found {
		t.Error("batch lookup must be case-sensitive")
	}
}

func TestFindBatchByID_RussianHeaders(t *testing.T) {
	f := newFakeFetcher()
	f.texts[batchesURL] = "Партия,Дата отправки,Статус\nB7,2024-02-02,Готов к выдаче\n"
	s := newTestStore(f)

	batch, found, err := s.FindBatchByID(context.Background(), "B7")
	if err != nil {
		t.Fatalf("FindBatchByID() error = %v", err)
	}
	if !found {
		t.Fatal("batch with Russian headers not found")
	}
	if got := Field(batch, []string{"статус"}); got != "Готов к выдаче" {
		t.Errorf("status = %q, want %q", got, "Готов к выдаче")
	}
}
