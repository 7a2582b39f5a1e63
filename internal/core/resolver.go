package core

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/kitaygorod/tracker/internal/schema"
)

// Result is the display-ready outcome of a successful lookup. Status is
// either an entry of the status scale or "" when the sheet carried text
// the scale does not recognize. Stage is -1 in that case so the UI renders
// an empty progress bar rather than guessing.
type Result struct {
	TrackingNumber string  `json:"tracking_number"`
	Status         string  `json:"status"`
	Date           string  `json:"date"`
	BatchID        string  `json:"batch_id"`
	Stage          int     `json:"stage"`
	Progress       float64 `json:"progress"`
}

// Resolver orchestrates one tracking lookup: refresh both datasets, find
// the order, join to its batch, extract date and status, normalize.
type Resolver struct {
	store  *Store
	status *StatusNormalizer
	logger *slog.Logger
}

// NewResolver creates a Resolver. logger may be nil, in which case the
// default slog logger is used.
func NewResolver(store *Store, status *StatusNormalizer, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{store: store, status: status, logger: logger}
}

// StatusScale returns the ordered status scale used for normalization,
// least progress first.
func (r *Resolver) StatusScale() []string {
	return r.status.Scale()
}

// Track resolves a tracking number to a Result.
//
// Both datasets are force-refreshed first so a lookup always sees the
// latest sheet edits; freshness wins over the cache here. Failure modes:
// a *ValidationError for rejected input, ErrNotFound when the tracking
// number is absent (an expected outcome), ErrBatchMissing when the sheets
// are inconsistent, and a wrapped *TransportError when a fetch fails.
func (r *Resolver) Track(ctx context.Context, trackingNumber string) (*Result, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return nil, errEmptyInput()
	}
	if n := len([]rune(trackingNumber)); n < 3 || n > 40 {
		return nil, errBadLength(n)
	}

	// One id per lookup so the fetch, join and normalization log entries of
	// a single request can be correlated.
	logger := r.logger.With("lookup_id", uuid.NewString(), "tracking_number", trackingNumber)

	if err := r.store.LoadBoth(ctx, true); err != nil {
		logger.Error("dataset load failed", "error", err)
		return nil, err
	}

	order, found, err := r.store.FindOrderByTracking(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}
	if !found {
		logger.Info("tracking number not found")
		return nil, ErrNotFound
	}

	batchID := Field(order, schema.BatchIDCandidates)
	batch, found, err := r.store.FindBatchByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if !found {
		logger.Error("order references missing batch", "batch_id", batchID)
		return nil, ErrBatchMissing
	}

	date := Field(batch, schema.DateCandidates)
	if date == "" {
		date = FieldFuzzy(batch, schema.DateTokens)
	}
	if date == "" {
		logger.Warn("no date column resolved", "batch_id", batchID, "headers", batch.Headers)
	}

	rawStatus := Field(batch, schema.StatusCandidates)
	if rawStatus == "" {
		rawStatus = FieldFuzzy(batch, schema.StatusCandidates)
	}

	status := r.status.Normalize(rawStatus)
	if status == "" && CleanValue(rawStatus) != "" {
		logger.Warn("status text not on the scale", "status", CleanValue(rawStatus), "batch_id", batchID)
	}

	stage := -1
	if i, ok := r.status.Stage(status); ok {
		stage = i
	}

	logger.Info("lookup resolved",
		"batch_id", batchID,
		"status", status,
		"date", date,
	)

	return &Result{
		TrackingNumber: trackingNumber,
		Status:         status,
		Date:           date,
		BatchID:        batchID,
		Stage:          stage,
		Progress:       r.status.Percent(status),
	}, nil
}
