// Package dataloader batches per-item GraphQL field lookups into single
// repository calls. Loaders are built per request and read the user from the
// request context, so one user's loader never serves another's rows.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/palipractice-backend/internal/domain"
)

const (
	maxBatch = 200
	wait     = 2 * time.Millisecond
)

type masteryRepo interface {
	GetByFormIDs(ctx context.Context, userID uuid.UUID, formIDs []domain.FormID) ([]domain.MasteryRecord, error)
}

// Repos holds the repositories the loaders read from.
type Repos struct {
	Mastery masteryRepo
}

// Loaders holds the per-request loader instances.
type Loaders struct {
	// MasteryByFormID yields nil for forms the user never practiced.
	MasteryByFormID *dataloader.Loader[domain.FormID, *domain.MasteryRecord]
}

// NewLoaders creates a fresh set of loaders. Results are cached for the
// loader's lifetime, so call it once per request.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		MasteryByFormID: newLoader(newMasteryBatchFn(repos.Mastery)),
	}
}

func newLoader[K comparable, V any](batchFn dataloader.BatchFunc[K, V]) *dataloader.Loader[K, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[K, V](wait),
		dataloader.WithBatchCapacity[K, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey struct{}

// WithLoaders stores l in ctx.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the request's loaders. It panics when Middleware did
// not run for the request.
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(contextKey{}).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: no loaders in context")
	}
	return l
}
