package practice

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/palipractice-backend/internal/domain"
	"github.com/heartmarshall/palipractice-backend/internal/service/practice/queue"
	"github.com/heartmarshall/palipractice-backend/pkg/ctxutil"
)

// QueueItem is a practice item as handed to clients.
type QueueItem struct {
	domain.PracticeItem
	IrregularForms []string // surface forms the client cannot derive from the pattern
}

// Queue is the result of a build.
type Queue struct {
	Kind     domain.PracticeKind
	Items    []QueueItem
	PoolSize int // new plus due forms available in scope
	SeedDate time.Time
}

// RequestSize is the number of items a session asks for: the daily goal
// plus a margin, but never more than the pool holds.
func RequestSize(dailyGoal, poolSize int, multiplier float64) int {
	want := int(math.Ceil(float64(dailyGoal) * multiplier))
	return max(min(want, poolSize), 0)
}

// BuildQueue builds a queue for the caller's current settings without
// starting a session.
func (s *Service) BuildQueue(ctx context.Context, input BuildQueueInput) (*Queue, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	settings, err := s.loadSettings(ctx, userID, input.Kind)
	if err != nil {
		return nil, err
	}

	now := s.now()
	seed := input.SeedDate
	if seed.IsZero() {
		seed = now
	}

	items, pool, err := s.build(ctx, userID, settings, now, seed, 0, input.Count, nil)
	if err != nil {
		return nil, err
	}

	return &Queue{
		Kind:     input.Kind,
		Items:    s.enrich(items),
		PoolSize: pool,
		SeedDate: seed,
	}, nil
}

// build resolves the scope, splits it against stored mastery and runs the
// queue builder. Forms in exclude are left out of the pool. count 0 sizes
// the queue from the daily goal; round is passed through to queue.Input.
func (s *Service) build(
	ctx context.Context,
	userID uuid.UUID,
	settings domain.PracticeSettings,
	now, seed time.Time,
	round, count int,
	exclude map[domain.FormID]struct{},
) ([]domain.PracticeItem, int, error) {
	start := time.Now()

	eligible := queue.Resolve(s.catalog, settings.Scope())
	if len(exclude) > 0 {
		kept := eligible[:0:0]
		for _, c := range eligible {
			if _, skip := exclude[c.FormID]; !skip {
				kept = append(kept, c)
			}
		}
		eligible = kept
	}

	records, err := s.loadMastery(ctx, userID, eligible)
	if err != nil {
		return nil, 0, err
	}

	fresh, review := queue.Split(eligible, records, now)
	pool := len(fresh) + len(review)
	if count == 0 {
		count = RequestSize(settings.DailyGoal, pool, s.cfg.GoalMultiplier)
	}

	items := queue.Build(queue.Input{
		Eligible: eligible,
		Mastery:  records,
		Now:      now,
		SeedDate: seed,
		Round:    round,
		Count:    count,
		Options:  s.cfg.Queue,
	})
	took := time.Since(start)
	s.metrics.QueueBuilt(settings.Kind, took, items)

	s.log.InfoContext(ctx, "practice queue built",
		slog.String("user_id", userID.String()),
		slog.String("kind", settings.Kind.String()),
		slog.Int("eligible", len(eligible)),
		slog.Int("new_pool", len(fresh)),
		slog.Int("review_pool", len(review)),
		slog.Int("items", len(items)),
		slog.Duration("took", took),
	)

	return items, pool, nil
}

func (s *Service) loadMastery(ctx context.Context, userID uuid.UUID, eligible []queue.Candidate) (map[domain.FormID]domain.MasteryRecord, error) {
	if len(eligible) == 0 {
		return nil, nil
	}
	ids := make([]domain.FormID, len(eligible))
	for i, c := range eligible {
		ids[i] = c.FormID
	}
	recs, err := s.masteries.GetByFormIDs(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("get mastery: %w", err)
	}
	out := make(map[domain.FormID]domain.MasteryRecord, len(recs))
	for _, r := range recs {
		out[r.FormID] = r
	}
	return out, nil
}

func (s *Service) enrich(items []domain.PracticeItem) []QueueItem {
	out := make([]QueueItem, len(items))
	for i, it := range items {
		out[i] = QueueItem{PracticeItem: it, IrregularForms: s.catalog.IrregularForms(it.FormID)}
	}
	return out
}
