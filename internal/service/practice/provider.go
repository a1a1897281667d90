package practice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/palipractice-backend/internal/domain"
	"github.com/heartmarshall/palipractice-backend/pkg/ctxutil"
)

// Provider hands out practice items one at a time from a stored session.
// When a session's loaded queue runs out while the pool still holds forms,
// it is rebuilt with a fresh seed, so clients see one continuous stream.
type Provider struct {
	svc *Service
}

// NewProvider creates a Provider on top of svc.
func NewProvider(svc *Service) *Provider {
	return &Provider{svc: svc}
}

// SessionInfo summarises a started session.
type SessionInfo struct {
	Kind      domain.PracticeKind
	Size      int // items loaded now
	PoolSize  int // forms available in scope
	StartedAt time.Time
}

// StartSession builds a new queue sized from the daily goal and stores it,
// replacing any previous session of the same kind.
func (p *Provider) StartSession(ctx context.Context, kind domain.PracticeKind) (*SessionInfo, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !kind.IsValid() {
		return nil, domain.InvalidKind.Err()
	}

	sess, err := p.start(ctx, userID, kind)
	if err != nil {
		return nil, err
	}

	return &SessionInfo{
		Kind:      kind,
		Size:      len(sess.Items),
		PoolSize:  sess.PoolSize,
		StartedAt: sess.StartedAt,
	}, nil
}

// Next returns the next item of the caller's session, starting one if none
// exists. It returns domain.ErrSessionExhausted once every form in scope
// has been served.
func (p *Provider) Next(ctx context.Context, kind domain.PracticeKind) (*QueueItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !kind.IsValid() {
		return nil, domain.InvalidKind.Err()
	}

	sess, err := p.svc.sessions.Get(ctx, userID, kind)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if sess, err = p.start(ctx, userID, kind); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("get session: %w", err)
	}

	if sess.Remaining() == 0 {
		if err := p.refill(ctx, sess); err != nil {
			return nil, err
		}
	}

	item := sess.Items[sess.Position]
	sess.Position++
	sess.Served = append(sess.Served, item.FormID)
	if err := p.svc.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &QueueItem{PracticeItem: item, IrregularForms: p.svc.catalog.IrregularForms(item.FormID)}, nil
}

func (p *Provider) start(ctx context.Context, userID uuid.UUID, kind domain.PracticeKind) (*domain.PracticeSession, error) {
	settings, err := p.svc.loadSettings(ctx, userID, kind)
	if err != nil {
		return nil, err
	}

	now := p.svc.now()
	items, pool, err := p.svc.build(ctx, userID, settings, now, now, 0, 0, nil)
	if err != nil {
		return nil, err
	}

	sess := &domain.PracticeSession{
		UserID:    userID,
		Kind:      kind,
		Items:     items,
		PoolSize:  pool,
		SeedDate:  now,
		StartedAt: now,
	}
	if err := p.svc.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	p.svc.log.InfoContext(ctx, "practice session started",
		slog.String("user_id", userID.String()),
		slog.String("kind", kind.String()),
		slog.Int("size", len(items)),
		slog.Int("pool_size", pool),
	)
	return sess, nil
}

// refill replaces an exhausted queue with a fresh build over the forms not
// yet served. It leaves sess untouched and returns ErrSessionExhausted when
// nothing is left.
func (p *Provider) refill(ctx context.Context, sess *domain.PracticeSession) error {
	if sess.PoolSize <= len(sess.Items) {
		return domain.ErrSessionExhausted
	}

	settings, err := p.svc.loadSettings(ctx, sess.UserID, sess.Kind)
	if err != nil {
		return err
	}

	served := make(map[domain.FormID]struct{}, len(sess.Served))
	for _, id := range sess.Served {
		served[id] = struct{}{}
	}

	// The served count keys the refill stream, so a second refill on the same
	// day does not replay the first one's order.
	now := p.svc.now()
	items, pool, err := p.svc.build(ctx, sess.UserID, settings, now, now, len(sess.Served), 0, served)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return domain.ErrSessionExhausted
	}

	p.svc.log.InfoContext(ctx, "practice session refilled",
		slog.String("user_id", sess.UserID.String()),
		slog.String("kind", sess.Kind.String()),
		slog.Int("served", len(sess.Served)),
		slog.Int("size", len(items)),
	)

	sess.Items = items
	sess.Position = 0
	sess.PoolSize = pool
	sess.SeedDate = now
	return nil
}
