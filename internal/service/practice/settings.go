package practice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/palipractice-backend/internal/domain"
	"github.com/heartmarshall/palipractice-backend/pkg/ctxutil"
)

// GetSettings returns the caller's settings for kind, repairing and
// persisting them first if they are missing or corrupt.
func (s *Service) GetSettings(ctx context.Context, kind domain.PracticeKind) (*domain.PracticeSettings, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !kind.IsValid() {
		return nil, domain.InvalidKind.Err()
	}

	settings, err := s.loadSettings(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings validates and stores new settings. The active session of
// that kind is dropped, because its queue was built for the old scope.
func (s *Service) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*domain.PracticeSettings, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if s.pastCatalog(input.Kind, input.Ranks) {
		return nil, domain.NewValidationError("rank_window",
			fmt.Sprintf("min is past the last ranked lemma (%d)", s.catalog.Count(input.Kind)))
	}

	canon, _ := domain.PracticeSettings{
		UserID:    userID,
		Kind:      input.Kind,
		Axes:      input.Axes,
		Ranks:     input.Ranks,
		DailyGoal: input.DailyGoal,
	}.Canonicalize()

	saved, err := s.settings.Upsert(ctx, &canon)
	if err != nil {
		return nil, fmt.Errorf("upsert settings: %w", err)
	}

	if err := s.sessions.Delete(ctx, userID, input.Kind); err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "drop stale session",
			slog.String("user_id", userID.String()),
			slog.String("kind", input.Kind.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "practice settings updated",
		slog.String("user_id", userID.String()),
		slog.String("kind", input.Kind.String()),
		slog.Int("daily_goal", saved.DailyGoal),
	)

	return saved, nil
}

// pastCatalog reports whether a rank window starts beyond the last lemma of
// kind. Such a window can never yield a form. An empty catalog rejects nothing.
func (s *Service) pastCatalog(kind domain.PracticeKind, w domain.RankWindow) bool {
	n := s.catalog.Count(kind)
	return n > 0 && w.Min > n
}

// loadSettings reads settings and heals them. A missing row is created from
// defaults. Corrupt values, including a rank window past the end of the
// catalog, are replaced with defaults and written back; if
// that write fails the repaired copy is still used, so a bad row never
// blocks practice.
func (s *Service) loadSettings(ctx context.Context, userID uuid.UUID, kind domain.PracticeKind) (domain.PracticeSettings, error) {
	stored, err := s.settings.Get(ctx, userID, kind)
	if errors.Is(err, domain.ErrNotFound) {
		def := domain.DefaultPracticeSettings(userID, kind)
		saved, err := s.settings.Upsert(ctx, &def)
		if err != nil {
			return domain.PracticeSettings{}, fmt.Errorf("create default settings: %w", err)
		}
		return *saved, nil
	}
	if err != nil {
		return domain.PracticeSettings{}, fmt.Errorf("load settings: %w", err)
	}

	canon, repaired := stored.Canonicalize()
	if s.pastCatalog(kind, canon.Ranks) {
		canon.Ranks = domain.RankWindow{Min: domain.DefaultRankMin, Max: domain.DefaultRankMax}
		repaired = true
	}
	if !repaired {
		return canon, nil
	}

	s.metrics.SettingsRepaired(kind)
	s.log.WarnContext(ctx, "practice settings repaired",
		slog.String("user_id", userID.String()),
		slog.String("kind", kind.String()),
	)

	saved, err := s.settings.Upsert(ctx, &canon)
	if err != nil {
		s.log.ErrorContext(ctx, "persist repaired settings",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return canon, nil
	}
	return *saved, nil
}
