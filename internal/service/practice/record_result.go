package practice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/palipractice-backend/internal/domain"
	"github.com/heartmarshall/palipractice-backend/internal/formid"
	"github.com/heartmarshall/palipractice-backend/internal/service/practice/mastery"
	"github.com/heartmarshall/palipractice-backend/pkg/ctxutil"
)

// RecordResult applies a graded result to a form's mastery level and logs
// it. The read, update and history append share one transaction, and the
// record row is locked while the new level is computed.
func (s *Service) RecordResult(ctx context.Context, input RecordResultInput) (*domain.MasteryRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	kind, _ := formid.KindOf(input.FormID)

	now := s.now()
	var (
		saved    *domain.MasteryRecord
		oldLevel mastery.Level
		newLevel mastery.Level
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cur, err := s.masteries.GetForUpdate(txCtx, userID, input.FormID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			oldLevel = mastery.LevelNew
		case err != nil:
			return fmt.Errorf("get mastery: %w", err)
		default:
			oldLevel = mastery.Level(cur.Level)
		}

		newLevel = mastery.AdjustLevel(oldLevel, input.WasEasy)

		saved, err = s.masteries.Upsert(txCtx, &domain.MasteryRecord{
			UserID:          userID,
			FormID:          input.FormID,
			Level:           int(newLevel),
			LastPracticedAt: now,
			DueAt:           mastery.DueAt(newLevel, now),
		})
		if err != nil {
			return fmt.Errorf("upsert mastery: %w", err)
		}

		if err := s.masteries.AppendHistory(txCtx, &domain.MasteryHistoryEntry{
			ID:          uuid.New(),
			UserID:      userID,
			FormID:      input.FormID,
			OldLevel:    int(oldLevel),
			NewLevel:    int(newLevel),
			WasEasy:     input.WasEasy,
			PracticedAt: now,
		}); err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ResultRecorded(kind, input.WasEasy, newLevel == mastery.LevelRetired)
	s.log.InfoContext(ctx, "practice result recorded",
		slog.String("user_id", userID.String()),
		slog.Int64("form_id", int64(input.FormID)),
		slog.Bool("was_easy", input.WasEasy),
		slog.String("old_level", oldLevel.String()),
		slog.String("new_level", newLevel.String()),
	)

	return saved, nil
}

// DueForms lists the caller's forms of kind that are due for review, most
// overdue first.
func (s *Service) DueForms(ctx context.Context, kind domain.PracticeKind, limit int) ([]domain.MasteryRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !kind.IsValid() {
		return nil, domain.InvalidKind.Err()
	}
	if limit < 1 || limit > MaxQueueCount {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", MaxQueueCount))
	}

	recs, err := s.masteries.GetDue(ctx, userID, kind, s.now(), limit)
	if err != nil {
		return nil, fmt.Errorf("get due: %w", err)
	}
	return recs, nil
}

// LevelStats returns how many of the caller's forms of kind sit at each level.
func (s *Service) LevelStats(ctx context.Context, kind domain.PracticeKind) ([]domain.MasteryLevelCount, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !kind.IsValid() {
		return nil, domain.InvalidKind.Err()
	}

	counts, err := s.masteries.CountByLevel(ctx, userID, kind)
	if err != nil {
		return nil, fmt.Errorf("count by level: %w", err)
	}
	return counts, nil
}
