package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/palipractice-backend/internal/domain"
)

// SeedMastery inserts a form_mastery row for userID and returns it.
// A nil dueAt stores a retired form.
func SeedMastery(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, formID domain.FormID, level int, dueAt *time.Time) domain.MasteryRecord {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	rec := domain.MasteryRecord{
		UserID:          userID,
		FormID:          formID,
		Level:           level,
		LastPracticedAt: now,
		DueAt:           dueAt,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO form_mastery (user_id, form_id, level, last_practiced_at, due_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.UserID, int64(rec.FormID), rec.Level, rec.LastPracticedAt, rec.DueAt, rec.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMastery insert: %v", err)
	}

	return rec
}

// SeedRawSettings inserts a practice_settings row without any validation,
// so tests can store the corrupt values the service is expected to repair.
func SeedRawSettings(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, kind domain.PracticeKind, cases []int16, rankMin, rankMax, goal int) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO practice_settings (user_id, kind, cases, rank_min, rank_max, daily_goal, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, now())`,
		userID, string(kind), cases, rankMin, rankMax, goal,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRawSettings insert: %v", err)
	}
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }
