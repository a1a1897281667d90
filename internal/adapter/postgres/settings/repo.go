// Package settings implements the practice settings repository using PostgreSQL.
//
// Axis selections are stored as smallint arrays of the raw enum values, one
// column per axis. Values are persisted as given; unknown or duplicate values
// survive a round trip and are repaired by the practice service on read.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/palipractice-backend/internal/adapter/postgres"
	"github.com/heartmarshall/palipractice-backend/internal/domain"
)

// Repo provides practice settings persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new settings repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `user_id, kind, cases, genders, numbers, tenses, persons, voices, rank_min, rank_max, daily_goal, updated_at`

const getSQL = `
SELECT ` + columns + `
FROM practice_settings
WHERE user_id = $1 AND kind = $2`

const upsertSQL = `
INSERT INTO practice_settings (user_id, kind, cases, genders, numbers, tenses, persons, voices, rank_min, rank_max, daily_goal, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())
ON CONFLICT (user_id, kind) DO UPDATE SET
    cases      = EXCLUDED.cases,
    genders    = EXCLUDED.genders,
    numbers    = EXCLUDED.numbers,
    tenses     = EXCLUDED.tenses,
    persons    = EXCLUDED.persons,
    voices     = EXCLUDED.voices,
    rank_min   = EXCLUDED.rank_min,
    rank_max   = EXCLUDED.rank_max,
    daily_goal = EXCLUDED.daily_goal,
    updated_at = now()
RETURNING ` + columns

// Get returns the stored settings for (userID, kind).
// Returns domain.ErrNotFound when the user has never saved any.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, kind domain.PracticeKind) (*domain.PracticeSettings, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getSQL, userID, string(kind))

	s, err := scanSettings(row)
	if err != nil {
		return nil, postgres.MapError(err, "practice_settings", key(userID, kind))
	}
	return &s, nil
}

// Upsert stores s, replacing any previous row for (UserID, Kind).
func (r *Repo) Upsert(ctx context.Context, s *domain.PracticeSettings) (*domain.PracticeSettings, error) {
	if s == nil {
		return nil, errors.New("upsert practice_settings: settings is nil")
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, upsertSQL,
		s.UserID, string(s.Kind),
		toInt16s(s.Axes.Cases), toInt16s(s.Axes.Genders), toInt16s(s.Axes.Numbers),
		toInt16s(s.Axes.Tenses), toInt16s(s.Axes.Persons), toInt16s(s.Axes.Voices),
		s.Ranks.Min, s.Ranks.Max, s.DailyGoal,
	)

	saved, err := scanSettings(row)
	if err != nil {
		return nil, postgres.MapError(err, "practice_settings", key(s.UserID, s.Kind))
	}
	return &saved, nil
}

func key(userID uuid.UUID, kind domain.PracticeKind) string {
	return fmt.Sprintf("%s/%s", userID, kind)
}

func scanSettings(row pgx.Row) (domain.PracticeSettings, error) {
	var (
		s                                                domain.PracticeSettings
		kind                                             string
		cases, genders, numbers, tenses, persons, voices []int16
	)
	err := row.Scan(
		&s.UserID, &kind,
		&cases, &genders, &numbers, &tenses, &persons, &voices,
		&s.Ranks.Min, &s.Ranks.Max, &s.DailyGoal, &s.UpdatedAt,
	)
	if err != nil {
		return domain.PracticeSettings{}, err
	}

	s.Kind = domain.PracticeKind(kind)
	s.Axes = domain.AxisSelections{
		Cases:   fromInt16s[domain.Case](cases),
		Genders: fromInt16s[domain.Gender](genders),
		Numbers: fromInt16s[domain.Number](numbers),
		Tenses:  fromInt16s[domain.Tense](tenses),
		Persons: fromInt16s[domain.Person](persons),
		Voices:  fromInt16s[domain.Voice](voices),
	}
	return s, nil
}

type axisValue interface {
	~uint8
}

func toInt16s[T axisValue](vs []T) []int16 {
	out := make([]int16, len(vs))
	for i, v := range vs {
		out[i] = int16(v)
	}
	return out
}

// fromInt16s converts stored values back. Values outside the uint8 range are
// mapped to 0, which no axis uses, so canonicalization drops them.
func fromInt16s[T axisValue](vs []int16) []T {
	if len(vs) == 0 {
		return nil
	}
	out := make([]T, len(vs))
	for i, v := range vs {
		if v >= 0 && v <= 255 {
			out[i] = T(v)
		}
	}
	return out
}
