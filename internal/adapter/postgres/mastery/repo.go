// Package mastery implements the form mastery repository using PostgreSQL.
// Point lookups and writes use raw SQL; GetDue is assembled with squirrel
// because its filter depends on the kind's FormID range.
package mastery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/palipractice-backend/internal/adapter/postgres"
	"github.com/heartmarshall/palipractice-backend/internal/domain"
	"github.com/heartmarshall/palipractice-backend/internal/formid"
)

// Repo provides form mastery persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new mastery repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const recordColumns = `user_id, form_id, level, last_practiced_at, due_at, updated_at`

const getSQL = `
SELECT ` + recordColumns + `
FROM form_mastery
WHERE user_id = $1 AND form_id = $2`

const getForUpdateSQL = getSQL + `
FOR UPDATE`

const getByFormIDsSQL = `
SELECT ` + recordColumns + `
FROM form_mastery
WHERE user_id = $1 AND form_id = ANY($2::bigint[])`

const upsertSQL = `
INSERT INTO form_mastery (user_id, form_id, level, last_practiced_at, due_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now())
ON CONFLICT (user_id, form_id) DO UPDATE SET
    level             = EXCLUDED.level,
    last_practiced_at = EXCLUDED.last_practiced_at,
    due_at            = EXCLUDED.due_at,
    updated_at        = now()
RETURNING ` + recordColumns

const appendHistorySQL = `
INSERT INTO mastery_history (id, user_id, form_id, old_level, new_level, was_easy, practiced_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const countByLevelSQL = `
SELECT level, count(*)
FROM form_mastery
WHERE user_id = $1 AND form_id BETWEEN $2 AND $3
GROUP BY level
ORDER BY level`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the mastery record of one form.
// Returns domain.ErrNotFound if the user has never practiced it.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, formID domain.FormID) (*domain.MasteryRecord, error) {
	return r.getOne(ctx, getSQL, userID, formID)
}

// GetForUpdate is Get with the row locked until the surrounding transaction
// ends. It must run inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, userID uuid.UUID, formID domain.FormID) (*domain.MasteryRecord, error) {
	if !postgres.InTx(ctx) {
		return nil, postgres.ErrNoTx
	}
	return r.getOne(ctx, getForUpdateSQL, userID, formID)
}

func (r *Repo) getOne(ctx context.Context, query string, userID uuid.UUID, formID domain.FormID) (*domain.MasteryRecord, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, userID, int64(formID))

	rec, err := scanRecord(row)
	if err != nil {
		return nil, postgres.MapError(err, "form_mastery", formID)
	}
	return &rec, nil
}

// GetByFormIDs returns the records that exist among formIDs, in no
// particular order. Forms without a record are simply absent.
func (r *Repo) GetByFormIDs(ctx context.Context, userID uuid.UUID, formIDs []domain.FormID) ([]domain.MasteryRecord, error) {
	if len(formIDs) == 0 {
		return []domain.MasteryRecord{}, nil
	}

	ids := make([]int64, len(formIDs))
	for i, id := range formIDs {
		ids[i] = int64(id)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, getByFormIDsSQL, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("get form_mastery by form_ids: %w", err)
	}
	return collectRecords(rows)
}

// GetDue returns up to limit records of kind whose due time has passed,
// ordered by due_at then form_id. Retired records have no due time and
// are never returned.
func (r *Repo) GetDue(ctx context.Context, userID uuid.UUID, kind domain.PracticeKind, now time.Time, limit int) ([]domain.MasteryRecord, error) {
	lo, hi := formid.Range(kind)

	query, args, err := psql.
		Select(recordColumns).
		From("form_mastery").
		Where(squirrel.Eq{"user_id": userID}).
		Where("form_id BETWEEN ? AND ?", int64(lo), int64(hi)).
		Where(squirrel.NotEq{"due_at": nil}).
		Where(squirrel.LtOrEq{"due_at": now}).
		OrderBy("due_at ASC", "form_id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build due query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get due form_mastery: %w", err)
	}
	return collectRecords(rows)
}

// CountByLevel returns how many forms of kind the user holds at each level.
// Levels with no forms are omitted.
func (r *Repo) CountByLevel(ctx context.Context, userID uuid.UUID, kind domain.PracticeKind) ([]domain.MasteryLevelCount, error) {
	lo, hi := formid.Range(kind)

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, countByLevelSQL, userID, int64(lo), int64(hi))
	if err != nil {
		return nil, fmt.Errorf("count form_mastery by level: %w", err)
	}

	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MasteryLevelCount, error) {
		var c domain.MasteryLevelCount
		err := row.Scan(&c.Level, &c.Count)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan level counts: %w", err)
	}
	return counts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts or replaces the record for (UserID, FormID) and returns the
// stored row.
func (r *Repo) Upsert(ctx context.Context, rec *domain.MasteryRecord) (*domain.MasteryRecord, error) {
	if rec == nil {
		return nil, errors.New("upsert form_mastery: record is nil")
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, upsertSQL,
		rec.UserID, int64(rec.FormID), rec.Level, rec.LastPracticedAt, rec.DueAt,
	)

	saved, err := scanRecord(row)
	if err != nil {
		return nil, postgres.MapError(err, "form_mastery", rec.FormID)
	}
	return &saved, nil
}

// AppendHistory inserts one immutable history row.
func (r *Repo) AppendHistory(ctx context.Context, entry *domain.MasteryHistoryEntry) error {
	if entry == nil {
		return errors.New("append mastery_history: entry is nil")
	}

	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, appendHistorySQL,
		entry.ID, entry.UserID, int64(entry.FormID), entry.OldLevel, entry.NewLevel, entry.WasEasy, entry.PracticedAt,
	)
	if err != nil {
		return postgres.MapError(err, "mastery_history", entry.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanRecord(row pgx.Row) (domain.MasteryRecord, error) {
	var (
		rec    domain.MasteryRecord
		formID int64
	)
	err := row.Scan(&rec.UserID, &formID, &rec.Level, &rec.LastPracticedAt, &rec.DueAt, &rec.UpdatedAt)
	rec.FormID = domain.FormID(formID)
	return rec, err
}

func collectRecords(rows pgx.Rows) ([]domain.MasteryRecord, error) {
	recs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MasteryRecord, error) {
		return scanRecord(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan form_mastery: %w", err)
	}
	return recs, nil
}
