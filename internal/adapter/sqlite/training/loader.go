// Package training loads the read-only training database (SQLite) into a
// catalog.Catalog at startup.
//
// The database carries one lemma table per kind, the ids of verbs that have
// no reflexive forms, the corpus attestation sets and the irregular surface
// forms. Each table is read on its own connection; rows are handed to the
// catalog builder once every read has finished.
//
// Verbal form ids in the database write the voice digit as 0 for active and
// 1 for reflexive. They are shifted onto domain.Voice codes on the way in.
package training

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver for database/sql
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/palipractice-backend/internal/catalog"
	"github.com/heartmarshall/palipractice-backend/internal/domain"
)

const (
	nounsSQL          = `SELECT lemma_id, lemma, ebt_count, gender, COALESCE(pattern, '') FROM nouns`
	verbsSQL          = `SELECT lemma_id, lemma, ebt_count, COALESCE(pattern, '') FROM verbs`
	nonReflexiveSQL   = `SELECT lemma_id FROM verbs_nonreflexive`
	nounsCorpusSQL    = `SELECT form_id FROM nouns_corpus_forms`
	verbsCorpusSQL    = `SELECT form_id FROM verbs_corpus_forms`
	nounsIrregularSQL = `SELECT form_id, form FROM nouns_irregular_forms`
	verbsIrregularSQL = `SELECT form_id, form FROM verbs_irregular_forms`
)

// Stats summarises a load.
type Stats struct {
	Nouns          int
	Verbs          int
	AttestedForms  int
	IrregularForms int
}

// Open opens the training database read-only.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("open training db: %w", err)
	}
	return db, nil
}

// LoadFile opens the database at path, loads it and closes it again.
func LoadFile(ctx context.Context, path string) (*catalog.Catalog, Stats, error) {
	db, err := Open(path)
	if err != nil {
		return nil, Stats{}, err
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, Stats{}, fmt.Errorf("ping training db %s: %w", path, err)
	}
	return Load(ctx, db)
}

type irregularRow struct {
	id   domain.FormID
	form string
}

// Load reads every table of the training database and returns the built catalog.
func Load(ctx context.Context, db *sql.DB) (*catalog.Catalog, Stats, error) {
	var (
		nouns, verbs   []domain.Lemma
		nonReflexive   map[int]struct{}
		nounsAttested  []domain.FormID
		verbsAttested  []domain.FormID
		nounsIrregular []irregularRow
		verbsIrregular []irregularRow
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		nouns, err = queryRows(gctx, db, nounsSQL, func(rows *sql.Rows) (domain.Lemma, error) {
			var (
				l      domain.Lemma
				gender int
			)
			err := rows.Scan(&l.ID, &l.Headword, &l.Frequency, &gender, &l.Pattern)
			l.Gender = domain.Gender(gender)
			return l, err
		})
		if err != nil {
			return fmt.Errorf("load nouns: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		verbs, err = queryRows(gctx, db, verbsSQL, func(rows *sql.Rows) (domain.Lemma, error) {
			var l domain.Lemma
			err := rows.Scan(&l.ID, &l.Headword, &l.Frequency, &l.Pattern)
			return l, err
		})
		if err != nil {
			return fmt.Errorf("load verbs: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		ids, err := queryRows(gctx, db, nonReflexiveSQL, scanInt)
		if err != nil {
			return fmt.Errorf("load verbs_nonreflexive: %w", err)
		}
		nonReflexive = make(map[int]struct{}, len(ids))
		for _, id := range ids {
			nonReflexive[id] = struct{}{}
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if nounsAttested, err = queryRows(gctx, db, nounsCorpusSQL, scanFormID); err != nil {
			return fmt.Errorf("load nouns_corpus_forms: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if verbsAttested, err = queryRows(gctx, db, verbsCorpusSQL, scanFormID); err != nil {
			return fmt.Errorf("load verbs_corpus_forms: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if nounsIrregular, err = queryRows(gctx, db, nounsIrregularSQL, scanIrregular); err != nil {
			return fmt.Errorf("load nouns_irregular_forms: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if verbsIrregular, err = queryRows(gctx, db, verbsIrregularSQL, scanIrregular); err != nil {
			return fmt.Errorf("load verbs_irregular_forms: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, Stats{}, err
	}

	b := catalog.NewBuilder()
	for _, l := range nouns {
		b.AddLemma(l)
	}
	for _, l := range verbs {
		_, plain := nonReflexive[l.ID]
		l.Reflexive = !plain
		b.AddLemma(l)
	}
	for _, id := range nounsAttested {
		b.MarkAttested(id)
	}
	for _, id := range verbsAttested {
		b.MarkAttested(verbFormID(id))
	}
	for _, r := range nounsIrregular {
		b.AddIrregular(r.id, r.form)
	}
	for _, r := range verbsIrregular {
		b.AddIrregular(verbFormID(r.id), r.form)
	}

	cat := b.Build()
	return cat, Stats{
		Nouns:          cat.Count(domain.PracticeKindDeclension),
		Verbs:          cat.Count(domain.PracticeKindConjugation),
		AttestedForms:  cat.AttestedCount(),
		IrregularForms: len(nounsIrregular) + len(verbsIrregular),
	}, nil
}

// verbFormID rewrites a stored conjugation id into the formid encoding.
// Stored voice digits 0 and 1 become domain.VoiceActive and
// domain.VoiceReflexive; anything else is left alone.
func verbFormID(id domain.FormID) domain.FormID {
	if voice := (id / 10) % 10; voice <= 1 {
		return id + 10
	}
	return id
}

func queryRows[T any](ctx context.Context, db *sql.DB, query string, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func scanInt(rows *sql.Rows) (int, error) {
	var v int
	err := rows.Scan(&v)
	return v, err
}

func scanFormID(rows *sql.Rows) (domain.FormID, error) {
	var v int64
	err := rows.Scan(&v)
	return domain.FormID(v), err
}

func scanIrregular(rows *sql.Rows) (irregularRow, error) {
	var (
		r  irregularRow
		id int64
	)
	err := rows.Scan(&id, &r.form)
	r.id = domain.FormID(id)
	return r, err
}
