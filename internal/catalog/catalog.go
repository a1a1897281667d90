// Package catalog holds the read-only lemma table and corpus attestation
// index that queue building runs against. A Catalog is immutable once built
// and safe for concurrent use.
package catalog

import (
	"cmp"
	"slices"

	"github.com/heartmarshall/palipractice-backend/internal/domain"
	"github.com/heartmarshall/palipractice-backend/internal/formid"
)

// Catalog is the in-memory lemma table plus attestation and irregular-form
// indexes.
type Catalog struct {
	declension  []domain.Lemma // ordered by rank
	conjugation []domain.Lemma // ordered by rank
	byID        map[int]domain.Lemma
	attested    map[domain.FormID]struct{}
	irregular   map[domain.FormID][]string
}

// LemmasByRank returns the lemmas of a kind whose rank lies in [minRank, maxRank],
// ordered by rank. The returned slice must not be modified.
func (c *Catalog) LemmasByRank(kind domain.PracticeKind, minRank, maxRank int) []domain.Lemma {
	list := c.declension
	if kind == domain.PracticeKindConjugation {
		list = c.conjugation
	}
	if minRank < 1 {
		minRank = 1
	}
	if maxRank > len(list) {
		maxRank = len(list)
	}
	if minRank > maxRank {
		return nil
	}
	// Ranks are dense and 1-based, so the window maps directly onto indexes.
	return list[minRank-1 : maxRank]
}

// Lemma looks up a lemma by ID.
func (c *Catalog) Lemma(id int) (domain.Lemma, bool) {
	l, ok := c.byID[id]
	return l, ok
}

// IsAttested reports whether any surface variant of the coordinate behind id
// occurs in the corpus. Any variant of the same coordinate gives the same answer.
func (c *Catalog) IsAttested(id domain.FormID) bool {
	_, ok := c.attested[formid.Canonical(id)]
	return ok
}

// IrregularForms returns the irregular surface forms recorded for the
// coordinate behind id, in variant order. Nil when the inflection is regular.
func (c *Catalog) IrregularForms(id domain.FormID) []string {
	return c.irregular[formid.Canonical(id)]
}

// Count returns the number of lemmas of a kind.
func (c *Catalog) Count(kind domain.PracticeKind) int {
	if kind == domain.PracticeKindConjugation {
		return len(c.conjugation)
	}
	return len(c.declension)
}

// AttestedCount returns the number of attested canonical coordinates.
func (c *Catalog) AttestedCount() int {
	return len(c.attested)
}

// ---------------------------------------------------------------------------
// Builder
// ---------------------------------------------------------------------------

// Builder accumulates catalog rows. It is not safe for concurrent use.
type Builder struct {
	lemmas    map[int]domain.Lemma
	attested  map[domain.FormID]struct{}
	irregular map[domain.FormID][]irregularForm
}

type irregularForm struct {
	variant int
	form    string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		lemmas:    make(map[int]domain.Lemma),
		attested:  make(map[domain.FormID]struct{}),
		irregular: make(map[domain.FormID][]irregularForm),
	}
}

// AddLemma registers a lemma. The training data carries one row per
// headword, so several rows can share a lemma ID; the row with the highest
// corpus frequency wins. Kind is derived from the ID range, and Rank is
// assigned by Build.
func (b *Builder) AddLemma(l domain.Lemma) {
	if formid.IsConjugationLemma(l.ID) {
		l.Kind = domain.PracticeKindConjugation
	} else {
		l.Kind = domain.PracticeKindDeclension
	}
	if prev, ok := b.lemmas[l.ID]; ok && prev.Frequency >= l.Frequency {
		return
	}
	b.lemmas[l.ID] = l
}

// MarkAttested records corpus evidence for a surface form. The canonical
// slot of the coordinate becomes attested.
func (b *Builder) MarkAttested(id domain.FormID) {
	b.attested[formid.Canonical(id)] = struct{}{}
}

// AddIrregular records an irregular surface form under its coordinate.
func (b *Builder) AddIrregular(id domain.FormID, form string) {
	canon := formid.Canonical(id)
	b.irregular[canon] = append(b.irregular[canon], irregularForm{variant: formid.Variant(id), form: form})
}

// Build ranks the lemmas of each kind by descending frequency, ties broken
// by lemma ID, and returns the finished Catalog. The Builder must not be
// used afterwards.
func (b *Builder) Build() *Catalog {
	c := &Catalog{
		byID:      make(map[int]domain.Lemma, len(b.lemmas)),
		attested:  b.attested,
		irregular: make(map[domain.FormID][]string, len(b.irregular)),
	}

	for _, l := range b.lemmas {
		if l.Kind == domain.PracticeKindConjugation {
			c.conjugation = append(c.conjugation, l)
		} else {
			c.declension = append(c.declension, l)
		}
	}
	rank(c.declension)
	rank(c.conjugation)
	for _, list := range [][]domain.Lemma{c.declension, c.conjugation} {
		for _, l := range list {
			c.byID[l.ID] = l
		}
	}

	for id, forms := range b.irregular {
		slices.SortStableFunc(forms, func(a, b irregularForm) int { return cmp.Compare(a.variant, b.variant) })
		out := make([]string, len(forms))
		for i, f := range forms {
			out[i] = f.form
		}
		c.irregular[id] = out
	}

	return c
}

func rank(list []domain.Lemma) {
	slices.SortFunc(list, func(a, b domain.Lemma) int {
		if c := cmp.Compare(b.Frequency, a.Frequency); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	for i := range list {
		list[i].Rank = i + 1
	}
}
