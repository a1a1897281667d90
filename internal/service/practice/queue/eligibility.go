// Package queue turns a practice scope and a mastery snapshot into an
// ordered list of practice items. Everything here is pure: the same inputs
// always produce the same queue, and no function reads the clock or any
// source of entropy.
package queue

import (
	"slices"
	"time"

	"github.com/heartmarshall/palipractice-backend/internal/domain"
	"github.com/heartmarshall/palipractice-backend/internal/formid"
	"github.com/heartmarshall/palipractice-backend/internal/service/practice/mastery"
)

// Catalog is the read-only lemma and attestation data eligibility resolves against.
type Catalog interface {
	LemmasByRank(kind domain.PracticeKind, minRank, maxRank int) []domain.Lemma
	IsAttested(id domain.FormID) bool
}

// Candidate is an eligible canonical form together with the keys the
// spacing constraints compare.
type Candidate struct {
	FormID   domain.FormID
	LemmaID  int
	Combo    int    // packed non-lemma axes
	Category string // inflection pattern
}

// ReviewCandidate is a due form with the mastery state it was selected at.
type ReviewCandidate struct {
	Candidate
	Level mastery.Level
	DueAt time.Time
}

// Resolve enumerates the canonical forms a scope can practice, in lemma rank
// order and then axis order. Coordinates without corpus attestation are
// dropped silently. Axis selections are canonicalized first, so stored order
// never affects the result.
func Resolve(cat Catalog, scope domain.PracticeScope) []Candidate {
	axes, _ := scope.Axes.Canonicalize(scope.Kind)
	lemmas := cat.LemmasByRank(scope.Kind, scope.Ranks.Min, scope.Ranks.Max)

	var out []Candidate
	if scope.Kind == domain.PracticeKindConjugation {
		for _, l := range lemmas {
			out = appendConjugations(out, cat, l, axes)
		}
		return out
	}
	for _, l := range lemmas {
		if !slices.Contains(axes.Genders, l.Gender) {
			continue
		}
		out = appendDeclensions(out, cat, l, axes)
	}
	return out
}

func appendDeclensions(out []Candidate, cat Catalog, l domain.Lemma, axes domain.AxisSelections) []Candidate {
	for _, c := range axes.Cases {
		for _, n := range axes.Numbers {
			id := formid.EncodeDeclension(l.ID, c, l.Gender, n, 0)
			if !cat.IsAttested(id) {
				continue
			}
			out = append(out, Candidate{
				FormID:   id,
				LemmaID:  l.ID,
				Combo:    int(c)*10 + int(n),
				Category: l.Pattern,
			})
		}
	}
	return out
}

func appendConjugations(out []Candidate, cat Catalog, l domain.Lemma, axes domain.AxisSelections) []Candidate {
	for _, t := range axes.Tenses {
		for _, p := range axes.Persons {
			for _, n := range axes.Numbers {
				for _, v := range axes.Voices {
					if isCitationForm(t, p, n, v) {
						continue
					}
					if v == domain.VoiceReflexive && !l.Reflexive {
						continue
					}
					id := formid.EncodeConjugation(l.ID, t, p, n, v, 0)
					if !cat.IsAttested(id) {
						continue
					}
					out = append(out, Candidate{
						FormID:   id,
						LemmaID:  l.ID,
						Combo:    int(t)*1000 + int(p)*100 + int(n)*10 + int(v),
						Category: l.Pattern,
					})
				}
			}
		}
	}
	return out
}

// isCitationForm reports whether the coordinate is the dictionary headword
// form, which is never drilled.
func isCitationForm(t domain.Tense, p domain.Person, n domain.Number, v domain.Voice) bool {
	return t == domain.TensePresent && p == domain.PersonThird && n == domain.NumberSingular && v == domain.VoiceActive
}

// Split partitions eligible candidates into forms never practiced and forms
// due for review at now. Forms still cooling down and retired forms land in
// neither pool. Both pools keep the order of eligible.
func Split(eligible []Candidate, records map[domain.FormID]domain.MasteryRecord, now time.Time) (fresh []Candidate, review []ReviewCandidate) {
	for _, c := range eligible {
		rec, ok := records[c.FormID]
		if !ok || mastery.Level(rec.Level) == mastery.LevelNew {
			fresh = append(fresh, c)
			continue
		}
		if !mastery.IsDue(&rec, now) {
			continue
		}
		level := mastery.Level(rec.Level)
		review = append(review, ReviewCandidate{
			Candidate: c,
			Level:     level,
			DueAt:     *mastery.DueAt(level, rec.LastPracticedAt),
		})
	}
	return fresh, review
}
