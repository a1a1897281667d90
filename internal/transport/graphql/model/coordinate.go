package model

import (
	"github.com/heartmarshall/palipractice-backend/internal/domain"
	"github.com/heartmarshall/palipractice-backend/internal/formid"
)

// Coordinate is the decoded form of a FormID. Axes that do not belong to
// the form's kind are nil.
type Coordinate struct {
	LemmaID int
	Case    *domain.Case
	Gender  *domain.Gender
	Number  domain.Number
	Tense   *domain.Tense
	Person  *domain.Person
	Voice   *domain.Voice
}

// NewCoordinate decodes id. ok is false when id lies outside both kinds'
// ranges.
func NewCoordinate(id domain.FormID) (c *Coordinate, ok bool) {
	kind, ok := formid.KindOf(id)
	if !ok {
		return nil, false
	}
	if kind == domain.PracticeKindConjugation {
		d := formid.DecodeConjugation(id)
		return &Coordinate{
			LemmaID: d.LemmaID,
			Number:  d.Number,
			Tense:   &d.Tense,
			Person:  &d.Person,
			Voice:   &d.Voice,
		}, true
	}
	d := formid.DecodeDeclension(id)
	return &Coordinate{
		LemmaID: d.LemmaID,
		Case:    &d.Case,
		Gender:  &d.Gender,
		Number:  d.Number,
	}, true
}
