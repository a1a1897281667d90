// Package formid packs a grammatical coordinate into a single integer and back.
//
// Declension IDs use one decimal digit per axis after a five-digit lemma ID:
//
//	lemma(5) case(1) gender(1) number(1) variant(1)      10789_3_1_2_2   -> 107893122
//
// Conjugation IDs have one more axis and need 64 bits:
//
//	lemma(5) tense(1) person(1) number(1) voice(1) variant(1)  70683_2_3_1_2_3 -> 7068323123
//
// Lemma ID ranges are disjoint (declension 10001-69999, conjugation
// 70001-99999), and since every conjugation ID is at least ten digits long
// while declension IDs have at most nine, both kinds share one namespace.
//
// Decode functions are only defined for values produced by the matching
// Encode function. They do not validate their input.
package formid

import "github.com/heartmarshall/palipractice-backend/internal/domain"

// Lemma ID ranges.
const (
	DeclensionLemmaMin  = 10001
	DeclensionLemmaMax  = 69999
	ConjugationLemmaMin = 70001
	ConjugationLemmaMax = 99999
)

// ID bounds derived from the lemma ranges.
const (
	declensionIDMin  domain.FormID = DeclensionLemmaMin * 10_000
	declensionIDMax  domain.FormID = DeclensionLemmaMax*10_000 + 9_999
	conjugationIDMin domain.FormID = ConjugationLemmaMin * 100_000
	conjugationIDMax domain.FormID = ConjugationLemmaMax*100_000 + 99_999
)

// Declension is a nominal coordinate.
type Declension struct {
	LemmaID int
	Case    domain.Case
	Gender  domain.Gender
	Number  domain.Number
	Variant int // 0 = canonical slot
}

// Conjugation is a verbal coordinate.
type Conjugation struct {
	LemmaID int
	Tense   domain.Tense
	Person  domain.Person
	Number  domain.Number
	Voice   domain.Voice
	Variant int // 0 = canonical slot
}

// EncodeDeclension packs a nominal coordinate.
func EncodeDeclension(lemmaID int, c domain.Case, g domain.Gender, n domain.Number, variant int) domain.FormID {
	return domain.FormID(lemmaID)*10_000 +
		domain.FormID(c)*1_000 +
		domain.FormID(g)*100 +
		domain.FormID(n)*10 +
		domain.FormID(variant)
}

// EncodeConjugation packs a verbal coordinate.
func EncodeConjugation(lemmaID int, t domain.Tense, p domain.Person, n domain.Number, v domain.Voice, variant int) domain.FormID {
	return domain.FormID(lemmaID)*100_000 +
		domain.FormID(t)*10_000 +
		domain.FormID(p)*1_000 +
		domain.FormID(n)*100 +
		domain.FormID(v)*10 +
		domain.FormID(variant)
}

// DecodeDeclension is the inverse of EncodeDeclension.
func DecodeDeclension(id domain.FormID) Declension {
	return Declension{
		LemmaID: int(id / 10_000),
		Case:    domain.Case(id % 10_000 / 1_000),
		Gender:  domain.Gender(id % 1_000 / 100),
		Number:  domain.Number(id % 100 / 10),
		Variant: int(id % 10),
	}
}

// DecodeConjugation is the inverse of EncodeConjugation.
func DecodeConjugation(id domain.FormID) Conjugation {
	return Conjugation{
		LemmaID: int(id / 100_000),
		Tense:   domain.Tense(id % 100_000 / 10_000),
		Person:  domain.Person(id % 10_000 / 1_000),
		Number:  domain.Number(id % 1_000 / 100),
		Voice:   domain.Voice(id % 100 / 10),
		Variant: int(id % 10),
	}
}

// ID encodes the coordinate.
func (d Declension) ID() domain.FormID {
	return EncodeDeclension(d.LemmaID, d.Case, d.Gender, d.Number, d.Variant)
}

// ID encodes the coordinate.
func (c Conjugation) ID() domain.FormID {
	return EncodeConjugation(c.LemmaID, c.Tense, c.Person, c.Number, c.Voice, c.Variant)
}

// Canonical clears the ending variant, mapping any surface form onto the
// slot that carries mastery state. The variant digit is the last one for
// both kinds.
func Canonical(id domain.FormID) domain.FormID {
	return id - id%10
}

// Variant returns the ending variant digit.
func Variant(id domain.FormID) int {
	return int(id % 10)
}

// LemmaID extracts the lemma without a full decode.
func LemmaID(id domain.FormID) int {
	if id >= conjugationIDMin {
		return int(id / 100_000)
	}
	return int(id / 10_000)
}

// KindOf classifies an ID by its range. ok is false for values outside both
// ranges.
func KindOf(id domain.FormID) (kind domain.PracticeKind, ok bool) {
	switch {
	case id >= declensionIDMin && id <= declensionIDMax:
		return domain.PracticeKindDeclension, true
	case id >= conjugationIDMin && id <= conjugationIDMax:
		return domain.PracticeKindConjugation, true
	}
	return "", false
}

// Range returns the inclusive ID bounds for a kind.
func Range(kind domain.PracticeKind) (lo, hi domain.FormID) {
	if kind == domain.PracticeKindConjugation {
		return conjugationIDMin, conjugationIDMax
	}
	return declensionIDMin, declensionIDMax
}

// IsDeclensionLemma reports whether lemmaID lies in the declension range.
func IsDeclensionLemma(lemmaID int) bool {
	return lemmaID >= DeclensionLemmaMin && lemmaID <= DeclensionLemmaMax
}

// IsConjugationLemma reports whether lemmaID lies in the conjugation range.
func IsConjugationLemma(lemmaID int) bool {
	return lemmaID >= ConjugationLemmaMin && lemmaID <= ConjugationLemmaMax
}
