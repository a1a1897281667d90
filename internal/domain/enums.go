package domain

import (
	"fmt"
	"strings"
)

// Grammatical axis values. Numeric codes are part of the FormID encoding and
// the training database schema; they must never be renumbered.

// Case is a nominal declension case.
type Case uint8

const (
	CaseNone         Case = 0
	CaseNominative   Case = 1
	CaseAccusative   Case = 2
	CaseInstrumental Case = 3
	CaseDative       Case = 4
	CaseAblative     Case = 5
	CaseGenitive     Case = 6
	CaseLocative     Case = 7
	CaseVocative     Case = 8
)

// AllCases lists every valid case in code order.
var AllCases = []Case{
	CaseNominative, CaseAccusative, CaseInstrumental, CaseDative,
	CaseAblative, CaseGenitive, CaseLocative, CaseVocative,
}

var caseNames = map[Case]string{
	CaseNominative:   "nominative",
	CaseAccusative:   "accusative",
	CaseInstrumental: "instrumental",
	CaseDative:       "dative",
	CaseAblative:     "ablative",
	CaseGenitive:     "genitive",
	CaseLocative:     "locative",
	CaseVocative:     "vocative",
}

func (c Case) String() string { return enumName(caseNames, c) }

func (c Case) IsValid() bool { return c >= CaseNominative && c <= CaseVocative }

func (c Case) MarshalText() ([]byte, error) { return marshalEnum(c, c.IsValid()) }

func (c *Case) UnmarshalText(b []byte) error { return unmarshalEnum(caseNames, b, c) }

// Gender is the grammatical gender of a nominal lemma.
type Gender uint8

const (
	GenderNone      Gender = 0
	GenderMasculine Gender = 1
	GenderFeminine  Gender = 2
	GenderNeuter    Gender = 3
)

// AllGenders lists every valid gender in code order.
var AllGenders = []Gender{GenderMasculine, GenderFeminine, GenderNeuter}

var genderNames = map[Gender]string{
	GenderMasculine: "masculine",
	GenderFeminine:  "feminine",
	GenderNeuter:    "neuter",
}

func (g Gender) String() string { return enumName(genderNames, g) }

func (g Gender) IsValid() bool { return g >= GenderMasculine && g <= GenderNeuter }

func (g Gender) MarshalText() ([]byte, error) { return marshalEnum(g, g.IsValid()) }

func (g *Gender) UnmarshalText(b []byte) error { return unmarshalEnum(genderNames, b, g) }

// Number is grammatical number, shared by both coordinate shapes.
type Number uint8

const (
	NumberNone     Number = 0
	NumberSingular Number = 1
	NumberPlural   Number = 2
)

// AllNumbers lists every valid number in code order.
var AllNumbers = []Number{NumberSingular, NumberPlural}

var numberNames = map[Number]string{
	NumberSingular: "singular",
	NumberPlural:   "plural",
}

func (n Number) String() string { return enumName(numberNames, n) }

func (n Number) IsValid() bool { return n == NumberSingular || n == NumberPlural }

func (n Number) MarshalText() ([]byte, error) { return marshalEnum(n, n.IsValid()) }

func (n *Number) UnmarshalText(b []byte) error { return unmarshalEnum(numberNames, b, n) }

// Person is the verbal person.
type Person uint8

const (
	PersonNone   Person = 0
	PersonFirst  Person = 1
	PersonSecond Person = 2
	PersonThird  Person = 3
)

// AllPersons lists every valid person in code order.
var AllPersons = []Person{PersonFirst, PersonSecond, PersonThird}

var personNames = map[Person]string{
	PersonFirst:  "first",
	PersonSecond: "second",
	PersonThird:  "third",
}

func (p Person) String() string { return enumName(personNames, p) }

func (p Person) IsValid() bool { return p >= PersonFirst && p <= PersonThird }

func (p Person) MarshalText() ([]byte, error) { return marshalEnum(p, p.IsValid()) }

func (p *Person) UnmarshalText(b []byte) error { return unmarshalEnum(personNames, b, p) }

// Tense is the verbal tense. Traditional moods (imperative, optative) are
// treated as tenses.
type Tense uint8

const (
	TenseNone       Tense = 0
	TensePresent    Tense = 1
	TenseImperative Tense = 2
	TenseOptative   Tense = 3
	TenseFuture     Tense = 4
	TenseAorist     Tense = 5
)

// AllTenses lists every valid tense in code order.
var AllTenses = []Tense{TensePresent, TenseImperative, TenseOptative, TenseFuture, TenseAorist}

var tenseNames = map[Tense]string{
	TensePresent:    "present",
	TenseImperative: "imperative",
	TenseOptative:   "optative",
	TenseFuture:     "future",
	TenseAorist:     "aorist",
}

func (t Tense) String() string { return enumName(tenseNames, t) }

func (t Tense) IsValid() bool { return t >= TensePresent && t <= TenseAorist }

func (t Tense) MarshalText() ([]byte, error) { return marshalEnum(t, t.IsValid()) }

func (t *Tense) UnmarshalText(b []byte) error { return unmarshalEnum(tenseNames, b, t) }

// Voice distinguishes active from reflexive (middle) conjugation.
type Voice uint8

const (
	VoiceNone      Voice = 0
	VoiceActive    Voice = 1
	VoiceReflexive Voice = 2
)

// AllVoices lists every valid voice in code order.
var AllVoices = []Voice{VoiceActive, VoiceReflexive}

var voiceNames = map[Voice]string{
	VoiceActive:    "active",
	VoiceReflexive: "reflexive",
}

func (v Voice) String() string { return enumName(voiceNames, v) }

func (v Voice) IsValid() bool { return v == VoiceActive || v == VoiceReflexive }

func (v Voice) MarshalText() ([]byte, error) { return marshalEnum(v, v.IsValid()) }

func (v *Voice) UnmarshalText(b []byte) error { return unmarshalEnum(voiceNames, b, v) }

// PracticeKind selects between declension (nominal) and conjugation (verbal) practice.
type PracticeKind string

const (
	PracticeKindDeclension  PracticeKind = "DECLENSION"
	PracticeKindConjugation PracticeKind = "CONJUGATION"
)

func (k PracticeKind) String() string { return string(k) }

func (k PracticeKind) IsValid() bool {
	switch k {
	case PracticeKindDeclension, PracticeKindConjugation:
		return true
	}
	return false
}

// ParsePracticeKind accepts the canonical name or the lowercase path form
// ("declension", "conjugation").
func ParsePracticeKind(s string) (PracticeKind, bool) {
	k := PracticeKind(strings.ToUpper(strings.TrimSpace(s)))
	return k, k.IsValid()
}

// PracticeSource tells whether a queue item is a first encounter or a review.
type PracticeSource string

const (
	PracticeSourceNew    PracticeSource = "NEW_FORM"
	PracticeSourceReview PracticeSource = "DUE_FOR_REVIEW"
)

func (s PracticeSource) String() string { return string(s) }

func (s PracticeSource) IsValid() bool {
	switch s {
	case PracticeSourceNew, PracticeSourceReview:
		return true
	}
	return false
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

type axis interface {
	~uint8
}

func enumName[T axis](names map[T]string, v T) string {
	if name, ok := names[v]; ok {
		return name
	}
	return fmt.Sprintf("none(%d)", uint8(v))
}

func marshalEnum[T interface {
	axis
	fmt.Stringer
}](v T, valid bool) ([]byte, error) {
	if !valid {
		return nil, fmt.Errorf("invalid value %d", uint8(v))
	}
	return []byte(v.String()), nil
}

func unmarshalEnum[T axis](names map[T]string, b []byte, dst *T) error {
	s := strings.ToLower(strings.TrimSpace(string(b)))
	for v, name := range names {
		if name == s {
			*dst = v
			return nil
		}
	}
	return fmt.Errorf("unknown value %q", s)
}
