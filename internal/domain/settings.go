package domain

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Default practice scope values. They are also the repair targets used when
// stored settings turn out to be empty or invalid.
const (
	DefaultDailyGoal = 50
	DefaultRankMin   = 1
	DefaultRankMax   = 20
	MaxRankWindow    = 5000
	MaxDailyGoal     = 1000
)

// AxisSelections lists the grammatical values a learner wants to drill.
// Declension uses Cases, Genders and Numbers; conjugation uses Tenses,
// Persons, Numbers and Voices.
type AxisSelections struct {
	Cases   []Case   `json:"cases,omitempty"`
	Genders []Gender `json:"genders,omitempty"`
	Numbers []Number `json:"numbers,omitempty"`
	Tenses  []Tense  `json:"tenses,omitempty"`
	Persons []Person `json:"persons,omitempty"`
	Voices  []Voice  `json:"voices,omitempty"`
}

// RankWindow is an inclusive range of lemma frequency ranks, 1-based.
type RankWindow struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// IsValid reports whether the window is non-empty and within bounds.
func (w RankWindow) IsValid() bool {
	return w.Min >= 1 && w.Max >= w.Min && w.Max-w.Min < MaxRankWindow
}

// PracticeScope is what the queue builder needs to resolve eligible forms.
type PracticeScope struct {
	Kind  PracticeKind
	Axes  AxisSelections
	Ranks RankWindow
}

// PracticeSettings is the persisted per-user, per-kind practice configuration.
type PracticeSettings struct {
	UserID    uuid.UUID
	Kind      PracticeKind
	Axes      AxisSelections
	Ranks     RankWindow
	DailyGoal int
	UpdatedAt time.Time
}

// Scope returns the queue-building part of the settings.
func (s PracticeSettings) Scope() PracticeScope {
	return PracticeScope{Kind: s.Kind, Axes: s.Axes, Ranks: s.Ranks}
}

// DefaultAxisSelections returns the built-in axis selection for a kind.
func DefaultAxisSelections(kind PracticeKind) AxisSelections {
	if kind == PracticeKindConjugation {
		return AxisSelections{
			Tenses:  []Tense{TensePresent, TenseImperative, TenseOptative},
			Persons: slices.Clone(AllPersons),
			Numbers: slices.Clone(AllNumbers),
			Voices:  slices.Clone(AllVoices),
		}
	}
	return AxisSelections{
		Cases:   slices.Clone(AllCases),
		Genders: slices.Clone(AllGenders),
		Numbers: slices.Clone(AllNumbers),
	}
}

// DefaultPracticeSettings returns PracticeSettings with the built-in defaults.
func DefaultPracticeSettings(userID uuid.UUID, kind PracticeKind) PracticeSettings {
	return PracticeSettings{
		UserID:    userID,
		Kind:      kind,
		Axes:      DefaultAxisSelections(kind),
		Ranks:     RankWindow{Min: DefaultRankMin, Max: DefaultRankMax},
		DailyGoal: DefaultDailyGoal,
	}
}

// Canonicalize returns a copy with every axis list deduplicated, sorted and
// stripped of invalid values, and with axes that do not belong to the kind
// cleared. Two settings that differ only in stored order canonicalize to the
// same value.
//
// Lists that end up empty, lists that contained invalid values, an invalid
// rank window and a non-positive daily goal are replaced with defaults; in
// that case repaired is true and the caller should persist the result.
func (s PracticeSettings) Canonicalize() (canon PracticeSettings, repaired bool) {
	canon = s
	canon.Axes, repaired = s.Axes.Canonicalize(s.Kind)

	if !s.Ranks.IsValid() {
		canon.Ranks = RankWindow{Min: DefaultRankMin, Max: DefaultRankMax}
		repaired = true
	}
	if s.DailyGoal <= 0 || s.DailyGoal > MaxDailyGoal {
		canon.DailyGoal = DefaultDailyGoal
		repaired = true
	}

	return canon, repaired
}

// Canonicalize applies the axis part of PracticeSettings.Canonicalize.
func (a AxisSelections) Canonicalize(kind PracticeKind) (canon AxisSelections, repaired bool) {
	def := DefaultAxisSelections(kind)

	var fixed bool
	switch kind {
	case PracticeKindConjugation:
		canon.Tenses, fixed = canonicalAxis(a.Tenses, def.Tenses, Tense.IsValid)
		repaired = repaired || fixed
		canon.Persons, fixed = canonicalAxis(a.Persons, def.Persons, Person.IsValid)
		repaired = repaired || fixed
		canon.Numbers, fixed = canonicalAxis(a.Numbers, def.Numbers, Number.IsValid)
		repaired = repaired || fixed
		canon.Voices, fixed = canonicalAxis(a.Voices, def.Voices, Voice.IsValid)
		repaired = repaired || fixed
	default:
		canon.Cases, fixed = canonicalAxis(a.Cases, def.Cases, Case.IsValid)
		repaired = repaired || fixed
		canon.Genders, fixed = canonicalAxis(a.Genders, def.Genders, Gender.IsValid)
		repaired = repaired || fixed
		canon.Numbers, fixed = canonicalAxis(a.Numbers, def.Numbers, Number.IsValid)
		repaired = repaired || fixed
	}
	return canon, repaired
}

// canonicalAxis dedupes and sorts values. It falls back to def when the
// result is empty, and reports fixed when anything other than ordering or
// duplication had to change.
func canonicalAxis[T cmp.Ordered](values, def []T, valid func(T) bool) ([]T, bool) {
	out := make([]T, 0, len(values))
	dropped := false
	for _, v := range values {
		if !valid(v) {
			dropped = true
			continue
		}
		out = append(out, v)
	}
	slices.Sort(out)
	out = slices.Compact(out)

	if len(out) == 0 {
		return slices.Clone(def), true
	}
	return out, dropped
}
