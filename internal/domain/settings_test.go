package domain

import (
	"slices"
	"testing"

	"github.com/google/uuid"
)

func TestPracticeSettings_Canonicalize_SortsAndDedupes(t *testing.T) {
	t.Parallel()

	s := PracticeSettings{
		Kind: PracticeKindDeclension,
		Axes: AxisSelections{
			Cases:   []Case{CaseLocative, CaseNominative, CaseLocative, CaseAccusative},
			Genders: []Gender{GenderNeuter, GenderMasculine},
			Numbers: []Number{NumberPlural, NumberSingular, NumberPlural},
		},
		Ranks:     RankWindow{Min: 1, Max: 10},
		DailyGoal: 30,
	}

	canon, repaired := s.Canonicalize()
	if repaired {
		t.Error("ordering and duplicates alone must not count as a repair")
	}
	if want := []Case{CaseNominative, CaseAccusative, CaseLocative}; !slices.Equal(canon.Axes.Cases, want) {
		t.Errorf("cases: got %v, want %v", canon.Axes.Cases, want)
	}
	if want := []Gender{GenderMasculine, GenderNeuter}; !slices.Equal(canon.Axes.Genders, want) {
		t.Errorf("genders: got %v, want %v", canon.Axes.Genders, want)
	}
	if want := []Number{NumberSingular, NumberPlural}; !slices.Equal(canon.Axes.Numbers, want) {
		t.Errorf("numbers: got %v, want %v", canon.Axes.Numbers, want)
	}
}

func TestPracticeSettings_Canonicalize_PermutationInvariant(t *testing.T) {
	t.Parallel()

	a := PracticeSettings{
		Kind: PracticeKindConjugation,
		Axes: AxisSelections{
			Tenses:  []Tense{TenseOptative, TensePresent},
			Persons: []Person{PersonThird, PersonFirst},
			Numbers: []Number{NumberSingular},
			Voices:  []Voice{VoiceReflexive, VoiceActive},
		},
		Ranks:     RankWindow{Min: 1, Max: 5},
		DailyGoal: 20,
	}
	b := a
	b.Axes = AxisSelections{
		Tenses:  []Tense{TensePresent, TenseOptative},
		Persons: []Person{PersonFirst, PersonThird},
		Numbers: []Number{NumberSingular},
		Voices:  []Voice{VoiceActive, VoiceReflexive},
	}

	ca, _ := a.Canonicalize()
	cb, _ := b.Canonicalize()
	if !slices.Equal(ca.Axes.Tenses, cb.Axes.Tenses) ||
		!slices.Equal(ca.Axes.Persons, cb.Axes.Persons) ||
		!slices.Equal(ca.Axes.Voices, cb.Axes.Voices) {
		t.Errorf("canonical forms differ: %+v vs %+v", ca.Axes, cb.Axes)
	}
}

func TestPracticeSettings_Canonicalize_RepairsEmptyAndInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*PracticeSettings)
		check  func(t *testing.T, s PracticeSettings)
	}{
		{
			name:   "empty cases",
			mutate: func(s *PracticeSettings) { s.Axes.Cases = nil },
			check: func(t *testing.T, s PracticeSettings) {
				if !slices.Equal(s.Axes.Cases, AllCases) {
					t.Errorf("cases: got %v, want all cases", s.Axes.Cases)
				}
			},
		},
		{
			name:   "only invalid numbers",
			mutate: func(s *PracticeSettings) { s.Axes.Numbers = []Number{0, 7} },
			check: func(t *testing.T, s PracticeSettings) {
				if !slices.Equal(s.Axes.Numbers, AllNumbers) {
					t.Errorf("numbers: got %v, want defaults", s.Axes.Numbers)
				}
			},
		},
		{
			name:   "mixed valid and invalid cases",
			mutate: func(s *PracticeSettings) { s.Axes.Cases = []Case{CaseDative, 42} },
			check: func(t *testing.T, s PracticeSettings) {
				if !slices.Equal(s.Axes.Cases, []Case{CaseDative}) {
					t.Errorf("cases: got %v, want [dative]", s.Axes.Cases)
				}
			},
		},
		{
			name:   "inverted rank window",
			mutate: func(s *PracticeSettings) { s.Ranks = RankWindow{Min: 30, Max: 10} },
			check: func(t *testing.T, s PracticeSettings) {
				if s.Ranks != (RankWindow{Min: DefaultRankMin, Max: DefaultRankMax}) {
					t.Errorf("ranks: got %+v", s.Ranks)
				}
			},
		},
		{
			name:   "zero rank min",
			mutate: func(s *PracticeSettings) { s.Ranks = RankWindow{Min: 0, Max: 10} },
			check: func(t *testing.T, s PracticeSettings) {
				if !s.Ranks.IsValid() {
					t.Errorf("ranks not repaired: %+v", s.Ranks)
				}
			},
		},
		{
			name:   "negative daily goal",
			mutate: func(s *PracticeSettings) { s.DailyGoal = -5 },
			check: func(t *testing.T, s PracticeSettings) {
				if s.DailyGoal != DefaultDailyGoal {
					t.Errorf("daily goal: got %d", s.DailyGoal)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := DefaultPracticeSettings(uuid.New(), PracticeKindDeclension)
			tt.mutate(&s)

			canon, repaired := s.Canonicalize()
			if !repaired {
				t.Fatal("expected repaired = true")
			}
			tt.check(t, canon)
		})
	}
}

func TestPracticeSettings_Canonicalize_ClearsForeignAxes(t *testing.T) {
	t.Parallel()

	s := DefaultPracticeSettings(uuid.New(), PracticeKindDeclension)
	s.Axes.Tenses = []Tense{TenseFuture}
	s.Axes.Voices = []Voice{VoiceActive}

	canon, repaired := s.Canonicalize()
	if repaired {
		t.Error("foreign axes are ignored, not repaired")
	}
	if canon.Axes.Tenses != nil || canon.Axes.Voices != nil {
		t.Errorf("conjugation axes should be cleared for declension: %+v", canon.Axes)
	}
}

func TestDefaultPracticeSettings_AreCanonical(t *testing.T) {
	t.Parallel()

	for _, kind := range []PracticeKind{PracticeKindDeclension, PracticeKindConjugation} {
		s := DefaultPracticeSettings(uuid.New(), kind)
		if _, repaired := s.Canonicalize(); repaired {
			t.Errorf("%s defaults should not need repair", kind)
		}
	}
}

func TestRankWindow_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		w    RankWindow
		want bool
	}{
		{RankWindow{1, 1}, true},
		{RankWindow{1, 20}, true},
		{RankWindow{0, 20}, false},
		{RankWindow{5, 4}, false},
		{RankWindow{1, MaxRankWindow + 1}, false},
	}
	for _, tt := range tests {
		if got := tt.w.IsValid(); got != tt.want {
			t.Errorf("%+v.IsValid() = %v, want %v", tt.w, got, tt.want)
		}
	}
}
