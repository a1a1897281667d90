package domain

import (
	"encoding/json"
	"testing"
)

func TestCase_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		c    Case
		want bool
	}{
		{CaseNominative, true},
		{CaseInstrumental, true},
		{CaseVocative, true},
		{CaseNone, false},
		{Case(9), false},
	}
	for _, tt := range tests {
		t.Run(tt.c.String(), func(t *testing.T) {
			t.Parallel()
			if got := tt.c.IsValid(); got != tt.want {
				t.Errorf("Case(%d).IsValid() = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestVoice_IsValid(t *testing.T) {
	t.Parallel()

	if !VoiceActive.IsValid() || !VoiceReflexive.IsValid() {
		t.Error("active and reflexive must be valid")
	}
	if VoiceNone.IsValid() || Voice(3).IsValid() {
		t.Error("none and out-of-range voices must be invalid")
	}
}

func TestAxisCodes_MatchTrainingSchema(t *testing.T) {
	t.Parallel()

	// Codes are baked into FormIDs stored in the training database. Voice is
	// the exception: the loader shifts it up by one.
	checks := []struct {
		name string
		got  uint8
		want uint8
	}{
		{"instrumental", uint8(CaseInstrumental), 3},
		{"vocative", uint8(CaseVocative), 8},
		{"masculine", uint8(GenderMasculine), 1},
		{"neuter", uint8(GenderNeuter), 3},
		{"plural", uint8(NumberPlural), 2},
		{"third", uint8(PersonThird), 3},
		{"imperative", uint8(TenseImperative), 2},
		{"aorist", uint8(TenseAorist), 5},
		{"reflexive", uint8(VoiceReflexive), 2},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %d, want %d", c.name, c.got, c.want)
		}
	}
}

func TestEnum_TextRoundTrip(t *testing.T) {
	t.Parallel()

	in := AxisSelections{
		Cases:   []Case{CaseGenitive, CaseLocative},
		Tenses:  []Tense{TenseOptative},
		Voices:  []Voice{VoiceReflexive},
		Numbers: []Number{NumberPlural},
	}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"cases":["genitive","locative"],"numbers":["plural"],"tenses":["optative"],"voices":["reflexive"]}`
	if string(b) != want {
		t.Fatalf("marshal:\n got %s\nwant %s", b, want)
	}

	var out AxisSelections
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Cases[1] != CaseLocative || out.Tenses[0] != TenseOptative || out.Voices[0] != VoiceReflexive {
		t.Errorf("unexpected round trip result: %+v", out)
	}
}

func TestEnum_UnmarshalUnknown(t *testing.T) {
	t.Parallel()

	var c Case
	if err := c.UnmarshalText([]byte("ergative")); err == nil {
		t.Fatal("expected error for unknown case")
	}
	if err := c.UnmarshalText([]byte(" Dative ")); err != nil || c != CaseDative {
		t.Fatalf("got %v, %v; want dative", c, err)
	}
}

func TestEnum_MarshalInvalid(t *testing.T) {
	t.Parallel()

	if _, err := Person(0).MarshalText(); err == nil {
		t.Fatal("expected error when marshaling PersonNone")
	}
}

func TestParsePracticeKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   PracticeKind
		wantOK bool
	}{
		{"declension", PracticeKindDeclension, true},
		{"CONJUGATION", PracticeKindConjugation, true},
		{" conjugation ", PracticeKindConjugation, true},
		{"nouns", PracticeKind("NOUNS"), false},
		{"", PracticeKind(""), false},
	}
	for _, tt := range tests {
		got, ok := ParsePracticeKind(tt.in)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("ParsePracticeKind(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestPracticeSource_IsValid(t *testing.T) {
	t.Parallel()

	if !PracticeSourceNew.IsValid() || !PracticeSourceReview.IsValid() {
		t.Error("both sources must be valid")
	}
	if PracticeSource("LEARNING").IsValid() {
		t.Error("unknown source must be invalid")
	}
}
