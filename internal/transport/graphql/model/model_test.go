package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/99designs/gqlgen/graphql"

	"github.com/heartmarshall/palipractice-backend/internal/domain"
	"github.com/heartmarshall/palipractice-backend/internal/formid"
)

func render(m graphql.Marshaler) string {
	var buf bytes.Buffer
	m.MarshalGQL(&buf)
	return buf.String()
}

func TestAxisEnums(t *testing.T) {
	if got := render(MarshalCase(domain.CaseGenitive)); got != `"GENITIVE"` {
		t.Errorf("MarshalCase = %s", got)
	}
	if got := render(MarshalGender(domain.Gender(0))); got != "null" {
		t.Errorf("zero gender should marshal as null, got %s", got)
	}

	v, err := UnmarshalVoice("REFLEXIVE")
	if err != nil || v != domain.VoiceReflexive {
		t.Errorf("UnmarshalVoice = %v, %v", v, err)
	}
	if _, err := UnmarshalTense("PLUPERFECT"); err == nil {
		t.Error("unknown tense should fail")
	}
	if _, err := UnmarshalNumber(2); err == nil {
		t.Error("non-string number should fail")
	}
}

func TestUnmarshalPracticeKind(t *testing.T) {
	k, err := UnmarshalPracticeKind("CONJUGATION")
	if err != nil || k != domain.PracticeKindConjugation {
		t.Fatalf("got %v, %v", k, err)
	}
	if _, err := UnmarshalPracticeKind("VERBS"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestFormID(t *testing.T) {
	id := formid.EncodeConjugation(99999, domain.TenseAorist, domain.PersonThird, domain.NumberPlural, domain.VoiceReflexive, 9)
	if got := render(MarshalFormID(id)); got != "9999953229" {
		t.Errorf("MarshalFormID = %s", got)
	}

	for _, in := range []any{int64(id), json.Number("9999953229")} {
		got, err := UnmarshalFormID(in)
		if err != nil || got != id {
			t.Errorf("UnmarshalFormID(%v) = %d, %v", in, got, err)
		}
	}
	if _, err := UnmarshalFormID("abc"); err == nil {
		t.Error("non-numeric form id should fail")
	}
}

func TestDateTime(t *testing.T) {
	ts := time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)
	if got := render(MarshalDateTime(ts)); got != `"2026-05-02T08:00:00Z"` {
		t.Errorf("MarshalDateTime = %s", got)
	}
	got, err := UnmarshalDateTime("2026-05-02T08:00:00Z")
	if err != nil || !got.Equal(ts) {
		t.Errorf("UnmarshalDateTime = %v, %v", got, err)
	}
}
