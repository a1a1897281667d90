package model

import (
	"encoding"
	"fmt"
	"strings"

	"github.com/99designs/gqlgen/graphql"

	"github.com/heartmarshall/palipractice-backend/internal/domain"
)

// GraphQL enum values are the upper-cased domain names: "genitive" is
// GENITIVE. Zero and unknown codes marshal as null.

type axis interface {
	fmt.Stringer
	IsValid() bool
}

func marshalAxis[T axis](v T) graphql.Marshaler {
	if !v.IsValid() {
		return graphql.Null
	}
	return graphql.MarshalString(strings.ToUpper(v.String()))
}

func unmarshalAxis[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}](enum string, v any) (T, error) {
	var out T
	s, ok := v.(string)
	if !ok {
		return out, fmt.Errorf("%s must be a string", enum)
	}
	if err := PT(&out).UnmarshalText([]byte(s)); err != nil {
		return out, fmt.Errorf("%s: %w", enum, err)
	}
	return out, nil
}

func MarshalCase(v domain.Case) graphql.Marshaler     { return marshalAxis(v) }
func MarshalGender(v domain.Gender) graphql.Marshaler { return marshalAxis(v) }
func MarshalNumber(v domain.Number) graphql.Marshaler { return marshalAxis(v) }
func MarshalTense(v domain.Tense) graphql.Marshaler   { return marshalAxis(v) }
func MarshalPerson(v domain.Person) graphql.Marshaler { return marshalAxis(v) }
func MarshalVoice(v domain.Voice) graphql.Marshaler   { return marshalAxis(v) }

func UnmarshalCase(v any) (domain.Case, error)     { return unmarshalAxis[domain.Case]("Case", v) }
func UnmarshalGender(v any) (domain.Gender, error) { return unmarshalAxis[domain.Gender]("Gender", v) }
func UnmarshalNumber(v any) (domain.Number, error) { return unmarshalAxis[domain.Number]("Number", v) }
func UnmarshalTense(v any) (domain.Tense, error)   { return unmarshalAxis[domain.Tense]("Tense", v) }
func UnmarshalPerson(v any) (domain.Person, error) { return unmarshalAxis[domain.Person]("Person", v) }
func UnmarshalVoice(v any) (domain.Voice, error)   { return unmarshalAxis[domain.Voice]("Voice", v) }

func MarshalPracticeKind(k domain.PracticeKind) graphql.Marshaler {
	return graphql.MarshalString(k.String())
}

// UnmarshalPracticeKind rejects unknown kinds with the same field error the
// service returns, so clients see a VALIDATION code either way.
func UnmarshalPracticeKind(v any) (domain.PracticeKind, error) {
	s, ok := v.(string)
	if !ok {
		return "", domain.InvalidKind.Err()
	}
	k, ok := domain.ParsePracticeKind(s)
	if !ok {
		return "", domain.InvalidKind.Err()
	}
	return k, nil
}

func MarshalPracticeSource(s domain.PracticeSource) graphql.Marshaler {
	return graphql.MarshalString(s.String())
}

func UnmarshalPracticeSource(v any) (domain.PracticeSource, error) {
	s, ok := v.(string)
	if src := domain.PracticeSource(s); ok && src.IsValid() {
		return src, nil
	}
	return "", fmt.Errorf("PracticeSource must be NEW_FORM or DUE_FOR_REVIEW")
}
