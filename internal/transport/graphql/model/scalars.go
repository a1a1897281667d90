package model

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/google/uuid"

	"github.com/heartmarshall/palipractice-backend/internal/domain"
)

// MarshalDateTime writes t as an RFC 3339 string.
func MarshalDateTime(t time.Time) graphql.Marshaler {
	return graphql.WriterFunc(func(w io.Writer) {
		io.WriteString(w, strconv.Quote(t.Format(time.RFC3339))) //nolint:errcheck
	})
}

func UnmarshalDateTime(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("DateTime must be an RFC 3339 string")
	}
	return time.Parse(time.RFC3339, s)
}

func MarshalUUID(u uuid.UUID) graphql.Marshaler {
	return graphql.WriterFunc(func(w io.Writer) {
		io.WriteString(w, strconv.Quote(u.String())) //nolint:errcheck
	})
}

func UnmarshalUUID(v any) (uuid.UUID, error) {
	s, ok := v.(string)
	if !ok {
		return uuid.UUID{}, fmt.Errorf("UUID must be a string")
	}
	return uuid.Parse(s)
}

// MarshalFormID writes a form ID as a JSON number. Conjugation IDs need
// more than 32 bits, so the GraphQL Int type cannot carry them.
func MarshalFormID(id domain.FormID) graphql.Marshaler {
	return graphql.MarshalInt64(int64(id))
}

func UnmarshalFormID(v any) (domain.FormID, error) {
	n, err := graphql.UnmarshalInt64(v)
	if err != nil {
		return 0, fmt.Errorf("FormID must be an integer: %w", err)
	}
	return domain.FormID(n), nil
}
