package graphql

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/heartmarshall/palipractice-backend/internal/domain"
	"github.com/heartmarshall/palipractice-backend/pkg/ctxutil"
)

func TestErrorPresenter_Codes(t *testing.T) {
	presenter := NewErrorPresenter(slog.Default())

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", domain.ErrNotFound, "NOT_FOUND"},
		{"already exists", domain.ErrAlreadyExists, "ALREADY_EXISTS"},
		{"unauthorized", domain.ErrUnauthorized, "UNAUTHENTICATED"},
		{"conflict", domain.ErrConflict, "CONFLICT"},
		{"exhausted", domain.ErrSessionExhausted, "SESSION_EXHAUSTED"},
		{"wrapped", fmt.Errorf("record result: %w", domain.ErrNotFound), "NOT_FOUND"},
		{"kind", domain.InvalidKind.Err(), "VALIDATION"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gqlErr := presenter(context.Background(), tt.err)
			if gqlErr.Extensions == nil {
				t.Fatal("expected extensions, got nil")
			}
			if code := gqlErr.Extensions["code"]; code != tt.want {
				t.Errorf("code = %v, want %s", code, tt.want)
			}
		})
	}
}

func TestErrorPresenter_ValidationFields(t *testing.T) {
	presenter := NewErrorPresenter(slog.Default())

	err := domain.NewValidationErrors([]domain.FieldError{
		{Field: "rank_window", Message: "min is past the last ranked lemma (5)"},
		{Field: "daily_goal", Message: "must be between 1 and 1000"},
	})
	gqlErr := presenter(context.Background(), err)

	fields, ok := gqlErr.Extensions["fields"].([]domain.FieldError)
	if !ok {
		t.Fatalf("expected fields to be []FieldError, got %T", gqlErr.Extensions["fields"])
	}
	if len(fields) != 2 || fields[0].Field != "rank_window" {
		t.Errorf("unexpected fields: %+v", fields)
	}
}

func TestErrorPresenter_KeepsGqlgenCodes(t *testing.T) {
	presenter := NewErrorPresenter(slog.Default())

	parseErr := &gqlerror.Error{
		Message:    "Cannot query field \"foo\" on type \"Query\".",
		Extensions: map[string]any{"code": "GRAPHQL_VALIDATION_FAILED"},
	}
	gqlErr := presenter(context.Background(), parseErr)

	if code := gqlErr.Extensions["code"]; code != "GRAPHQL_VALIDATION_FAILED" {
		t.Errorf("code = %v, want GRAPHQL_VALIDATION_FAILED", code)
	}
	if gqlErr.Message != parseErr.Message {
		t.Errorf("message rewritten to %q", gqlErr.Message)
	}
}

func TestErrorPresenter_UnexpectedErrorIsHidden(t *testing.T) {
	var buf bytes.Buffer
	presenter := NewErrorPresenter(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := errors.New("dial tcp 10.0.0.5:5432: connection refused")
	ctx := ctxutil.WithRequestID(context.Background(), "req-42")

	gqlErr := presenter(ctx, err)

	if gqlErr.Message != "internal error" {
		t.Errorf("message = %q, want generic internal error", gqlErr.Message)
	}
	if code := gqlErr.Extensions["code"]; code != "INTERNAL" {
		t.Errorf("code = %v, want INTERNAL", code)
	}
	if _, leaked := gqlErr.Extensions["details"]; leaked {
		t.Error("extensions must not carry error details")
	}
	logged := buf.String()
	if !strings.Contains(logged, "connection refused") || !strings.Contains(logged, "req-42") {
		t.Errorf("log line should carry the cause and request id, got %s", logged)
	}
}
