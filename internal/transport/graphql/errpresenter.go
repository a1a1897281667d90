package graphql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/heartmarshall/palipractice-backend/internal/domain"
	"github.com/heartmarshall/palipractice-backend/pkg/ctxutil"
)

// NewErrorPresenter maps domain errors onto extension codes. Anything it
// does not recognise is logged and reported as INTERNAL with a generic
// message.
func NewErrorPresenter(log *slog.Logger) graphql.ErrorPresenterFunc {
	return func(ctx context.Context, err error) *gqlerror.Error {
		gqlErr := graphql.DefaultErrorPresenter(ctx, err)

		// gqlgen wraps resolver errors in a *gqlerror.Error carrying the path.
		cause := err
		if unwrapped := errors.Unwrap(err); unwrapped != nil {
			cause = unwrapped
		}

		code := ""
		switch {
		case errors.Is(cause, domain.ErrNotFound):
			code = "NOT_FOUND"
		case errors.Is(cause, domain.ErrAlreadyExists):
			code = "ALREADY_EXISTS"
		case errors.Is(cause, domain.ErrValidation):
			gqlErr.Extensions = map[string]any{"code": "VALIDATION"}
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				gqlErr.Extensions["fields"] = ve.Errors
			}
			return gqlErr
		case errors.Is(cause, domain.ErrUnauthorized):
			code = "UNAUTHENTICATED"
		case errors.Is(cause, domain.ErrConflict):
			code = "CONFLICT"
		case errors.Is(cause, domain.ErrSessionExhausted):
			code = "SESSION_EXHAUSTED"
		case gqlErr.Extensions != nil && gqlErr.Extensions["code"] != nil:
			// Parse and validation failures already carry a gqlgen code.
			return gqlErr
		default:
			log.ErrorContext(ctx, "unexpected graphql error",
				slog.String("error", cause.Error()),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			)
			gqlErr.Message = "internal error"
			code = "INTERNAL"
		}

		gqlErr.Extensions = map[string]any{"code": code}
		return gqlErr
	}
}
