package app

import (
	"log/slog"
	"net/http"

	gqlhandler "github.com/99designs/gqlgen/graphql/handler"

	"github.com/heartmarshall/palipractice-backend/internal/catalog"
	"github.com/heartmarshall/palipractice-backend/internal/service/practice"
	"github.com/heartmarshall/palipractice-backend/internal/transport/graphql"
	"github.com/heartmarshall/palipractice-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/palipractice-backend/internal/transport/graphql/generated"
	"github.com/heartmarshall/palipractice-backend/internal/transport/graphql/resolver"
)

// newGraphQLHandler builds the /query endpoint. Every request gets its own
// loaders, so mastery lookups for the items of one response are batched.
func newGraphQLHandler(
	logger *slog.Logger,
	svc *practice.Service,
	provider *practice.Provider,
	cat *catalog.Catalog,
	repos *dataloader.Repos,
) http.Handler {
	schema := generated.NewExecutableSchema(generated.Config{
		Resolvers: resolver.NewResolver(logger, svc, provider, cat),
	})
	srv := gqlhandler.NewDefaultServer(schema)
	srv.SetErrorPresenter(graphql.NewErrorPresenter(logger))

	return dataloader.Middleware(repos)(srv)
}
