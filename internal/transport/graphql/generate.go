// Package graphql serves the practice API over GraphQL. The schema lives in
// schema/*.graphqls; the executable schema in generated/ and the resolver
// stubs are produced by gqlgen from gqlgen.yml.
package graphql

//go:generate go run github.com/99designs/gqlgen generate
