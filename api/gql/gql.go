package gql

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
	"github.com/labstack/echo/v4"
)

// Options configures the GraphQL endpoint.
type Options struct {
	Pretty   bool
	GraphiQL bool
}

// Handler wraps the GraphQL schema and makes it injectable
// into the echo HTTP framework.
func Handler(schema *graphql.Schema, opts Options) echo.HandlerFunc {
	return echo.WrapHandler(
		handler.New(
			&handler.Config{
				Schema:   schema,
				Pretty:   opts.Pretty,
				GraphiQL: opts.GraphiQL,
			},
		),
	)
}
