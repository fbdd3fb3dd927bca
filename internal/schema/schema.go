// Package schema assembles the accumulated operations into a GraphQL schema.
package schema

import (
	"errors"

	"github.com/graphql-go/graphql"
	"github.com/whalebone-dev/whalebone/internal/registry"
	"github.com/whalebone-dev/whalebone/pkg/log"
)

// Root type names.
const (
	QueryName    = "Query"
	MutationName = "Mutation"
)

// ErrUnavailable is returned when there is no registry to assemble from.
var ErrUnavailable = errors.New("schema unavailable: no registry")

// Config returns the schema configuration for the registry. The query
// root is present only when queries were registered; likewise for the
// mutation root.
func Config(reg *registry.Registry) (graphql.SchemaConfig, error) {
	cfg := graphql.SchemaConfig{}
	if !reg.Available() {
		return cfg, ErrUnavailable
	}

	if reg.Queries().Len() > 0 {
		cfg.Query = graphql.NewObject(graphql.ObjectConfig{
			Name:   QueryName,
			Fields: registry.Fields(reg.Queries()),
		})
	}

	if reg.Mutations().Len() > 0 {
		cfg.Mutation = graphql.NewObject(graphql.ObjectConfig{
			Name:   MutationName,
			Fields: registry.Fields(reg.Mutations()),
		})
	}

	return cfg, nil
}

// New assembles a schema from the registry. Construction failures,
// including an empty registry, come from graphql-go unchanged.
func New(reg *registry.Registry) (*graphql.Schema, error) {
	cfg, err := Config(reg)
	if err != nil {
		return nil, err
	}

	s, err := graphql.NewSchema(cfg)
	if err != nil {
		return nil, err
	}

	log.Info(
		"assembled graphql schema",
		"queries", reg.Queries().Len(),
		"mutations", reg.Mutations().Len(),
		"types", reg.Types().Len(),
	)

	return &s, nil
}
