// Package operation turns query and mutation descriptors plus handler
// functions into GraphQL fields and accumulates them in a registry.
package operation

import (
	"context"
	"sort"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/whalebone-dev/whalebone/internal/fields"
	"github.com/whalebone-dev/whalebone/internal/metrics"
	"github.com/whalebone-dev/whalebone/internal/registry"
	"github.com/whalebone-dev/whalebone/pkg/log"
)

// Handler produces an operation result from the root value and the
// operation arguments.
type Handler func(ctx context.Context, root interface{}, args map[string]interface{}) (interface{}, error)

// Output is an operation result type. List marks a list of Type.
type Output struct {
	Type graphql.Output
	List bool
}

// One returns an Output of t.
func One(t graphql.Output) Output {
	return Output{Type: t}
}

// ListOf returns an Output of a list of t.
func ListOf(t graphql.Output) Output {
	return Output{Type: t, List: true}
}

// GraphQL returns the field type for o.
func (o Output) GraphQL() graphql.Output {
	if o.List {
		return graphql.NewList(o.Type)
	}
	return o.Type
}

// Query describes a query operation.
type Query struct {
	Description string
	Output      Output
}

// Mutation describes a mutation operation.
type Mutation struct {
	Description string
	Input       map[string]fields.Declaration
	Output      Output
}

// Config bundles operation descriptors with their handlers, keyed by
// operation name.
type Config struct {
	Queries   map[string]Query
	Mutations map[string]Mutation
	Handlers  map[string]Handler
}

// Queries builds a field for every query that has a handler and merges
// them into the registry's query bucket. Queries without a handler are
// skipped.
func Queries(reg *registry.Registry, cfg Config) graphql.Fields {
	built := graphql.Fields{}

	for _, name := range sortedKeys(cfg.Queries) {
		handler := cfg.Handlers[name]
		if handler == nil {
			continue
		}
		q := cfg.Queries[name]
		built[name] = &graphql.Field{
			Name:        name,
			Description: q.Description,
			Type:        q.Output.GraphQL(),
			Resolve:     resolver(registry.QueriesBucket, name, handler),
		}
	}

	merge(reg.Queries(), built)

	return built
}

// Mutations builds a field for every mutation that has a handler, with
// the mutation input mapped into arguments, and merges them into the
// registry's mutation bucket.
func Mutations(reg *registry.Registry, cfg Config) graphql.Fields {
	built := graphql.Fields{}

	for _, name := range sortedKeys(cfg.Mutations) {
		handler := cfg.Handlers[name]
		if handler == nil {
			continue
		}
		m := cfg.Mutations[name]
		built[name] = &graphql.Field{
			Name:        name,
			Description: m.Description,
			Type:        m.Output.GraphQL(),
			Args:        fields.Arguments(fields.Map(m.Input)),
			Resolve:     resolver(registry.MutationsBucket, name, handler),
		}
	}

	merge(reg.Mutations(), built)

	return built
}

// Resolver registers the queries and then the mutations of cfg.
func Resolver(reg *registry.Registry, cfg Config) {
	Queries(reg, cfg)
	Mutations(reg, cfg)
}

func merge(bucket *registry.Bucket[*graphql.Field], built graphql.Fields) {
	if bucket == nil {
		return
	}

	for _, name := range sortedKeys(built) {
		if bucket.Set(name, built[name]) {
			log.Debug("replaced operation", "bucket", bucket.Name(), "name", name)
		} else {
			log.Debug("registered operation", "bucket", bucket.Name(), "name", name)
		}
	}

	metrics.RegisteredOperations.WithLabelValues(bucket.Name()).Set(float64(bucket.Len()))
}

func resolver(bucket, name string, handler Handler) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		ctx := p.Context
		if ctx == nil {
			ctx = context.Background()
		}

		start := time.Now()
		value, err := handler(ctx, p.Source, p.Args)
		metrics.OperationResolveDurationSeconds.
			WithLabelValues(bucket, name).
			Observe(time.Since(start).Seconds())

		status := metrics.StatusSucceeded
		if err != nil {
			status = metrics.StatusFailed
			log.Debug("operation resolve failure", "bucket", bucket, "name", name, "error", err)
		}
		metrics.OperationResolvesTotal.WithLabelValues(bucket, name, status).Inc()

		return value, err
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
