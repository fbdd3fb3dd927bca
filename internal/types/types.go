// Package types builds named GraphQL object types from field declarations.
package types

import (
	"sync"

	"github.com/graphql-go/graphql"
	"github.com/whalebone-dev/whalebone/internal/fields"
	"github.com/whalebone-dev/whalebone/internal/registry"
	"github.com/whalebone-dev/whalebone/internal/scalar"
	"github.com/whalebone-dev/whalebone/pkg/log"
)

// Identity and timestamp field names injected into every built type.
const (
	IDField        = "_id"
	CreatedAtField = "createdAt"
	UpdatedAtField = "updatedAt"
)

// Options toggles conventional fields.
type Options struct {
	Timestamps bool `yaml:"timestamps" json:"timestamps"`
}

// Config describes an object type.
type Config struct {
	Name        string                        `yaml:"name" json:"name"`
	Description string                        `yaml:"description,omitempty" json:"description,omitempty"`
	Fields      map[string]fields.Declaration `yaml:"fields" json:"fields"`
	Options     *Options                      `yaml:"options,omitempty" json:"options,omitempty"`
}

// New builds the object type described by cfg and stores it in the
// registry's type bucket, replacing any type of the same name. Fields
// are computed on first access so declarations may reference types
// registered later.
func New(reg *registry.Registry, cfg Config) *graphql.Object {
	descs := fields.Map(cfg.Fields)
	timestamps := cfg.Options != nil && cfg.Options.Timestamps

	var (
		once  sync.Once
		built graphql.Fields
	)
	thunk := func() graphql.Fields {
		once.Do(func() {
			built = fields.Fields(descs, lookup(reg))
			built[IDField] = &graphql.Field{Type: graphql.NewNonNull(graphql.ID)}
			if timestamps {
				built[CreatedAtField] = &graphql.Field{Type: scalar.Date}
				built[UpdatedAtField] = &graphql.Field{Type: scalar.Date}
			}
		})
		return built
	}

	obj := graphql.NewObject(graphql.ObjectConfig{
		Name:        cfg.Name,
		Description: cfg.Description,
		Fields:      graphql.FieldsThunk(thunk),
	})

	if reg.Types().Set(cfg.Name, obj) {
		log.Debug("replaced graphql type", "name", cfg.Name)
	} else if reg.Available() {
		log.Debug("registered graphql type", "name", cfg.Name)
	}

	return obj
}

func lookup(reg *registry.Registry) fields.Lookup {
	if !reg.Available() {
		return nil
	}
	return func(name string) (graphql.Output, bool) {
		obj, ok := reg.Types().Get(name)
		if !ok || obj == nil {
			return nil, false
		}
		return obj, true
	}
}
