// Package definition reads declarative type and operation documents and
// registers them.
package definition

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/graphql-go/graphql"
	"github.com/pkg/errors"
	"github.com/whalebone-dev/whalebone/internal/fields"
	"github.com/whalebone-dev/whalebone/internal/operation"
	"github.com/whalebone-dev/whalebone/internal/registry"
	"github.com/whalebone-dev/whalebone/internal/scalar"
	"github.com/whalebone-dev/whalebone/internal/types"
	"github.com/whalebone-dev/whalebone/pkg/log"
	"gopkg.in/yaml.v3"
)

// Document is one YAML document of type and operation declarations.
type Document struct {
	Types     []types.Config      `yaml:"types,omitempty"`
	Queries   map[string]Query    `yaml:"queries,omitempty"`
	Mutations map[string]Mutation `yaml:"mutations,omitempty"`
}

// Query declares a query operation. Fixture, when set, is returned by
// the query if no handler is supplied for it.
type Query struct {
	Description string      `yaml:"description,omitempty"`
	Output      OutputRef   `yaml:"output"`
	Fixture     interface{} `yaml:"fixture,omitempty"`
}

// Mutation declares a mutation operation.
type Mutation struct {
	Description string                        `yaml:"description,omitempty"`
	Input       map[string]fields.Declaration `yaml:"input,omitempty"`
	Output      OutputRef                     `yaml:"output"`
	Fixture     interface{}                   `yaml:"fixture,omitempty"`
}

// OutputRef names an operation's result type, written either as
// `Item` or as the list form `[Item]`.
type OutputRef struct {
	Name string
	List bool
}

// UnmarshalYAML decodes the bare and list forms.
func (o *OutputRef) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*o = OutputRef{Name: value.Value}
		return nil
	case yaml.SequenceNode:
		if len(value.Content) != 1 || value.Content[0].Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: list output must name exactly one type", value.Line)
		}
		*o = OutputRef{Name: value.Content[0].Value, List: true}
		return nil
	default:
		return fmt.Errorf("line %d: output must be a type name or a one-element list", value.Line)
	}
}

func (o OutputRef) String() string {
	if o.List {
		return "[" + o.Name + "]"
	}
	return o.Name
}

var builtins = map[string]graphql.Output{
	"String":  graphql.String,
	"Int":     graphql.Int,
	"Float":   graphql.Float,
	"Boolean": graphql.Boolean,
	"ID":      graphql.ID,
	"Date":    scalar.Date,
}

func (d *Document) empty() bool {
	return len(d.Types) == 0 && len(d.Queries) == 0 && len(d.Mutations) == 0
}

// Parse decodes a stream of YAML documents, skipping blank ones.
func Parse(data []byte) ([]*Document, error) {
	var docs []*Document

	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		doc := &Document{}
		if err := dec.Decode(doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if doc.empty() {
			continue
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// Load parses every file matching the doublestar pattern, in lexical
// path order.
func Load(pattern string) ([]*Document, error) {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid definition pattern %q", pattern)
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		log.Warn("no definition files matched", "pattern", pattern)
	}

	var docs []*Document
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read definition file")
		}

		parsed, err := Parse(data)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", path)
		}

		log.Debug("loaded definition file", "path", path, "documents", len(parsed))
		docs = append(docs, parsed...)
	}

	return docs, nil
}

// Register declares every type of every document first, then every
// operation, so outputs may name types from any document. A handler in
// handlers takes precedence over an operation's fixture; operations with
// neither are skipped.
func Register(reg *registry.Registry, docs []*Document, handlers map[string]operation.Handler) error {
	declared := map[string]*graphql.Object{}

	for _, doc := range docs {
		for _, cfg := range doc.Types {
			if cfg.Name == "" {
				return errors.New("type declaration without a name")
			}
			declared[cfg.Name] = types.New(reg, cfg)
		}
	}

	resolve := func(ref OutputRef) (operation.Output, error) {
		if ref.Name == "" {
			return operation.Output{}, errors.New("missing output type")
		}

		var t graphql.Output
		if obj, ok := declared[ref.Name]; ok {
			t = obj
		} else if obj, ok := reg.Types().Get(ref.Name); ok {
			t = obj
		} else if builtin, ok := builtins[ref.Name]; ok {
			t = builtin
		} else {
			return operation.Output{}, errors.Errorf("unknown output type %q", ref.Name)
		}

		return operation.Output{Type: t, List: ref.List}, nil
	}

	for _, doc := range docs {
		queries := operation.Config{
			Queries:  map[string]operation.Query{},
			Handlers: map[string]operation.Handler{},
		}
		for name, q := range doc.Queries {
			out, err := resolve(q.Output)
			if err != nil {
				return errors.Wrapf(err, "query %q", name)
			}
			queries.Queries[name] = operation.Query{Description: q.Description, Output: out}
			if h := handlerFor(name, handlers, q.Fixture); h != nil {
				queries.Handlers[name] = h
			}
		}

		mutations := operation.Config{
			Mutations: map[string]operation.Mutation{},
			Handlers:  map[string]operation.Handler{},
		}
		for name, m := range doc.Mutations {
			out, err := resolve(m.Output)
			if err != nil {
				return errors.Wrapf(err, "mutation %q", name)
			}
			mutations.Mutations[name] = operation.Mutation{Description: m.Description, Input: m.Input, Output: out}
			if h := handlerFor(name, handlers, m.Fixture); h != nil {
				mutations.Handlers[name] = h
			}
		}

		operation.Queries(reg, queries)
		operation.Mutations(reg, mutations)
	}

	return nil
}

func handlerFor(name string, handlers map[string]operation.Handler, fixture interface{}) operation.Handler {
	if h := handlers[name]; h != nil {
		return h
	}
	if fixture == nil {
		return nil
	}
	return Fixture(fixture)
}

// Fixture returns a handler that always resolves to v.
func Fixture(v interface{}) operation.Handler {
	return func(context.Context, interface{}, map[string]interface{}) (interface{}, error) {
		return v, nil
	}
}

// ErrUnserved is returned by the handlers Unserved builds.
var ErrUnserved = errors.New("operation has no handler")

// Unserved returns a handler for every operation declared in docs that
// fails with ErrUnserved. It lets a schema be assembled for inspection
// without real handlers.
func Unserved(docs []*Document) map[string]operation.Handler {
	unserved := func(context.Context, interface{}, map[string]interface{}) (interface{}, error) {
		return nil, ErrUnserved
	}

	handlers := map[string]operation.Handler{}
	for _, doc := range docs {
		for name := range doc.Queries {
			handlers[name] = unserved
		}
		for name := range doc.Mutations {
			handlers[name] = unserved
		}
	}
	return handlers
}
