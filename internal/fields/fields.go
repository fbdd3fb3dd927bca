// Package fields maps loosely-typed field declarations onto graphql-go
// field and argument definitions.
package fields

import (
	"strings"

	"github.com/graphql-go/graphql"
)

// Kind is the scalar kind a declaration resolves to.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBoolean
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindBoolean:
		return "Boolean"
	default:
		return "String"
	}
}

// Scalar returns the graphql-go scalar for k.
func (k Kind) Scalar() *graphql.Scalar {
	switch k {
	case KindInt:
		return graphql.Int
	case KindFloat:
		return graphql.Float
	case KindBoolean:
		return graphql.Boolean
	default:
		return graphql.String
	}
}

// Descriptor is a resolved declaration.
type Descriptor struct {
	Kind     Kind
	Ref      string
	List     bool
	Required bool
}

// Wrap applies the required wrapper to base and then the list wrapper,
// so a required list of strings becomes [String!].
func (d Descriptor) Wrap(base graphql.Type) graphql.Type {
	t := base
	if d.Required {
		t = graphql.NewNonNull(t)
	}
	if d.List {
		t = graphql.NewList(t)
	}
	return t
}

// Lookup finds a named output type.
type Lookup func(name string) (graphql.Output, bool)

// Resolve classifies a declaration. It returns false for excluded
// declarations.
func Resolve(decl Declaration) (Descriptor, bool) {
	if decl.Exclude {
		return Descriptor{}, false
	}

	return Descriptor{
		Kind:     kindOf(decl),
		Ref:      decl.Ref,
		List:     decl.List,
		Required: decl.Required,
	}, true
}

func kindOf(decl Declaration) Kind {
	switch strings.ToLower(string(decl.Type)) {
	case "string":
		return KindString
	case "number":
		if strings.EqualFold(decl.GraphQLType, IntHint) {
			return KindInt
		}
		return KindFloat
	case "boolean":
		return KindBoolean
	default:
		return KindString
	}
}

// Map resolves every declaration, dropping excluded ones.
func Map(decls map[string]Declaration) map[string]Descriptor {
	descs := make(map[string]Descriptor, len(decls))
	for name, decl := range decls {
		if desc, ok := Resolve(decl); ok {
			descs[name] = desc
		}
	}
	return descs
}

// Fields builds output fields. Descriptors with a Ref use the type that
// lookup returns for it, falling back to their scalar kind.
func Fields(descs map[string]Descriptor, lookup Lookup) graphql.Fields {
	out := make(graphql.Fields, len(descs))
	for name, desc := range descs {
		var base graphql.Type = desc.Kind.Scalar()
		if desc.Ref != "" && lookup != nil {
			if t, ok := lookup(desc.Ref); ok {
				base = t
			}
		}
		out[name] = &graphql.Field{Type: desc.Wrap(base)}
	}
	return out
}

// Arguments builds input arguments. Refs are ignored since object types
// cannot be used as inputs.
func Arguments(descs map[string]Descriptor) graphql.FieldConfigArgument {
	out := make(graphql.FieldConfigArgument, len(descs))
	for name, desc := range descs {
		out[name] = &graphql.ArgumentConfig{Type: desc.Wrap(desc.Kind.Scalar())}
	}
	return out
}
