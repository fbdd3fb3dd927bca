package fields

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Primitive is the loosely-typed marker a declaration carries.
type Primitive string

const (
	String  Primitive = "String"
	Number  Primitive = "Number"
	Boolean Primitive = "Boolean"
)

// IntHint selects the integer kind for Number declarations.
const IntHint = "int"

// Declaration is a single field as written by a caller, before mapping.
type Declaration struct {
	Type        Primitive `yaml:"type" json:"type"`
	GraphQLType string    `yaml:"graphqlType,omitempty" json:"graphqlType,omitempty"`
	Required    bool      `yaml:"required,omitempty" json:"required,omitempty"`
	Exclude     bool      `yaml:"graphqlExclude,omitempty" json:"graphqlExclude,omitempty"`
	// Ref names an object type that output fields resolve to when
	// it is registered.
	Ref string `yaml:"ref,omitempty" json:"ref,omitempty"`
	// List is set by the one-element list form.
	List bool `yaml:"-" json:"-"`
}

// ListOf marks d as a list of its own kind.
func ListOf(d Declaration) Declaration {
	d.List = true
	return d
}

// UnmarshalYAML accepts a bare marker (`String`), a mapping, or a
// one-element sequence of either.
func (d *Declaration) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*d = Declaration{Type: Primitive(value.Value)}
		return nil
	case yaml.MappingNode:
		type rawDeclaration Declaration
		var raw rawDeclaration
		if err := value.Decode(&raw); err != nil {
			return err
		}
		*d = Declaration(raw)
		d.List = false
		return nil
	case yaml.SequenceNode:
		if len(value.Content) != 1 {
			return fmt.Errorf("line %d: list declaration must contain exactly one element, got %d", value.Line, len(value.Content))
		}
		if value.Content[0].Kind == yaml.SequenceNode {
			return fmt.Errorf("line %d: nested list declarations are not supported", value.Line)
		}
		var inner Declaration
		if err := value.Content[0].Decode(&inner); err != nil {
			return err
		}
		*d = ListOf(inner)
		return nil
	default:
		return fmt.Errorf("line %d: unsupported field declaration", value.Line)
	}
}

// UnmarshalJSON accepts the same shapes as UnmarshalYAML.
func (d *Declaration) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty field declaration")
	}

	switch data[0] {
	case '"':
		var marker string
		if err := json.Unmarshal(data, &marker); err != nil {
			return err
		}
		*d = Declaration{Type: Primitive(marker)}
		return nil
	case '{':
		type rawDeclaration Declaration
		var raw rawDeclaration
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*d = Declaration(raw)
		return nil
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(data, &elems); err != nil {
			return err
		}
		if len(elems) != 1 {
			return fmt.Errorf("list declaration must contain exactly one element, got %d", len(elems))
		}
		if inner := bytes.TrimSpace(elems[0]); len(inner) > 0 && inner[0] == '[' {
			return fmt.Errorf("nested list declarations are not supported")
		}
		var inner Declaration
		if err := json.Unmarshal(elems[0], &inner); err != nil {
			return err
		}
		*d = ListOf(inner)
		return nil
	default:
		return fmt.Errorf("unsupported field declaration: %s", data)
	}
}
