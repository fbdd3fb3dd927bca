package fields

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"
)

type FieldsTestSuite struct {
	suite.Suite
}

func (s *FieldsTestSuite) TestBareKinds() {
	descs := Map(map[string]Declaration{
		"title":   {Type: String},
		"count":   {Type: Number, GraphQLType: IntHint},
		"score":   {Type: Number},
		"active":  {Type: Boolean},
		"created": {Type: "Date"},
		"blank":   {},
	})

	want := map[string]Descriptor{
		"title":   {Kind: KindString},
		"count":   {Kind: KindInt},
		"score":   {Kind: KindFloat},
		"active":  {Kind: KindBoolean},
		"created": {Kind: KindString},
		"blank":   {Kind: KindString},
	}
	if diff := cmp.Diff(want, descs); diff != "" {
		s.T().Errorf("descriptors mismatch (-want +got):\n%s", diff)
	}

	fields := Fields(descs, nil)
	assert.Equal(s.T(), graphql.String, fields["title"].Type)
	assert.Equal(s.T(), graphql.Int, fields["count"].Type)
	assert.Equal(s.T(), graphql.Float, fields["score"].Type)
	assert.Equal(s.T(), graphql.Boolean, fields["active"].Type)
	assert.Equal(s.T(), graphql.String, fields["created"].Type)
}

func (s *FieldsTestSuite) TestMarkersAreCaseInsensitive() {
	desc, ok := Resolve(Declaration{Type: "number", GraphQLType: "INT"})
	assert.True(s.T(), ok)
	assert.Equal(s.T(), KindInt, desc.Kind)
}

func (s *FieldsTestSuite) TestWrapOrder() {
	fields := Fields(Map(map[string]Declaration{
		"tags":     ListOf(Declaration{Type: String, Required: true}),
		"scores":   ListOf(Declaration{Type: Number}),
		"name":     {Type: String, Required: true},
		"features": ListOf(Declaration{Type: Boolean}),
	}), nil)

	assert.Equal(s.T(), "[String!]", fields["tags"].Type.String())
	assert.Equal(s.T(), "[Float]", fields["scores"].Type.String())
	assert.Equal(s.T(), "String!", fields["name"].Type.String())
	assert.Equal(s.T(), "[Boolean]", fields["features"].Type.String())

	tags, ok := fields["tags"].Type.(*graphql.List)
	require.True(s.T(), ok)
	nonNull, ok := tags.OfType.(*graphql.NonNull)
	require.True(s.T(), ok)
	assert.Equal(s.T(), graphql.String, nonNull.OfType)
}

func (s *FieldsTestSuite) TestExclude() {
	descs := Map(map[string]Declaration{
		"secret": {Type: String, Required: true, Exclude: true},
		"hidden": ListOf(Declaration{Type: Number, Exclude: true}),
		"shown":  {Type: String},
	})
	assert.Len(s.T(), descs, 1)
	assert.Contains(s.T(), descs, "shown")

	_, ok := Resolve(Declaration{Exclude: true})
	assert.False(s.T(), ok)
}

func (s *FieldsTestSuite) TestRefs() {
	author := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Author",
		Fields: graphql.Fields{"name": &graphql.Field{Type: graphql.String}},
	})
	lookup := func(name string) (graphql.Output, bool) {
		if name == "Author" {
			return author, true
		}
		return nil, false
	}

	descs := Map(map[string]Declaration{
		"author":   {Ref: "Author", Required: true},
		"editors":  ListOf(Declaration{Ref: "Author"}),
		"reviewer": {Ref: "Missing"},
	})

	fields := Fields(descs, lookup)
	assert.Equal(s.T(), "Author!", fields["author"].Type.String())
	assert.Equal(s.T(), "[Author]", fields["editors"].Type.String())
	assert.Equal(s.T(), graphql.String, fields["reviewer"].Type)

	args := Arguments(descs)
	assert.Equal(s.T(), "String!", args["author"].Type.String())
}

func (s *FieldsTestSuite) TestArguments() {
	args := Arguments(Map(map[string]Declaration{
		"title": {Type: String, Required: true},
		"count": {Type: Number, GraphQLType: IntHint},
		"tags":  ListOf(Declaration{Type: String}),
	}))
	assert.Len(s.T(), args, 3)
	assert.Equal(s.T(), "String!", args["title"].Type.String())
	assert.Equal(s.T(), graphql.Int, args["count"].Type)
	assert.Equal(s.T(), "[String]", args["tags"].Type.String())
}

func (s *FieldsTestSuite) TestDecodeYAML() {
	doc := `
title: String
count:
  type: Number
  graphqlType: int
  required: true
tags: [String]
scores:
  - type: Number
    required: true
secret:
  type: String
  graphqlExclude: true
`
	var decls map[string]Declaration
	require.NoError(s.T(), yaml.Unmarshal([]byte(doc), &decls))

	want := map[string]Declaration{
		"title":  {Type: String},
		"count":  {Type: Number, GraphQLType: IntHint, Required: true},
		"tags":   {Type: String, List: true},
		"scores": {Type: Number, Required: true, List: true},
		"secret": {Type: String, Exclude: true},
	}
	if diff := cmp.Diff(want, decls); diff != "" {
		s.T().Errorf("declarations mismatch (-want +got):\n%s", diff)
	}
}

func (s *FieldsTestSuite) TestDecodeYAMLFailures() {
	var decls map[string]Declaration
	assert.Error(s.T(), yaml.Unmarshal([]byte("tags: [String, Number]"), &decls))
	assert.Error(s.T(), yaml.Unmarshal([]byte("tags: [[String]]"), &decls))
	assert.Error(s.T(), yaml.Unmarshal([]byte("tags: []"), &decls))
}

func (s *FieldsTestSuite) TestDecodeJSON() {
	doc := `{"title":"String","tags":["String"],"count":{"type":"Number","graphqlType":"int"},"refs":[{"ref":"Author"}]}`

	var decls map[string]Declaration
	require.NoError(s.T(), json.Unmarshal([]byte(doc), &decls))

	want := map[string]Declaration{
		"title": {Type: String},
		"tags":  {Type: String, List: true},
		"count": {Type: Number, GraphQLType: IntHint},
		"refs":  {Ref: "Author", List: true},
	}
	if diff := cmp.Diff(want, decls); diff != "" {
		s.T().Errorf("declarations mismatch (-want +got):\n%s", diff)
	}

	assert.Error(s.T(), json.Unmarshal([]byte(`{"tags":["String","Number"]}`), &decls))
	assert.Error(s.T(), json.Unmarshal([]byte(`{"tags":[["String"]]}`), &decls))
	assert.Error(s.T(), json.Unmarshal([]byte(`{"tags":12}`), &decls))
}

func (s *FieldsTestSuite) TestKindString() {
	assert.Equal(s.T(), "String", KindString.String())
	assert.Equal(s.T(), "Int", KindInt.String())
	assert.Equal(s.T(), "Float", KindFloat.String())
	assert.Equal(s.T(), "Boolean", KindBoolean.String())
}

func TestFieldsTestSuite(t *testing.T) {
	suite.Run(t, new(FieldsTestSuite))
}
