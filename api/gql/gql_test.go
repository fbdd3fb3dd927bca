package gql

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/whalebone-dev/whalebone/internal/fields"
	"github.com/whalebone-dev/whalebone/internal/operation"
	"github.com/whalebone-dev/whalebone/internal/registry"
	"github.com/whalebone-dev/whalebone/internal/schema"
	"github.com/whalebone-dev/whalebone/internal/types"
)

type GQLTestSuite struct {
	suite.Suite
	e *echo.Echo
}

func (s *GQLTestSuite) SetupTest() {
	reg := registry.New()
	item := types.New(reg, types.Config{
		Name:   "Item",
		Fields: map[string]fields.Declaration{"title": {Type: fields.String}},
	})
	operation.Queries(reg, operation.Config{
		Queries: map[string]operation.Query{"list": {Output: operation.ListOf(item)}},
		Handlers: map[string]operation.Handler{"list": func(context.Context, interface{}, map[string]interface{}) (interface{}, error) {
			return []map[string]interface{}{{"_id": "1", "title": "Lamp"}}, nil
		}},
	})

	built, err := schema.New(reg)
	require.NoError(s.T(), err)

	s.e = echo.New()
	h := Handler(built, Options{GraphiQL: true})
	s.e.GET("/gql", h)
	s.e.POST("/gql", h)
}

func (s *GQLTestSuite) TestPost() {
	req := httptest.NewRequest(http.MethodPost, "/gql", strings.NewReader(`{"query":"{ list { _id title } }"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.JSONEq(s.T(), `{"data":{"list":[{"_id":"1","title":"Lamp"}]}}`, rec.Body.String())
}

func (s *GQLTestSuite) TestGet() {
	req := httptest.NewRequest(http.MethodGet, "/gql?query="+url.QueryEscape("{ list { title } }"), nil)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.JSONEq(s.T(), `{"data":{"list":[{"title":"Lamp"}]}}`, rec.Body.String())
}

func (s *GQLTestSuite) TestGraphiQL() {
	req := httptest.NewRequest(http.MethodGet, "/gql", nil)
	req.Header.Set(echo.HeaderAccept, "text/html")
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.Contains(s.T(), rec.Body.String(), "graphiql")
}

func TestGQLTestSuite(t *testing.T) {
	suite.Run(t, new(GQLTestSuite))
}
