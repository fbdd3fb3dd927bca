// Package router exposes registered operations as plain HTTP endpoints:
// GET /<query> and POST /<mutation>.
package router

import (
	"net/http"
	"net/url"

	"github.com/graphql-go/graphql"
	"github.com/labstack/echo/v4"
	"github.com/whalebone-dev/whalebone/internal/registry"
	"github.com/whalebone-dev/whalebone/pkg/log"
)

// New returns a fresh router serving every registered operation. An
// absent registry yields a router without operation routes.
func New(reg *registry.Registry) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	Bind(e.Group(""), reg)

	return e
}

// Bind mounts the registered operations onto g, queries first, each
// bucket in registration order.
func Bind(g *echo.Group, reg *registry.Registry) {
	if !reg.Available() {
		return
	}

	reg.Queries().Range(func(name string, f *graphql.Field) bool {
		g.GET("/"+name, Query(f))
		log.Debug("bound query route", "method", http.MethodGet, "name", name)
		return true
	})

	reg.Mutations().Range(func(name string, f *graphql.Field) bool {
		g.POST("/"+name, Mutation(f))
		log.Debug("bound mutation route", "method", http.MethodPost, "name", name)
		return true
	})
}

// Query resolves f with the request's query string as arguments.
func Query(f *graphql.Field) echo.HandlerFunc {
	return func(c echo.Context) error {
		return resolve(c, f, queryArgs(c.QueryParams()))
	}
}

// Mutation resolves f with the request's bound body as arguments.
func Mutation(f *graphql.Field) echo.HandlerFunc {
	return func(c echo.Context) error {
		args := map[string]interface{}{}
		if err := c.Bind(&args); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "malformed request body").SetInternal(err)
		}
		return resolve(c, f, args)
	}
}

// resolve hands resolver errors back to echo untouched so the server's
// HTTPErrorHandler decides the response.
func resolve(c echo.Context, f *graphql.Field, args map[string]interface{}) error {
	data, err := f.Resolve(graphql.ResolveParams{
		Source:  nil,
		Args:    args,
		Context: c.Request().Context(),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, data)
}

// queryArgs keeps single values as strings and repeated keys as lists.
func queryArgs(values url.Values) map[string]interface{} {
	args := make(map[string]interface{}, len(values))
	for key, vs := range values {
		switch len(vs) {
		case 0:
			continue
		case 1:
			args[key] = vs[0]
		default:
			args[key] = append([]string(nil), vs...)
		}
	}
	return args
}
