package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/prometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/whalebone-dev/whalebone/api/gql"
	"github.com/whalebone-dev/whalebone/api/router"
	"github.com/whalebone-dev/whalebone/internal/registry"
	"github.com/whalebone-dev/whalebone/internal/schema"
	"github.com/whalebone-dev/whalebone/pkg/env"
	"github.com/whalebone-dev/whalebone/pkg/log"
)

var (
	mu     sync.Mutex
	server *echo.Echo
)

// New builds the API server for the registry: health, metrics, the
// GraphQL endpoint and the operation routes.
func New(reg *registry.Registry) (*echo.Echo, error) {
	vars := env.Variables()

	built, err := schema.New(reg)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(e)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// health
	e.GET("/health", Health)

	// metrics
	prometheus.NewPrometheus("whalebone", nil).Use(e)

	// GraphQL
	h := gql.Handler(built, gql.Options{Pretty: vars.Pretty, GraphiQL: vars.GraphiQL})
	e.GET(vars.GraphQLPath, h)
	e.POST(vars.GraphQLPath, h)

	// operations
	router.Bind(e.Group(vars.RoutePrefix), reg)

	return e, nil
}

// Start launches the API and blocks until it stops or ctx is done.
func Start(ctx context.Context, reg *registry.Registry) error {
	e, err := New(reg)
	if err != nil {
		return err
	}

	mu.Lock()
	server = e
	mu.Unlock()

	go func() {
		<-ctx.Done()
		if err := Shutdown(); err != nil {
			log.Error("api shutdown failure", "error", err)
		}
	}()

	addr := fmt.Sprintf(":%v", env.Variables().Port)
	log.Info("api listening", "addr", addr)

	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops a running API.
func Shutdown() error {
	mu.Lock()
	e := server
	server = nil
	mu.Unlock()

	if e == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), env.Variables().ShutdownTimeout)
	defer cancel()

	return e.Shutdown(ctx)
}

// errorHandler logs every error that reaches the centralized handler
// before echo renders it.
func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		log.Error(
			"request failure",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"error", err,
		)
		e.DefaultHTTPErrorHandler(err, c)
	}
}
