package start

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/whalebone-dev/whalebone/api"
	"github.com/whalebone-dev/whalebone/internal/definition"
	"github.com/whalebone-dev/whalebone/internal/metrics"
	"github.com/whalebone-dev/whalebone/internal/registry"
	"github.com/whalebone-dev/whalebone/pkg/env"
	"github.com/whalebone-dev/whalebone/pkg/log"
)

const (
	usage   = "start"
	short   = "Serve the definitions over GraphQL and HTTP"
	long    = "This command loads the definition files, assembles the GraphQL schema and serves it together with one HTTP route per operation"
	example = "whalebone start --definitions 'definitions/**/*.yaml'"
)

var (
	// Cmd is the start command.
	Cmd = &cobra.Command{
		Use:        usage,
		Short:      short,
		Long:       long,
		Aliases:    []string{"s"},
		SuggestFor: []string{"serve", "run", "up"},
		Example:    example,
		RunE:       start,
	}

	definitions string
)

func init() {
	Cmd.Flags().StringVarP(&definitions, "definitions", "d", "", "Glob of definition files (default: $WHALEBONE_DEFINITIONS)")
}

func start(cmd *cobra.Command, args []string) error {
	pattern := definitions
	if pattern == "" {
		pattern = env.Variables().Definitions
	}

	docs, err := definition.Load(pattern)
	if err != nil {
		return err
	}

	reg := registry.New()
	if err := definition.Register(reg, docs, nil); err != nil {
		return err
	}

	metrics.Register()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info(
		"spinning up api",
		"queries", reg.Queries().Len(),
		"mutations", reg.Mutations().Len(),
	)

	return api.Start(ctx, reg)
}
