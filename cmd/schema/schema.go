package schema

import (
	"github.com/spf13/cobra"
	"github.com/whalebone-dev/whalebone/internal/definition"
	"github.com/whalebone-dev/whalebone/internal/registry"
	gqlschema "github.com/whalebone-dev/whalebone/internal/schema"
	"github.com/whalebone-dev/whalebone/pkg/env"
)

type schemaOptions struct {
	definitions string
	check       bool
}

// Cmd is the schema command.
var Cmd = newSchemaCommand()

func newSchemaCommand() *cobra.Command {
	opts := &schemaOptions{}
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the GraphQL schema assembled from the definition files",
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := opts.definitions
			if pattern == "" {
				pattern = env.Variables().Definitions
			}

			docs, err := definition.Load(pattern)
			if err != nil {
				return err
			}

			reg := registry.New()
			if err := definition.Register(reg, docs, definition.Unserved(docs)); err != nil {
				return err
			}

			if opts.check {
				if _, err := gqlschema.New(reg); err != nil {
					return err
				}
			}

			return gqlschema.Print(cmd.OutOrStdout(), reg)
		},
	}

	cmd.Flags().StringVarP(&opts.definitions, "definitions", "d", "", "Glob of definition files (default: $WHALEBONE_DEFINITIONS)")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Fail if graphql-go rejects the assembled schema")

	return cmd
}
