package env

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/whalebone-dev/whalebone/pkg/log"
)

var variables = new(Environment)

// Process the environment variables set for whalebone.
func Process() error {
	if err := envconfig.Process("whalebone", variables); err != nil {
		return errors.Wrap(err, "failed to process environment variables")
	}

	// set the log level
	if err := log.SetLevel(variables.LogLevel); err != nil {
		return errors.Wrap(err, "failed to set log level")
	}

	return nil
}

// Variables returns the processed environment variables.
func Variables() Environment {
	return *variables
}

// Environment defines the environment variables used
// by whalebone.
type Environment struct {
	LogLevel        string        `default:"info" split_words:"true"`
	Port            int           `default:"8080"`
	Definitions     string        `default:"definitions/**/*.yaml"`
	RoutePrefix     string        `default:"/api" split_words:"true"`
	GraphQLPath     string        `default:"/gql" envconfig:"GRAPHQL_PATH"`
	GraphiQL        bool          `default:"true" envconfig:"GRAPHIQL"`
	Pretty          bool          `default:"true"`
	ShutdownTimeout time.Duration `default:"10s" split_words:"true"`
}
