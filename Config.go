package webapp

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config defines a set of configuration values that dictate how the handler
// behaves at a global level.
type Config struct {
	ProblemDetailsTypePrefix string `env:"PROBLEM_DETAILS_TYPE_PREFIX" envDefault:"about:blank"`
	DebuggingEnabled         bool   `env:"DEBUGGING_ENABLED" envDefault:"false"`
	JSONContentLengthLimit   int64  `env:"JSON_CONTENT_LENGTH_LIMIT" envDefault:"1048576"`
	DefaultLanguage          string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
}

// DefaultConfig returns the configuration used when none is supplied, such as
// when invoking a controller from a test.
func DefaultConfig() *Config {
	return &Config{
		ProblemDetailsTypePrefix: "about:blank",
		JSONContentLengthLimit:   1 << 20,
		DefaultLanguage:          DefaultLanguage,
	}
}

// NewConfigFromEnvironment reads a Config from environment variables.  Every
// variable name is prefixed with prefix, e.g. "APP_" yields
// APP_DEBUGGING_ENABLED.
func NewConfigFromEnvironment(prefix string) (*Config, error) {
	return newConfigFromOptions(env.Options{Prefix: prefix})
}

func newConfigFromOptions(opts env.Options) (*Config, error) {
	config := &Config{}

	err := env.ParseWithOptions(config, opts)
	if err != nil {
		return nil, fmt.Errorf("error reading config from environment: %w", err)
	}

	if config.DefaultLanguage == "" {
		config.DefaultLanguage = DefaultLanguage
	}

	return config, nil
}
