package reflux

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config controls middleware and registry behavior.
//
// The zero value is usable: SetDefaults fills every unset field with a
// sensible default, and New calls SetDefaults and Validate on the copy it
// receives.
type Config struct {
	// MetricsNamespace is the namespace under which Prometheus metrics are
	// registered when a Prometheus collector is used.
	//
	// Default: "reflux"
	MetricsNamespace string `yaml:"metricsNamespace"`

	// SuppressOverReleaseWarnings disables the warning log emitted when a
	// cleanup callback is invoked more times than its registration had
	// subscriptions. Over-release is always tolerated either way; this only
	// controls log noise.
	SuppressOverReleaseWarnings bool `yaml:"suppressOverReleaseWarnings"`
}

// metricsNamespacePattern matches valid Prometheus namespace identifiers.
var metricsNamespacePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// SetDefaults fills unset fields with default values.
func (c *Config) SetDefaults() {
	if c.MetricsNamespace == "" {
		c.MetricsNamespace = "reflux"
	}
}

// Validate checks the configuration for invalid values.
//
// Returns:
//   - error: ErrInvalidConfig (wrapped with detail) if a field is invalid
func (c *Config) Validate() error {
	if !metricsNamespacePattern.MatchString(c.MetricsNamespace) {
		return fmt.Errorf("%w: metricsNamespace %q is not a valid metric namespace", ErrInvalidConfig, c.MetricsNamespace)
	}

	return nil
}

// LoadConfig reads a YAML configuration file, applies defaults, and
// validates the result.
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - *Config: The loaded configuration with defaults applied
//   - error: Read, parse, or validation failure
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
