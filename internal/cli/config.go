package cli

import (
	stderrors "errors"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/toyz/specgen/internal/errors"
)

// DefaultConfigFile is read from the working directory when no --config is given
const DefaultConfigFile = "specgen.yaml"

// Defaults
const (
	DefaultDescriptorSuffix = ".json"
	DefaultSpecSuffix       = ".test.js"
)

// DefaultExcludes skips dependencies and files that already are specs
var DefaultExcludes = []string{
	"**/node_modules/**",
	"**/__tests__/**",
	"**/*.test.*",
	"**/*.spec.*",
}

// Config holds the configuration for the CLI generator
type Config struct {
	// Patterns are the source files or doublestar globs to generate specs for
	Patterns []string `yaml:"-"`

	// DescriptorSuffix is appended to a source path to find its descriptor
	DescriptorSuffix string `yaml:"descriptorSuffix"`

	// SpecSuffix replaces the source extension in the spec file name
	SpecSuffix string `yaml:"specSuffix"`

	// OutDir is where spec files are written. Relative paths are resolved
	// against each source file's directory; empty writes beside the source.
	OutDir string `yaml:"outDir"`

	// Exclude lists doublestar patterns of sources to skip
	Exclude []string `yaml:"exclude"`

	// Concurrency bounds how many files are generated at once
	Concurrency int `yaml:"concurrency"`

	// Force overwrites existing spec files
	Force bool `yaml:"force"`

	// Stdout prints specs instead of writing them
	Stdout bool `yaml:"-"`

	// Verbose enables detailed logging and error reporting
	Verbose bool `yaml:"-"`
}

// DefaultConfig returns the configuration used when nothing is specified
func DefaultConfig() Config {
	excludes := make([]string, len(DefaultExcludes))
	copy(excludes, DefaultExcludes)

	return Config{
		DescriptorSuffix: DefaultDescriptorSuffix,
		SpecSuffix:       DefaultSpecSuffix,
		Exclude:          excludes,
		Concurrency:      runtime.NumCPU(),
	}
}

// LoadConfig reads a YAML config file over the defaults. A missing file is
// only an error when required is set.
func LoadConfig(path string, required bool) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) && !required {
			return config, nil
		}
		return config, errors.WrapConfigurationError(path, "read", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, errors.WrapConfigurationError(path, "parse", err).
			WithSuggestions("Check the YAML syntax of the config file")
	}

	return config, config.Validate()
}

// Validate checks the configuration for values generation cannot work with
func (c Config) Validate() error {
	if c.DescriptorSuffix == "" {
		return errors.New(errors.ConfigurationErrorCode, "descriptorSuffix cannot be empty").
			WithSuggestions("Use the default '" + DefaultDescriptorSuffix + "'")
	}
	if c.SpecSuffix == "" {
		return errors.New(errors.ConfigurationErrorCode, "specSuffix cannot be empty").
			WithSuggestions("Use the default '" + DefaultSpecSuffix + "'")
	}
	if c.Concurrency < 1 {
		return errors.Newf(errors.ConfigurationErrorCode, "concurrency must be at least 1, got %d", c.Concurrency)
	}
	return nil
}
