package gatewaygen

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Default artifact file names.
const (
	DefaultSchemaFile   = "schema.graphql"
	DefaultManifestFile = "resolvers.json"
)

// Config holds the configuration for a generation run.
type Config struct {
	// Packages are the Go package patterns to extract the schema from.
	// e.g. []string{"./api/..."}
	Packages []string `yaml:"packages" validate:"required,min=1,dive,required"`

	// Dir is the working directory for package loading. Empty means the
	// process working directory.
	Dir string `yaml:"dir"`

	// OutDir is the directory where the two artifacts are written.
	OutDir string `yaml:"out" validate:"required"`

	// SchemaFile is the SDL output file name. Default: schema.graphql.
	SchemaFile string `yaml:"schemaFile"`

	// ManifestFile is the manifest output file name.
	// Default: resolvers.json.
	ManifestFile string `yaml:"manifestFile"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration before generation.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// applyDefaults returns a copy of the config with defaults filled in.
func applyDefaults(cfg *Config) *Config {
	result := *cfg
	if result.SchemaFile == "" {
		result.SchemaFile = DefaultSchemaFile
	}
	if result.ManifestFile == "" {
		result.ManifestFile = DefaultManifestFile
	}
	return &result
}
