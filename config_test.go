package gatewaygen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  Config{Packages: []string{"./api/..."}, OutDir: "gen"},
		},
		{
			name:    "missing packages",
			cfg:     Config{OutDir: "gen"},
			wantErr: true,
		},
		{
			name:    "empty package pattern",
			cfg:     Config{Packages: []string{""}, OutDir: "gen"},
			wantErr: true,
		},
		{
			name:    "missing output directory",
			cfg:     Config{Packages: []string{"./api/..."}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Packages: []string{"./api/..."}, OutDir: "gen"}
	got := applyDefaults(cfg)

	assert.Equal(t, DefaultSchemaFile, got.SchemaFile)
	assert.Equal(t, DefaultManifestFile, got.ManifestFile)
	assert.Empty(t, cfg.SchemaFile, "input config must not be mutated")

	cfg = &Config{SchemaFile: "gateway.graphql", ManifestFile: "deploy.json"}
	got = applyDefaults(cfg)
	assert.Equal(t, "gateway.graphql", got.SchemaFile)
	assert.Equal(t, "deploy.json", got.ManifestFile)
}

func TestConfig_YAML(t *testing.T) {
	raw := `
packages:
  - ./api/...
  - ./internal/api
dir: services/catalog
out: gen/gateway
schemaFile: gateway.graphql
`
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(raw), &cfg))

	assert.Equal(t, []string{"./api/...", "./internal/api"}, cfg.Packages)
	assert.Equal(t, "services/catalog", cfg.Dir)
	assert.Equal(t, "gen/gateway", cfg.OutDir)
	assert.Equal(t, "gateway.graphql", cfg.SchemaFile)
	assert.NoError(t, cfg.Validate())
}
