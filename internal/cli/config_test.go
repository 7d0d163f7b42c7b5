package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingOptionalFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "specgen.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfig_MissingRequiredFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "custom.yaml"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read configuration")
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "specgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
specSuffix: .spec.js
outDir: __tests__
concurrency: 2
force: true
exclude:
  - "**/private/**"
`), 0644))

	config, err := LoadConfig(path, true)
	require.NoError(t, err)

	assert.Equal(t, DefaultDescriptorSuffix, config.DescriptorSuffix)
	assert.Equal(t, ".spec.js", config.SpecSuffix)
	assert.Equal(t, "__tests__", config.OutDir)
	assert.Equal(t, 2, config.Concurrency)
	assert.True(t, config.Force)
	assert.Equal(t, []string{"**/private/**"}, config.Exclude)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "specgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("outDir: [unterminated"), 0644))

	_, err := LoadConfig(path, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse configuration")
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"empty descriptor suffix", func(c *Config) { c.DescriptorSuffix = "" }, "descriptorSuffix cannot be empty"},
		{"empty spec suffix", func(c *Config) { c.SpecSuffix = "" }, "specSuffix cannot be empty"},
		{"zero concurrency", func(c *Config) { c.Concurrency = 0 }, "concurrency must be at least 1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultConfig()
			tc.mutate(&config)

			err := config.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
