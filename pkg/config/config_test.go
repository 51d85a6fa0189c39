package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3, cfg.Analysis.MinSyllables)
	assert.True(t, cfg.Analysis.FindSynonyms)
	assert.Equal(t, 1000, cfg.Resolver.MinIntervalMs)
	assert.Equal(t, "https://www.dicio.com.br", cfg.Resolver.FallbackURL)
	assert.Equal(t, "table", cfg.CLI.DefaultFormat)
	assert.True(t, cfg.Cache.Enabled)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero min syllables", func(c *Config) { c.Analysis.MinSyllables = 0 }},
		{"negative limit", func(c *Config) { c.Analysis.Limit = -1 }},
		{"negative offset", func(c *Config) { c.Analysis.Offset = -5 }},
		{"negative interval", func(c *Config) { c.Resolver.MinIntervalMs = -1 }},
		{"negative retries", func(c *Config) { c.Resolver.MaxRetries = -1 }},
		{"zero timeout", func(c *Config) { c.Resolver.PerWordTimeoutMs = 0 }},
		{"zero max synonyms", func(c *Config) { c.Resolver.MaxSynonyms = 0 }},
		{"negative cache size", func(c *Config) { c.Cache.MaxEntries = -1 }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[analysis]
min_syllables = 5
find_synonyms = false

[resolver]
min_interval_ms = 500
base_url = "http://localhost:9999"
fallback_url = ""
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Analysis.MinSyllables)
	assert.False(t, cfg.Analysis.FindSynonyms)
	assert.Equal(t, 500, cfg.Resolver.MinIntervalMs)
	assert.Equal(t, "http://localhost:9999", cfg.Resolver.BaseURL)
	assert.Empty(t, cfg.Resolver.FallbackURL, "an explicit empty fallback disables the second source")

	// untouched sections keep their defaults
	assert.Equal(t, 2, cfg.Resolver.MaxRetries)
	assert.Equal(t, "table", cfg.CLI.DefaultFormat)
}

func TestLoadConfigSalvagesBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	// cache.enabled has the wrong type, the analysis section is fine
	content := `
[analysis]
min_syllables = 4

[cache]
enabled = "sim"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Analysis.MinSyllables, "valid section should be salvaged")
	assert.True(t, cfg.Cache.Enabled, "broken section falls back to defaults")
}

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = os.Stat(path)
	assert.NoError(t, err, "default config file should be written")

	// a second init must read the file it just wrote
	again, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Analysis.MinSyllables = 7
	cfg.Resolver.MaxSynonyms = 3
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	content := "[analysis]\nmin_syllables = 6\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, active, err := LoadConfigWithPriority(path)
	require.NoError(t, err)
	assert.Equal(t, path, active)
	assert.Equal(t, 6, cfg.Analysis.MinSyllables)
}
