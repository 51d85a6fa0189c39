/*
Package config manages TOML config for prolixo.
*/
package config

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/gmarquesn/prolixo/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	Analysis AnalysisConfig `toml:"analysis"`
	Resolver ResolverConfig `toml:"resolver"`
	Cache    CacheConfig    `toml:"cache"`
	CLI      CliConfig      `toml:"cli"`
}

// AnalysisConfig has word-analysis related options.
type AnalysisConfig struct {
	MinSyllables int  `toml:"min_syllables"`
	Limit        int  `toml:"limit"`
	Offset       int  `toml:"offset"`
	FindSynonyms bool `toml:"find_synonyms"`
}

// ResolverConfig holds synonym lookup options.
type ResolverConfig struct {
	MinIntervalMs    int    `toml:"min_interval_ms"`
	MaxRetries       int    `toml:"max_retries"`
	PerWordTimeoutMs int    `toml:"per_word_timeout_ms"`
	MaxSynonyms      int    `toml:"max_synonyms"`
	BaseURL          string `toml:"base_url"`
	FallbackURL      string `toml:"fallback_url"`
}

// CacheConfig holds the on-disk synonym cache options.
type CacheConfig struct {
	Enabled    bool   `toml:"enabled"`
	MaxEntries int    `toml:"max_entries"`
	FileName   string `toml:"file_name"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultFormat string `toml:"default_format"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			MinSyllables: 3,
			Limit:        0,
			Offset:       0,
			FindSynonyms: true,
		},
		Resolver: ResolverConfig{
			MinIntervalMs:    1000,
			MaxRetries:       2,
			PerWordTimeoutMs: 10000,
			MaxSynonyms:      5,
			BaseURL:          "https://www.sinonimos.com.br",
			FallbackURL:      "https://www.dicio.com.br",
		},
		Cache: CacheConfig{
			Enabled:    true,
			MaxEntries: 4096,
			FileName:   "synonyms.bin",
		},
		CLI: CliConfig{
			DefaultFormat: "table",
		},
	}
}

// Validate rejects parameter combinations the pipeline cannot run with.
// Called before any processing begins.
func (c *Config) Validate() error {
	if c.Analysis.MinSyllables < 1 {
		return fmt.Errorf("config: min_syllables must be >= 1, got %d", c.Analysis.MinSyllables)
	}
	if c.Analysis.Limit < 0 || c.Analysis.Offset < 0 {
		return fmt.Errorf("config: limit and offset must not be negative")
	}
	if c.Resolver.MinIntervalMs < 0 {
		return fmt.Errorf("config: min_interval_ms must not be negative, got %d", c.Resolver.MinIntervalMs)
	}
	if c.Resolver.MaxRetries < 0 {
		return fmt.Errorf("config: max_retries must not be negative, got %d", c.Resolver.MaxRetries)
	}
	if c.Resolver.PerWordTimeoutMs <= 0 {
		return fmt.Errorf("config: per_word_timeout_ms must be positive, got %d", c.Resolver.PerWordTimeoutMs)
	}
	if c.Resolver.MaxSynonyms < 1 {
		return fmt.Errorf("config: max_synonyms must be >= 1, got %d", c.Resolver.MaxSynonyms)
	}
	if c.Cache.MaxEntries < 0 {
		return fmt.Errorf("config: cache max_entries must not be negative, got %d", c.Cache.MaxEntries)
	}
	return nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: [UserConfigDir]/prolixo/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}

	resolver, err := utils.NewPathResolver()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	defaultPath, err := resolver.GetConfigPath("config.toml")
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse attempts to salvage valid sections from a broken TOML file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "analysis"); ok {
		extractAnalysisConfig(section, &config.Analysis)
	}
	if section, ok := utils.ExtractSection(tempConfig, "resolver"); ok {
		extractResolverConfig(section, &config.Resolver)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cache"); ok {
		extractCacheConfig(section, &config.Cache)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config, nil
}

// extractAnalysisConfig extracts analysis configuration from a map
func extractAnalysisConfig(data map[string]any, analysis *AnalysisConfig) {
	if val, ok := utils.ExtractInt64(data, "min_syllables"); ok {
		analysis.MinSyllables = val
	}
	if val, ok := utils.ExtractInt64(data, "limit"); ok {
		analysis.Limit = val
	}
	if val, ok := utils.ExtractInt64(data, "offset"); ok {
		analysis.Offset = val
	}
	if val, ok := utils.ExtractBool(data, "find_synonyms"); ok {
		analysis.FindSynonyms = val
	}
}

// extractResolverConfig extracts resolver configuration from a map
func extractResolverConfig(data map[string]any, resolver *ResolverConfig) {
	if val, ok := utils.ExtractInt64(data, "min_interval_ms"); ok {
		resolver.MinIntervalMs = val
	}
	if val, ok := utils.ExtractInt64(data, "max_retries"); ok {
		resolver.MaxRetries = val
	}
	if val, ok := utils.ExtractInt64(data, "per_word_timeout_ms"); ok {
		resolver.PerWordTimeoutMs = val
	}
	if val, ok := utils.ExtractInt64(data, "max_synonyms"); ok {
		resolver.MaxSynonyms = val
	}
	if val, ok := utils.ExtractString(data, "base_url"); ok {
		resolver.BaseURL = val
	}
	if val, ok := utils.ExtractString(data, "fallback_url"); ok {
		resolver.FallbackURL = val
	}
}

// extractCacheConfig extracts cache configuration from a map
func extractCacheConfig(data map[string]any, cache *CacheConfig) {
	if val, ok := utils.ExtractBool(data, "enabled"); ok {
		cache.Enabled = val
	}
	if val, ok := utils.ExtractInt64(data, "max_entries"); ok {
		cache.MaxEntries = val
	}
	if val, ok := utils.ExtractString(data, "file_name"); ok {
		cache.FileName = val
	}
}

// extractCliConfig extracts CLI config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractString(data, "default_format"); ok {
		cli.DefaultFormat = val
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		resolver, err := utils.NewPathResolver()
		if err != nil {
			return "unknown"
		}
		if defaultPath, err := resolver.GetConfigPath("config.toml"); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
