// Package config provides configuration loading and structs for the care-connect server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jerdaw/kingston-care-connect/internal/ranking"
)

// Config holds all configuration for the application.
type Config struct {
	Debug     bool                  `yaml:"debug"`
	Server    ServerConfig          `yaml:"server"`
	Storage   StorageConfig         `yaml:"storage"`
	Embedding EmbeddingConfig       `yaml:"embedding"`
	Search    SearchConfig          `yaml:"search"`
	Ranking   ranking.RankingConfig `yaml:"ranking"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig holds the database path.
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// EmbeddingConfig holds settings for the OpenAI-compatible embedding API.
// An empty APIKey disables the semantic phase entirely.
type EmbeddingConfig struct {
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Model      string `yaml:"model"`
	Dimensions int    `yaml:"dimensions"`
	CacheSize  int    `yaml:"cache_size"`
}

// SearchConfig holds orchestrator thresholds and limits.
type SearchConfig struct {
	DefaultLimit int `yaml:"default_limit"`
	MaxLimit     int `yaml:"max_limit"`

	// ConfidenceThreshold is the top lexical score at or above which the
	// semantic phase is skipped.
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`
	// MaterialityThreshold is the minimum vector contribution for a merged
	// result to earn a semantic-boost reason.
	MaterialityThreshold float64 `yaml:"materiality_threshold"`
	// RescueThreshold is the minimum vector score for a service with no
	// lexical score to enter the result set.
	RescueThreshold float64 `yaml:"rescue_threshold"`
	// SimilarityFloor discards near-zero cosine similarities as noise.
	SimilarityFloor float64 `yaml:"similarity_floor"`
	// ScoreGap is the score difference within which geographic distance,
	// rather than score, orders two results.
	ScoreGap float64 `yaml:"score_gap"`

	// SynonymExpansion toggles bilingual synonym expansion of query tokens.
	// Defaults to on; set to false explicitly to disable.
	SynonymExpansion *bool `yaml:"synonym_expansion"`
}

// SynonymExpansionOrDefault returns whether synonym expansion is enabled;
// defaults to true when unset.
func (s *SearchConfig) SynonymExpansionOrDefault() bool {
	if s.SynonymExpansion != nil {
		return *s.SynonymExpansion
	}
	return true
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Storage.DatabasePath = expandPath(cfg.Storage.DatabasePath, configDir)

	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
