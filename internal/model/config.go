package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the complete fieldlens configuration
type Config struct {
	Defaults    DefaultsConfig    `yaml:"defaults" json:"defaults"`
	Segment     SegmentConfig     `yaml:"segment" json:"segment"`
	Routing     RoutingConfig     `yaml:"routing" json:"routing"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// DefaultsConfig holds the fallback labels applied when no pattern matches.
// These are passed explicitly into every extractor, never hidden in helpers.
type DefaultsConfig struct {
	Trade    string `yaml:"trade" json:"trade"`
	Priority string `yaml:"priority" json:"priority"`
	Location string `yaml:"location" json:"location"`
	Owner    string `yaml:"owner" json:"owner"`
}

// SegmentConfig holds minimum unit lengths per extractor
type SegmentConfig struct {
	PunchMinLength    int `yaml:"punch_min_length" json:"punch_min_length"`
	ActionMinLength   int `yaml:"action_min_length" json:"action_min_length"`
	DailyLogMinLength int `yaml:"daily_log_min_length" json:"daily_log_min_length"`
}

// RoutingConfig holds relevance-ranking knobs for search and RFI routing
type RoutingConfig struct {
	MinScore   int `yaml:"min_score" json:"min_score"`     // similar-RFI cutoff (exclusive)
	MaxSimilar int `yaml:"max_similar" json:"max_similar"` // similar RFIs kept per routing
	MaxSearch  int `yaml:"max_search" json:"max_search"`   // search results kept per query (0 = all)
}

// ConcurrencyConfig holds worker pool settings
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// CacheConfig holds report cache settings
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// OutputConfig holds report output settings
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// DefaultConfig returns the built-in configuration defaults
func DefaultConfig() *Config {
	cacheDir := ".fieldlens-cache"
	if home, err := os.UserHomeDir(); err == nil {
		cacheDir = filepath.Join(home, ".fieldlens", "cache")
	}

	return &Config{
		Defaults: DefaultsConfig{
			Trade:    "General",
			Priority: "Medium",
			Location: "General",
			Owner:    "TBD",
		},
		Segment: SegmentConfig{
			PunchMinLength:    10,
			ActionMinLength:   10,
			DailyLogMinLength: 5,
		},
		Routing: RoutingConfig{
			MinScore:   20,
			MaxSimilar: 5,
			MaxSearch:  0,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       cacheDir,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
	}
}
