package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Search  SearchConfig  `mapstructure:"search"`
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDBConfig holds catalog API configuration
type TMDBConfig struct {
	APIKey       string        `mapstructure:"api_key"`
	BaseURL      string        `mapstructure:"base_url"`
	ImageBaseURL string        `mapstructure:"image_base_url"`
	Language     string        `mapstructure:"language"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// CatalogConfig holds the Home listing defaults
type CatalogConfig struct {
	Source       string  `mapstructure:"source"`        // "discover" or "popular"
	DefaultSort  string  `mapstructure:"default_sort"`  // e.g. "popularity.desc"
	FilterPolicy string  `mapstructure:"filter_policy"` // "none", "poster" or "strict"
	MinRating    float64 `mapstructure:"min_rating"`
	MaxRating    float64 `mapstructure:"max_rating"`
	MinYear      int     `mapstructure:"min_year"`
	MaxYear      int     `mapstructure:"max_year"` // 0 = current year
}

// SearchConfig holds search tuning
type SearchConfig struct {
	MinQueryLen    int `mapstructure:"min_query_len"`
	PersonTarget   int `mapstructure:"person_target"`    // stop once this many people with a profile image are found
	PersonMaxPages int `mapstructure:"person_max_pages"` // hard page ceiling for person search
}

// StorageConfig holds local persistence configuration
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"` // empty = memory only
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			BaseURL:      "https://api.themoviedb.org/3",
			ImageBaseURL: "https://image.tmdb.org/t/p/",
			Language:     "en-US",
			Timeout:      30 * time.Second,
		},
		Catalog: CatalogConfig{
			Source:       "discover",
			DefaultSort:  "popularity.desc",
			FilterPolicy: "strict",
			MinRating:    0,
			MaxRating:    10,
			MinYear:      2000,
			MaxYear:      0,
		},
		Search: SearchConfig{
			MinQueryLen:    2,
			PersonTarget:   20,
			PersonMaxPages: 6,
		},
		Storage: StorageConfig{
			DataDir: defaultDataPath(),
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "marquee", "marquee.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "marquee", "marquee.log")
	}
}

// defaultDataPath returns the default directory of the favorites database
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "marquee")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "marquee")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "marquee")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "marquee")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	return load(viper.GetViper(), defaultConfigPath(), ".")
}

// load reads config.yaml from the first matching search path, then applies
// MARQUEE_* environment overrides (MARQUEE_TMDB_API_KEY etc).
func load(v *viper.Viper, searchPaths ...string) (*Config, error) {
	cfg := DefaultConfig()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	setDefaults(v, cfg)

	// Environment variable overrides
	v.SetEnvPrefix("MARQUEE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys absent from the file
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("tmdb.api_key", cfg.TMDB.APIKey)
	v.SetDefault("tmdb.base_url", cfg.TMDB.BaseURL)
	v.SetDefault("tmdb.image_base_url", cfg.TMDB.ImageBaseURL)
	v.SetDefault("tmdb.language", cfg.TMDB.Language)
	v.SetDefault("tmdb.timeout", cfg.TMDB.Timeout)

	v.SetDefault("catalog.source", cfg.Catalog.Source)
	v.SetDefault("catalog.default_sort", cfg.Catalog.DefaultSort)
	v.SetDefault("catalog.filter_policy", cfg.Catalog.FilterPolicy)
	v.SetDefault("catalog.min_rating", cfg.Catalog.MinRating)
	v.SetDefault("catalog.max_rating", cfg.Catalog.MaxRating)
	v.SetDefault("catalog.min_year", cfg.Catalog.MinYear)
	v.SetDefault("catalog.max_year", cfg.Catalog.MaxYear)

	v.SetDefault("search.min_query_len", cfg.Search.MinQueryLen)
	v.SetDefault("search.person_target", cfg.Search.PersonTarget)
	v.SetDefault("search.person_max_pages", cfg.Search.PersonMaxPages)

	v.SetDefault("storage.data_dir", cfg.Storage.DataDir)

	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	return save(viper.GetViper(), cfg, defaultConfigPath())
}

func save(v *viper.Viper, cfg *Config, configPath string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("tmdb.api_key", cfg.TMDB.APIKey)
	v.Set("tmdb.base_url", cfg.TMDB.BaseURL)
	v.Set("tmdb.image_base_url", cfg.TMDB.ImageBaseURL)
	v.Set("tmdb.language", cfg.TMDB.Language)
	v.Set("tmdb.timeout", cfg.TMDB.Timeout.String())

	v.Set("catalog.source", cfg.Catalog.Source)
	v.Set("catalog.default_sort", cfg.Catalog.DefaultSort)
	v.Set("catalog.filter_policy", cfg.Catalog.FilterPolicy)
	v.Set("catalog.min_rating", cfg.Catalog.MinRating)
	v.Set("catalog.max_rating", cfg.Catalog.MaxRating)
	v.Set("catalog.min_year", cfg.Catalog.MinYear)
	v.Set("catalog.max_year", cfg.Catalog.MaxYear)

	v.Set("search.min_query_len", cfg.Search.MinQueryLen)
	v.Set("search.person_target", cfg.Search.PersonTarget)
	v.Set("search.person_max_pages", cfg.Search.PersonMaxPages)

	v.Set("storage.data_dir", cfg.Storage.DataDir)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// IsConfigured returns true if an API key is set
func (c *Config) IsConfigured() bool {
	return strings.TrimSpace(c.TMDB.APIKey) != ""
}

// UpperYear returns the configured max year, defaulting to the current year
func (c CatalogConfig) UpperYear(now time.Time) int {
	if c.MaxYear > 0 {
		return c.MaxYear
	}
	return now.Year()
}

// ClearData removes the local favorites database
func ClearData(cfg *Config) error {
	if cfg.Storage.DataDir == "" {
		return nil
	}
	if err := os.RemoveAll(cfg.Storage.DataDir); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	return nil
}
