package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"storefront/internal/eventbus"
)

// Default values
const (
	DefaultAPIBaseURL     = "http://localhost:8080"
	DefaultProductsPath   = "/api/products"
	DefaultPageSize       = 20
	DefaultDebounce       = 300 * time.Millisecond
	DefaultRequestTimeout = 10 * time.Second
	DefaultBannerInterval = 5 * time.Second
)

// DefaultPopularSearches are shown under the empty search input
var DefaultPopularSearches = []string{
	"футболка",
	"женская кофта",
	"сертификат",
	"куртка",
	"детская футболка",
	"подарочный сертификат",
	"штаны спортивные",
	"сертификат на 100 рублей",
	"шапка брелок",
}

// Config represents the application configuration
type Config struct {
	Version    int           `toml:"version"`
	Catalog    CatalogConfig `toml:"catalog"`
	Search     SearchConfig  `toml:"search"`
	UISettings UISettings    `toml:"ui"`
}

// CatalogConfig describes how to reach the catalog service
type CatalogConfig struct {
	BaseURL        string   `toml:"base_url"`
	ProductsPath   string   `toml:"products_path"`
	PageSize       int      `toml:"page_size"`
	RequestTimeout Duration `toml:"request_timeout"`
}

// SearchConfig holds search-as-you-type settings
type SearchConfig struct {
	Debounce        Duration `toml:"debounce"`
	PopularSearches []string `toml:"popular_searches"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	BannerInterval Duration `toml:"banner_interval"`
	ShowOldPrice   bool     `toml:"show_old_price"`
	Categories     []string `toml:"categories"`
}

// Duration is a time.Duration stored as a string like "300ms" in TOML
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service backed by the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "storefront", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// WithBus attaches an event bus to a config service
func WithBus(cs ConfigService, bus eventbus.EventBus) ConfigService {
	if c, ok := cs.(*configService); ok {
		c.bus = bus
	}
	return cs
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when the
// file does not exist. Environment overrides are applied in both cases.
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		loaded, err := cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			APIBaseURL: cfg.Catalog.BaseURL,
			PageSize:   cfg.Catalog.PageSize,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Missing fields take
// their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks values that would break the coordinator
func (c *Config) Validate() error {
	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog.base_url must not be empty")
	}
	if c.Catalog.PageSize <= 0 {
		return fmt.Errorf("catalog.page_size must be positive, got %d", c.Catalog.PageSize)
	}
	if c.Search.Debounce.Duration <= 0 {
		return fmt.Errorf("search.debounce must be positive")
	}
	if c.Catalog.RequestTimeout.Duration <= 0 {
		return fmt.Errorf("catalog.request_timeout must be positive")
	}
	return nil
}

// LoadDotEnv loads a .env file into the process environment if present.
// Variables already set are not overridden.
func LoadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Could not load %s: %v", path, err)
		}
		return
	}
	log.Printf("Loaded environment from %s", path)
}

// ApplyEnv overrides config values from STOREFRONT_* environment variables
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv("STOREFRONT_API_URL"); v != "" {
		cfg.Catalog.BaseURL = v
	}
	if v := os.Getenv("STOREFRONT_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid STOREFRONT_PAGE_SIZE: %w", err)
		}
		cfg.Catalog.PageSize = n
	}
	if v := os.Getenv("STOREFRONT_DEBOUNCE"); v != "" {
		if err := cfg.Search.Debounce.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("invalid STOREFRONT_DEBOUNCE: %w", err)
		}
	}
	if v := os.Getenv("STOREFRONT_TIMEOUT"); v != "" {
		if err := cfg.Catalog.RequestTimeout.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("invalid STOREFRONT_TIMEOUT: %w", err)
		}
	}
	return cfg.Validate()
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Catalog: CatalogConfig{
			BaseURL:        DefaultAPIBaseURL,
			ProductsPath:   DefaultProductsPath,
			PageSize:       DefaultPageSize,
			RequestTimeout: Duration{DefaultRequestTimeout},
		},
		Search: SearchConfig{
			Debounce:        Duration{DefaultDebounce},
			PopularSearches: append([]string(nil), DefaultPopularSearches...),
		},
		UISettings: UISettings{
			BannerInterval: Duration{DefaultBannerInterval},
			ShowOldPrice:   true,
			Categories: []string{
				"Аксессуары", "Футболки", "Толстовки", "Куртки", "Джинсы", "Сертификаты",
			},
		},
	}
}
