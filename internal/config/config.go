// Package config loads and validates the loader configuration from YAML with
// environment overrides.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/pagemill/pagemill/internal/errors"
	"github.com/pagemill/pagemill/internal/locale"
)

// IndexConfig controls the content dump sink.
type IndexConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
	NATSURL string `yaml:"nats_url"`
	Subject string `yaml:"subject"`
}

// MetricsConfig controls the watch daemon's Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

// Config is the loader configuration.
type Config struct {
	Locales       []string      `yaml:"locales"`
	DefaultLocale string        `yaml:"default_locale"`
	Extensions    []string      `yaml:"extensions"`
	OutputDir     string        `yaml:"output_dir"`
	LayoutImport  string        `yaml:"layout_import"`
	GitInfo       bool          `yaml:"git_info"`
	Index         IndexConfig   `yaml:"index"`
	Metrics       MetricsConfig `yaml:"metrics"`
}

// Defaults returns a configuration with every optional knob filled in.
func Defaults() *Config {
	return &Config{
		Extensions:   []string{".md", ".mdx"},
		OutputDir:    ".pagemill",
		LayoutImport: "pagemill-theme-docs",
		Index: IndexConfig{
			Path:    ".pagemill/index.db",
			Subject: "pagemill.page.indexed",
		},
		Metrics: MetricsConfig{
			Listen: ":9465",
		},
	}
}

// Load reads the configuration file at path, merging defaults and environment
// overrides. A missing file yields the defaults; a malformed file is fatal.
func Load(path string) (*Config, error) {
	// .env values supplement, never override, the process environment.
	_ = godotenv.Load()

	cfg := Defaults()
	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, errors.ReadFailed(path, err)
	default:
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, errors.Wrap(err, errors.CategoryConfig, errors.SeverityFatal, "malformed configuration").
				WithContext("path", path)
		}
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PAGEMILL_LOCALES"); v != "" {
		cfg.Locales = splitList(v)
	}
	if v := os.Getenv("PAGEMILL_DEFAULT_LOCALE"); v != "" {
		// Env tags are often imprecise ("zh" for "zh-CN"); snap to the
		// closest configured locale instead of failing validation.
		if len(cfg.Locales) > 0 {
			v = locale.BestMatch(cfg.Locales, v)
		}
		cfg.DefaultLocale = v
	}
	if v := os.Getenv("PAGEMILL_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("PAGEMILL_INDEX_PATH"); v != "" {
		cfg.Index.Path = v
	}
	if v := os.Getenv("PAGEMILL_NATS_URL"); v != "" {
		cfg.Index.NATSURL = v
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Validate checks locale tags and cross-field consistency.
func (c *Config) Validate() error {
	for _, tag := range c.Locales {
		if _, err := locale.Canonical(tag); err != nil {
			return err
		}
	}
	if c.DefaultLocale != "" {
		if _, err := locale.Canonical(c.DefaultLocale); err != nil {
			return err
		}
		if len(c.Locales) > 0 && !contains(c.Locales, c.DefaultLocale) {
			return errors.ConfigInvalid("default_locale", "must be one of the configured locales")
		}
	}
	if len(c.Locales) > 0 && c.DefaultLocale == "" {
		return errors.ConfigInvalid("default_locale", "required when locales are configured")
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return errors.ConfigInvalid("extensions", "extensions must include the leading dot")
		}
	}
	if c.LayoutImport == "" {
		return errors.ConfigInvalid("layout_import", "no theme layout module configured")
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
