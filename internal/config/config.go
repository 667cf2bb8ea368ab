package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings podium needs to reach the awards backend.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	NoticeDuration time.Duration
	PageSize       int
	LogPath        string
}

const (
	defaultConfigPath     = "~/.config/podium/config.toml"
	defaultLogPath        = "~/.local/state/podium/podium.log"
	defaultRequestTimeout = 10 * time.Second
	defaultNoticeDuration = 3 * time.Second
	defaultPageSize       = 5
)

// envOverrides are read after the config file and win over it.
type envOverrides struct {
	APIBaseURL     string        `env:"PODIUM_API_BASE_URL"`
	RequestTimeout time.Duration `env:"PODIUM_REQUEST_TIMEOUT"`
	NoticeDuration time.Duration `env:"PODIUM_NOTICE_DURATION"`
	PageSize       int           `env:"PODIUM_PAGE_SIZE"`
	LogPath        string        `env:"PODIUM_LOG"`
}

// Load locates and parses the podium config, applies environment overrides,
// and falls back to defaults for anything left unset. A missing base URL is
// not an error here; the API client reports it on every attempted call.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		RequestTimeout: defaultRequestTimeout,
		NoticeDuration: defaultNoticeDuration,
		PageSize:       defaultPageSize,
		LogPath:        defaultLogPath,
	}

	if err := loadFile(resolved, &cfg); err != nil {
		return Config{}, err
	}

	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	applyOverrides(&cfg, overrides)

	cfg.APIBaseURL = strings.TrimSpace(cfg.APIBaseURL)
	cfg.LogPath = mustExpand(cfg.LogPath)
	return cfg, nil
}

// HasAPI reports whether a backend base URL is configured.
func (c Config) HasAPI() bool {
	return strings.TrimSpace(c.APIBaseURL) != ""
}

func loadFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBaseURL            string `toml:"api_base_url"`
		RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
		NoticeSeconds         int    `toml:"notice_seconds"`
		PageSize              int    `toml:"page_size"`
		LogPath               string `toml:"log_path"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	cfg.APIBaseURL = strings.TrimSpace(raw.APIBaseURL)
	if raw.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeoutSeconds) * time.Second
	}
	if raw.NoticeSeconds > 0 {
		cfg.NoticeDuration = time.Duration(raw.NoticeSeconds) * time.Second
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if logPath := strings.TrimSpace(raw.LogPath); logPath != "" {
		cfg.LogPath = logPath
	}
	return nil
}

func applyOverrides(cfg *Config, o envOverrides) {
	if url := strings.TrimSpace(o.APIBaseURL); url != "" {
		cfg.APIBaseURL = url
	}
	if o.RequestTimeout > 0 {
		cfg.RequestTimeout = o.RequestTimeout
	}
	if o.NoticeDuration > 0 {
		cfg.NoticeDuration = o.NoticeDuration
	}
	if o.PageSize > 0 {
		cfg.PageSize = o.PageSize
	}
	if logPath := strings.TrimSpace(o.LogPath); logPath != "" {
		cfg.LogPath = logPath
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
