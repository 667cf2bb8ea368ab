package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/podium/internal/api"
	"github.com/five82/podium/internal/config"
	"github.com/five82/podium/internal/notify"
	"github.com/five82/podium/internal/prefs"
	"github.com/five82/podium/internal/ui"
)

// Options configure the podium application. Non-empty fields override the
// config file and the environment.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/podium/prefs.toml
	APIBaseURL string
	LogPath    string
}

// Deps are the pieces shared by the TUI and the CLI commands.
type Deps struct {
	Config config.Config
	Client *api.Client
}

// Connect loads configuration, applies flag overrides and builds the API
// client. A missing base URL is not an error; the client reports it on use.
func Connect(opts Options) (Deps, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return Deps{}, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.APIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := strings.TrimSpace(opts.LogPath); v != "" {
		cfg.LogPath = v
	}

	client, err := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)
	if err != nil {
		return Deps{}, fmt.Errorf("init api client: %w", err)
	}
	return Deps{Config: cfg, Client: client}, nil
}

// Run boots the podium TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	deps, err := Connect(opts)
	if err != nil {
		return err
	}
	cfg := deps.Config

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	// The alt screen owns stdout, so log lines go to a file.
	if cfg.LogPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
		logFile, err := tea.LogToFile(cfg.LogPath, "podium")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer func() { _ = logFile.Close() }()
	}

	pageSize := cfg.PageSize
	if userPrefs.PageSize > 0 {
		pageSize = userPrefs.PageSize
	}

	uiOpts := ui.Options{
		Context:   ctx,
		AboutUs:   deps.Client,
		Sponsors:  deps.Client,
		Nominees:  deps.Client,
		Notifier:  notify.New(cfg.NoticeDuration),
		BaseURL:   deps.Client.BaseURL(),
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		PageSize:  pageSize,
	}
	return ui.Run(uiOpts)
}
