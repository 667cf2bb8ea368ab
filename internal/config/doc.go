// Package config handles loading podium configuration.
//
// # Overview
//
// podium needs one thing to do useful work: the base URL of the awards
// backend. Everything else has a sensible default.
//
// # Resolution Order
//
// Load builds a Config in three layers, later layers winning:
//
//  1. Hardcoded defaults
//  2. ~/.config/podium/config.toml (or an explicit path), if present
//  3. PODIUM_* environment variables
//
// Command-line flags are applied on top by the caller.
//
// # Configuration Fields
//
//   - APIBaseURL: backend base URL, e.g. http://localhost:5000
//   - RequestTimeout: per-request HTTP timeout (default 10s)
//   - NoticeDuration: how long notifications stay visible (default 3s)
//   - PageSize: rows per page in list views (default 5)
//   - LogPath: log file used while the TUI owns the terminal
//
// # TOML Format
//
//	api_base_url = "http://localhost:5000"
//	request_timeout_seconds = 10
//	notice_seconds = 3
//	page_size = 5
//	log_path = "~/.local/state/podium/podium.log"
//
// # Environment
//
//	PODIUM_API_BASE_URL, PODIUM_REQUEST_TIMEOUT (Go duration),
//	PODIUM_NOTICE_DURATION (Go duration), PODIUM_PAGE_SIZE, PODIUM_LOG
//
// # Missing Base URL
//
// A missing base URL is deliberately not a Load error. The api package
// reports a ConfigError on each attempted operation instead, so the panel can
// still start and tell the operator what is wrong.
package config
