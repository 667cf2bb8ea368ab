// Package app is the composition root for podium.
//
// # Overview
//
// Connect loads the config file (go-toml), applies PODIUM_* environment
// overrides and then flag overrides, and builds the API client. The cobra
// commands in cmd/podium call Connect directly; Run additionally loads user
// preferences, redirects the standard logger to a file and starts the TUI.
//
// # Startup
//
//  1. Load ~/.config/podium/config.toml (or --config) with defaults
//  2. Apply PODIUM_API_BASE_URL and friends, then --api and --log
//  3. Build api.Client; a missing base URL only surfaces on first use
//  4. Load ~/.config/podium/prefs.toml for theme and rows per page
//  5. Send log output to the log file so the alt screen stays clean
//  6. Run the Bubble Tea program until quit or context cancellation
//
// There is no background refresh. Each tab loads once when the program
// starts, again after every successful write, and on demand with r.
package app
