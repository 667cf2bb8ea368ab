package app

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestConnect_FlagOverridesEnvAndFile(t *testing.T) {
	path := writeConfig(t, "api_base_url = \"http://file.example\"\n")
	t.Setenv("PODIUM_API_BASE_URL", "http://env.example")

	deps, err := Connect(Options{ConfigPath: path, APIBaseURL: "http://flag.example/", LogPath: "/tmp/podium-test.log"})
	if err != nil {
		t.Fatalf("Connect returned error: %v", err)
	}
	if got := deps.Client.BaseURL(); got != "http://flag.example" {
		t.Fatalf("BaseURL = %q, want flag value", got)
	}
	if deps.Config.LogPath != "/tmp/podium-test.log" {
		t.Fatalf("LogPath = %q", deps.Config.LogPath)
	}
}

func TestConnect_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "api_base_url = \"http://file.example\"\n")
	t.Setenv("PODIUM_API_BASE_URL", "http://env.example")

	deps, err := Connect(Options{ConfigPath: path})
	if err != nil {
		t.Fatalf("Connect returned error: %v", err)
	}
	if got := deps.Client.BaseURL(); got != "http://env.example" {
		t.Fatalf("BaseURL = %q, want env value", got)
	}
}

func TestConnect_MissingBaseURLIsNotAnError(t *testing.T) {
	path := writeConfig(t, "")
	t.Setenv("PODIUM_API_BASE_URL", "")

	deps, err := Connect(Options{ConfigPath: path})
	if err != nil {
		t.Fatalf("Connect returned error: %v", err)
	}
	if deps.Client.Configured() {
		t.Fatal("client should be unconfigured without a base URL")
	}
}

func TestConnect_RejectsBadBaseURL(t *testing.T) {
	path := writeConfig(t, "")
	for _, bad := range []string{"http://", "http://///", "http:"} {
		if deps, err := Connect(Options{ConfigPath: path, APIBaseURL: bad}); err == nil {
			t.Fatalf("Connect(%q) base = %q, want error", bad, deps.Client.BaseURL())
		}
	}
}

func TestConnect_RejectsBadBaseURLFromFile(t *testing.T) {
	path := writeConfig(t, "api_base_url = \"http://\"\n")
	t.Setenv("PODIUM_API_BASE_URL", "")
	if _, err := Connect(Options{ConfigPath: path}); err == nil {
		t.Fatal("expected error for a configured base URL without host")
	}
}
