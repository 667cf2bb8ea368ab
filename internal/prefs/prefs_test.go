package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != defaultTheme || p.PageSize != 0 {
		t.Fatalf("prefs = %#v, want theme %q and no page size", p, defaultTheme)
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "podium")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	prefsFile := filepath.Join(prefsDir, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"Slate\"\npage_size = 10\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "Slate" || p.PageSize != 10 {
		t.Fatalf("prefs = %#v, want Slate/10", p)
	}
}

func TestSave_RoundTripCreatesDirs(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "subdir", "prefs.toml")

	if err := Save(prefsFile, Prefs{Theme: "Slate", PageSize: 20}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Theme != "Slate" || loaded.PageSize != 20 {
		t.Fatalf("loaded = %#v, want Slate/20", loaded)
	}
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Prefs
	}{
		{name: "empty theme", content: "theme = \"\"\n", want: Prefs{Theme: defaultTheme}},
		{name: "negative page size", content: "theme = \"Slate\"\npage_size = -3\n", want: Prefs{Theme: "Slate"}},
		{name: "invalid toml", content: "not valid toml {{{\n", want: Prefs{Theme: defaultTheme}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
			if err := os.WriteFile(prefsFile, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			p, err := Load(prefsFile)
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if p != tt.want {
				t.Fatalf("prefs = %#v, want %#v", p, tt.want)
			}
		})
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	prefsFile := filepath.Join(dir, "prefs.toml")

	for _, theme := range []string{"Dracula", "Slate"} {
		if err := Save(prefsFile, Prefs{Theme: theme}); err != nil {
			t.Fatalf("Save(%s) returned error: %v", theme, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "prefs.toml" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("dir contents = %v, want only prefs.toml", names)
	}
}
