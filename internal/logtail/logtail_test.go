package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func writeLog(t *testing.T, count int) (string, []string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "podium.log")
	var content strings.Builder
	var lines []string
	for i := 1; i <= count; i++ {
		line := fmt.Sprintf("podium 2026/10/14 09:00:%02d line %d", i, i)
		content.WriteString(line + "\n")
		lines = append(lines, line)
	}
	if err := os.WriteFile(path, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path, lines
}

func TestTail(t *testing.T) {
	path, all := writeLog(t, 10)

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"all (0)", 0, all},
		{"all (negative)", -1, all},
		{"last 3", 3, all[7:]},
		{"last 5", 5, all[5:]},
		{"exactly all", 10, all},
		{"more than exists", 20, all},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tail(path, tt.n)
			if err != nil {
				t.Fatalf("Tail() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tail() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTailMissingFile(t *testing.T) {
	lines, err := Tail(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil || lines != nil {
		t.Fatalf("Tail() = %v, %v; want nil, nil", lines, err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Entry
	}{
		{
			name: "failure with request id",
			line: "podium 2026/10/14 09:30:00 fetch sponsors failed (request 7f3a): Sponsor not found",
			want: Entry{Time: "2026/10/14 09:30:00", Message: "fetch sponsors failed (request 7f3a): Sponsor not found", RequestID: "7f3a", Failure: true},
		},
		{
			name: "plain message without prefix",
			line: "2026/10/14 09:30:00 fake backend listening on http://127.0.0.1:8080",
			want: Entry{Time: "2026/10/14 09:30:00", Message: "fake backend listening on http://127.0.0.1:8080"},
		},
		{
			name: "no timestamp",
			line: "panic: something odd",
			want: Entry{Message: "panic: something odd"},
		},
		{
			name: "empty",
			line: "",
			want: Entry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.line); got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFailures(t *testing.T) {
	entries := []Entry{
		Parse("podium 2026/10/14 09:30:00 save prefs failed: permission denied"),
		Parse("podium 2026/10/14 09:30:01 fake backend listening on http://127.0.0.1:8080"),
	}
	got := Failures(entries)
	if len(got) != 1 || got[0].Message != "save prefs failed: permission denied" {
		t.Fatalf("Failures() = %+v", got)
	}
}

func TestRender(t *testing.T) {
	plain := Styles{
		Time:      lipgloss.NewStyle(),
		Message:   lipgloss.NewStyle(),
		Failure:   lipgloss.NewStyle(),
		RequestID: lipgloss.NewStyle(),
	}
	got := plain.Render(Parse("podium 2026/10/14 09:30:00 delete nominee failed (request ab12): boom"))
	want := "2026/10/14 09:30:00 delete nominee failed (request ab12): boom  req ab12"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if got := plain.Render(Entry{Message: "bare"}); got != "bare" {
		t.Errorf("Render() = %q, want %q", got, "bare")
	}
}
