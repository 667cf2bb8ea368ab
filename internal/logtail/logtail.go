package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const maxLineBytes = 1024 * 1024

var (
	linePattern    = regexp.MustCompile(`^(?:podium )?(\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}(?:\.\d+)?) (.*)$`)
	requestPattern = regexp.MustCompile(`\(request ([^)]+)\)`)
)

// Entry is one parsed line of the podium log.
type Entry struct {
	Time      string
	Message   string
	RequestID string
	Failure   bool
}

// Tail returns the last n lines of the file at path, or every line when n is
// not positive. A missing file yields no lines and no error.
func Tail(path string, n int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		// Compact once the window is twice the requested size.
		if n > 0 && len(lines) >= 2*n {
			lines = append(lines[:0], lines[len(lines)-n:]...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

// Parse splits a log line into its timestamp and message. Lines that do not
// carry a timestamp keep their whole text as the message.
func Parse(line string) Entry {
	entry := Entry{Message: line}
	if m := linePattern.FindStringSubmatch(line); m != nil {
		entry.Time = m[1]
		entry.Message = m[2]
	}
	if m := requestPattern.FindStringSubmatch(entry.Message); m != nil {
		entry.RequestID = m[1]
	}
	entry.Failure = strings.Contains(entry.Message, " failed")
	return entry
}

// Failures keeps only the entries that record a failed operation.
func Failures(entries []Entry) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Failure {
			out = append(out, e)
		}
	}
	return out
}

// Styles colour the parts of a rendered entry.
type Styles struct {
	Time      lipgloss.Style
	Message   lipgloss.Style
	Failure   lipgloss.Style
	RequestID lipgloss.Style
}

// DefaultStyles returns the palette used by the logs command.
func DefaultStyles() Styles {
	return Styles{
		Time:      lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
		Message:   lipgloss.NewStyle(),
		Failure:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		RequestID: lipgloss.NewStyle().Foreground(lipgloss.Color("#87AFFF")),
	}
}

// Render formats one entry for the terminal.
func (s Styles) Render(e Entry) string {
	msg := s.Message
	if e.Failure {
		msg = s.Failure
	}
	var b strings.Builder
	if e.Time != "" {
		b.WriteString(s.Time.Render(e.Time))
		b.WriteByte(' ')
	}
	b.WriteString(msg.Render(e.Message))
	if e.RequestID != "" {
		b.WriteString("  ")
		b.WriteString(s.RequestID.Render("req " + e.RequestID))
	}
	return b.String()
}
