// Package logtail reads the end of the podium log file and highlights the
// lines the TUI wrote there.
//
// While the TUI owns the terminal every log line goes to a file (see
// tea.LogToFile in internal/app). Tail returns the last n lines of that file
// without holding more than 2n lines in memory. Parse splits a line written by
// the standard logger into its timestamp and message, and picks out the
// request id the API client attaches to failed calls.
//
//	lines, err := logtail.Tail(cfg.LogPath, 200)
//	if err != nil {
//		return err
//	}
//	styles := logtail.DefaultStyles()
//	for _, line := range lines {
//		fmt.Println(styles.Render(logtail.Parse(line)))
//	}
package logtail
