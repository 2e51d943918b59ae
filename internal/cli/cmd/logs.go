package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/bnema/clipfetch/internal/cli"
	"github.com/bnema/clipfetch/internal/cli/styles"
)

const defaultLogsLines = 50

var (
	logsFollow bool
	logsLines  int
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the log file",
	Long: `Print the last lines of the log file set by logging.file.

Examples:
  clipfetch logs              # Last 50 lines
  clipfetch logs -n 200       # Last 200 lines
  clipfetch logs -f           # Follow new lines (ctrl+c to stop)`,
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
}

func runLogs(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path := cli.ResolveLogFile(app.Config)
	if path == "" {
		fmt.Println(app.Theme.Subtle.Render("File logging is off. Set logging.file in config.toml, e.g. file = \"clipfetch.log\"."))
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println(app.Theme.Subtle.Render("No log file yet at " + path))
			return nil
		}
		return fmt.Errorf("stat log file: %w", err)
	}

	fmt.Println(app.Theme.Subtle.Render(fmt.Sprintf("%s (%s)", path, humanize.Bytes(uint64(info.Size())))))
	if err := showLogs(os.Stdout, path, logsLines, app.Theme); err != nil {
		return err
	}
	if logsFollow {
		return tailLogs(path, app.Theme)
	}
	return nil
}

// showLogs prints the last n lines of path.
func showLogs(w io.Writer, path string, n int, theme *styles.Theme) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	lines := make([]string, 0, n)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if n <= 0 {
			continue
		}
		if len(lines) == n {
			lines = lines[1:]
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	for _, line := range lines {
		fmt.Fprintln(w, colorizeLogLine(line, theme))
	}
	return nil
}

// tailLogs follows path until interrupted.
func tailLogs(path string, theme *styles.Theme) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Seek to end
	_, _ = file.Seek(0, io.SeekEnd)

	fmt.Println(theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))

	reader := bufio.NewReader(file)
	pending := ""
	for {
		chunk, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				// No full line yet; keep partial data.
				pending += chunk
				time.Sleep(100 * time.Millisecond)
				continue
			}
			return fmt.Errorf("read log file: %w", err)
		}

		line := strings.TrimRight(pending+chunk, "\n")
		pending = ""
		fmt.Println(colorizeLogLine(line, theme))
	}
}

// logEntry represents a parsed JSON log entry.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
	Backend   string `json:"backend"`
	Error     string `json:"error"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil && entry.Level != "" {
		return formatJSONLogLine(entry, theme)
	}

	// console format
	switch {
	case containsAny(line, " ERR ", " FTL "):
		return theme.ErrorStyle.Render(line)
	case containsAny(line, " WRN "):
		return theme.WarningStyle.Render(line)
	case containsAny(line, " DBG ", " TRC "):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

// formatJSONLogLine formats a parsed JSON log entry with colors.
func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var levelStr string
	switch entry.Level {
	case "error", "fatal", "panic":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	var b strings.Builder
	b.WriteString(theme.Subtle.Render(timeStr))
	b.WriteString(" ")
	b.WriteString(levelStr)
	if entry.Component != "" {
		b.WriteString(" ")
		b.WriteString(theme.Badge.Render(entry.Component))
	}
	if entry.Backend != "" {
		b.WriteString(" ")
		b.WriteString(theme.BadgeMuted.Render(entry.Backend))
	}
	b.WriteString(" ")
	b.WriteString(entry.Message)
	if entry.Error != "" {
		b.WriteString(" ")
		b.WriteString(theme.ErrorStyle.Render(entry.Error))
	}
	return b.String()
}

// containsAny checks if s contains any of the substrings.
func containsAny(s string, substrs ...string) bool {
	for _, substr := range substrs {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}
