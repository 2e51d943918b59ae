package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// ClipboardView is everything the watch frame draws.
type ClipboardView struct {
	Text      string
	IsError   bool
	Pending   bool
	Spinner   string
	Backend   string
	UpdatedAt time.Time
	Now       time.Time
	Fetches   int
	TimedOut  int

	Width      int
	Height     int
	MaxLines   int
	ShowStatus bool
}

// ClipboardRenderer draws the clipboard text node and its status line.
type ClipboardRenderer struct {
	theme *Theme
}

// NewClipboardRenderer creates a renderer with the given theme.
func NewClipboardRenderer(theme *Theme) *ClipboardRenderer {
	return &ClipboardRenderer{theme: theme}
}

// Render draws v centred in a Width x Height frame.
func (r *ClipboardRenderer) Render(v ClipboardView) string {
	status := ""
	if v.ShowStatus {
		status = r.RenderStatus(v)
	}

	bodyHeight := v.Height
	if status != "" {
		bodyHeight -= lipgloss.Height(status)
	}

	node := r.RenderNode(v)
	if v.Width <= 0 || bodyHeight <= 0 {
		if status == "" {
			return node
		}
		return lipgloss.JoinVertical(lipgloss.Left, node, status)
	}

	body := lipgloss.Place(v.Width, bodyHeight, lipgloss.Center, lipgloss.Center, node)
	if status == "" {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, status)
}

// RenderNode draws the text in the navy box.
func (r *ClipboardRenderer) RenderNode(v ClipboardView) string {
	style := r.theme.TextNode
	if v.IsError {
		style = r.theme.TextNodeError
	}
	if v.Width > 0 {
		// leave room for the frame edges
		if maxWidth := v.Width - 4; maxWidth > 0 {
			style = style.MaxWidth(maxWidth)
		}
	}

	text := Truncate(v.Text, v.MaxLines)
	if text == "" {
		text = " "
	}
	return style.Render(text)
}

// RenderStatus draws the single-line status bar.
func (r *ClipboardRenderer) RenderStatus(v ClipboardView) string {
	sep := r.theme.Subtle.Render(" · ")

	state := r.theme.SuccessStyle.Render(IconCheck)
	if v.Pending {
		state = v.Spinner
		if state == "" {
			state = r.theme.WarningStyle.Render(IconClock)
		}
	}
	if v.IsError && !v.Pending {
		state = r.theme.WarningStyle.Render(IconWarning)
	}

	parts := []string{
		state + " " + r.theme.Badge.Render(v.Backend),
		r.theme.Subtle.Render("updated " + Age(v.UpdatedAt, v.Now)),
	}
	if !v.IsError {
		parts = append(parts, r.theme.Subtle.Render(humanize.Bytes(uint64(len(v.Text)))))
	}
	parts = append(parts, r.theme.Subtle.Render(humanize.Comma(int64(v.Fetches))+" reads"))
	if v.TimedOut > 0 {
		parts = append(parts, r.theme.WarningStyle.Render(fmt.Sprintf("%s timed out", humanize.Comma(int64(v.TimedOut)))))
	}

	line := strings.Join(parts, sep)
	if v.Width > 0 {
		return r.theme.StatusBar.Width(v.Width).Render(line)
	}
	return r.theme.StatusBar.Render(line)
}

// Age renders how long ago t was, relative to now.
func Age(t, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	if now.IsZero() {
		now = time.Now()
	}
	if now.Sub(t) < time.Second {
		return "just now"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// Truncate keeps the first maxLines lines of text. maxLines <= 0 keeps all.
func Truncate(text string, maxLines int) string {
	if maxLines <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	if len(lines) <= maxLines {
		return text
	}
	hidden := len(lines) - maxLines
	return strings.Join(lines[:maxLines], "\n") + fmt.Sprintf("\n… %s more lines", humanize.Comma(int64(hidden)))
}
