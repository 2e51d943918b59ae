package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file location.
func (r *ConfigRenderer) RenderConfigInfo(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf(
		"\n  %s Config %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
	)
}

// RenderTOML highlights section headers and keys of a TOML document.
func (r *ConfigRenderer) RenderTOML(doc string) string {
	sectionStyle := r.theme.Highlight
	keyStyle := lipgloss.NewStyle().Foreground(r.theme.Text)
	valueStyle := r.theme.Subtle

	lines := strings.Split(strings.TrimRight(doc, "\n"), "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		switch {
		case strings.HasPrefix(trimmed, "["):
			lines[i] = indent + sectionStyle.Render(trimmed)
		case strings.Contains(trimmed, " = "):
			key, value, _ := strings.Cut(trimmed, " = ")
			lines[i] = indent + keyStyle.Render(key) + " = " + valueStyle.Render(value)
		}
	}
	return strings.Join(lines, "\n")
}

// RenderValidationError renders a config validation failure.
func (r *ConfigRenderer) RenderValidationError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}
