package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// BackendRow is one line of the backends table.
type BackendRow struct {
	Name      string
	Mode      string
	Available bool
	Selected  bool
	Note      string
}

// BackendsRenderer renders the list of clipboard backends.
type BackendsRenderer struct {
	theme *Theme
}

// NewBackendsRenderer creates a renderer with the given theme.
func NewBackendsRenderer(theme *Theme) *BackendsRenderer {
	return &BackendsRenderer{theme: theme}
}

// Render draws rows as a bordered table.
func (r *BackendsRenderer) Render(rows []BackendRow) string {
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		status := IconX + " no"
		if row.Available {
			status = IconCheck + " yes"
		}
		name := row.Name
		if row.Selected {
			name += " *"
		}
		data = append(data, []string{name, row.Mode, status, row.Note})
	}

	headerStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(r.theme.Text).Padding(0, 1)
	mutedStyle := cellStyle.Foreground(r.theme.Muted)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("BACKEND", "MODE", "AVAILABLE", "NOTES").
		Rows(data...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(rows) && !rows[row].Available {
				return mutedStyle
			}
			return cellStyle
		})

	return t.Render()
}
