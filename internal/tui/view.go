package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/estimators/internal/domain"
	"github.com/rgehrsitz/estimators/internal/output"
)

// View renders the current state of the application
func (m Model) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		PanelStyle.Render(m.renderForm()),
		PanelStyle.Render(m.renderResult()),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitleBar(),
		body,
		m.renderStatusBar(),
	)
}

// renderTitleBar renders the application title and page tabs
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render(fmt.Sprintf("Estimators (%d rates)", m.engine.DataYear()))

	tabs := make([]string, 0, len(Scenes))
	for _, s := range Scenes {
		style := TabStyle
		if s == m.scene {
			style = ActiveTabStyle
		}
		tabs = append(tabs, style.Render(s.String()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m Model) renderForm() string {
	page := m.page()
	var sb strings.Builder
	for i, f := range page.fields {
		label := LabelStyle
		if i == page.focus {
			label = FocusedLabelStyle
		}
		value := f.input.View()
		if f.kind == choiceField {
			value = "‹ " + ChoiceStyle.Render(f.Value()) + " ›"
		}
		sb.WriteString(label.Render(f.label) + " " + value + "\n")
	}

	state := strings.ToUpper(page.text("state"))
	if len(state) == 2 && !domain.IsJurisdiction(state) {
		sb.WriteString("\n" + WarningStyle.Render(fmt.Sprintf("Unknown state %q: no regional adjustment", state)))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m Model) renderResult() string {
	if m.err != nil {
		return ErrorStyle.Render(m.err.Error())
	}
	if m.result == nil {
		return SubtitleStyle.Render("Enter values to see an estimate")
	}

	var buf bytes.Buffer
	switch {
	case m.result.Premium != nil:
		output.WritePremium(&buf, m.result.Premium)
	case m.result.Payroll != nil:
		output.WritePayroll(&buf, m.result.Payroll)
	case m.result.Advisory != nil:
		output.WriteAdvisory(&buf, m.result.Advisory)
	}

	width := m.width/2 - 4
	if width < 30 {
		width = 30
	}
	return lipgloss.NewStyle().Width(width).Render(strings.TrimRight(buf.String(), "\n"))
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("tab", "next page"),
		formatShortcut("↑/↓", "field"),
		formatShortcut("←/→", "change option"),
		formatShortcut("esc", "quit"),
	}
	return StatusBarStyle.Render(strings.Join(shortcuts, " • "))
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}
