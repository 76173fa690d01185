package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	// Cursor blink and similar input messages
	f := m.page().focused()
	if f.kind == textField {
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress processes keyboard input. Every edit recomputes the
// current page's estimate.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := m.page()
	f := page.focused()

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab":
		return m.switchScene(1)

	case "shift+tab":
		return m.switchScene(-1)

	case "up":
		return m, page.setFocus(page.focus - 1)

	case "down", "enter":
		return m, page.setFocus(page.focus + 1)

	case "left", "right":
		if f.kind == choiceField {
			delta := 1
			if msg.String() == "left" {
				delta = -1
			}
			f.cycle(delta)
			m.recompute()
			return m, nil
		}
	}

	if f.kind != textField {
		return m, nil
	}
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.input.Value() != before {
		m.recompute()
	}
	return m, cmd
}

func (m Model) switchScene(delta int) (tea.Model, tea.Cmd) {
	n := len(Scenes)
	m.scene = Scenes[((int(m.scene)+delta)%n+n)%n]
	m.recompute()
	return m, m.page().setFocus(m.page().focus)
}
