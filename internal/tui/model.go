package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/estimators/internal/calculation"
	"github.com/rgehrsitz/estimators/internal/domain"
)

// Model represents the entire application state
type Model struct {
	scene Scene
	pages map[Scene]*form

	// Terminal dimensions
	width  int
	height int

	engine *calculation.CalculationEngine

	// Latest estimate for the current page
	result *domain.EstimateResult
	err    error
}

// NewModel creates a new application model with an estimate for the
// default inputs already computed
func NewModel(engine *calculation.CalculationEngine) Model {
	m := Model{
		scene:  SceneAuto,
		pages:  make(map[Scene]*form, len(Scenes)),
		engine: engine,
		width:  100,
		height: 30,
	}
	for _, s := range Scenes {
		m.pages[s] = newPage(s)
	}
	m.recompute()
	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return m.page().setFocus(m.page().focus)
}

func (m Model) page() *form { return m.pages[m.scene] }

// recompute re-runs the estimator for the current page
func (m *Model) recompute() {
	m.result = nil
	req, err := request(m.scene, m.page())
	if err != nil {
		m.err = err
		return
	}
	res, err := m.engine.Estimate(req)
	if err != nil {
		m.err = fmt.Errorf("%s: %w", m.scene, err)
		return
	}
	m.err = nil
	m.result = &res
}
