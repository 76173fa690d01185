package tui

// Scene is one estimator page
type Scene int

const (
	SceneAuto Scene = iota
	SceneHome
	SceneRenters
	ScenePayroll
	SceneWageCheck
)

// Scenes lists the pages in tab order
var Scenes = []Scene{SceneAuto, SceneHome, SceneRenters, ScenePayroll, SceneWageCheck}

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneAuto:
		return "Auto"
	case SceneHome:
		return "Home"
	case SceneRenters:
		return "Renters"
	case ScenePayroll:
		return "Paycheck"
	case SceneWageCheck:
		return "Wage Check"
	default:
		return "Unknown"
	}
}
