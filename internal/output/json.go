package output

import (
	json "github.com/goccy/go-json"

	"github.com/rgehrsitz/estimators/internal/domain"
)

// JSONFormatter renders the report as JSON
type JSONFormatter struct {
	Indent bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.BatchReport) ([]byte, error) {
	if j.Indent {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
