package breakeven

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// TableFormatter formats solver results as console text
type TableFormatter struct{}

// Format generates a report for a single solve
func (tf *TableFormatter) Format(result *Result) string {
	var sb strings.Builder

	sb.WriteString("TAKE-HOME TARGET SOLVER\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Solve For:   %s\n", result.Request.Variable))
	sb.WriteString(fmt.Sprintf("Target:      $%s %s\n", result.Request.Target.StringFixed(2), result.Request.Measure))
	sb.WriteString(fmt.Sprintf("Status:      %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:  %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence: %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	sb.WriteString("SOLUTION\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	sb.WriteString(fmt.Sprintf("%-22s %s\n", tf.variableLabel(result.Request.Variable)+":", tf.formatValue(result.Request.Variable, result.Value)))
	sb.WriteString(fmt.Sprintf("%-22s %s%s\n", "Change from current:", tf.deltaSymbol(result.ChangeFromBase), tf.formatValue(result.Request.Variable, result.ChangeFromBase.Abs())))
	sb.WriteString(fmt.Sprintf("%-22s $%s\n", "Achieved:", result.Achieved.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("%-22s $%s\n", "Gross per check:", result.Payroll.GrossPayPerCheck.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("%-22s %s%%\n", "Effective tax rate:", result.Payroll.EffectiveTaxRate.StringFixed(2)))
	sb.WriteString("\n")

	return sb.String()
}

// FormatMulti formats the results of SolveAll
func (tf *TableFormatter) FormatMulti(result *MultiResult) string {
	var sb strings.Builder

	sb.WriteString("WAYS TO REACH YOUR TAKE-HOME TARGET\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("%-16s %14s %14s %12s\n", "Adjust", "New Value", "Change", "Eff. Rate"))
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	for _, r := range result.Results {
		v := r.Request.Variable
		sb.WriteString(fmt.Sprintf("%-16s %14s %14s %12s\n",
			string(v),
			tf.formatValue(v, r.Value),
			tf.formatValue(v, r.ChangeFromBase),
			r.Payroll.EffectiveTaxRate.StringFixed(2)+"%"))
	}
	sb.WriteString("\n")

	if len(result.Recommendations) > 0 {
		sb.WriteString("RECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 60) + "\n")
		for _, rec := range result.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output for any solver result
func (jf *JSONFormatter) Format(result any) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ Converged"
	}
	return "⚠ Did not converge"
}

func (tf *TableFormatter) variableLabel(v SolveVariable) string {
	switch v {
	case SolveBonus:
		return "Annual bonus"
	case SolveOvertimeHours:
		return "Overtime hours/period"
	default:
		return "Annual salary"
	}
}

func (tf *TableFormatter) formatValue(v SolveVariable, d decimal.Decimal) string {
	if v == SolveOvertimeHours {
		return d.StringFixed(2) + " h"
	}
	return "$" + d.StringFixed(2)
}

func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return ""
}
