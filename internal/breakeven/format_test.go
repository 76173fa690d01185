package breakeven

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableFormatter_Format(t *testing.T) {
	result, err := newSolver().Solve(context.Background(), Request{
		Base:     basePayroll(),
		Variable: SolveBonus,
		Measure:  TargetAnnualNet,
		Target:   decimal.NewFromInt(61156),
	})
	require.NoError(t, err)

	out := (&TableFormatter{}).Format(result)
	assert.Contains(t, out, "TAKE-HOME TARGET SOLVER")
	assert.Contains(t, out, "Solve For:   bonus")
	assert.Contains(t, out, "Target:      $61156.00 annual_net")
	assert.Contains(t, out, "✓ Converged")
	assert.Contains(t, out, "Annual bonus:")
	assert.Contains(t, out, "Change from current:   +$")
}

func TestTableFormatter_FormatMulti(t *testing.T) {
	mr, err := newSolver().SolveAll(context.Background(), basePayroll(), TargetAnnualNet, decimal.NewFromInt(61156))
	require.NoError(t, err)

	out := (&TableFormatter{}).FormatMulti(mr)
	assert.Contains(t, out, "WAYS TO REACH YOUR TAKE-HOME TARGET")
	assert.Contains(t, out, "overtime_hours")
	assert.Contains(t, out, " h")
	assert.Contains(t, out, "RECOMMENDATIONS")
	assert.Contains(t, out, "• Work 7.7 more overtime hours per pay period")
}

func TestTableFormatter_Status(t *testing.T) {
	tf := &TableFormatter{}
	assert.Equal(t, "⚠ Did not converge", tf.formatStatus(false))
	assert.Equal(t, "-", tf.deltaSymbol(decimal.NewFromInt(-1)))
	assert.Equal(t, "", tf.deltaSymbol(decimal.Zero))
}

func TestJSONFormatter(t *testing.T) {
	mr := &MultiResult{Recommendations: []string{"Add $5000.00 in annual bonus"}}

	out, err := (&JSONFormatter{}).Format(mr)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, []any{"Add $5000.00 in annual bonus"}, decoded["recommendations"])

	pretty, err := (&JSONFormatter{Pretty: true}).Format(mr)
	require.NoError(t, err)
	assert.Contains(t, pretty, "\n  \"recommendations\"")
}
