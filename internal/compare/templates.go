package compare

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/estimators/internal/domain"
	"github.com/shopspring/decimal"
)

// PayrollTransform adjusts a payroll input for a what-if scenario
type PayrollTransform interface {
	Apply(in domain.PayrollInput) domain.PayrollInput
	Describe() string
}

// AddOvertime adds overtime hours per pay period. DefaultRate is used when
// the input has no overtime rate yet.
type AddOvertime struct {
	Hours       decimal.Decimal
	DefaultRate decimal.Decimal
}

func (t AddOvertime) Apply(in domain.PayrollInput) domain.PayrollInput {
	in.OvertimeHours = in.OvertimeHours.Add(t.Hours)
	if in.OvertimeRate.IsZero() {
		in.OvertimeRate = t.DefaultRate
	}
	return in
}

func (t AddOvertime) Describe() string {
	return fmt.Sprintf("Add %s overtime hours per pay period", t.Hours)
}

// AddBonus adds to the annual bonus
type AddBonus struct {
	Amount decimal.Decimal
}

func (t AddBonus) Apply(in domain.PayrollInput) domain.PayrollInput {
	in.Bonus = in.Bonus.Add(t.Amount)
	return in
}

func (t AddBonus) Describe() string {
	return "Add a $" + t.Amount.StringFixed(0) + " annual bonus"
}

// DeferSalary adds a share of salary to pre-tax deductions
type DeferSalary struct {
	Percent decimal.Decimal
}

func (t DeferSalary) Apply(in domain.PayrollInput) domain.PayrollInput {
	in.PreTaxDeductions = in.PreTaxDeductions.Add(in.AnnualSalary.Mul(t.Percent))
	return in
}

func (t DeferSalary) Describe() string {
	return fmt.Sprintf("Defer %s%% of salary pre-tax", t.Percent.Mul(decimal.NewFromInt(100)).StringFixed(0))
}

// ClearExtras removes overtime and bonus
type ClearExtras struct{}

func (ClearExtras) Apply(in domain.PayrollInput) domain.PayrollInput {
	in.OvertimeHours = decimal.Zero
	in.Bonus = decimal.Zero
	return in
}

func (ClearExtras) Describe() string { return "Remove overtime and bonus" }

// Template is a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []PayrollTransform
}

// Apply runs every transform in order
func (t Template) Apply(in domain.PayrollInput) domain.PayrollInput {
	for _, tr := range t.Transforms {
		in = tr.Apply(in)
	}
	return in
}

// TemplateRegistry manages built-in scenario templates
type TemplateRegistry struct {
	templates map[string]Template
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{templates: make(map[string]Template)}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names in order
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates returns the standard paycheck what-ifs
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()
	onePointFive := decimal.NewFromFloat(1.5)

	registry.Register(Template{
		Name:        "overtime_5h",
		Description: "Work 5 extra overtime hours each pay period",
		Transforms:  []PayrollTransform{AddOvertime{Hours: decimal.NewFromInt(5), DefaultRate: onePointFive}},
	})
	registry.Register(Template{
		Name:        "bonus_5k",
		Description: "Receive a $5,000 annual bonus",
		Transforms:  []PayrollTransform{AddBonus{Amount: decimal.NewFromInt(5000)}},
	})
	registry.Register(Template{
		Name:        "pretax_401k",
		Description: "Contribute 6% of salary to a pre-tax 401(k); shows the tax effect only",
		Transforms:  []PayrollTransform{DeferSalary{Percent: decimal.NewFromFloat(0.06)}},
	})
	registry.Register(Template{
		Name:        "no_extras",
		Description: "Base salary only, without overtime or bonus",
		Transforms:  []PayrollTransform{ClearExtras{}},
	})
	return registry
}
