package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/estimators/internal/domain"
	"github.com/shopspring/decimal"
)

// Formatter renders a batch report
type Formatter interface {
	Name() string
	Format(report *domain.BatchReport) ([]byte, error)
}

// FormatterFunc adapts a plain function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(*domain.BatchReport) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(report *domain.BatchReport) ([]byte, error) {
	return f.F(report)
}

var formatters = map[string]Formatter{}

// Register adds a formatter to the registry, replacing any with the same name
func Register(f Formatter) {
	formatters[strings.ToLower(f.Name())] = f
}

func init() {
	Register(ConsoleFormatter{})
	Register(JSONFormatter{Indent: true})
	Register(CSVFormatter{})
}

// GetFormatterByName returns the registered formatter for name
func GetFormatterByName(name string) (Formatter, error) {
	f, ok := formatters[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unsupported format: %s (available: %s)", name, strings.Join(Available(), ", "))
	}
	return f, nil
}

// Available lists the registered formatter names
func Available() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatCurrency formats a decimal as currency
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatWholeCurrency formats a whole-unit amount such as a premium
func FormatWholeCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(0)
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}
