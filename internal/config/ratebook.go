package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/estimators/internal/calculation"
	"github.com/rgehrsitz/estimators/internal/domain"
	"gopkg.in/yaml.v3"
)

// RateBookLoader reads rate book overlays. A file only needs the values it
// changes: maps are merged key by key into the built-in tables, while lists
// (age bands, brackets, description arrays) replace the built-in list.
type RateBookLoader struct{}

// NewRateBookLoader creates a new rate book loader
func NewRateBookLoader() *RateBookLoader {
	return &RateBookLoader{}
}

// Load returns the built-in rate book when path is empty, otherwise the
// built-in rate book overlaid with the file
func (l *RateBookLoader) Load(path string) (*domain.RateBook, error) {
	if path == "" {
		return calculation.DefaultRateBook(), nil
	}
	return l.LoadFromFile(path)
}

// LoadFromFile overlays a YAML or JSON rate file on the built-in tables
func (l *RateBookLoader) LoadFromFile(path string) (*domain.RateBook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate file %s: %w", path, err)
	}
	book, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("rate file %s: %w", path, err)
	}
	return book, nil
}

// Parse overlays rate book content on the built-in tables and validates the result
func (l *RateBookLoader) Parse(data []byte) (*domain.RateBook, error) {
	book := calculation.DefaultRateBook()
	if err := yaml.Unmarshal(data, book); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ValidateRateBook(book); err != nil {
		return nil, fmt.Errorf("rate book validation failed: %w", err)
	}
	return book, nil
}

// ValidateRateBook checks table consistency and that each rating table is
// filed under its own product
func ValidateRateBook(book *domain.RateBook) error {
	slots := []struct {
		want  domain.Product
		table domain.RatingTable
	}{
		{domain.ProductAuto, book.Auto},
		{domain.ProductHome, book.Home},
		{domain.ProductRenters, book.Renters},
	}
	for _, s := range slots {
		if s.table.Product != s.want {
			return fmt.Errorf("%s table declares product %q", s.want, s.table.Product)
		}
	}
	if book.Metadata.DataYear <= 0 {
		return fmt.Errorf("metadata data_year must be positive")
	}
	return book.Validate()
}

// Dump renders a rate book as YAML
func (l *RateBookLoader) Dump(book *domain.RateBook) ([]byte, error) {
	out, err := yaml.Marshal(book)
	if err != nil {
		return nil, fmt.Errorf("failed to render rate book: %w", err)
	}
	return out, nil
}
