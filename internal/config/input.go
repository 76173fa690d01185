package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rgehrsitz/estimators/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of estimate batch and comparison files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads an estimate batch from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Batch, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.ParseBatch(data)
}

// ParseBatch decodes and validates batch content
func (ip *InputParser) ParseBatch(data []byte) (*domain.Batch, error) {
	var batch domain.Batch
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.ValidateBatch(&batch); err != nil {
		return nil, fmt.Errorf("batch validation failed: %w", err)
	}
	return &batch, nil
}

// ValidateBatch checks that every request is named uniquely and sets exactly
// one input. Input values are validated by the engines.
func (ip *InputParser) ValidateBatch(batch *domain.Batch) error {
	if len(batch.Estimates) == 0 {
		return fmt.Errorf("no estimates provided")
	}
	seen := make(map[string]bool, len(batch.Estimates))
	for i, req := range batch.Estimates {
		name := strings.TrimSpace(req.Name)
		if name == "" {
			return fmt.Errorf("estimate %d: name is required", i+1)
		}
		if seen[name] {
			return fmt.Errorf("estimate %d: duplicate name %q", i+1, name)
		}
		seen[name] = true
		if _, err := req.Kind(); err != nil {
			return fmt.Errorf("estimate %d: %w", i+1, err)
		}
	}
	return nil
}

// LoadComparison loads a payroll comparison file
func (ip *InputParser) LoadComparison(filename string) (*domain.PayrollComparison, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var cmp domain.PayrollComparison
	if err := yaml.Unmarshal(data, &cmp); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.ValidateComparison(&cmp); err != nil {
		return nil, fmt.Errorf("comparison validation failed: %w", err)
	}
	return &cmp, nil
}

// ValidateComparison checks the base input and scenario names
func (ip *InputParser) ValidateComparison(cmp *domain.PayrollComparison) error {
	if err := cmp.Base.Validate(); err != nil {
		return fmt.Errorf("base: %w", err)
	}
	if len(cmp.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}
	seen := make(map[string]bool, len(cmp.Scenarios))
	for i, sc := range cmp.Scenarios {
		if sc.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i+1)
		}
		if seen[sc.Name] {
			return fmt.Errorf("scenario %d: duplicate name %q", i+1, sc.Name)
		}
		seen[sc.Name] = true
	}
	return nil
}
