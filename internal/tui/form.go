package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

type fieldKind int

const (
	textField fieldKind = iota
	choiceField
)

// field is one form row: free text or a fixed list of options
type field struct {
	key      string
	label    string
	kind     fieldKind
	optional bool
	input    textinput.Model
	options  []string
	selected int
}

func newTextField(key, label, value, placeholder string, limit int) *field {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 14
	ti.SetValue(value)
	return &field{key: key, label: label, kind: textField, input: ti}
}

func newChoiceField(key, label string, options []string, value string) *field {
	f := &field{key: key, label: label, kind: choiceField, options: options}
	for i, o := range options {
		if o == value {
			f.selected = i
		}
	}
	return f
}

func (f *field) Value() string {
	if f.kind == choiceField {
		return f.options[f.selected]
	}
	return strings.TrimSpace(f.input.Value())
}

func (f *field) cycle(delta int) {
	n := len(f.options)
	f.selected = ((f.selected+delta)%n + n) % n
}

// form is an ordered set of fields with one focused row
type form struct {
	fields []*field
	focus  int
}

func newForm(fields ...*field) *form {
	f := &form{fields: fields}
	f.setFocus(0)
	return f
}

func (f *form) setFocus(i int) tea.Cmd {
	n := len(f.fields)
	f.focus = ((i % n) + n) % n
	var cmd tea.Cmd
	for idx, fl := range f.fields {
		if fl.kind != textField {
			continue
		}
		if idx == f.focus {
			cmd = fl.input.Focus()
		} else {
			fl.input.Blur()
		}
	}
	return cmd
}

func (f *form) focused() *field { return f.fields[f.focus] }

func (f *form) get(key string) *field {
	for _, fl := range f.fields {
		if fl.key == key {
			return fl
		}
	}
	panic("tui: unknown field " + key)
}

func (f *form) text(key string) string { return f.get(key).Value() }

// amount parses a money or count field. Blank optional fields read as zero.
func (f *form) amount(key string) (decimal.Decimal, error) {
	fl := f.get(key)
	raw := strings.NewReplacer(",", "", "$", "").Replace(fl.Value())
	if raw == "" {
		if fl.optional {
			return decimal.Zero, nil
		}
		return decimal.Zero, errors.New(strings.ToLower(fl.label) + " is required")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %q is not a number", strings.ToLower(fl.label), fl.Value())
	}
	return d, nil
}
