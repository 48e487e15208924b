package formspec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formcheck/pkg/validator"
)

// Document is the YAML representation of a form.
type Document struct {
	Name   string     `yaml:"name"`
	Fields []FieldDef `yaml:"fields"`
}

// FieldDef describes one field and its ordered rules.
type FieldDef struct {
	ID    string    `yaml:"id"`
	Rules []RuleDef `yaml:"rules"`
}

// RuleDef describes one rule. Only the parameters relevant to Rule are read.
type RuleDef struct {
	Rule    string   `yaml:"rule"`
	Message string   `yaml:"message"`
	Min     *int     `yaml:"min,omitempty"`
	Max     *int     `yaml:"max,omitempty"`
	Pattern string   `yaml:"pattern,omitempty"`
	Field   string   `yaml:"field,omitempty"`
	Values  []string `yaml:"values,omitempty"`
}

// Parse decodes a YAML document and builds the form it describes.
func Parse(data []byte) (*validator.Form, error) {
	return Load(bytes.NewReader(data))
}

// Load decodes a YAML document from r and builds the form it describes.
func Load(r io.Reader) (*validator.Form, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return doc.Build()
}

// LoadFile reads and builds the form stored at path.
func LoadFile(path string) (*validator.Form, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("formspec: open %s: %w", path, err)
	}
	defer f.Close()

	form, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("formspec: %s: %w", path, err)
	}
	return form, nil
}

// Build converts the document into a validator.Form.
func (d Document) Build() (*validator.Form, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidDocument)
	}
	if strings.ContainsFunc(d.Name, unsafeNameRune) {
		return nil, fmt.Errorf("%w: form name %q must not contain '/', '?', '#' or whitespace", ErrInvalidDocument, d.Name)
	}
	if len(d.Fields) == 0 {
		return nil, fmt.Errorf("%w: form %q has no fields", ErrInvalidDocument, d.Name)
	}

	declared := make(map[string]struct{}, len(d.Fields))
	for _, f := range d.Fields {
		declared[f.ID] = struct{}{}
	}

	specs := make([]validator.FieldSpec, 0, len(d.Fields))
	for _, f := range d.Fields {
		rules := make([]validator.Rule, 0, len(f.Rules))
		for i, def := range f.Rules {
			rule, err := def.build(declared)
			if err != nil {
				return nil, fmt.Errorf("field %q rule #%d: %w", f.ID, i, err)
			}
			rules = append(rules, rule)
		}
		specs = append(specs, validator.Field(f.ID, rules...))
	}

	form, err := validator.NewForm(d.Name, specs...)
	if err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	return form, nil
}

func (d RuleDef) build(declared map[string]struct{}) (validator.Rule, error) {
	if d.Message == "" {
		return validator.Rule{}, fmt.Errorf("%w: message", ErrMissingParam)
	}

	switch d.Rule {
	case validator.RuleRequired:
		return validator.Required(d.Message), nil

	case validator.RuleMinLength:
		if d.Min == nil {
			return validator.Rule{}, fmt.Errorf("%w: min", ErrMissingParam)
		}
		return validator.MinLength(*d.Min, d.Message), nil

	case validator.RuleMaxLength:
		if d.Max == nil {
			return validator.Rule{}, fmt.Errorf("%w: max", ErrMissingParam)
		}
		return validator.MaxLength(*d.Max, d.Message), nil

	case validator.RulePattern:
		if d.Pattern == "" {
			return validator.Rule{}, fmt.Errorf("%w: pattern", ErrMissingParam)
		}
		re, err := regexp.Compile(d.Pattern)
		if err != nil {
			return validator.Rule{}, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
		}
		return validator.MatchesPattern(re, d.Message), nil

	case validator.RuleEmail:
		return validator.ValidEmail(d.Message), nil

	case validator.RuleEqualsField, validator.RuleNotEqualsField:
		if d.Field == "" {
			return validator.Rule{}, fmt.Errorf("%w: field", ErrMissingParam)
		}
		if _, ok := declared[d.Field]; !ok {
			return validator.Rule{}, fmt.Errorf("%w: %q", ErrUnknownField, d.Field)
		}
		if d.Rule == validator.RuleEqualsField {
			return validator.EqualsField(d.Field, d.Message), nil
		}
		return validator.NotEqualsField(d.Field, d.Message), nil

	case validator.RuleOneOf:
		if len(d.Values) == 0 {
			return validator.Rule{}, fmt.Errorf("%w: values", ErrMissingParam)
		}
		return validator.OneOf(d.Values, d.Message), nil

	default:
		return validator.Rule{}, fmt.Errorf("%w: %q", ErrUnknownRule, d.Rule)
	}
}

// unsafeNameRune reports runes that break the form name as a URL path segment.
func unsafeNameRune(r rune) bool {
	return r == '/' || r == '?' || r == '#' || unicode.IsSpace(r)
}
