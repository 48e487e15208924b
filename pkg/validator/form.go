package validator

import "fmt"

// Form is a named, immutable set of FieldSpecs validated together.
type Form struct {
	name  string
	specs []FieldSpec
}

// NewForm checks the specs once and returns a Form that can be shared freely.
func NewForm(name string, specs ...FieldSpec) (*Form, error) {
	seen := make(map[string]struct{}, len(specs))
	copied := make([]FieldSpec, 0, len(specs))

	for i, spec := range specs {
		if spec.ID == "" {
			return nil, fmt.Errorf("%w: spec #%d", ErrEmptyFieldID, i)
		}
		if _, ok := seen[spec.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, spec.ID)
		}
		seen[spec.ID] = struct{}{}

		for j, rule := range spec.Rules {
			if rule.Check == nil {
				return nil, fmt.Errorf("%w: field %q rule #%d", ErrNilCheck, spec.ID, j)
			}
		}
		copied = append(copied, Field(spec.ID, spec.Rules...))
	}

	return &Form{name: name, specs: copied}, nil
}

// MustForm is like NewForm but panics on a configuration error.
func MustForm(name string, specs ...FieldSpec) *Form {
	f, err := NewForm(name, specs...)
	if err != nil {
		panic(fmt.Sprintf("validator: invalid form %q: %v", name, err))
	}
	return f
}

// Name returns the form name given to NewForm.
func (f *Form) Name() string {
	return f.name
}

// Fields returns the field ids in declaration order.
func (f *Form) Fields() []string {
	ids := make([]string, 0, len(f.specs))
	for _, spec := range f.specs {
		ids = append(ids, spec.ID)
	}
	return ids
}

// Specs returns a copy of the form's specs.
func (f *Form) Specs() []FieldSpec {
	out := make([]FieldSpec, 0, len(f.specs))
	for _, spec := range f.specs {
		out = append(out, Field(spec.ID, spec.Rules...))
	}
	return out
}

// Validate runs a full validation pass over raw.
func (f *Form) Validate(raw map[string]string) Report {
	return Validate(f.specs, raw)
}
