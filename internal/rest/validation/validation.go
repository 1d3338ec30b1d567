package validation

import (
	"fmt"
	"strings"
)

// Scope gives constraints access to the other submitted values of the same
// request, for cross-field rules like "end_at after start_at". Comparisons are
// always against the submitted payload, never against stored state.
type Scope interface {
	Input(name string) (string, bool)
}

// Constraint checks a single rule against a submitted value. check returns ""
// when the value passes, otherwise a complete user-facing message. The error
// return reports infrastructure failure (e.g. the user directory being
// unreachable), never a validation outcome.
type Constraint struct {
	required bool
	check    func(attr, value string, scope Scope) (string, error)
}

// Required marks a field mandatory. A missing (or empty) required field
// reports only the required message; the remaining constraints are not run.
var Required = Constraint{required: true}

func rule(check func(attr, value string, scope Scope) string) Constraint {
	return Constraint{check: func(attr, value string, scope Scope) (string, error) {
		return check(attr, value, scope), nil
	}}
}

type field struct {
	name        string
	value       *string
	constraints []Constraint
}

// Validator evaluates every registered field and collects every violation;
// it never fails fast on the first bad field.
type Validator struct {
	fields []field
}

func New() *Validator {
	return &Validator{}
}

// Field registers a submitted value under its JSON name. A nil value means
// the field was absent from the request body.
func (v *Validator) Field(name string, value *string, constraints ...Constraint) {
	v.fields = append(v.fields, field{name: name, value: value, constraints: constraints})
}

// Input implements Scope over the registered fields.
func (v *Validator) Input(name string) (string, bool) {
	for _, f := range v.fields {
		if f.name == name && f.value != nil && *f.value != "" {
			return *f.value, true
		}
	}
	return "", false
}

// Validate runs all constraints in registration order.
func (v *Validator) Validate() (*Errors, error) {
	errs := NewErrors()
	for _, f := range v.fields {
		attr := attribute(f.name)

		required := false
		for _, c := range f.constraints {
			if c.required {
				required = true
			}
		}

		if f.value == nil || *f.value == "" {
			if required {
				errs.Add(f.name, fmt.Sprintf("The %s field is required.", attr))
			}
			continue
		}

		for _, c := range f.constraints {
			if c.check == nil {
				continue
			}
			message, err := c.check(attr, *f.value, v)
			if err != nil {
				return nil, err
			}
			if message != "" {
				errs.Add(f.name, message)
			}
		}
	}
	return errs, nil
}

// attribute renders a field name for messages: underscores become spaces,
// the error-map key keeps the raw name.
func attribute(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

// Errors accumulates field violations, preserving the order in which fields
// first failed so the summary always names the first violation.
type Errors struct {
	order  []string
	fields map[string][]string
	total  int
}

func NewErrors() *Errors {
	return &Errors{fields: make(map[string][]string)}
}

func (e *Errors) Add(name, message string) {
	if _, seen := e.fields[name]; !seen {
		e.order = append(e.order, name)
	}
	e.fields[name] = append(e.fields[name], message)
	e.total++
}

func (e *Errors) Any() bool {
	return e.total > 0
}

func (e *Errors) Fields() map[string][]string {
	return e.fields
}

// Summary is the first violation, plus a count of the remaining ones when
// there are more.
func (e *Errors) Summary() string {
	if !e.Any() {
		return ""
	}
	first := e.fields[e.order[0]][0]
	switch rest := e.total - 1; {
	case rest == 1:
		return fmt.Sprintf("%s (and 1 more error)", first)
	case rest > 1:
		return fmt.Sprintf("%s (and %d more errors)", first, rest)
	default:
		return first
	}
}
