package validation

import (
	"fmt"
	"regexp"
	"time"
	"unicode"
	"unicode/utf8"
)

// dateLayout is the only accepted date format (Y-m-d).
const dateLayout = "2006-01-02"

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserDirectory is the store-backed lookup the email rules need.
type UserDirectory interface {
	EmailTaken(email string) (bool, error)
}

// MinLen fails when the value is shorter than n characters.
func MinLen(n int) Constraint {
	return rule(func(attr, value string, _ Scope) string {
		if utf8.RuneCountInString(value) < n {
			return fmt.Sprintf("The %s field must be at least %d characters.", attr, n)
		}
		return ""
	})
}

// MaxLen fails when the value is longer than n characters.
func MaxLen(n int) Constraint {
	return rule(func(attr, value string, _ Scope) string {
		if utf8.RuneCountInString(value) > n {
			return fmt.Sprintf("The %s field must not be greater than %d characters.", attr, n)
		}
		return ""
	})
}

// InSet fails unless the value is one of the allowed members.
func InSet(allowed ...string) Constraint {
	return rule(func(attr, value string, _ Scope) string {
		for _, member := range allowed {
			if value == member {
				return ""
			}
		}
		return fmt.Sprintf("The selected %s is invalid.", attr)
	})
}

// ValidEmail fails unless the value looks like an email address.
func ValidEmail() Constraint {
	return rule(func(attr, value string, _ Scope) string {
		if !emailPattern.MatchString(value) {
			return fmt.Sprintf("The %s field must be a valid email address.", attr)
		}
		return ""
	})
}

// DateYMD fails unless the value parses as Y-m-d.
func DateYMD() Constraint {
	return rule(func(attr, value string, _ Scope) string {
		if _, err := time.Parse(dateLayout, value); err != nil {
			return fmt.Sprintf("The %s field must match the format Y-m-d.", attr)
		}
		return ""
	})
}

// TodayOrLater fails when the value is a date before today (or unparseable).
func TodayOrLater() Constraint {
	return rule(func(attr, value string, _ Scope) string {
		message := fmt.Sprintf("The %s field must be a date after or equal to today.", attr)
		date, err := time.Parse(dateLayout, value)
		if err != nil {
			return message
		}
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if date.Before(today) {
			return message
		}
		return ""
	})
}

// AfterField fails unless the value is a date strictly after the submitted
// value of the other field. When the other field is absent from the payload
// the comparison is skipped; see the partial-update note in DESIGN.md.
func AfterField(other string) Constraint {
	return rule(func(attr, value string, scope Scope) string {
		raw, present := scope.Input(other)
		if !present {
			return ""
		}
		message := fmt.Sprintf("The %s field must be a date after %s.", attr, attribute(other))
		date, err := time.Parse(dateLayout, value)
		if err != nil {
			return message
		}
		otherDate, err := time.Parse(dateLayout, raw)
		if err != nil {
			return message
		}
		if !date.After(otherDate) {
			return message
		}
		return ""
	})
}

// UniqueEmail fails when the email is already registered.
func UniqueEmail(users UserDirectory) Constraint {
	return Constraint{check: func(attr, value string, _ Scope) (string, error) {
		taken, err := users.EmailTaken(value)
		if err != nil {
			return "", err
		}
		if taken {
			return fmt.Sprintf("The %s has already been taken.", attr), nil
		}
		return "", nil
	}}
}

// ExistingEmail fails unless the email resolves to a registered user.
func ExistingEmail(users UserDirectory) Constraint {
	return Constraint{check: func(attr, value string, _ Scope) (string, error) {
		taken, err := users.EmailTaken(value)
		if err != nil {
			return "", err
		}
		if !taken {
			return fmt.Sprintf("The selected %s is invalid.", attr), nil
		}
		return "", nil
	}}
}

func passwordClass(test func(rune) bool, message string) Constraint {
	return rule(func(attr, value string, _ Scope) string {
		for _, r := range value {
			if test(r) {
				return ""
			}
		}
		return fmt.Sprintf(message, attr)
	})
}

func withRequired(required bool, constraints ...Constraint) []Constraint {
	if required {
		return append([]Constraint{Required}, constraints...)
	}
	return constraints
}

// The rule builders below mirror the per-field constraint table: one function
// per field, parameterized by whether the field is mandatory for the
// operation (creation: required; update: only constrained when present).

func Title(required bool) []Constraint {
	return withRequired(required, MinLen(10), MaxLen(150))
}

func Description(required bool) []Constraint {
	return withRequired(required, MinLen(25), MaxLen(1500))
}

func StartDate(required bool) []Constraint {
	return withRequired(required, DateYMD(), TodayOrLater())
}

func EndDate(required bool) []Constraint {
	return withRequired(required, DateYMD(), AfterField("start_at"))
}

func ProjectStatus(required bool) []Constraint {
	return withRequired(required, InSet("available-soon", "in-progress", "done"))
}

func TaskPriority(required bool) []Constraint {
	return withRequired(required, InSet("low", "medium", "high"))
}

func Name(required bool) []Constraint {
	return withRequired(required)
}

func EmailUnique(users UserDirectory, required bool) []Constraint {
	return withRequired(required, ValidEmail(), UniqueEmail(users))
}

func EmailExists(users UserDirectory, required bool) []Constraint {
	return withRequired(required, ValidEmail(), ExistingEmail(users))
}

// Password is always required: min 8 characters with at least one uppercase
// letter, one lowercase letter, one digit and one symbol. Every violated
// class is reported, not just the first.
func Password() []Constraint {
	return []Constraint{
		Required,
		MinLen(8),
		passwordClass(unicode.IsLetter, "The %s field must contain at least one letter."),
		mixedCase(),
		passwordClass(unicode.IsDigit, "The %s field must contain at least one number."),
		passwordClass(func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r)
		}, "The %s field must contain at least one symbol."),
	}
}

func mixedCase() Constraint {
	return rule(func(attr, value string, _ Scope) string {
		var upper, lower bool
		for _, r := range value {
			upper = upper || unicode.IsUpper(r)
			lower = lower || unicode.IsLower(r)
		}
		if !upper || !lower {
			return fmt.Sprintf("The %s field must contain at least one uppercase and one lowercase letter.", attr)
		}
		return ""
	})
}

// Content is always required: comment bodies run 5 to 1500 characters.
func Content() []Constraint {
	return []Constraint{Required, MinLen(5), MaxLen(1500)}
}
