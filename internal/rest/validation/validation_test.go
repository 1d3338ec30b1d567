package validation_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nt-mdc/project-management-system-backend/internal/rest/validation"
)

type fakeDirectory struct {
	known map[string]bool
	err   error
}

func (d *fakeDirectory) EmailTaken(email string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.known[email], nil
}

func ptr(s string) *string {
	return &s
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func validate(t *testing.T, build func(v *validation.Validator)) *validation.Errors {
	t.Helper()
	v := validation.New()
	build(v)
	errs, err := v.Validate()
	require.NoError(t, err)
	return errs
}

func TestRequiredFieldMissing(t *testing.T) {
	errs := validate(t, func(v *validation.Validator) {
		v.Field("title", nil, validation.Title(true)...)
	})

	assert.Equal(t, map[string][]string{
		"title": {"The title field is required."},
	}, errs.Fields())
	assert.Equal(t, "The title field is required.", errs.Summary())
}

func TestRequiredFieldEmptyStringBehavesLikeMissing(t *testing.T) {
	errs := validate(t, func(v *validation.Validator) {
		v.Field("title", ptr(""), validation.Title(true)...)
	})

	// only the required message, length rules stay silent
	assert.Equal(t, []string{"The title field is required."}, errs.Fields()["title"])
}

func TestAttributeRendersUnderscoresAsSpaces(t *testing.T) {
	errs := validate(t, func(v *validation.Validator) {
		v.Field("start_at", nil, validation.StartDate(true)...)
	})

	assert.Equal(t, "The start at field is required.", errs.Summary())
	_, keyKeepsUnderscore := errs.Fields()["start_at"]
	assert.True(t, keyKeepsUnderscore)
}

func TestOptionalFieldAbsentIsSkipped(t *testing.T) {
	errs := validate(t, func(v *validation.Validator) {
		v.Field("title", nil, validation.Title(false)...)
		v.Field("status", ptr(""), validation.ProjectStatus(false)...)
	})

	assert.False(t, errs.Any())
}

func TestTitleLengthBounds(t *testing.T) {
	errs := validate(t, func(v *validation.Validator) {
		v.Field("title", ptr("too short"), validation.Title(true)...)
	})
	assert.Equal(t, []string{"The title field must be at least 10 characters."}, errs.Fields()["title"])

	long := make([]byte, 151)
	for i := range long {
		long[i] = 'a'
	}
	errs = validate(t, func(v *validation.Validator) {
		v.Field("title", ptr(string(long)), validation.Title(true)...)
	})
	assert.Equal(t, []string{"The title field must not be greater than 150 characters."}, errs.Fields()["title"])
}

func TestDescriptionMinimum(t *testing.T) {
	errs := validate(t, func(v *validation.Validator) {
		v.Field("description", ptr("way too short"), validation.Description(true)...)
	})

	assert.Equal(t, []string{"The description field must be at least 25 characters."}, errs.Fields()["description"])
}

func TestDateFormat(t *testing.T) {
	errs := validate(t, func(v *validation.Validator) {
		v.Field("start_at", ptr("21-06-2040"), validation.StartDate(true)...)
	})

	assert.Contains(t, errs.Fields()["start_at"], "The start at field must match the format Y-m-d.")
}

func TestStartDateMustNotBeInThePast(t *testing.T) {
	errs := validate(t, func(v *validation.Validator) {
		v.Field("start_at", ptr("2020-01-01"), validation.StartDate(true)...)
	})

	assert.Contains(t, errs.Fields()["start_at"], "The start at field must be a date after or equal to today.")
}

func TestStartDateTodayPasses(t *testing.T) {
	errs := validate(t, func(v *validation.Validator) {
		v.Field("start_at", ptr(futureDate(0)), validation.StartDate(true)...)
	})

	assert.False(t, errs.Any())
}

func TestEndDateMustBeAfterSubmittedStart(t *testing.T) {
	errs := validate(t, func(v *validation.Validator) {
		v.Field("start_at", ptr(futureDate(10)), validation.StartDate(true)...)
		v.Field("end_at", ptr(futureDate(10)), validation.EndDate(true)...)
	})

	assert.Equal(t, []string{"The end at field must be a date after start at."}, errs.Fields()["end_at"])
}

func TestEndDateComparisonSkippedWhenStartAbsent(t *testing.T) {
	errs := validate(t, func(v *validation.Validator) {
		v.Field("start_at", nil, validation.StartDate(false)...)
		v.Field("end_at", ptr(futureDate(5)), validation.EndDate(false)...)
	})

	assert.False(t, errs.Any())
}

func TestStatusAndPriorityMembership(t *testing.T) {
	errs := validate(t, func(v *validation.Validator) {
		v.Field("status", ptr("paused"), validation.ProjectStatus(true)...)
		v.Field("priority", ptr("urgent"), validation.TaskPriority(true)...)
	})

	assert.Equal(t, []string{"The selected status is invalid."}, errs.Fields()["status"])
	assert.Equal(t, []string{"The selected priority is invalid."}, errs.Fields()["priority"])
}

func TestEmailFormat(t *testing.T) {
	users := &fakeDirectory{known: map[string]bool{}}
	errs := validate(t, func(v *validation.Validator) {
		v.Field("email", ptr("not-an-email"), validation.EmailExists(users, true)...)
	})

	assert.Contains(t, errs.Fields()["email"], "The email field must be a valid email address.")
}

func TestUniqueEmailRejectsTaken(t *testing.T) {
	users := &fakeDirectory{known: map[string]bool{"jane@example.com": true}}
	errs := validate(t, func(v *validation.Validator) {
		v.Field("email", ptr("jane@example.com"), validation.EmailUnique(users, true)...)
	})

	assert.Equal(t, []string{"The email has already been taken."}, errs.Fields()["email"])
}

func TestExistingEmailRejectsUnknown(t *testing.T) {
	users := &fakeDirectory{known: map[string]bool{}}
	errs := validate(t, func(v *validation.Validator) {
		v.Field("assigned_email", ptr("ghost@example.com"), validation.EmailExists(users, true)...)
	})

	assert.Equal(t, []string{"The selected assigned email is invalid."}, errs.Fields()["assigned_email"])
}

func TestDirectoryFailureSurfacesAsError(t *testing.T) {
	users := &fakeDirectory{err: fmt.Errorf("connection refused")}
	v := validation.New()
	v.Field("email", ptr("jane@example.com"), validation.EmailUnique(users, true)...)

	_, err := v.Validate()
	assert.Error(t, err)
}

func TestPasswordReportsEveryViolatedClass(t *testing.T) {
	errs := validate(t, func(v *validation.Validator) {
		v.Field("password", ptr("abc"), validation.Password()...)
	})

	assert.Equal(t, []string{
		"The password field must be at least 8 characters.",
		"The password field must contain at least one uppercase and one lowercase letter.",
		"The password field must contain at least one number.",
		"The password field must contain at least one symbol.",
	}, errs.Fields()["password"])
}

func TestPasswordAcceptsStrongValue(t *testing.T) {
	errs := validate(t, func(v *validation.Validator) {
		v.Field("password", ptr("Str0ng!Pass"), validation.Password()...)
	})

	assert.False(t, errs.Any())
}

func TestContentBounds(t *testing.T) {
	errs := validate(t, func(v *validation.Validator) {
		v.Field("content", ptr("hey"), validation.Content()...)
	})

	assert.Equal(t, []string{"The content field must be at least 5 characters."}, errs.Fields()["content"])
}

func TestSummaryCountsMessagesNotFields(t *testing.T) {
	// one field, four messages: the summary counts the extra three
	errs := validate(t, func(v *validation.Validator) {
		v.Field("password", ptr("abc"), validation.Password()...)
	})
	assert.Equal(t, "The password field must be at least 8 characters. (and 3 more errors)", errs.Summary())
}

func TestSummarySingularForm(t *testing.T) {
	errs := validate(t, func(v *validation.Validator) {
		v.Field("title", nil, validation.Title(true)...)
		v.Field("description", nil, validation.Description(true)...)
	})

	assert.Equal(t, "The title field is required. (and 1 more error)", errs.Summary())
}

func TestAllRequiredFieldsCollected(t *testing.T) {
	errs := validate(t, func(v *validation.Validator) {
		v.Field("title", nil, validation.Title(true)...)
		v.Field("description", nil, validation.Description(true)...)
		v.Field("start_at", nil, validation.StartDate(true)...)
		v.Field("end_at", nil, validation.EndDate(true)...)
		v.Field("status", nil, validation.ProjectStatus(true)...)
	})

	assert.Len(t, errs.Fields(), 5)
	assert.Equal(t, "The title field is required. (and 4 more errors)", errs.Summary())
}
