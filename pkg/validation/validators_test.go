package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicantStatusTag(t *testing.T) {
	v := New()
	assert.NoError(t, v.Var("accepted", "required,applicant_status"))
	assert.NoError(t, v.Var("rejected", "required,applicant_status"))
	assert.Error(t, v.Var("pending", "required,applicant_status"))
	assert.Error(t, v.Var("", "required,applicant_status"))
}

func TestFormatValidationErrors(t *testing.T) {
	type jobForm struct {
		Title       string `validate:"required"`
		Type        string `validate:"job_type"`
		SalaryRange string `validate:"salary_range"`
		ResumeURL   string `validate:"url"`
	}

	err := New().Struct(jobForm{Type: "gig", SalaryRange: "50k<script>", ResumeURL: "nope"})
	require.Error(t, err)

	assert.Equal(t, []string{
		"Job title: is required",
		"Job type: unknown job type",
		"Salary range: contains unsupported characters",
		"Resume: must be a valid URL",
	}, FormatValidationErrors(err))
}

func TestSalaryRange(t *testing.T) {
	v := New()
	for _, ok := range []string{"", "50k-80k", "$4,000 - $6,000", "negotiable"} {
		assert.NoError(t, v.Var(ok, "salary_range"), ok)
	}
	assert.Error(t, v.Var("DROP TABLE;", "salary_range"))
}
