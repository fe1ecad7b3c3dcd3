package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// "50k-80k", "$4,000 - $6,000", "negotiable"
	salaryRangeRegex = regexp.MustCompile(`^[\p{L}\p{Sc}0-9 .,kK/+-]+$`)

	jobTypes = map[string]bool{
		"full-time":  true,
		"part-time":  true,
		"contract":   true,
		"internship": true,
		"freelance":  true,
		"remote":     true,
	}
)

// New returns a validator with the custom tags registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("applicant_status", ApplicantStatus)
	_ = v.RegisterValidation("job_type", JobType)
	_ = v.RegisterValidation("salary_range", SalaryRange)
}

// ApplicantStatus accepts only the terminal statuses an employer may set.
func ApplicantStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "accepted", "rejected":
		return true
	}
	return false
}

func JobType(fl validator.FieldLevel) bool {
	return jobTypes[fl.Field().String()]
}

func SalaryRange(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return salaryRangeRegex.MatchString(val)
}
