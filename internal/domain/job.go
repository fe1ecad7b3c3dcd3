package domain

import (
	"context"
	"slices"
)

type ApplicantStatus string

const (
	ApplicantStatusPending  ApplicantStatus = "pending"
	ApplicantStatusAccepted ApplicantStatus = "accepted"
	ApplicantStatusRejected ApplicantStatus = "rejected"
)

// applicantTransitions lists the statuses reachable from each status.
// Terminal statuses have no entry.
var applicantTransitions = map[ApplicantStatus][]ApplicantStatus{
	ApplicantStatusPending: {ApplicantStatusAccepted, ApplicantStatusRejected},
}

// CanTransition reports whether an applicant may move from s to next.
func (s ApplicantStatus) CanTransition(next ApplicantStatus) bool {
	return slices.Contains(applicantTransitions[s], next)
}

type Job struct {
	ID          string         `json:"_id"`
	Title       string         `json:"title" validate:"required,min=3,max=120"`
	Description string         `json:"description" validate:"required,max=5000"`
	Type        string         `json:"type" validate:"required,job_type"`
	Location    string         `json:"location" validate:"required,max=120"`
	SalaryRange string         `json:"salaryRange" validate:"salary_range,max=60"`
	Applicants  []JobApplicant `json:"applicants,omitempty" validate:"-"`
	IsActive    bool           `json:"isActive"`
}

// JobApplicant is one application against a job. Score is nil until the
// scoring oracle has produced a value.
type JobApplicant struct {
	UserID     string          `json:"userId"`
	User       *UserSummary    `json:"user,omitempty"`
	ResumeURL  string          `json:"resumeUrl"`
	Attachment *string         `json:"additionalAttachment,omitempty"`
	Score      *int            `json:"score,omitempty"`
	Status     ApplicantStatus `json:"status"`
}

// DisplayScore collapses a missing score to 0.
func (a JobApplicant) DisplayScore() int {
	if a.Score == nil {
		return 0
	}
	return *a.Score
}

// Application is the candidate-side payload for applying to a job.
type Application struct {
	ResumeURL  string `json:"resumeUrl" validate:"required,url"`
	Attachment string `json:"additionalAttachment,omitempty" validate:"omitempty,url"`
}

// ApplicantView names which list the store's working set currently holds.
type ApplicantView string

const (
	ApplicantViewRoster ApplicantView = "roster"
	ApplicantViewTop    ApplicantView = "top"
)

// ApplicantList is the working set of a job as seen by the session.
type ApplicantList struct {
	JobID      string         `json:"jobId"`
	View       ApplicantView  `json:"view"`
	Applicants []JobApplicant `json:"applicants"`
}

// JobGateway is the backend surface for jobs and their applicants.
type JobGateway interface {
	CreateJob(ctx context.Context, job *Job) error
	GetJob(ctx context.Context, jobID string) (*Job, error)
	CloseJob(ctx context.Context, jobID string) error
	Apply(ctx context.Context, jobID string, app Application) error
	ListApplicants(ctx context.Context, jobID string) ([]JobApplicant, error)
	UpdateApplicantStatus(ctx context.Context, jobID, userID string, status ApplicantStatus) error
	Rescore(ctx context.Context, jobID string) (int, error)
	TopCandidates(ctx context.Context, jobID string, limit int) ([]JobApplicant, error)
}

// ApplicantStore is the session-scoped cache of job applicants.
type ApplicantStore interface {
	FetchApplicants(ctx context.Context, jobID string) (*ApplicantList, error)
	UpdateStatus(ctx context.Context, jobID, userID string, status ApplicantStatus) error
	Rescore(ctx context.Context, jobID string) (int, error)
	TopCandidates(ctx context.Context, jobID string, limit int) (*ApplicantList, error)
	Apply(ctx context.Context, jobID string, app Application) error
	CreateJob(ctx context.Context, job *Job) error
	CloseJob(ctx context.Context, jobID string) error
	Release(jobID string)
	Current(jobID string) (*ApplicantList, bool)
}
