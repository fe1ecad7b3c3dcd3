package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go-talent-session/internal/domain"
	"go-talent-session/pkg/apperror"
)

type jobRepo struct {
	c *Client
}

func NewJobRepository(c *Client) domain.JobGateway {
	return &jobRepo{c: c}
}

func (r *jobRepo) CreateJob(ctx context.Context, job *domain.Job) error {
	var created domain.Job
	if err := r.c.do(ctx, "job.create", http.MethodPost, "/jobs", job, &created); err != nil {
		return err
	}
	if created.ID != "" {
		job.ID = created.ID
	}
	job.IsActive = true
	return nil
}

func (r *jobRepo) GetJob(ctx context.Context, jobID string) (*domain.Job, error) {
	var wire struct {
		domain.Job
		Applicants []wireApplicant `json:"applicants"`
	}
	if err := r.c.do(ctx, "job.get", http.MethodGet, "/jobs/"+url.PathEscape(jobID), nil, &wire); err != nil {
		return nil, err
	}
	job := wire.Job
	applicants, err := r.normalize(wire.Applicants)
	if err != nil {
		return nil, err
	}
	job.Applicants = applicants
	return &job, nil
}

func (r *jobRepo) CloseJob(ctx context.Context, jobID string) error {
	return r.c.do(ctx, "job.close", http.MethodPatch, "/jobs/"+url.PathEscape(jobID)+"/close", nil, nil)
}

func (r *jobRepo) Apply(ctx context.Context, jobID string, app domain.Application) error {
	return r.c.do(ctx, "job.apply", http.MethodPost, "/jobs/"+url.PathEscape(jobID)+"/apply", app, nil)
}

func (r *jobRepo) ListApplicants(ctx context.Context, jobID string) ([]domain.JobApplicant, error) {
	return r.listApplicants(ctx, "job.applicants", "/jobs/"+url.PathEscape(jobID)+"/applicants")
}

func (r *jobRepo) UpdateApplicantStatus(ctx context.Context, jobID, userID string, status domain.ApplicantStatus) error {
	body := map[string]domain.ApplicantStatus{"status": status}
	path := "/jobs/" + url.PathEscape(jobID) + "/applicants/" + url.PathEscape(userID)
	return r.c.do(ctx, "job.applicant_status", http.MethodPatch, path, body, nil)
}

func (r *jobRepo) Rescore(ctx context.Context, jobID string) (int, error) {
	var out struct {
		Updated int `json:"updated"`
	}
	if err := r.c.do(ctx, "job.rescore", http.MethodPost, "/jobs/"+url.PathEscape(jobID)+"/rescore", nil, &out); err != nil {
		return 0, err
	}
	return out.Updated, nil
}

func (r *jobRepo) TopCandidates(ctx context.Context, jobID string, limit int) ([]domain.JobApplicant, error) {
	path := "/jobs/" + url.PathEscape(jobID) + "/top-candidates?limit=" + strconv.Itoa(limit)
	return r.listApplicants(ctx, "job.top_candidates", path)
}

func (r *jobRepo) listApplicants(ctx context.Context, op, path string) ([]domain.JobApplicant, error) {
	var raw json.RawMessage
	if err := r.c.do(ctx, op, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	page, err := decodePage[wireApplicant](raw)
	if err != nil {
		return nil, err
	}
	return r.normalize(page.Items)
}

// wireApplicant carries userId either as a bare id or as a populated user.
type wireApplicant struct {
	UserID     json.RawMessage        `json:"userId"`
	User       *domain.UserSummary    `json:"user"`
	ResumeURL  string                 `json:"resumeUrl"`
	Attachment *string                `json:"additionalAttachment"`
	Score      *int                   `json:"score"`
	Status     domain.ApplicantStatus `json:"status"`
}

func (r *jobRepo) normalize(in []wireApplicant) ([]domain.JobApplicant, error) {
	out := make([]domain.JobApplicant, 0, len(in))
	for _, w := range in {
		a := domain.JobApplicant{
			User:       w.User,
			ResumeURL:  r.c.media.Resolve(w.ResumeURL),
			Attachment: r.c.media.resolvePtr(w.Attachment),
			Score:      w.Score,
			Status:     w.Status,
		}
		if a.Status == "" {
			a.Status = domain.ApplicantStatusPending
		}

		id, user, err := decodeApplicantUser(w.UserID)
		if err != nil {
			return nil, err
		}
		a.UserID = id
		if user != nil {
			a.User = user
		}
		if a.UserID == "" && a.User != nil {
			a.UserID = a.User.ID
		}
		if a.User != nil {
			a.User.Image = r.c.media.resolvePtr(a.User.Image)
		}
		out = append(out, a)
	}
	return out, nil
}

func decodeApplicantUser(raw json.RawMessage) (string, *domain.UserSummary, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", nil, nil
	}
	switch trimmed[0] {
	case '"':
		var id string
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return "", nil, apperror.Network(fmt.Errorf("decode applicant userId: %w", err))
		}
		return id, nil, nil
	case '{':
		var u domain.UserSummary
		if err := json.Unmarshal(trimmed, &u); err != nil {
			return "", nil, apperror.Network(fmt.Errorf("decode applicant user: %w", err))
		}
		return u.ID, &u, nil
	default:
		return "", nil, apperror.Network(fmt.Errorf("decode applicant userId: unexpected %.32q", trimmed))
	}
}
