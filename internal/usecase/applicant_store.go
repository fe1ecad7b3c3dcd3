package usecase

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"go-talent-session/internal/bus"
	"go-talent-session/internal/domain"
	"go-talent-session/pkg/apperror"
	"go-talent-session/pkg/metrics"
	"go-talent-session/pkg/validation"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type applicantStore struct {
	session  domain.Session
	gateway  domain.JobGateway
	validate *validator.Validate
	events   *bus.Bus
	logger   *zap.Logger
	flight   singleflight.Group

	mu       sync.Mutex
	lists    map[string]*domain.ApplicantList
	epochs   map[string]uint64
	inFlight map[string]*statusCall
	applied  map[string]struct{}
	closed   map[string]struct{}
}

// statusCall is a status update in flight for one applicant.
type statusCall struct {
	status domain.ApplicantStatus
	done   chan struct{}
	err    error
}

// NewApplicantStore creates the applicant cache for one session.
func NewApplicantStore(session domain.Session, gateway domain.JobGateway, validate *validator.Validate, events *bus.Bus, logger *zap.Logger) domain.ApplicantStore {
	return &applicantStore{
		session:  session,
		gateway:  gateway,
		validate: validate,
		events:   events,
		logger:   logger.With(zap.String("store", "applicants"), zap.String("user_id", session.UserID)),
		lists:    make(map[string]*domain.ApplicantList),
		epochs:   make(map[string]uint64),
		inFlight: make(map[string]*statusCall),
		applied:  make(map[string]struct{}),
		closed:   make(map[string]struct{}),
	}
}

// FetchApplicants replaces the working list of jobID with the canonical
// roster, first occurrence of each user winning.
func (s *applicantStore) FetchApplicants(ctx context.Context, jobID string) (*domain.ApplicantList, error) {
	epoch := s.epoch(jobID)
	applicants, err := s.gateway.ListApplicants(ctx, jobID)
	if err != nil {
		return nil, err
	}
	list := &domain.ApplicantList{JobID: jobID, View: domain.ApplicantViewRoster, Applicants: dedupe(applicants)}
	s.settle(epoch, list)
	return cloneList(list), nil
}

func (s *applicantStore) UpdateStatus(ctx context.Context, jobID, userID string, status domain.ApplicantStatus) error {
	// 1. Only terminal decisions may be set by an employer
	if err := s.validate.Var(string(status), "required,applicant_status"); err != nil {
		return apperror.Validation("Status must be accepted or rejected", err)
	}

	// 2. Guard the transition against the cached record
	key := jobID + "/" + userID
	s.mu.Lock()
	if running, busy := s.inFlight[key]; busy {
		s.mu.Unlock()
		if running.status != status {
			return apperror.InvalidTransition("Applicant is already being moved to " + string(running.status))
		}
		select {
		case <-running.done:
			return running.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	current, ok := s.findLocked(jobID, userID)
	if !ok {
		s.mu.Unlock()
		return apperror.NotFound("Applicant not found")
	}
	if !current.Status.CanTransition(status) {
		s.mu.Unlock()
		return apperror.InvalidTransition("Applicant is already " + string(current.Status))
	}
	call := &statusCall{status: status, done: make(chan struct{})}
	s.inFlight[key] = call
	epoch := s.epochs[jobID]
	s.mu.Unlock()

	// 3. Persist, then patch in place before anyone else may look again
	err := s.gateway.UpdateApplicantStatus(ctx, jobID, userID, status)

	s.mu.Lock()
	delete(s.inFlight, key)
	call.err = err
	close(call.done)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	var list *domain.ApplicantList
	if s.epochs[jobID] == epoch {
		list = s.lists[jobID]
		if list != nil {
			for i := range list.Applicants {
				if list.Applicants[i].UserID == userID {
					list.Applicants[i].Status = status
				}
			}
		}
	}
	s.mu.Unlock()

	if list != nil {
		s.publish(list)
	}
	return nil
}

// Rescore asks the backend to rescore every applicant and then reloads the
// roster. Scores change locally only when both steps succeed.
func (s *applicantStore) Rescore(ctx context.Context, jobID string) (int, error) {
	v, err, _ := s.flight.Do("rescore:"+jobID, func() (any, error) {
		epoch := s.epoch(jobID)
		updated, err := s.gateway.Rescore(ctx, jobID)
		if err != nil {
			return 0, err
		}
		applicants, err := s.gateway.ListApplicants(ctx, jobID)
		if err != nil {
			return 0, err
		}
		s.settle(epoch, &domain.ApplicantList{JobID: jobID, View: domain.ApplicantViewRoster, Applicants: dedupe(applicants)})
		return updated, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

// TopCandidates replaces the working list with at most limit applicants by
// descending score. Equal scores keep the backend's relative order.
func (s *applicantStore) TopCandidates(ctx context.Context, jobID string, limit int) (*domain.ApplicantList, error) {
	if limit <= 0 {
		return nil, apperror.Validation("Limit must be a positive number", nil)
	}
	epoch := s.epoch(jobID)
	applicants, err := s.gateway.TopCandidates(ctx, jobID, limit)
	if err != nil {
		return nil, err
	}

	ranked := dedupe(applicants)
	slices.SortStableFunc(ranked, func(a, b domain.JobApplicant) int {
		return cmp.Compare(b.DisplayScore(), a.DisplayScore())
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	list := &domain.ApplicantList{JobID: jobID, View: domain.ApplicantViewTop, Applicants: ranked}
	s.settle(epoch, list)
	return cloneList(list), nil
}

// Apply submits the session user's application to jobID.
func (s *applicantStore) Apply(ctx context.Context, jobID string, app domain.Application) error {
	if err := s.validate.Struct(app); err != nil {
		return apperror.Validation(strings.Join(validation.FormatValidationErrors(err), "; "), err)
	}

	s.mu.Lock()
	_, dup := s.applied[jobID]
	if !dup {
		_, dup = s.findLocked(jobID, s.session.UserID)
	}
	s.mu.Unlock()
	if dup {
		return apperror.Validation("You have already applied to this job", nil)
	}

	_, err, _ := s.flight.Do("apply:"+jobID, func() (any, error) {
		return nil, s.gateway.Apply(ctx, jobID, app)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.applied[jobID] = struct{}{}
	list := s.lists[jobID]
	if list != nil && list.View == domain.ApplicantViewRoster {
		entry := domain.JobApplicant{UserID: s.session.UserID, ResumeURL: app.ResumeURL, Status: domain.ApplicantStatusPending}
		if app.Attachment != "" {
			attachment := app.Attachment
			entry.Attachment = &attachment
		}
		list.Applicants = dedupe(append(list.Applicants, entry))
	}
	s.mu.Unlock()

	if list != nil {
		s.publish(list)
	}
	return nil
}

func (s *applicantStore) CreateJob(ctx context.Context, job *domain.Job) error {
	if job == nil {
		return apperror.BadRequest("Job is required")
	}
	if err := s.validate.Struct(job); err != nil {
		return apperror.Validation(strings.Join(validation.FormatValidationErrors(err), "; "), err)
	}
	if err := s.gateway.CreateJob(ctx, job); err != nil {
		return err
	}
	s.logger.Info("job created", zap.String("job_id", job.ID))
	return nil
}

// CloseJob closes a listing. Closed is terminal.
func (s *applicantStore) CloseJob(ctx context.Context, jobID string) error {
	s.mu.Lock()
	_, done := s.closed[jobID]
	s.mu.Unlock()
	if done {
		return apperror.InvalidTransition("Job is already closed")
	}

	_, err, _ := s.flight.Do("close:"+jobID, func() (any, error) {
		job, err := s.gateway.GetJob(ctx, jobID)
		if err != nil {
			return nil, err
		}
		if !job.IsActive {
			s.markClosed(jobID)
			return nil, apperror.InvalidTransition("Job is already closed")
		}
		if err := s.gateway.CloseJob(ctx, jobID); err != nil {
			return nil, err
		}
		s.markClosed(jobID)
		return nil, nil
	})
	return err
}

func (s *applicantStore) markClosed(jobID string) {
	s.mu.Lock()
	s.closed[jobID] = struct{}{}
	s.mu.Unlock()
}

// Release drops the working list of jobID. Responses still in flight for it
// are discarded when they settle.
func (s *applicantStore) Release(jobID string) {
	s.mu.Lock()
	s.epochs[jobID]++
	delete(s.lists, jobID)
	s.mu.Unlock()
}

func (s *applicantStore) Current(jobID string) (*domain.ApplicantList, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := s.lists[jobID]
	if !ok {
		return nil, false
	}
	return cloneList(list), true
}

func (s *applicantStore) epoch(jobID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epochs[jobID]
}

// settle stores list unless its job was released after the request started.
func (s *applicantStore) settle(epoch uint64, list *domain.ApplicantList) {
	s.mu.Lock()
	if s.epochs[list.JobID] != epoch {
		s.mu.Unlock()
		metrics.DiscardedResponses.WithLabelValues("applicants").Inc()
		s.logger.Debug("discarding response for released job", zap.String("job_id", list.JobID))
		return
	}
	s.lists[list.JobID] = list
	s.mu.Unlock()
	s.publish(list)
}

func (s *applicantStore) findLocked(jobID, userID string) (domain.JobApplicant, bool) {
	list := s.lists[jobID]
	if list == nil {
		return domain.JobApplicant{}, false
	}
	idx := slices.IndexFunc(list.Applicants, func(a domain.JobApplicant) bool { return a.UserID == userID })
	if idx < 0 {
		return domain.JobApplicant{}, false
	}
	return list.Applicants[idx], true
}

func (s *applicantStore) publish(list *domain.ApplicantList) {
	s.events.Publish(bus.Event{
		Kind:      bus.KindApplicantsChanged,
		UserID:    s.session.UserID,
		Timestamp: time.Now(),
		Payload:   bus.ApplicantsChanged{JobID: list.JobID, View: string(list.View), Count: len(list.Applicants)},
	})
}

// dedupe keeps the first applicant per user id, preserving order.
func dedupe(in []domain.JobApplicant) []domain.JobApplicant {
	seen := make(map[string]struct{}, len(in))
	out := make([]domain.JobApplicant, 0, len(in))
	for _, a := range in {
		if _, ok := seen[a.UserID]; ok {
			continue
		}
		seen[a.UserID] = struct{}{}
		out = append(out, a)
	}
	return out
}

func cloneList(l *domain.ApplicantList) *domain.ApplicantList {
	cp := *l
	cp.Applicants = slices.Clone(l.Applicants)
	if cp.Applicants == nil {
		cp.Applicants = []domain.JobApplicant{}
	}
	return &cp
}
