package usecase_test

import (
	"context"
	"time"

	"go-talent-session/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Gateways
type MockConnectionGateway struct {
	mock.Mock
}

func (m *MockConnectionGateway) SendRequest(ctx context.Context, targetUserID string) error {
	return m.Called(ctx, targetUserID).Error(0)
}

func (m *MockConnectionGateway) ListPendingIncoming(ctx context.Context) ([]domain.ConnectionRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConnectionRequest), args.Error(1)
}

func (m *MockConnectionGateway) ListConnections(ctx context.Context) ([]domain.Connection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Connection), args.Error(1)
}

func (m *MockConnectionGateway) ListSuggestions(ctx context.Context) ([]domain.UserSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserSummary), args.Error(1)
}

func (m *MockConnectionGateway) Accept(ctx context.Context, requestID string) error {
	return m.Called(ctx, requestID).Error(0)
}

func (m *MockConnectionGateway) Reject(ctx context.Context, requestID string) error {
	return m.Called(ctx, requestID).Error(0)
}

func (m *MockConnectionGateway) Remove(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type MockJobGateway struct {
	mock.Mock
}

func (m *MockJobGateway) CreateJob(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobGateway) GetJob(ctx context.Context, jobID string) (*domain.Job, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobGateway) CloseJob(ctx context.Context, jobID string) error {
	return m.Called(ctx, jobID).Error(0)
}

func (m *MockJobGateway) Apply(ctx context.Context, jobID string, app domain.Application) error {
	return m.Called(ctx, jobID, app).Error(0)
}

func (m *MockJobGateway) ListApplicants(ctx context.Context, jobID string) ([]domain.JobApplicant, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplicant), args.Error(1)
}

func (m *MockJobGateway) UpdateApplicantStatus(ctx context.Context, jobID, userID string, status domain.ApplicantStatus) error {
	return m.Called(ctx, jobID, userID, status).Error(0)
}

func (m *MockJobGateway) Rescore(ctx context.Context, jobID string) (int, error) {
	args := m.Called(ctx, jobID)
	return args.Int(0), args.Error(1)
}

func (m *MockJobGateway) TopCandidates(ctx context.Context, jobID string, limit int) ([]domain.JobApplicant, error) {
	args := m.Called(ctx, jobID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplicant), args.Error(1)
}

type MockNotificationGateway struct {
	mock.Mock
}

func (m *MockNotificationGateway) List(ctx context.Context) ([]domain.Notification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationGateway) MarkRead(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockNotificationGateway) MarkAllRead(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockNotificationGateway) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockNavigator struct {
	mock.Mock
}

func (m *MockNavigator) Navigate(ctx context.Context, target domain.Target) error {
	return m.Called(ctx, target).Error(0)
}

func user(id, first, last string) domain.UserSummary {
	return domain.UserSummary{ID: id, FirstName: first, LastName: last}
}

func score(v int) *int { return &v }

func daysAgo(now time.Time, d int) time.Time {
	return now.Add(-time.Duration(d) * 24 * time.Hour)
}
