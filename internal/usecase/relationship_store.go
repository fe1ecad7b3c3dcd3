package usecase

import (
	"context"
	"slices"
	"sync"
	"time"

	"go-talent-session/internal/bus"
	"go-talent-session/internal/domain"
	"go-talent-session/pkg/apperror"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	decisionAccept = "accept"
	decisionReject = "reject"
)

type relationshipStore struct {
	session domain.Session
	gateway domain.ConnectionGateway
	events  *bus.Bus
	logger  *zap.Logger
	flight  singleflight.Group

	mu          sync.Mutex
	connections []domain.Connection
	pending     []domain.ConnectionRequest
	suggestions []domain.UserSummary
	outgoing    map[string]struct{}
	deciding    map[string]*decisionCall
}

// decisionCall is an accept or reject in flight for one request.
type decisionCall struct {
	decision string
	done     chan struct{}
	err      error
}

// NewRelationshipStore creates the relationship cache for one session.
func NewRelationshipStore(session domain.Session, gateway domain.ConnectionGateway, events *bus.Bus, logger *zap.Logger) domain.RelationshipStore {
	return &relationshipStore{
		session:  session,
		gateway:  gateway,
		events:   events,
		logger:   logger.With(zap.String("store", "relationships"), zap.String("user_id", session.UserID)),
		outgoing: make(map[string]struct{}),
		deciding: make(map[string]*decisionCall),
	}
}

// Refresh reloads connections, pending requests and suggestions together.
// Either all three sets are replaced or none is.
func (s *relationshipStore) Refresh(ctx context.Context) error {
	_, err, _ := s.flight.Do("refresh", func() (any, error) {
		var (
			connections []domain.Connection
			pending     []domain.ConnectionRequest
			suggestions []domain.UserSummary
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			connections, err = s.gateway.ListConnections(gctx)
			return err
		})
		g.Go(func() (err error) {
			pending, err = s.gateway.ListPendingIncoming(gctx)
			return err
		})
		g.Go(func() (err error) {
			suggestions, err = s.gateway.ListSuggestions(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.connections = slices.Clone(connections)
		s.pending = onlyPending(pending)
		s.suggestions = slices.Clone(suggestions)
		// A request that was answered either way leaves the user connected
		// or suggested again; neither is pending anymore.
		for _, c := range connections {
			delete(s.outgoing, c.User.ID)
		}
		for _, u := range suggestions {
			delete(s.outgoing, u.ID)
		}
		s.mu.Unlock()
		return nil, nil
	})
	if err != nil {
		return err
	}
	s.publish("refreshed", "")
	return nil
}

// SendRequest proposes a connection to targetUserID. The target leaves the
// suggestion list immediately and goes back to its old slot if the backend
// refuses.
func (s *relationshipStore) SendRequest(ctx context.Context, targetUserID string) error {
	if targetUserID == "" {
		return apperror.InvalidTarget("Target user is required")
	}
	if targetUserID == s.session.UserID {
		return apperror.InvalidTarget("You cannot connect with yourself")
	}

	// 1. Guard against existing relationships and pull the suggestion
	s.mu.Lock()
	switch s.statusLocked(targetUserID).Status {
	case domain.RelationshipConnected:
		s.mu.Unlock()
		return apperror.InvalidTarget("You are already connected with this user")
	case domain.RelationshipPending, domain.RelationshipReceived:
		s.mu.Unlock()
		return apperror.InvalidTarget("A connection request with this user is already pending")
	}
	idx := slices.IndexFunc(s.suggestions, func(u domain.UserSummary) bool { return u.ID == targetUserID })
	var removed domain.UserSummary
	if idx >= 0 {
		removed = s.suggestions[idx]
		s.suggestions = slices.Delete(s.suggestions, idx, idx+1)
	}
	s.mu.Unlock()

	// 2. Send, collapsing concurrent sends to the same target
	_, err, _ := s.flight.Do("send:"+targetUserID, func() (any, error) {
		return nil, s.gateway.SendRequest(ctx, targetUserID)
	})

	// 3. Commit or roll back
	s.mu.Lock()
	if err != nil {
		if idx >= 0 {
			at := min(idx, len(s.suggestions))
			s.suggestions = slices.Insert(s.suggestions, at, removed)
		}
		s.mu.Unlock()
		return err
	}
	s.outgoing[targetUserID] = struct{}{}
	s.mu.Unlock()

	s.publish("request_sent", targetUserID)
	return nil
}

func (s *relationshipStore) Accept(ctx context.Context, requestID string) error {
	return s.decide(ctx, requestID, decisionAccept, s.gateway.Accept)
}

func (s *relationshipStore) Reject(ctx context.Context, requestID string) error {
	return s.decide(ctx, requestID, decisionReject, s.gateway.Reject)
}

// decide runs one terminal decision on a pending incoming request. Callers
// repeating a decision in flight share its result; the opposite decision is
// refused locally. The request leaves the pending set under the same lock
// that ends the call, so a late duplicate finds it gone.
func (s *relationshipStore) decide(ctx context.Context, requestID, decision string, call func(context.Context, string) error) error {
	s.mu.Lock()
	if running, busy := s.deciding[requestID]; busy {
		s.mu.Unlock()
		if running.decision != decision {
			return apperror.InvalidTransition("Connection request is already being " + running.decision + "ed")
		}
		select {
		case <-running.done:
			return running.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if slices.IndexFunc(s.pending, func(r domain.ConnectionRequest) bool { return r.ID == requestID }) < 0 {
		s.mu.Unlock()
		s.reloadPending(ctx)
		return apperror.NotFound("Connection request not found")
	}
	dc := &decisionCall{decision: decision, done: make(chan struct{})}
	s.deciding[requestID] = dc
	s.mu.Unlock()

	err := call(ctx, requestID)

	s.mu.Lock()
	delete(s.deciding, requestID)
	dc.err = err
	close(dc.done)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	var subject string
	if idx := slices.IndexFunc(s.pending, func(r domain.ConnectionRequest) bool { return r.ID == requestID }); idx >= 0 {
		req := s.pending[idx]
		subject = req.Requester.ID
		s.pending = slices.Delete(s.pending, idx, idx+1)
		if decision == decisionAccept && !s.connectedLocked(subject) {
			s.connections = append(s.connections, domain.Connection{User: req.Requester, ConnectedAt: time.Now()})
			s.suggestions = slices.DeleteFunc(s.suggestions, func(u domain.UserSummary) bool { return u.ID == subject })
		}
	}
	s.mu.Unlock()

	s.publish(decision+"ed", subject)
	return nil
}

// reloadPending replaces the pending set after a stale lookup so a retry
// works against fresh data. Failures only get logged.
func (s *relationshipStore) reloadPending(ctx context.Context) {
	_, err, _ := s.flight.Do("pending", func() (any, error) {
		pending, err := s.gateway.ListPendingIncoming(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.pending = onlyPending(pending)
		s.mu.Unlock()
		return nil, nil
	})
	if err != nil {
		s.logger.Warn("failed to reload pending requests", zap.Error(err))
	}
}

func (s *relationshipStore) RemoveConnection(ctx context.Context, userID string) error {
	s.mu.Lock()
	if !s.connectedLocked(userID) {
		s.mu.Unlock()
		return apperror.NotFound("Connection not found")
	}
	s.mu.Unlock()

	_, err, _ := s.flight.Do("remove:"+userID, func() (any, error) {
		return nil, s.gateway.Remove(ctx, userID)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.connections = slices.DeleteFunc(s.connections, func(c domain.Connection) bool { return c.User.ID == userID })
	s.mu.Unlock()

	s.publish("removed", userID)
	return nil
}

func (s *relationshipStore) StatusWith(userID string) domain.RelationshipState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked(userID)
}

func (s *relationshipStore) statusLocked(userID string) domain.RelationshipState {
	if userID == s.session.UserID {
		return domain.RelationshipState{Status: domain.RelationshipSelf}
	}
	if s.connectedLocked(userID) {
		return domain.RelationshipState{Status: domain.RelationshipConnected}
	}
	for _, r := range s.pending {
		if r.Requester.ID == userID {
			return domain.RelationshipState{Status: domain.RelationshipReceived, RequestID: r.ID}
		}
	}
	if _, ok := s.outgoing[userID]; ok {
		return domain.RelationshipState{Status: domain.RelationshipPending}
	}
	return domain.RelationshipState{Status: domain.RelationshipNotConnected}
}

func (s *relationshipStore) connectedLocked(userID string) bool {
	return slices.ContainsFunc(s.connections, func(c domain.Connection) bool { return c.User.ID == userID })
}

func (s *relationshipStore) Snapshot() domain.RelationshipSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.RelationshipSnapshot{
		Connections:     nonNil(slices.Clone(s.connections)),
		PendingIncoming: nonNil(slices.Clone(s.pending)),
		Suggestions:     nonNil(slices.Clone(s.suggestions)),
	}
}

func (s *relationshipStore) publish(action, subject string) {
	s.events.Publish(bus.Event{
		Kind:      bus.KindConnectionChanged,
		UserID:    s.session.UserID,
		Timestamp: time.Now(),
		Payload:   bus.RelationshipChanged{Action: action, Subject: subject},
	})
}

// onlyPending copies the requests the backend has not settled yet.
func onlyPending(in []domain.ConnectionRequest) []domain.ConnectionRequest {
	return slices.DeleteFunc(slices.Clone(in), func(r domain.ConnectionRequest) bool {
		return r.Status != "" && r.Status != domain.ConnectionStatusPending
	})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
