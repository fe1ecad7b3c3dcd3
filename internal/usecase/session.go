package usecase

import (
	"context"
	"sync"
	"time"

	"go-talent-session/internal/bus"
	"go-talent-session/internal/domain"
	"go-talent-session/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Gateways bundles the backend surfaces bound to one session's credentials.
type Gateways struct {
	Connections   domain.ConnectionGateway
	Jobs          domain.JobGateway
	Notifications domain.NotificationGateway
}

// GatewayFactory binds backend gateways to a session.
type GatewayFactory func(domain.Session) Gateways

// Stores is everything cached on behalf of one session.
type Stores struct {
	Session       domain.Session
	Relationships domain.RelationshipStore
	Applicants    domain.ApplicantStore
	Notifications domain.NotificationFeed
}

// SessionRegistry owns the stores of every active session. A user signed in
// on two devices holds two independent sets of stores.
type SessionRegistry struct {
	factory  GatewayFactory
	validate *validator.Validate
	events   *bus.Bus
	logger   *zap.Logger

	mu       sync.Mutex
	sessions map[sessionKey]*sessionEntry
}

type sessionKey struct {
	userID string
	token  string
}

type sessionEntry struct {
	stores   *Stores
	lastSeen time.Time
}

func keyOf(s domain.Session) sessionKey {
	return sessionKey{userID: s.UserID, token: s.Token}
}

func NewSessionRegistry(factory GatewayFactory, validate *validator.Validate, events *bus.Bus, logger *zap.Logger) *SessionRegistry {
	return &SessionRegistry{
		factory:  factory,
		validate: validate,
		events:   events,
		logger:   logger,
		sessions: make(map[sessionKey]*sessionEntry),
	}
}

// Get returns the stores of s, creating them on first use.
func (r *SessionRegistry) Get(s domain.Session) *Stores {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := keyOf(s)
	if existing, ok := r.sessions[key]; ok {
		existing.lastSeen = time.Now()
		return existing.stores
	}

	gw := r.factory(s)
	stores := &Stores{
		Session:       s,
		Relationships: NewRelationshipStore(s, gw.Connections, r.events, r.logger),
		Applicants:    NewApplicantStore(s, gw.Jobs, r.validate, r.events, r.logger),
		Notifications: NewNotificationFeed(s, gw.Notifications, r.events, r.logger),
	}
	r.sessions[key] = &sessionEntry{stores: stores, lastSeen: time.Now()}
	metrics.ActiveSessions.Set(float64(len(r.sessions)))
	return stores
}

// End forgets everything cached for s. Other sessions of the same user
// are untouched.
func (r *SessionRegistry) End(s domain.Session) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := keyOf(s)
	if _, ok := r.sessions[key]; !ok {
		return false
	}
	delete(r.sessions, key)
	metrics.ActiveSessions.Set(float64(len(r.sessions)))
	return true
}

// Sweep drops sessions not used for idle and returns how many went.
func (r *SessionRegistry) Sweep(idle time.Duration) int {
	cutoff := time.Now().Add(-idle)

	r.mu.Lock()
	defer r.mu.Unlock()
	dropped := 0
	for key, entry := range r.sessions {
		if !entry.lastSeen.After(cutoff) {
			delete(r.sessions, key)
			dropped++
		}
	}
	if dropped > 0 {
		metrics.ActiveSessions.Set(float64(len(r.sessions)))
		r.logger.Debug("idle sessions dropped", zap.Int("count", dropped))
	}
	return dropped
}

// StartSweeper runs Sweep every minute until ctx ends. Rotated tokens leave
// their old session behind; this is what reclaims it.
func (r *SessionRegistry) StartSweeper(ctx context.Context, idle time.Duration) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.Sweep(idle)
			}
		}
	}()
}

func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
