package usecase

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"go-talent-session/internal/bus"
	"go-talent-session/internal/domain"
	"go-talent-session/internal/taxonomy"
	"go-talent-session/pkg/apperror"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const summaryWindow = 7 * 24 * time.Hour

type notificationFeed struct {
	session domain.Session
	gateway domain.NotificationGateway
	events  *bus.Bus
	logger  *zap.Logger
	flight  singleflight.Group

	mu    sync.Mutex
	items []domain.Notification
}

// NewNotificationFeed creates the notification controller for one session.
func NewNotificationFeed(session domain.Session, gateway domain.NotificationGateway, events *bus.Bus, logger *zap.Logger) domain.NotificationFeed {
	return &notificationFeed{
		session: session,
		gateway: gateway,
		events:  events,
		logger:  logger.With(zap.String("store", "notifications"), zap.String("user_id", session.UserID)),
	}
}

func (f *notificationFeed) Load(ctx context.Context) error {
	_, err, _ := f.flight.Do("load", func() (any, error) {
		items, err := f.gateway.List(ctx)
		if err != nil {
			return nil, err
		}
		f.mu.Lock()
		f.items = slices.Clone(items)
		f.mu.Unlock()
		return nil, nil
	})
	if err != nil {
		return err
	}
	f.publish(bus.KindFeedLoaded)
	return nil
}

func (f *notificationFeed) Notifications() []domain.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return nonNil(slices.Clone(f.items))
}

// UnreadCount is recomputed from the cached list on every call.
func (f *notificationFeed) UnreadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unreadLocked()
}

func (f *notificationFeed) unreadLocked() int {
	n := 0
	for _, item := range f.items {
		if !item.IsRead {
			n++
		}
	}
	return n
}

// WeeklySummary counts notifications created in the seven days before now.
func (f *notificationFeed) WeeklySummary(now time.Time) domain.WeeklySummary {
	cutoff := now.Add(-summaryWindow)

	f.mu.Lock()
	defer f.mu.Unlock()

	var sum domain.WeeklySummary
	for _, item := range f.items {
		if item.CreatedAt.Before(cutoff) || item.CreatedAt.After(now) {
			continue
		}
		sum.Total++
		bucket, ok := taxonomy.Bucket(item.Type)
		if !ok {
			continue
		}
		switch bucket {
		case domain.FilterLikes:
			sum.Likes++
		case domain.FilterComments:
			sum.Comments++
		case domain.FilterConnections:
			sum.Connections++
		case domain.FilterJobs:
			sum.Jobs++
		case domain.FilterPosts:
			sum.Posts++
		case domain.FilterMessages:
			sum.Messages++
		}
	}
	return sum
}

func (f *notificationFeed) Filter(kind domain.FilterKind) ([]domain.Notification, error) {
	var keep func(domain.Notification) bool
	switch {
	case kind == "" || kind == domain.FilterAll:
		keep = func(domain.Notification) bool { return true }
	case kind == domain.FilterUnread:
		keep = func(n domain.Notification) bool { return !n.IsRead }
	case taxonomy.IsDomainFilter(kind):
		keep = func(n domain.Notification) bool {
			b, ok := taxonomy.Bucket(n.Type)
			return ok && b == kind
		}
	default:
		return nil, apperror.Validation("Unknown notification filter: "+string(kind), nil)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Notification, 0, len(f.items))
	for _, item := range f.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

// MarkRead is a no-op for notifications that are already read.
func (f *notificationFeed) MarkRead(ctx context.Context, id string) error {
	f.mu.Lock()
	idx := f.indexLocked(id)
	if idx < 0 {
		f.mu.Unlock()
		return apperror.NotFound("Notification not found")
	}
	if f.items[idx].IsRead {
		f.mu.Unlock()
		return nil
	}
	f.mu.Unlock()

	_, err, _ := f.flight.Do("read:"+id, func() (any, error) {
		return nil, f.gateway.MarkRead(ctx, id)
	})
	if err != nil {
		return err
	}

	f.mu.Lock()
	if idx := f.indexLocked(id); idx >= 0 {
		f.items[idx].IsRead = true
	}
	f.mu.Unlock()

	f.publish(bus.KindFeedRead)
	return nil
}

func (f *notificationFeed) MarkAllRead(ctx context.Context) error {
	if f.UnreadCount() == 0 {
		return nil
	}

	_, err, _ := f.flight.Do("read-all", func() (any, error) {
		return nil, f.gateway.MarkAllRead(ctx)
	})
	if err != nil {
		return err
	}

	f.mu.Lock()
	for i := range f.items {
		f.items[i].IsRead = true
	}
	f.mu.Unlock()

	f.publish(bus.KindFeedRead)
	return nil
}

// Click navigates to the notification's target, if it has one, and marks it
// read if it was unread. Both effects are attempted; their errors are joined.
func (f *notificationFeed) Click(ctx context.Context, id string, nav domain.Navigator) (domain.Target, error) {
	f.mu.Lock()
	idx := f.indexLocked(id)
	if idx < 0 {
		f.mu.Unlock()
		return domain.Target{Kind: domain.TargetNone}, apperror.NotFound("Notification not found")
	}
	n := f.items[idx]
	f.mu.Unlock()

	target := taxonomy.TargetFor(n)

	var navErr, readErr error
	if target.Navigable() && nav != nil {
		if navErr = nav.Navigate(ctx, target); navErr != nil {
			f.logger.Warn("notification navigation failed", zap.String("notification_id", id), zap.Error(navErr))
		}
	}
	if !n.IsRead {
		readErr = f.MarkRead(ctx, id)
	}
	return target, errors.Join(navErr, readErr)
}

func (f *notificationFeed) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	if f.indexLocked(id) < 0 {
		f.mu.Unlock()
		return apperror.NotFound("Notification not found")
	}
	f.mu.Unlock()

	_, err, _ := f.flight.Do("delete:"+id, func() (any, error) {
		return nil, f.gateway.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.items = slices.DeleteFunc(f.items, func(n domain.Notification) bool { return n.ID == id })
	f.mu.Unlock()

	f.publish(bus.KindFeedDeleted)
	return nil
}

func (f *notificationFeed) indexLocked(id string) int {
	return slices.IndexFunc(f.items, func(n domain.Notification) bool { return n.ID == id })
}

func (f *notificationFeed) publish(kind string) {
	f.events.Publish(bus.Event{
		Kind:      kind,
		UserID:    f.session.UserID,
		Timestamp: time.Now(),
		Payload:   bus.UnreadChanged{Unread: f.UnreadCount()},
	})
}
