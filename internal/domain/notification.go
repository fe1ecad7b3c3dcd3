package domain

import (
	"context"
	"time"
)

type NotificationType string

const (
	NotificationReaction           NotificationType = "reaction"
	NotificationComment            NotificationType = "comment"
	NotificationReply              NotificationType = "reply"
	NotificationConnectionRequest  NotificationType = "connection_request"
	NotificationConnectionAccepted NotificationType = "connection_accepted"
	NotificationJobOffer           NotificationType = "job_offer"
	NotificationJobApplication     NotificationType = "job_application"
	NotificationCompanyPost        NotificationType = "company_post"
	NotificationNewPost            NotificationType = "new_post"
	NotificationMessage            NotificationType = "MESSAGE"
)

// Notification is one entry of the session user's feed. IsRead only ever
// moves from false to true.
type Notification struct {
	ID        string           `json:"_id"`
	Type      NotificationType `json:"type"`
	Sender    Ref              `json:"sender"`
	Entity    *Ref             `json:"entity,omitempty"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
}

// TargetKind names the surface a notification click navigates to.
type TargetKind string

const (
	TargetNone         TargetKind = "none"
	TargetFeedPost     TargetKind = "feed_post"
	TargetProfile      TargetKind = "profile"
	TargetJob          TargetKind = "job"
	TargetApplicants   TargetKind = "applicants"
	TargetConversation TargetKind = "conversation"
)

// Target is a resolved navigation destination. Kind TargetNone means the
// click only marks the notification read.
type Target struct {
	Kind TargetKind `json:"kind"`
	ID   string     `json:"id,omitempty"`
	Path string     `json:"path,omitempty"`
}

// Navigable reports whether the target leads anywhere.
func (t Target) Navigable() bool {
	return t.Kind != TargetNone && t.ID != ""
}

// Rendering is what a surface needs to draw and route one notification.
type Rendering struct {
	Message string `json:"message"`
	Icon    string `json:"icon"`
	Color   string `json:"color"`
	Target  Target `json:"target"`
}

// RenderedNotification pairs a notification with its rendering.
type RenderedNotification struct {
	Notification
	Rendering Rendering `json:"rendering"`
}

// FilterKind selects a subset of the cached feed.
type FilterKind string

const (
	FilterAll         FilterKind = "all"
	FilterUnread      FilterKind = "unread"
	FilterLikes       FilterKind = "likes"
	FilterComments    FilterKind = "comments"
	FilterConnections FilterKind = "connections"
	FilterJobs        FilterKind = "jobs"
	FilterPosts       FilterKind = "posts"
	FilterMessages    FilterKind = "messages"
)

// WeeklySummary counts the trailing seven days of activity per bucket.
type WeeklySummary struct {
	Likes       int `json:"likes"`
	Comments    int `json:"comments"`
	Connections int `json:"connections"`
	Jobs        int `json:"jobs"`
	Posts       int `json:"posts"`
	Messages    int `json:"messages"`
	Total       int `json:"total"`
}

// Navigator performs the navigation half of a notification click.
type Navigator interface {
	Navigate(ctx context.Context, target Target) error
}

// NotificationGateway is the backend surface for the notification feed.
type NotificationGateway interface {
	List(ctx context.Context) ([]Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

// NotificationFeed is the session-scoped notification controller.
type NotificationFeed interface {
	Load(ctx context.Context) error
	Notifications() []Notification
	UnreadCount() int
	WeeklySummary(now time.Time) WeeklySummary
	Filter(kind FilterKind) ([]Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Click(ctx context.Context, id string, nav Navigator) (Target, error)
	Delete(ctx context.Context, id string) error
}
