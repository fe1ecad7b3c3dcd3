package bus

import "time"

// Event kinds published by the session stores.
const (
	KindFeedLoaded        = "notification.loaded"
	KindFeedRead          = "notification.read"
	KindFeedDeleted       = "notification.deleted"
	KindConnectionChanged = "relationship.changed"
	KindApplicantsChanged = "applicants.changed"
	KindNavigate          = "navigation.requested"
)

// Event is a state change owned by one user's session.
type Event struct {
	Kind      string
	UserID    string
	Timestamp time.Time
	Payload   any
}

// UnreadChanged is the payload of notification.* events.
type UnreadChanged struct {
	Unread int `json:"unread"`
}

// RelationshipChanged is the payload of relationship.* events.
type RelationshipChanged struct {
	Action  string `json:"action"`
	Subject string `json:"subject"`
}

// ApplicantsChanged is the payload of applicants.* events.
type ApplicantsChanged struct {
	JobID string `json:"jobId"`
	View  string `json:"view"`
	Count int    `json:"count"`
}
