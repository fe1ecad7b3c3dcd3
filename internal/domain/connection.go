package domain

import (
	"context"
	"time"
)

type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	ConnectionStatusRejected ConnectionStatus = "rejected"
)

// ConnectionRequest is a proposal from Requester to TargetUserID.
type ConnectionRequest struct {
	ID           string           `json:"_id"`
	Requester    UserSummary      `json:"sender"`
	TargetUserID string           `json:"recipient"`
	Status       ConnectionStatus `json:"status"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// Connection is the session user's view of a confirmed relationship: the other user.
type Connection struct {
	User        UserSummary `json:"user"`
	ConnectedAt time.Time   `json:"connectedAt"`
}

// RelationshipStatus describes how the session user relates to another user.
type RelationshipStatus string

const (
	RelationshipConnected    RelationshipStatus = "connected"
	RelationshipPending      RelationshipStatus = "pending"
	RelationshipReceived     RelationshipStatus = "received"
	RelationshipNotConnected RelationshipStatus = "not_connected"
	RelationshipSelf         RelationshipStatus = "self"
)

// RelationshipState is the answer to "what is my relationship with this user".
// RequestID is set only for RelationshipReceived.
type RelationshipState struct {
	Status    RelationshipStatus `json:"status"`
	RequestID string             `json:"requestId,omitempty"`
}

// RelationshipSnapshot is a copy of the three relationship sets.
type RelationshipSnapshot struct {
	Connections     []Connection        `json:"connections"`
	PendingIncoming []ConnectionRequest `json:"pendingIncoming"`
	Suggestions     []UserSummary       `json:"suggestions"`
}

// ConnectionGateway is the backend surface for the relationship graph.
type ConnectionGateway interface {
	SendRequest(ctx context.Context, targetUserID string) error
	ListPendingIncoming(ctx context.Context) ([]ConnectionRequest, error)
	ListConnections(ctx context.Context) ([]Connection, error)
	ListSuggestions(ctx context.Context) ([]UserSummary, error)
	Accept(ctx context.Context, requestID string) error
	Reject(ctx context.Context, requestID string) error
	Remove(ctx context.Context, userID string) error
}

// RelationshipStore is the session-scoped cache of the relationship graph.
type RelationshipStore interface {
	Refresh(ctx context.Context) error
	SendRequest(ctx context.Context, targetUserID string) error
	Accept(ctx context.Context, requestID string) error
	Reject(ctx context.Context, requestID string) error
	RemoveConnection(ctx context.Context, userID string) error
	StatusWith(userID string) RelationshipState
	Snapshot() RelationshipSnapshot
}
