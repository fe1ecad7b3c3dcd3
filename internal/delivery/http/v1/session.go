package v1

import (
	"context"
	"time"

	"go-talent-session/internal/bus"
	"go-talent-session/internal/delivery/http/middleware"
	"go-talent-session/internal/domain"
	"go-talent-session/internal/usecase"
	"go-talent-session/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// storesFor resolves the caller's session stores. AuthMiddleware guarantees
// a session on protected routes.
func storesFor(c *gin.Context, registry *usecase.SessionRegistry) (*usecase.Stores, bool) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		_ = c.Error(apperror.Unauthorized("User not authenticated"))
		return nil, false
	}
	return registry.Get(session), true
}

// busNavigator hands click targets to the user's connected surfaces.
type busNavigator struct {
	events *bus.Bus
	userID string
}

func (n busNavigator) Navigate(_ context.Context, target domain.Target) error {
	n.events.Publish(bus.Event{
		Kind:      bus.KindNavigate,
		UserID:    n.userID,
		Timestamp: time.Now(),
		Payload:   target,
	})
	return nil
}
