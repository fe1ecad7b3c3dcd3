package v1

import (
	"net/http"

	"go-talent-session/internal/delivery/http/middleware"
	"go-talent-session/internal/delivery/http/response"
	"go-talent-session/internal/usecase"
	"go-talent-session/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	registry *usecase.SessionRegistry
}

func NewSessionHandler(protected *gin.RouterGroup, registry *usecase.SessionRegistry) {
	handler := &SessionHandler{registry: registry}
	protected.DELETE("/session", handler.End)
}

// End godoc
// @Summary      End the session
// @Description  Forgets the relationships, applicant lists and notifications cached for the calling session. Other sessions of the same user are kept.
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /session [delete]
// @Security     BearerAuth
func (h *SessionHandler) End(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		_ = c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}
	h.registry.End(session)
	response.Success(c, http.StatusOK, "Session ended", nil)
}
