package v1

import (
	"net/http"
	"strconv"

	"go-talent-session/internal/delivery/http/response"
	"go-talent-session/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RelationshipHandler struct {
	registry *usecase.SessionRegistry
}

func NewRelationshipHandler(protected *gin.RouterGroup, registry *usecase.SessionRegistry) {
	handler := &RelationshipHandler{registry: registry}

	rel := protected.Group("/relationships")
	{
		rel.GET("", handler.Snapshot)
		rel.POST("/refresh", handler.Refresh)
		rel.GET("/status/:userId", handler.Status)
		rel.POST("/requests/:id", handler.SendRequest)
		rel.POST("/requests/:id/accept", handler.Accept)
		rel.POST("/requests/:id/reject", handler.Reject)
		rel.DELETE("/connections/:userId", handler.RemoveConnection)
	}
}

// Snapshot godoc
// @Summary      Relationship snapshot
// @Description  Cached connections, pending incoming requests and suggestions. refresh=true reloads from the backend first.
// @Tags         relationships
// @Produce      json
// @Param        refresh  query     bool  false  "Reload before returning"
// @Success      200      {object}  response.Response{data=domain.RelationshipSnapshot}
// @Failure      401      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /relationships [get]
// @Security     BearerAuth
func (h *RelationshipHandler) Snapshot(c *gin.Context) {
	stores, ok := storesFor(c, h.registry)
	if !ok {
		return
	}
	if refresh, _ := strconv.ParseBool(c.Query("refresh")); refresh {
		if err := stores.Relationships.Refresh(c.Request.Context()); err != nil {
			_ = c.Error(err)
			return
		}
	}
	response.Success(c, http.StatusOK, "Relationships retrieved", stores.Relationships.Snapshot())
}

// Refresh godoc
// @Summary      Reload relationships
// @Tags         relationships
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.RelationshipSnapshot}
// @Failure      502  {object}  response.Response
// @Router       /relationships/refresh [post]
// @Security     BearerAuth
func (h *RelationshipHandler) Refresh(c *gin.Context) {
	stores, ok := storesFor(c, h.registry)
	if !ok {
		return
	}
	if err := stores.Relationships.Refresh(c.Request.Context()); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Relationships refreshed", stores.Relationships.Snapshot())
}

// Status godoc
// @Summary      Relationship with a user
// @Tags         relationships
// @Produce      json
// @Param        userId  path      string  true  "Other user ID"
// @Success      200     {object}  response.Response{data=domain.RelationshipState}
// @Router       /relationships/status/{userId} [get]
// @Security     BearerAuth
func (h *RelationshipHandler) Status(c *gin.Context) {
	stores, ok := storesFor(c, h.registry)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, "Relationship status", stores.Relationships.StatusWith(c.Param("userId")))
}

// SendRequest godoc
// @Summary      Send a connection request
// @Tags         relationships
// @Produce      json
// @Param        id      path      string  true  "Target user ID"
// @Success      201     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      502     {object}  response.Response
// @Router       /relationships/requests/{id} [post]
// @Security     BearerAuth
func (h *RelationshipHandler) SendRequest(c *gin.Context) {
	stores, ok := storesFor(c, h.registry)
	if !ok {
		return
	}
	if err := stores.Relationships.SendRequest(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Connection request sent", nil)
}

// Accept godoc
// @Summary      Accept a connection request
// @Tags         relationships
// @Produce      json
// @Param        id      path      string  true  "Request ID"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Router       /relationships/requests/{id}/accept [post]
// @Security     BearerAuth
func (h *RelationshipHandler) Accept(c *gin.Context) {
	stores, ok := storesFor(c, h.registry)
	if !ok {
		return
	}
	if err := stores.Relationships.Accept(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Connection request accepted", nil)
}

// Reject godoc
// @Summary      Reject a connection request
// @Tags         relationships
// @Produce      json
// @Param        id      path      string  true  "Request ID"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Router       /relationships/requests/{id}/reject [post]
// @Security     BearerAuth
func (h *RelationshipHandler) Reject(c *gin.Context) {
	stores, ok := storesFor(c, h.registry)
	if !ok {
		return
	}
	if err := stores.Relationships.Reject(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Connection request rejected", nil)
}

// RemoveConnection godoc
// @Summary      Remove a connection
// @Tags         relationships
// @Produce      json
// @Param        userId  path      string  true  "Connected user ID"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /relationships/connections/{userId} [delete]
// @Security     BearerAuth
func (h *RelationshipHandler) RemoveConnection(c *gin.Context) {
	stores, ok := storesFor(c, h.registry)
	if !ok {
		return
	}
	if err := stores.Relationships.RemoveConnection(c.Request.Context(), c.Param("userId")); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Connection removed", nil)
}
