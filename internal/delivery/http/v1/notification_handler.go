package v1

import (
	"net/http"
	"strconv"
	"time"

	"go-talent-session/internal/bus"
	"go-talent-session/internal/delivery/http/response"
	"go-talent-session/internal/delivery/ws"
	"go-talent-session/internal/domain"
	"go-talent-session/internal/taxonomy"
	"go-talent-session/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	registry *usecase.SessionRegistry
	events   *bus.Bus
	upgrader *websocket.Upgrader
	logger   *zap.Logger
}

func NewNotificationHandler(protected *gin.RouterGroup, registry *usecase.SessionRegistry, events *bus.Bus, upgrader *websocket.Upgrader, logger *zap.Logger) {
	handler := &NotificationHandler{registry: registry, events: events, upgrader: upgrader, logger: logger}

	notifications := protected.Group("/notifications")
	{
		notifications.GET("", handler.List)
		notifications.GET("/summary", handler.Summary)
		notifications.GET("/stream", handler.Stream)
		notifications.POST("/read-all", handler.MarkAllRead)
		notifications.POST("/:id/read", handler.MarkRead)
		notifications.POST("/:id/click", handler.Click)
		notifications.DELETE("/:id", handler.Delete)
	}
}

type ListResponse struct {
	Items  []domain.RenderedNotification `json:"items"`
	Total  int                           `json:"total"`
	Unread int                           `json:"unread"`
}

type SummaryResponse struct {
	Unread int                  `json:"unread"`
	Weekly domain.WeeklySummary `json:"weekly"`
}

type ClickResponse struct {
	Target domain.Target `json:"target"`
	Unread int           `json:"unread"`
}

// List godoc
// @Summary      Notification feed
// @Description  Rendered notifications matching filter. refresh=false serves the cache without reloading.
// @Tags         notifications
// @Produce      json
// @Param        filter   query     string  false  "all, unread, likes, comments, connections, jobs, posts, messages"
// @Param        refresh  query     bool    false  "Reload before returning (default true)"
// @Success      200      {object}  response.Response{data=ListResponse}
// @Failure      422      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /notifications [get]
// @Security     BearerAuth
func (h *NotificationHandler) List(c *gin.Context) {
	stores, ok := storesFor(c, h.registry)
	if !ok {
		return
	}
	feed := stores.Notifications

	if refresh, err := strconv.ParseBool(c.DefaultQuery("refresh", "true")); err != nil || refresh {
		if err := feed.Load(c.Request.Context()); err != nil {
			_ = c.Error(err)
			return
		}
	}

	items, err := feed.Filter(domain.FilterKind(c.DefaultQuery("filter", string(domain.FilterAll))))
	if err != nil {
		_ = c.Error(err)
		return
	}

	rendered := make([]domain.RenderedNotification, 0, len(items))
	for _, n := range items {
		rendered = append(rendered, domain.RenderedNotification{Notification: n, Rendering: taxonomy.Describe(n)})
	}
	response.Success(c, http.StatusOK, "Notifications retrieved", ListResponse{
		Items:  rendered,
		Total:  len(rendered),
		Unread: feed.UnreadCount(),
	})
}

// Summary godoc
// @Summary      Unread count and weekly summary
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  response.Response{data=SummaryResponse}
// @Router       /notifications/summary [get]
// @Security     BearerAuth
func (h *NotificationHandler) Summary(c *gin.Context) {
	stores, ok := storesFor(c, h.registry)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, "Notification summary", SummaryResponse{
		Unread: stores.Notifications.UnreadCount(),
		Weekly: stores.Notifications.WeeklySummary(time.Now()),
	})
}

// MarkRead godoc
// @Summary      Mark a notification read
// @Tags         notifications
// @Produce      json
// @Param        id   path      string  true  "Notification ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /notifications/{id}/read [post]
// @Security     BearerAuth
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	stores, ok := storesFor(c, h.registry)
	if !ok {
		return
	}
	if err := stores.Notifications.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notification marked as read", SummaryResponse{
		Unread: stores.Notifications.UnreadCount(),
	})
}

// MarkAllRead godoc
// @Summary      Mark every notification read
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /notifications/read-all [post]
// @Security     BearerAuth
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	stores, ok := storesFor(c, h.registry)
	if !ok {
		return
	}
	if err := stores.Notifications.MarkAllRead(c.Request.Context()); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "All notifications marked as read", nil)
}

// Click godoc
// @Summary      Open a notification
// @Description  Pushes the navigation target to connected streams and marks the notification read.
// @Tags         notifications
// @Produce      json
// @Param        id   path      string  true  "Notification ID"
// @Success      200  {object}  response.Response{data=ClickResponse}
// @Failure      404  {object}  response.Response
// @Router       /notifications/{id}/click [post]
// @Security     BearerAuth
func (h *NotificationHandler) Click(c *gin.Context) {
	stores, ok := storesFor(c, h.registry)
	if !ok {
		return
	}
	nav := busNavigator{events: h.events, userID: stores.Session.UserID}
	target, err := stores.Notifications.Click(c.Request.Context(), c.Param("id"), nav)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notification opened", ClickResponse{
		Target: target,
		Unread: stores.Notifications.UnreadCount(),
	})
}

// Delete godoc
// @Summary      Delete a notification
// @Tags         notifications
// @Produce      json
// @Param        id   path      string  true  "Notification ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /notifications/{id} [delete]
// @Security     BearerAuth
func (h *NotificationHandler) Delete(c *gin.Context) {
	stores, ok := storesFor(c, h.registry)
	if !ok {
		return
	}
	if err := stores.Notifications.Delete(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notification deleted", nil)
}

// Stream godoc
// @Summary      Live session events
// @Description  Websocket stream of unread counts, relationship and applicant changes, and navigation targets.
// @Tags         notifications
// @Param        token  query  string  false  "Session token when headers cannot be set"
// @Success      101
// @Router       /notifications/stream [get]
// @Security     BearerAuth
func (h *NotificationHandler) Stream(c *gin.Context) {
	stores, ok := storesFor(c, h.registry)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		h.logger.Debug("websocket upgrade failed", zap.Error(err))
		return
	}

	hello := ws.Message{
		Event: "session.ready",
		Data:  bus.UnreadChanged{Unread: stores.Notifications.UnreadCount()},
		At:    time.Now(),
	}
	ws.Serve(conn, h.events, stores.Session.UserID, []ws.Message{hello}, h.logger)
}
