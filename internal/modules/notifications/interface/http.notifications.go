package transport

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"mediBookNotify/internal/modules/notifications/application/usecase"
	"mediBookNotify/internal/modules/notifications/domain"
	"mediBookNotify/internal/shared/auth"
)

// NotificationHandler adapts the REST surface onto the notification use cases.
// The authenticated user comes from the bearer middleware; every operation is
// scoped to it.
type NotificationHandler struct {
	useCase *usecase.NotificationUseCase
}

func NewNotificationHandler(useCase *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{useCase: useCase}
}

// Register mounts the notification routes on the given group.
func (h *NotificationHandler) Register(g *echo.Group) {
	g.GET("", h.list)
	g.GET("/unread", h.listUnread)
	g.PATCH("/read-all", h.markAllAsRead)
	g.PATCH("/:id/read", h.markAsRead)
	g.DELETE("/:id", h.delete)
}

func (h *NotificationHandler) list(c echo.Context) error {
	notifications, err := h.useCase.ListByUser(c.Request().Context(), auth.UserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "unable to list notifications")
	}
	return c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) listUnread(c echo.Context) error {
	notifications, err := h.useCase.ListUnreadByUser(c.Request().Context(), auth.UserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "unable to list notifications")
	}
	return c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) markAsRead(c echo.Context) error {
	notification, err := h.useCase.MarkAsRead(c.Request().Context(), c.Param("id"), auth.UserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "notification not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "unable to update notification")
	}
	return c.JSON(http.StatusOK, notification)
}

func (h *NotificationHandler) markAllAsRead(c echo.Context) error {
	count, err := h.useCase.MarkAllAsRead(c.Request().Context(), auth.UserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "unable to update notifications")
	}
	return c.JSON(http.StatusOK, map[string]int64{"count": count})
}

func (h *NotificationHandler) delete(c echo.Context) error {
	err := h.useCase.Delete(c.Request().Context(), c.Param("id"), auth.UserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "notification not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "unable to delete notification")
	}
	return c.NoContent(http.StatusNoContent)
}

// Health reports liveness for load balancer probes.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "notification-service"})
}
