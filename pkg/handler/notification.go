package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"dashboard_back/pkg/middleware"
	"dashboard_back/pkg/repository"
)

func (h *Handler) GetNotifications(c *gin.Context) {
	userID, ok := middleware.UserIdFromContext(c)
	if !ok {
		newErrorResponse(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	notifications, err := h.service.Notification.GetNotifications(userID)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	wrapOkJSON(c, map[string]interface{}{
		"notifications": notifications,
	})
}

func (h *Handler) MarkNotificationRead(c *gin.Context) {
	userID, ok := middleware.UserIdFromContext(c)
	if !ok {
		newErrorResponse(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	notificationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid notification id")
		return
	}

	if err := h.service.Notification.MarkNotificationRead(userID, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "notification not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	wrapOkJSON(c, map[string]interface{}{
		"status": "ok",
	})
}
