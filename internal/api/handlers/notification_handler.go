package handlers

import (
	"errors"
	"net/http"

	"github.com/consite-dev/consite-go/internal/application"
	"github.com/consite-dev/consite-go/internal/config"
	"github.com/consite-dev/consite-go/internal/domain/notification"
	"github.com/consite-dev/consite-go/pkg/response"
	"github.com/consite-dev/consite-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	service *application.NotificationService
	cfg     *config.Config
}

func NewNotificationHandler(service *application.NotificationService, cfg *config.Config) *NotificationHandler {
	return &NotificationHandler{service: service, cfg: cfg}
}

func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	callerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	page, limit := utils.ParsePaging(c, 20)
	q := notification.ListQuery{
		Page:       page,
		Limit:      limit,
		UnreadOnly: c.Query("unreadOnly") == "true",
	}

	result, err := h.service.List(callerID, q)
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":        result.Items,
		"pagination":  response.NewPagination(page, limit, result.Total),
		"unreadCount": result.UnreadCount,
	})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid notification ID"})
		return
	}

	callerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.service.MarkRead(id, callerID); err != nil {
		if errors.Is(err, application.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Notification not found"})
			return
		}
		internalError(c, h.cfg, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Notification marked as read"})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	callerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.service.MarkAllRead(callerID); err != nil {
		internalError(c, h.cfg, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "All notifications marked as read"})
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid notification ID"})
		return
	}

	callerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.service.Delete(id, callerID); err != nil {
		if errors.Is(err, application.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Notification not found"})
			return
		}
		internalError(c, h.cfg, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Notification deleted"})
}
