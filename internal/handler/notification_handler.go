package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/sefazor/shootbook-backend/internal/service"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List en yeni bildirimler önce. ?unread=true sadece okunmamışları döner.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	list, unread, err := h.notificationService.List(c.UserContext(), userID, queryBool(c, "unread"))
	if err != nil {
		return handleError(c, err)
	}
	resp := models.ListResponse(list, int64(len(list)), "")
	resp.Meta.Unread = unread
	return c.JSON(resp)
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	n, err := h.notificationService.UnreadCount(c.UserContext(), userID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.SuccessResponse(fiber.Map{"unread": n}, ""))
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c, "notification")
	}
	n, err := h.notificationService.MarkRead(c.UserContext(), userID, id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.SuccessResponse(n, "Notification marked as read"))
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	n, err := h.notificationService.MarkAllRead(c.UserContext(), userID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.SuccessResponse(fiber.Map{"updated": n}, "Notifications marked as read"))
}
