package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"novaapp/internal/services"
)

type NotificationHandler struct {
	Service *services.NotificationService
}

func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: service}
}

// SendNotification fans one message out to a list of emails. Only a
// malformed payload gets a non-200: every per-recipient failure is reported
// inside the body and the envelope still says 200.
func (h *NotificationHandler) SendNotification(c *gin.Context) {
	var req struct {
		Emails []string `json:"emails"`
		Title  string   `json:"title"`
		Body   string   `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil ||
		len(req.Emails) == 0 ||
		strings.TrimSpace(req.Title) == "" ||
		strings.TrimSpace(req.Body) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  false,
			"message": "Invalid payload: emails (array), title, body required",
		})
		return
	}

	result := h.Service.Dispatch(req.Emails, req.Title, req.Body)

	resp := gin.H{
		"status":                  true,
		"message":                 "Notification processing complete",
		"summary":                 result.Summary,
		"successfulNotifications": result.Successful,
	}
	if len(result.Failed) > 0 {
		resp["failedNotifications"] = result.Failed
	}
	c.JSON(http.StatusOK, resp)
}
