package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"novaapp/internal/services"
	"novaapp/internal/utils"
)

type AssistantHandler struct {
	Service *services.AssistantService
}

func NewAssistantHandler(service *services.AssistantService) *AssistantHandler {
	return &AssistantHandler{Service: service}
}

func (h *AssistantHandler) Gemini(c *gin.Context) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Prompt is required"})
		return
	}
	if msg := utils.MissingFieldMessage(
		utils.RequiredField{Label: "Prompt", Value: req.Prompt},
	); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": msg})
		return
	}

	reply, err := h.Service.Reply(req.Prompt)
	if err != nil {
		log.Printf("[ai][gemini][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Failed to process Gemini AI request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "data": gin.H{"reply": reply}})
}
