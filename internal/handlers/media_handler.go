package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"novaapp/internal/services"
	"novaapp/internal/utils"
)

// MediaHandler serves the media library and QR generation routes. These
// predate the rest of the API and answer with success/error keys instead of
// status/message; mobile clients depend on that shape.
type MediaHandler struct {
	Service *services.MediaService
}

func NewMediaHandler(service *services.MediaService) *MediaHandler {
	return &MediaHandler{Service: service}
}

// Upload expects multipart form data: file, fileType ("image" or "video")
// and email.
func (h *MediaHandler) Upload(c *gin.Context) {
	email := c.PostForm("email")
	fileType := c.PostForm("fileType")
	fileHeader, fileErr := c.FormFile("file")
	if fileErr != nil || email == "" || fileType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "email, file and fileType are required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Something went wrong"})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Something went wrong"})
		return
	}

	url, err := h.Service.Upload(email, fileType, data)
	if err != nil {
		switch err {
		case services.ErrImageTooLarge:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Image size exceeds 5MB limit."})
		case services.ErrVideoTooLarge:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Video size exceeds 50MB limit."})
		case services.ErrInvalidFileType:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid fileType. Use image or video"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Something went wrong"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "File uploaded successfully", "url": url})
}

func (h *MediaHandler) GetMedia(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		FileType string `json:"fileType"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.FileType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "email and fileType are required"})
		return
	}

	files, err := h.Service.GetFiles(req.Email, req.FileType)
	if err != nil {
		switch err {
		case services.ErrMediaNotFound:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "No data found for this email"})
		case services.ErrInvalidFileType:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid fileType. Use image or video"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Something went wrong"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"email":    req.Email,
		"fileType": req.FileType,
		"files":    files,
	})
}

func (h *MediaHandler) GenerateQRCode(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email is required"})
		return
	}
	if msg := utils.MissingFieldMessage(
		utils.RequiredField{Label: "Email", Value: req.Email},
	); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
		return
	}

	url, err := h.Service.GenerateQRCode(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to generate QR code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "QR Code generated successfully",
		"qrCodeUrl": url,
	})
}
