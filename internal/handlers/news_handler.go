package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"novaapp/internal/services"
)

// news images are capped at 10MB at the route level
const maxNewsImageSize = 10 * 1024 * 1024

type NewsHandler struct {
	Service *services.NewsService
}

func NewNewsHandler(service *services.NewsService) *NewsHandler {
	return &NewsHandler{Service: service}
}

// Create expects multipart form data: name, description and an image file.
func (h *NewsHandler) Create(c *gin.Context) {
	name := c.PostForm("name")
	description := c.PostForm("description")
	if name == "" || description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Name and description are required"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Image is required"})
		return
	}
	if fileHeader.Size > maxNewsImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "File upload error"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "File upload error"})
		return
	}
	defer f.Close()
	image, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "File upload error"})
		return
	}

	item, err := h.Service.Create(name, description, image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Failed to create news"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "message": "News created successfully", "data": item})
}

func (h *NewsHandler) GetAll(c *gin.Context) {
	list, err := h.Service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Something went wrong"})
		return
	}
	if len(list) == 0 {
		c.JSON(http.StatusOK, gin.H{"status": true, "message": "No news found", "data": list})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": true, "data": list})
}

// Edit applies a partial update by public UUID.
func (h *NewsHandler) Edit(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "News ID is required"})
		return
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Invalid request body"})
		return
	}

	updated, err := h.Service.Update(id, req.Name, req.Description)
	if err != nil {
		switch err {
		case services.ErrNewsNotFound:
			c.JSON(http.StatusNotFound, gin.H{"status": false, "message": "News not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Failed to update news"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "message": "News updated successfully", "data": updated})
}

func (h *NewsHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "News ID is required"})
		return
	}

	if err := h.Service.Delete(id); err != nil {
		switch err {
		case services.ErrNewsNotFound:
			c.JSON(http.StatusNotFound, gin.H{"status": false, "message": "News not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Failed to delete news"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "message": "News deleted successfully"})
}
