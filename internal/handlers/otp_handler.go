package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"novaapp/internal/services"
	"novaapp/internal/utils"
)

type OtpHandler struct {
	Service *services.OtpService
}

func NewOtpHandler(service *services.OtpService) *OtpHandler {
	return &OtpHandler{Service: service}
}

// SendOtp issues a reset code to the user's email. The code is never echoed
// in the response body.
func (h *OtpHandler) SendOtp(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Email is required"})
		return
	}
	if msg := utils.MissingFieldMessage(
		utils.RequiredField{Label: "Email", Value: req.Email},
	); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": msg})
		return
	}

	if err := h.Service.IssueOtp(req.Email); err != nil {
		switch err {
		case services.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"status": false, "message": "Email not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Something went wrong"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "message": "OTP sent successfully"})
}

func (h *OtpHandler) ValidateOtp(c *gin.Context) {
	// otp arrives as a number from some clients and a string from others
	var req struct {
		Email string      `json:"email"`
		Otp   interface{} `json:"otp"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Email is required"})
		return
	}
	candidate := ""
	if req.Otp != nil {
		candidate = fmt.Sprint(req.Otp)
	}
	if msg := utils.MissingFieldMessage(
		utils.RequiredField{Label: "Email", Value: req.Email},
		utils.RequiredField{Label: "OTP", Value: candidate},
	); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": msg})
		return
	}

	if err := h.Service.ValidateOtp(req.Email, candidate); err != nil {
		switch err {
		case services.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"status": false, "message": "Email not found"})
		case services.ErrNoCodeIssued:
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "No OTP found. Please request again."})
		case services.ErrCodeExpired:
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "OTP expired. Please request a new one."})
		case services.ErrCodeInvalid:
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Invalid OTP"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Something went wrong"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "message": "OTP verified successfully"})
}

// SetNewMpin stores the new MPIN. No OTP check here: the client is expected
// to have gone through /validate-otp first.
func (h *OtpHandler) SetNewMpin(c *gin.Context) {
	var req struct {
		Email   string `json:"email"`
		NewMpin string `json:"newMpin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Email is required"})
		return
	}
	if msg := utils.MissingFieldMessage(
		utils.RequiredField{Label: "Email", Value: req.Email},
		utils.RequiredField{Label: "New MPIN", Value: req.NewMpin},
	); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": msg})
		return
	}

	if err := h.Service.SetMpin(req.Email, req.NewMpin); err != nil {
		switch err {
		case services.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"status": false, "message": "Email not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Something went wrong"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "message": "MPIN updated successfully"})
}
