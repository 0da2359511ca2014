package routes

import (
	"github.com/gin-gonic/gin"

	"novaapp/internal/handlers"
)

func SetupRoutes(
	r *gin.Engine,
	otpHandler *handlers.OtpHandler,
	notificationHandler *handlers.NotificationHandler,
	newsHandler *handlers.NewsHandler,
	mediaHandler *handlers.MediaHandler,
	assistantHandler *handlers.AssistantHandler,
) *gin.Engine {

	// MPIN reset flow + push fan-out
	r.POST("/send-otp", otpHandler.SendOtp)
	r.POST("/validate-otp", otpHandler.ValidateOtp)
	r.POST("/set-new-mpin", otpHandler.SetNewMpin)
	r.POST("/send-notification", notificationHandler.SendNotification)

	// NEWS
	news := r.Group("/news")
	{
		news.POST("", newsHandler.Create)
		news.GET("", newsHandler.GetAll)
		news.PUT("/:id", newsHandler.Edit)
		news.DELETE("/:id", newsHandler.Delete)
	}

	// MEDIA
	media := r.Group("/media")
	{
		media.POST("/upload", mediaHandler.Upload)
		media.POST("/get-media", mediaHandler.GetMedia)
	}

	r.POST("/qrcode/generate", mediaHandler.GenerateQRCode)
	r.POST("/ai/gemini", assistantHandler.Gemini)

	return r
}
