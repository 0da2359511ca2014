package services

import (
	"log"
	"strings"

	"novaapp/internal/models"
	"novaapp/internal/repositories"
)

// PushGateway is the delivery side of the fan-out. utils.PushClient is the
// production implementation.
type PushGateway interface {
	Send(token, title, body string) (string, error)
}

// NotificationService fans one notification out to a batch of recipients.
// Every recipient is attempted and reported independently: no lookup or
// delivery failure ever aborts the batch, and Dispatch itself never fails.
// Callers branch on the per-item outcomes, not on transport status.
type NotificationService struct {
	UserRepo repositories.UserRepository
	Gateway  PushGateway
}

func NewNotificationService(userRepo repositories.UserRepository, gateway PushGateway) *NotificationService {
	return &NotificationService{UserRepo: userRepo, Gateway: gateway}
}

// Dispatch processes recipients sequentially. Outcome classes:
//   - delivered            -> successful, with the gateway message ID
//   - no delivery endpoint -> successful ("User isn't logged in"); a user
//     without a registered token is expected steady-state, not a failure
//   - unknown user         -> failed ("User not found")
//   - gateway error        -> failed ("Send failed"), no retry
func (s *NotificationService) Dispatch(emails []string, title, body string) *models.DispatchResult {
	successful := []models.NotificationOutcome{}
	var failed []models.NotificationOutcome

	for _, raw := range emails {
		email := strings.TrimSpace(strings.ToLower(raw))
		if email == "" {
			failed = append(failed, models.NotificationOutcome{Email: raw, Reason: "Empty email"})
			continue
		}

		user, err := s.UserRepo.GetByEmail(email)
		if err != nil {
			log.Printf("[notify][lookup][err] email=%s err=%v", email, err)
			failed = append(failed, models.NotificationOutcome{Email: email, Reason: "User lookup failed"})
			continue
		}
		if user == nil {
			failed = append(failed, models.NotificationOutcome{Email: email, Reason: "User not found"})
			continue
		}
		if user.FCMToken == nil || *user.FCMToken == "" {
			successful = append(successful, models.NotificationOutcome{
				Email:   email,
				Message: "User isn't logged in (no fcmToken)",
			})
			continue
		}

		messageID, err := s.Gateway.Send(*user.FCMToken, title, body)
		if err != nil {
			log.Printf("[notify][send][err] email=%s err=%v", email, err)
			failed = append(failed, models.NotificationOutcome{Email: email, Reason: "Send failed"})
			continue
		}
		successful = append(successful, models.NotificationOutcome{Email: email, MessageID: messageID})
	}

	return &models.DispatchResult{
		Summary: models.NotificationSummary{
			Total:      len(emails),
			Successful: len(successful),
			Failed:     len(failed),
		},
		Successful: successful,
		Failed:     failed,
	}
}
