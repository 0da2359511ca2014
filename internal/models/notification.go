package models

// NotificationOutcome is one recipient's result inside a fan-out batch.
// Exactly one of MessageID / Message / Reason is set depending on the class:
// delivered, reachable-but-no-endpoint, or failed.
type NotificationOutcome struct {
	Email     string `json:"email"`
	MessageID string `json:"messageId,omitempty"`
	Message   string `json:"message,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

type NotificationSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// DispatchResult aggregates a whole batch. The envelope never signals
// transport failure; callers branch on these counts, not on HTTP status.
type DispatchResult struct {
	Summary    NotificationSummary   `json:"summary"`
	Successful []NotificationOutcome `json:"successfulNotifications"`
	Failed     []NotificationOutcome `json:"failedNotifications,omitempty"`
}
