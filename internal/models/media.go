package models

import "time"

// MediaLibrary is keyed by email, one row per user holding everything they
// uploaded plus their generated QR code URL.
type MediaLibrary struct {
	Email     string     `json:"email"`
	Images    []string   `json:"images"`
	Videos    []string   `json:"videos"`
	QRCodeURL *string    `json:"qrCodeUrl,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
