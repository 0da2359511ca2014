package models

import "time"

type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`

	// MPIN is stored base64-obfuscated, never returned to clients.
	Mpin *string `json:"-"`

	// OTP state: both fields are written together when a code is issued and
	// are never cleared after a successful validation, so a once-used code
	// stays live until the window lapses or a new code overwrites it
	// (known gap, kept for client compatibility).
	OtpCode     *string    `json:"-"`
	OtpIssuedAt *time.Time `json:"-"`

	// FCMToken is the push delivery endpoint; absent until the device
	// registers one. Absence is an expected state, not an error.
	FCMToken *string `json:"-"`
}
