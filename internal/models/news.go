package models

import "time"

type News struct {
	ID int64 `json:"-"`

	// NewsID is the public UUID clients reference; the serial ID stays internal.
	NewsID      string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}
