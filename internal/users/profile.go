package users

import (
	"time"
)

// Profile carries the per-user flags the trophy evaluation cares about
type Profile struct {
	UserID          string     `json:"userId"`
	TrophiesEnabled bool       `json:"trophiesEnabled"`
	LastLogin       *time.Time `json:"lastLogin,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}
