package domain

import "time"

// Origin is an allow-listed web origin registered by a user. The pair
// (Value, UserID) is unique.
type Origin struct {
	ID          string    `json:"id"`
	Value       string    `json:"origin"`
	Description string    `json:"description"`
	UserID      string    `json:"user"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
