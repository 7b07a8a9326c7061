package entity

import "time"

// ActivityType is the kind of menu item mutation an activity entry records.
type ActivityType string

const (
	ActivityCreate ActivityType = "create"
	ActivityUpdate ActivityType = "update"
	ActivityDelete ActivityType = "delete"
)

// DefaultActivityUser is recorded when no signed-in user is attached to the mutation.
const DefaultActivityUser = "Admin"

// Activity is an append-only log entry describing one menu item mutation.
type Activity struct {
	ID        string         `json:"id"`
	Type      ActivityType   `json:"type"`
	Item      string         `json:"item"`
	Category  string         `json:"category,omitempty"`
	User      string         `json:"user"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}
