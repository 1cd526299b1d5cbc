package models

import "time"

type ActivityLog struct {
	ID        string    `json:"_id"`
	User      string    `json:"user"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
