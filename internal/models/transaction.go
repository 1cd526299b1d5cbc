package models

import "time"

// Transaction types as the backend records them.
const (
	TransactionIn  = "in"
	TransactionOut = "out"
)

type Transaction struct {
	ID        string    `json:"_id"`
	Item      ItemRef   `json:"item"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	User      string    `json:"user,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
