package models

import "time"

// Profile is the identity slice of a user that rides along with the
// session token. Role is the only authorization input the client has.
type Profile struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// User is the full account record as returned by the user management
// endpoints (admin only).
type User struct {
	ID          string    `json:"_id"`
	Username    string    `json:"username"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Designation string    `json:"designation,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
