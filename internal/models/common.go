package models

// Statuses a request (or one of its line items) moves through. Both
// approved and rejected are terminal; only the backend assigns them.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Roles known to the backend.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// TerminalStatus reports whether a status can no longer change.
func TerminalStatus(status string) bool {
	return status == StatusApproved || status == StatusRejected
}
