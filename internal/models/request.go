package models

import "time"

// RequestItem is one adjudicable line of a request. Its status is
// independent of the sibling lines; the request-level status is an
// aggregate the backend computes.
type RequestItem struct {
	ID              string  `json:"_id"`
	Item            ItemRef `json:"item"`
	Quantity        int     `json:"quantity"`
	Unit            string  `json:"unit"`
	Status          string  `json:"status"`
	RejectionReason string  `json:"rejectionReason,omitempty"`
}

// Request is a backend-owned requisition. The client only ever holds a
// read-only cached copy of it.
type Request struct {
	ID                     string        `json:"_id"`
	Items                  []RequestItem `json:"items"`
	Purpose                string        `json:"purpose"`
	Notes                  string        `json:"notes,omitempty"`
	RequestedBy            Profile       `json:"requestedBy,omitempty"`
	RequestedByName        string        `json:"requestedByName"`
	RequestedByDesignation string        `json:"requestedByDesignation"`
	ReceivedByName         string        `json:"receivedByName"`
	ReceivedByDesignation  string        `json:"receivedByDesignation"`
	Status                 string        `json:"status"`
	RejectionReason        string        `json:"rejectionReason,omitempty"`
	CreatedAt              time.Time     `json:"createdAt"`
}
