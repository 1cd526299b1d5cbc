// Package workflow turns the cart into a persisted request and mediates
// the approval process. Request state is backend-owned; after a mutation
// the client refetches instead of patching its cached copy, so it can
// never drift from the backend-computed aggregate status.
package workflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"inventory-requisition-client/internal/api"
	"inventory-requisition-client/internal/cart"
	"inventory-requisition-client/internal/models"
)

// Outcome is the uniform result reported to the caller. RequestID is set
// by a successful checkout.
type Outcome struct {
	Success   bool
	Message   string
	RequestID string
}

func fail(message string) Outcome {
	return Outcome{Message: message}
}

// CheckoutForm carries the requester/receiver metadata for the RIS form.
type CheckoutForm struct {
	Purpose                string
	Notes                  string
	RequestedByName        string
	RequestedByDesignation string
	ReceivedByName         string
	ReceivedByDesignation  string
}

func (f CheckoutForm) validate() string {
	switch {
	case f.Purpose == "":
		return "Purpose is required"
	case f.RequestedByName == "":
		return "Requested by (name) is required"
	case f.RequestedByDesignation == "":
		return "Requested by designation is required"
	case f.ReceivedByName == "":
		return "Received by (name) is required"
	case f.ReceivedByDesignation == "":
		return "Received by designation is required"
	}
	return ""
}

type Workflow struct {
	cart     *cart.Cart
	requests *api.RequestsService
	reports  *api.ReportsService
}

func New(c *cart.Cart, requests *api.RequestsService, reports *api.ReportsService) *Workflow {
	return &Workflow{cart: c, requests: requests, reports: reports}
}

// Checkout submits the cart as a single multi-line request. An empty
// cart, an incomplete form or a line exceeding its snapshot stock all
// fail locally without a network call. On success the cart is cleared;
// on any failure it is left untouched so the user can retry.
func (w *Workflow) Checkout(ctx context.Context, form CheckoutForm) Outcome {
	lines := w.cart.Lines()
	if len(lines) == 0 {
		return fail("Your cart is empty")
	}
	if msg := form.validate(); msg != "" {
		return fail(msg)
	}
	// Merged adds can push a line past the stock seen at add time; the
	// bound is re-checked against the snapshot before submitting.
	for _, line := range lines {
		if line.Quantity > line.Item.Quantity {
			return fail(fmt.Sprintf("Quantity for %s exceeds available stock (%d)", line.Item.Name, line.Item.Quantity))
		}
	}

	payload := api.CreateRequestPayload{
		Items:                  make([]api.RequestLine, 0, len(lines)),
		Purpose:                form.Purpose,
		Notes:                  form.Notes,
		RequestedByName:        form.RequestedByName,
		RequestedByDesignation: form.RequestedByDesignation,
		ReceivedByName:         form.ReceivedByName,
		ReceivedByDesignation:  form.ReceivedByDesignation,
		IdempotencyKey:         uuid.New().String(),
	}
	for _, line := range lines {
		payload.Items = append(payload.Items, api.RequestLine{
			Item:     line.Item.ID,
			Quantity: line.Quantity,
			Unit:     line.Unit,
		})
	}

	created, err := w.requests.Create(ctx, payload)
	if err != nil {
		return fail(err.Error())
	}

	w.cart.Clear(ctx)
	return Outcome{Success: true, RequestID: created.ID}
}

// Approve transitions a whole request from pending to approved.
func (w *Workflow) Approve(ctx context.Context, requestID string) Outcome {
	if _, err := w.requests.Approve(ctx, requestID); err != nil {
		return fail(err.Error())
	}
	return Outcome{Success: true, RequestID: requestID}
}

// Reject transitions a whole request to rejected; the reason is required.
func (w *Workflow) Reject(ctx context.Context, requestID, reason string) Outcome {
	if reason == "" {
		return fail("Rejection reason is required")
	}
	if _, err := w.requests.Reject(ctx, requestID, reason); err != nil {
		return fail(err.Error())
	}
	return Outcome{Success: true, RequestID: requestID}
}

// ApproveItem adjudicates a single line, then refetches the request so
// the caller sees the backend-computed item and aggregate statuses.
func (w *Workflow) ApproveItem(ctx context.Context, requestID, itemID string) (models.Request, Outcome) {
	if err := w.requests.ApproveItem(ctx, requestID, itemID); err != nil {
		return models.Request{}, fail(err.Error())
	}
	return w.refetch(ctx, requestID)
}

// RejectItem adjudicates a single line with a required reason, then
// refetches the request.
func (w *Workflow) RejectItem(ctx context.Context, requestID, itemID, reason string) (models.Request, Outcome) {
	if reason == "" {
		return models.Request{}, fail("Rejection reason is required")
	}
	if err := w.requests.RejectItem(ctx, requestID, itemID, reason); err != nil {
		return models.Request{}, fail(err.Error())
	}
	return w.refetch(ctx, requestID)
}

func (w *Workflow) refetch(ctx context.Context, requestID string) (models.Request, Outcome) {
	updated, err := w.requests.Get(ctx, requestID)
	if err != nil {
		return models.Request{}, fail(err.Error())
	}
	return updated, Outcome{Success: true, RequestID: requestID}
}

// Cancel deletes a request. Only the original requester may cancel, and
// only while the request is still pending; the backend enforces the same
// rule, this guard just avoids a doomed round trip.
func (w *Workflow) Cancel(ctx context.Context, request models.Request, userID string) Outcome {
	if request.Status != models.StatusPending {
		return fail("Only pending requests can be deleted")
	}
	if request.RequestedBy.ID != "" && request.RequestedBy.ID != userID {
		return fail("Only the requester can delete this request")
	}
	if err := w.requests.Delete(ctx, request.ID); err != nil {
		return fail(err.Error())
	}
	return Outcome{Success: true, RequestID: request.ID}
}
