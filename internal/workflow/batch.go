package workflow

import (
	"context"

	"inventory-requisition-client/internal/models"
)

// BatchSelection is the set of request ids picked for a combined RIS
// export. Only requests that have reached a terminal status are
// eligible; the minimum of two is enforced at submit time, and there is
// no upper cap.
type BatchSelection struct {
	ids []string
}

// Toggle adds the request to the selection, or removes it when already
// selected. It reports whether the request is selected afterwards;
// non-terminal requests are never added.
func (b *BatchSelection) Toggle(request models.Request) bool {
	for i, id := range b.ids {
		if id == request.ID {
			b.ids = append(b.ids[:i], b.ids[i+1:]...)
			return false
		}
	}
	if !models.TerminalStatus(request.Status) {
		return false
	}
	b.ids = append(b.ids, request.ID)
	return true
}

func (b *BatchSelection) Count() int {
	return len(b.ids)
}

// Selected returns a copy of the selected ids in selection order.
func (b *BatchSelection) Selected() []string {
	out := make([]string, len(b.ids))
	copy(out, b.ids)
	return out
}

func (b *BatchSelection) Clear() {
	b.ids = nil
}

// GenerateBatchRIS asks the backend for the combined slip. The document
// assembly itself is entirely backend-side; the returned bytes are the
// finished artifact.
func (w *Workflow) GenerateBatchRIS(ctx context.Context, selection *BatchSelection) ([]byte, Outcome) {
	if selection.Count() < 2 {
		return nil, fail("Select at least 2 requests to generate a batch RIS")
	}
	blob, err := w.reports.GenerateRISBatch(ctx, selection.Selected())
	if err != nil {
		return nil, fail(err.Error())
	}
	return blob, Outcome{Success: true}
}
