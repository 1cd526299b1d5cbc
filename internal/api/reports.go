package api

import (
	"context"
	"net/http"
	"net/url"
)

// ReportsService triggers server-side document, spreadsheet and RIS
// generation. The binaries are assembled entirely by the backend; the
// client's only job is to POST the parameters and hand back the blob.
type ReportsService struct {
	client *Client
}

// ReportFilters narrow a report to a category and/or low-stock items.
type ReportFilters struct {
	Category     string
	LowStockOnly bool
}

func (f ReportFilters) body() map[string]interface{} {
	b := map[string]interface{}{}
	if f.Category != "" {
		b["category"] = f.Category
	}
	if f.LowStockOnly {
		b["lowStockOnly"] = true
	}
	return b
}

func (s *ReportsService) InventoryReport(ctx context.Context, filters ReportFilters) ([]byte, error) {
	return s.client.doRaw(ctx, http.MethodPost, "/documents/inventory-report", nil, filters.body())
}

func (s *ReportsService) LowStockAlert(ctx context.Context) ([]byte, error) {
	return s.client.doRaw(ctx, http.MethodPost, "/documents/low-stock-alert", nil, nil)
}

func (s *ReportsService) TransactionReport(ctx context.Context, from, to string) ([]byte, error) {
	body := map[string]string{}
	if from != "" {
		body["from"] = from
	}
	if to != "" {
		body["to"] = to
	}
	return s.client.doRaw(ctx, http.MethodPost, "/documents/transaction-report", nil, body)
}

func (s *ReportsService) ItemLabel(ctx context.Context, itemID string) ([]byte, error) {
	return s.client.doRaw(ctx, http.MethodPost, "/documents/item-label/"+itemID, nil, nil)
}

func (s *ReportsService) ExcelInventoryReport(ctx context.Context, filters ReportFilters) ([]byte, error) {
	return s.client.doRaw(ctx, http.MethodPost, "/excel/inventory-report", nil, filters.body())
}

func (s *ReportsService) ExcelLowStockAlert(ctx context.Context) ([]byte, error) {
	return s.client.doRaw(ctx, http.MethodPost, "/excel/low-stock-alert", nil, nil)
}

func (s *ReportsService) ExcelTransactionReport(ctx context.Context, from, to string) ([]byte, error) {
	body := map[string]string{}
	if from != "" {
		body["from"] = from
	}
	if to != "" {
		body["to"] = to
	}
	return s.client.doRaw(ctx, http.MethodPost, "/excel/transaction-report", nil, body)
}

func (s *ReportsService) ExcelFullExport(ctx context.Context) ([]byte, error) {
	return s.client.doRaw(ctx, http.MethodPost, "/excel/full-export", nil, nil)
}

// GenerateRIS produces the Requisition and Issue Slip for one request.
func (s *ReportsService) GenerateRIS(ctx context.Context, requestID string) ([]byte, error) {
	return s.client.doRaw(ctx, http.MethodPost, "/ris/generate/"+requestID, nil, nil)
}

// GenerateRISBatch produces a combined slip for several requests.
func (s *ReportsService) GenerateRISBatch(ctx context.Context, requestIDs []string) ([]byte, error) {
	body := map[string][]string{"requestIds": requestIDs}
	return s.client.doRaw(ctx, http.MethodPost, "/ris/generate-batch", nil, body)
}

func (s *ReportsService) GenerateCustomRIS(ctx context.Context, data map[string]interface{}) ([]byte, error) {
	return s.client.doRaw(ctx, http.MethodPost, "/ris/generate-custom", nil, data)
}

func (s *ReportsService) PreviewRISTemplate(ctx context.Context) ([]byte, error) {
	return s.client.doRaw(ctx, http.MethodGet, "/ris/preview-template", url.Values{}, nil)
}
