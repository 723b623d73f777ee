package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bsimkins11/project-agent-admin/internal/domain"
)

// InventoryListResult is one backend inventory page
type InventoryListResult struct {
	Items      []domain.InventoryItem `json:"items"`
	Total      int64                  `json:"total"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"page_size"`
	TotalPages int                    `json:"total_pages"`
}

// PendingListResult is one page of the pending-documents queue
type PendingListResult struct {
	Items      []domain.PendingDocument `json:"items"`
	Total      int64                    `json:"total"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"page_size"`
	TotalPages int                      `json:"total_pages"`
}

// ListInventory fetches a filtered inventory page. Zero-valued filters are
// omitted from the query string.
func (c *Client) ListInventory(ctx context.Context, f domain.InventoryFilters) (*InventoryListResult, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(f.Page))
	query.Set("page_size", strconv.Itoa(f.PageSize))
	if f.DocType != "" {
		query.Set("doc_type", f.DocType)
	}
	if f.MediaType != "" {
		query.Set("media_type", f.MediaType)
	}
	if f.Status != "" {
		query.Set("status", f.Status)
	}
	if f.Query != "" {
		query.Set("q", f.Query)
	}
	if f.ProjectID != "" {
		query.Set("project_id", f.ProjectID)
	}

	var result InventoryListResult
	if err := c.doJSON(ctx, http.MethodGet, "/inventory", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListPending fetches a page of documents awaiting human review
func (c *Client) ListPending(ctx context.Context, page, pageSize int) (*PendingListResult, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))

	var result PendingListResult
	if err := c.doJSON(ctx, http.MethodGet, "/inventory/pending", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
