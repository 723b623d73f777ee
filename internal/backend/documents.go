package backend

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// docPath builds a per-document action path with the doc ID escaped
func docPath(docID, action string) string {
	p := "/documents/" + url.PathEscape(docID)
	if action != "" {
		p += "/" + action
	}
	return p
}

// ApproveDocument moves a document into the approved state
func (c *Client) ApproveDocument(ctx context.Context, docID string) error {
	return c.doJSON(ctx, http.MethodPost, docPath(docID, "approve"), nil, nil, nil)
}

// RejectDocument rejects a document with the reviewer's reason
func (c *Client) RejectDocument(ctx context.Context, docID, reason string) error {
	payload := struct {
		Reason string `json:"reason"`
	}{Reason: reason}
	return c.doJSON(ctx, http.MethodPost, docPath(docID, "reject"), nil, payload, nil)
}

// DeleteDocument removes a document record
func (c *Client) DeleteDocument(ctx context.Context, docID string) error {
	return c.doJSON(ctx, http.MethodDelete, docPath(docID, ""), nil, nil, nil)
}

// SubmitForProcessing queues an approved document for processing
func (c *Client) SubmitForProcessing(ctx context.Context, docID string) error {
	return c.doJSON(ctx, http.MethodPost, docPath(docID, "submit-for-processing"), nil, nil, nil)
}

// ProcessDocument starts processing a queued document
func (c *Client) ProcessDocument(ctx context.Context, docID string) error {
	return c.doJSON(ctx, http.MethodPost, docPath(docID, "process"), nil, nil, nil)
}

// RetryProcessing re-runs processing for a failed document
func (c *Client) RetryProcessing(ctx context.Context, docID string) error {
	return c.doJSON(ctx, http.MethodPost, docPath(docID, "retry"), nil, nil, nil)
}

// RequestAccess asks the document owner for access, with an optional message
func (c *Client) RequestAccess(ctx context.Context, docID, message string) error {
	payload := struct {
		Message string `json:"message,omitempty"`
	}{Message: message}
	return c.doJSON(ctx, http.MethodPost, docPath(docID, "request-access"), nil, payload, nil)
}

// GrantAccess records an access grant with reviewer notes
func (c *Client) GrantAccess(ctx context.Context, docID, notes string) error {
	payload := struct {
		Notes string `json:"notes,omitempty"`
	}{Notes: notes}
	return c.doJSON(ctx, http.MethodPost, docPath(docID, "grant-access"), nil, payload, nil)
}

// DenyAccess records an access denial with the reviewer's reason
func (c *Client) DenyAccess(ctx context.Context, docID, reason string) error {
	payload := struct {
		Reason string `json:"reason"`
	}{Reason: reason}
	return c.doJSON(ctx, http.MethodPost, docPath(docID, "deny-access"), nil, payload, nil)
}

// UpdateMetadata applies a partial metadata update. Only the provided fields
// are sent; the backend leaves the rest untouched.
func (c *Client) UpdateMetadata(ctx context.Context, docID string, fields map[string]interface{}) error {
	return c.doJSON(ctx, http.MethodPatch, docPath(docID, "metadata"), nil, fields, nil)
}

// AddSourceURL attaches a source URI to an existing document record
func (c *Client) AddSourceURL(ctx context.Context, docID, sourceURI string) error {
	payload := struct {
		SourceURI string `json:"source_uri"`
	}{SourceURI: sourceURI}
	return c.doJSON(ctx, http.MethodPost, docPath(docID, "add-url"), nil, payload, nil)
}

// UploadSource attaches an uploaded file to an existing document record
func (c *Client) UploadSource(ctx context.Context, docID, filename string, file io.Reader) error {
	return c.doMultipart(ctx, docPath(docID, "upload"), nil, "file", filename, file, nil)
}
