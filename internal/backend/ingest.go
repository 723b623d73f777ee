package backend

import (
	"context"
	"io"
	"net/http"
)

// IngestPayload creates a single document record on the backend
type IngestPayload struct {
	Title     string   `json:"title"`
	DocType   string   `json:"doc_type"`
	SourceURI string   `json:"source_uri"`
	Tags      []string `json:"tags,omitempty"`
	Owner     string   `json:"owner,omitempty"`
	Version   string   `json:"version,omitempty"`
}

// IngestDocument creates one document record
func (c *Client) IngestDocument(ctx context.Context, payload IngestPayload) error {
	return c.doJSON(ctx, http.MethodPost, "/ingest", nil, payload, nil)
}

// IngestCSV submits a CSV of document records for bulk ingestion. The CSV
// schema is validated entirely server-side.
func (c *Client) IngestCSV(ctx context.Context, filename string, file io.Reader) error {
	return c.doMultipart(ctx, "/ingest/csv", nil, "file", filename, file, nil)
}
