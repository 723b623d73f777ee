package backend

import (
	"context"
	"net/http"

	"github.com/bsimkins11/project-agent-admin/internal/domain"
)

// GetClassificationOptions fetches the classification taxonomy
func (c *Client) GetClassificationOptions(ctx context.Context) (*domain.ClassificationOptions, error) {
	var options domain.ClassificationOptions
	if err := c.doJSON(ctx, http.MethodGet, "/classification/options", nil, nil, &options); err != nil {
		return nil, err
	}
	return &options, nil
}

// classificationPayload omits unset optional fields so the backend can tell
// "not set" from "cleared"
type classificationPayload struct {
	DocType     string `json:"doc_type"`
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
}

// AssignClassification updates a document's classification. Empty category
// and subcategory are omitted from the payload, not sent as empty strings.
func (c *Client) AssignClassification(ctx context.Context, docID, docType, category, subcategory string) error {
	payload := classificationPayload{
		DocType:     docType,
		Category:    category,
		Subcategory: subcategory,
	}
	return c.doJSON(ctx, http.MethodPost, docPath(docID, "classify"), nil, payload, nil)
}

// AssignCategory sets a document's category from the fixed set, leaving doc
// type and subcategory untouched
func (c *Client) AssignCategory(ctx context.Context, docID, category string) error {
	payload := map[string]string{"category": category}
	return c.doJSON(ctx, http.MethodPost, docPath(docID, "assign-category"), nil, payload, nil)
}
