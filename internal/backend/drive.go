package backend

import (
	"context"
	"net/http"

	"github.com/bsimkins11/project-agent-admin/internal/domain"
)

// DriveSyncResult reports the outcome of a folder sync
type DriveSyncResult struct {
	FoldersProcessed int    `json:"folders_processed"`
	Message          string `json:"message"`
}

// SyncDrive triggers a server-side sync of the given Drive folders
func (c *Client) SyncDrive(ctx context.Context, folderIDs []string, recursive bool) (*DriveSyncResult, error) {
	payload := struct {
		FolderIDs []string `json:"folder_ids"`
		Recursive bool     `json:"recursive"`
	}{FolderIDs: folderIDs, Recursive: recursive}

	var result DriveSyncResult
	if err := c.doJSON(ctx, http.MethodPost, "/drive/sync", nil, payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchDrive lists candidate documents in one Drive folder
func (c *Client) SearchDrive(ctx context.Context, folderID string) ([]domain.PendingDocument, error) {
	payload := struct {
		FolderID string `json:"folder_id"`
	}{FolderID: folderID}

	var result struct {
		Documents []domain.PendingDocument `json:"documents"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/drive/search", nil, payload, &result); err != nil {
		return nil, err
	}
	return result.Documents, nil
}

// IndexAnalysisResult is the success shape of an index analysis. Access
// denials surface as *AccessRequiredError instead.
type IndexAnalysisResult struct {
	DocumentsCreated int    `json:"documents_created"`
	Message          string `json:"message"`
}

// AnalyzeIndex submits a document index (spreadsheet or CSV) for analysis
func (c *Client) AnalyzeIndex(ctx context.Context, indexURL, indexType string) (*IndexAnalysisResult, error) {
	payload := struct {
		IndexURL  string `json:"index_url"`
		IndexType string `json:"index_type"`
	}{IndexURL: indexURL, IndexType: indexType}

	var result IndexAnalysisResult
	if err := c.doJSON(ctx, http.MethodPost, "/index/analyze", nil, payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RequestIndexAccess sends the follow-up access request for an index the
// backend could not read
func (c *Client) RequestIndexAccess(ctx context.Context, indexURL, message string) (string, error) {
	payload := struct {
		IndexURL string `json:"index_url"`
		Message  string `json:"message,omitempty"`
	}{IndexURL: indexURL, Message: message}

	var result struct {
		Message   string `json:"message"`
		NextSteps string `json:"next_steps"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/index/request-access", nil, payload, &result); err != nil {
		return "", err
	}
	if result.NextSteps != "" {
		return result.NextSteps, nil
	}
	return result.Message, nil
}
