package backend

import (
	"context"
	"net/http"

	"github.com/bsimkins11/project-agent-admin/internal/domain"
)

// ListClients fetches all tenants with their derived counts
func (c *Client) ListClients(ctx context.Context) ([]domain.ClientWithStats, int, error) {
	var result struct {
		Clients []domain.ClientWithStats `json:"clients"`
		Total   int                      `json:"total"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/admin/rbac/clients", nil, nil, &result); err != nil {
		return nil, 0, err
	}
	return result.Clients, result.Total, nil
}

// createClientPayload is the flat tenant creation shape
type createClientPayload struct {
	Name         string `json:"name"`
	Domain       string `json:"domain,omitempty"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	Industry     string `json:"industry,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// CreateClient creates a tenant and returns its ID
func (c *Client) CreateClient(ctx context.Context, name, domainName, contactName, contactEmail, industry, notes string) (string, error) {
	payload := createClientPayload{
		Name:         name,
		Domain:       domainName,
		ContactName:  contactName,
		ContactEmail: contactEmail,
		Industry:     industry,
		Notes:        notes,
	}

	var result struct {
		ClientID string `json:"client_id"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/admin/rbac/clients", nil, payload, &result); err != nil {
		return "", err
	}
	return result.ClientID, nil
}

// MigrateToRBAC triggers the one-shot migration of legacy documents into the
// given client and project. The backend deduplicates repeat invocations.
func (c *Client) MigrateToRBAC(ctx context.Context, clientID, projectID string) (*domain.MigrationResult, error) {
	payload := struct {
		ClientID  string `json:"client_id"`
		ProjectID string `json:"project_id"`
	}{ClientID: clientID, ProjectID: projectID}

	var result struct {
		Migrated  int    `json:"migrated"`
		Skipped   int    `json:"skipped"`
		ClientID  string `json:"client_id"`
		ProjectID string `json:"project_id"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/admin/migrate-to-rbac", nil, payload, &result); err != nil {
		return nil, err
	}
	return &domain.MigrationResult{
		Migrated:  result.Migrated,
		Skipped:   result.Skipped,
		ClientID:  result.ClientID,
		ProjectID: result.ProjectID,
	}, nil
}
