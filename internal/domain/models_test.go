package domain_test

import (
	"testing"

	"github.com/bsimkins11/project-agent-admin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedActions_PerStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   domain.DocumentStatus
		expected []domain.DocumentAction
	}{
		{
			name:     "uploaded offers approve reject and request access",
			status:   domain.StatusUploaded,
			expected: []domain.DocumentAction{domain.ActionApprove, domain.ActionReject, domain.ActionRequestAccess},
		},
		{
			name:     "request_access only offers request access",
			status:   domain.StatusRequestAccess,
			expected: []domain.DocumentAction{domain.ActionRequestAccess},
		},
		{
			name:     "access_requested waits on the grant",
			status:   domain.StatusAccessRequested,
			expected: []domain.DocumentAction{},
		},
		{
			name:     "access_granted offers approve and reject",
			status:   domain.StatusAccessGranted,
			expected: []domain.DocumentAction{domain.ActionApprove, domain.ActionReject},
		},
		{
			name:     "awaiting_approval offers approve and reject",
			status:   domain.StatusAwaitingApproval,
			expected: []domain.DocumentAction{domain.ActionApprove, domain.ActionReject},
		},
		{
			name:     "approved offers submit for processing",
			status:   domain.StatusApproved,
			expected: []domain.DocumentAction{domain.ActionSubmitForProcessing},
		},
		{
			name:     "processing_requested offers process",
			status:   domain.StatusProcessingRequested,
			expected: []domain.DocumentAction{domain.ActionProcess},
		},
		{
			name:     "processing offers nothing",
			status:   domain.StatusProcessing,
			expected: []domain.DocumentAction{},
		},
		{
			name:     "processed offers nothing",
			status:   domain.StatusProcessed,
			expected: []domain.DocumentAction{},
		},
		{
			name:     "failed offers retry",
			status:   domain.StatusFailed,
			expected: []domain.DocumentAction{domain.ActionRetry},
		},
		{
			name:     "quarantined offers nothing",
			status:   domain.StatusQuarantined,
			expected: []domain.DocumentAction{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.AllowedActions(tt.status))
		})
	}
}

func TestAllowedActions_UnknownStatus(t *testing.T) {
	assert.Nil(t, domain.AllowedActions(domain.DocumentStatus("bogus")))
}

func TestActionAllowed(t *testing.T) {
	assert.True(t, domain.ActionAllowed(domain.StatusUploaded, domain.ActionApprove))
	assert.True(t, domain.ActionAllowed(domain.StatusFailed, domain.ActionRetry))
	assert.False(t, domain.ActionAllowed(domain.StatusProcessed, domain.ActionApprove))
	assert.False(t, domain.ActionAllowed(domain.StatusApproved, domain.ActionApprove))
	assert.False(t, domain.ActionAllowed(domain.DocumentStatus("bogus"), domain.ActionApprove))
}

func TestAllowsManagement(t *testing.T) {
	assert.True(t, domain.AllowsManagement(domain.StatusUploaded))
	assert.True(t, domain.AllowsManagement(domain.StatusFailed))
	assert.True(t, domain.AllowsManagement(domain.StatusProcessed))
	assert.False(t, domain.AllowsManagement(domain.StatusProcessing))
	assert.False(t, domain.AllowsManagement(domain.StatusProcessingRequested))
}

func TestDocumentStatus_IsTerminal(t *testing.T) {
	assert.True(t, domain.StatusProcessed.IsTerminal())
	assert.True(t, domain.StatusQuarantined.IsTerminal())
	assert.False(t, domain.StatusFailed.IsTerminal())
	assert.False(t, domain.StatusUploaded.IsTerminal())
}

func TestResolvePage_FilterChangeResetsPage(t *testing.T) {
	prev := domain.InventoryFilters{Page: 5, PageSize: 20, DocType: "sow"}

	next := prev
	next.Status = "approved"
	resolved := domain.ResolvePage(prev, next)
	assert.Equal(t, 1, resolved.Page, "changing a filter must reset the page")

	next = prev
	next.Query = "timeline"
	resolved = domain.ResolvePage(prev, next)
	assert.Equal(t, 1, resolved.Page)
}

func TestResolvePage_PageOnlyChangeKeepsPage(t *testing.T) {
	prev := domain.InventoryFilters{Page: 2, PageSize: 20, DocType: "sow"}
	next := prev
	next.Page = 3

	resolved := domain.ResolvePage(prev, next)
	assert.Equal(t, 3, resolved.Page)
	assert.Equal(t, "sow", resolved.DocType)
}

func TestResolvePage_ClampsInvalidValues(t *testing.T) {
	resolved := domain.ResolvePage(domain.InventoryFilters{}, domain.InventoryFilters{Page: -1, PageSize: 0})
	assert.Equal(t, 1, resolved.Page)
	assert.Equal(t, domain.DefaultPageSize, resolved.PageSize)
}

func TestPagination_Navigation(t *testing.T) {
	p := domain.Pagination{Total: 45, Page: 1, PageSize: 20, TotalPages: 3}
	assert.False(t, p.HasPrev())
	assert.True(t, p.HasNext())

	p.Page = 3
	assert.True(t, p.HasPrev())
	assert.False(t, p.HasNext())
}

func TestClassificationOptions_CascadingLookups(t *testing.T) {
	opts := &domain.ClassificationOptions{
		DocTypes: []domain.ClassificationOption{
			{Value: "sow", Label: "SOW"},
			{Value: "deliverable", Label: "Deliverable"},
		},
		Categories: map[string][]domain.ClassificationOption{
			"sow": {{Value: "master", Label: "Master"}},
		},
		Subcategories: map[string][]domain.ClassificationOption{
			"master": {{Value: "amendment", Label: "Amendment"}},
		},
	}

	require.True(t, opts.HasCategory("sow", "master"))
	assert.False(t, opts.HasCategory("sow", "amendment"))
	assert.False(t, opts.HasCategory("deliverable", "master"), "category is only valid under its own doc type")

	assert.True(t, opts.HasSubcategory("master", "amendment"))
	assert.False(t, opts.HasSubcategory("amendment", "master"))
}

func TestIsFixedCategory(t *testing.T) {
	for _, c := range domain.FixedCategories {
		assert.True(t, domain.IsFixedCategory(c.Value))
	}
	assert.False(t, domain.IsFixedCategory("sow"))
	assert.False(t, domain.IsFixedCategory(""))
}

func TestValidators(t *testing.T) {
	assert.True(t, domain.IsValidDocType("sow"))
	assert.False(t, domain.IsValidDocType("memo"))

	assert.True(t, domain.IsValidDocumentStatus("awaiting_approval"))
	assert.False(t, domain.IsValidDocumentStatus("pending"))

	assert.True(t, domain.IsValidAdminRole("operator"))
	assert.False(t, domain.IsValidAdminRole("superuser"))
}
