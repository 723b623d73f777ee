package domain

import (
	"time"

	"github.com/google/uuid"
)

// DocType classifies a document by its role in a project engagement
type DocType string

const (
	DocTypeSOW         DocType = "sow"
	DocTypeTimeline    DocType = "timeline"
	DocTypeDeliverable DocType = "deliverable"
	DocTypeMisc        DocType = "misc"
)

// IsValidDocType checks if a string is a known document type
func IsValidDocType(s string) bool {
	switch DocType(s) {
	case DocTypeSOW, DocTypeTimeline, DocTypeDeliverable, DocTypeMisc:
		return true
	}
	return false
}

// DocumentStatus is the lifecycle state of a document in the ingestion pipeline
type DocumentStatus string

const (
	StatusUploaded            DocumentStatus = "uploaded"
	StatusRequestAccess       DocumentStatus = "request_access"
	StatusAccessRequested     DocumentStatus = "access_requested"
	StatusAccessGranted       DocumentStatus = "access_granted"
	StatusAwaitingApproval    DocumentStatus = "awaiting_approval"
	StatusApproved            DocumentStatus = "approved"
	StatusProcessingRequested DocumentStatus = "processing_requested"
	StatusProcessing          DocumentStatus = "processing"
	StatusProcessed           DocumentStatus = "processed"
	StatusFailed              DocumentStatus = "failed"
	StatusQuarantined         DocumentStatus = "quarantined"
)

// IsValidDocumentStatus checks if a string is a known document status
func IsValidDocumentStatus(s string) bool {
	_, ok := statusActions[DocumentStatus(s)]
	return ok
}

// IsTerminal reports whether the status has no further console-driven
// transitions. Quarantined documents can only be remediated server-side.
func (s DocumentStatus) IsTerminal() bool {
	return s == StatusProcessed || s == StatusQuarantined
}

// DocumentAction is a workflow action the console can issue against a document
type DocumentAction string

const (
	ActionApprove             DocumentAction = "approve"
	ActionReject              DocumentAction = "reject"
	ActionRequestAccess       DocumentAction = "request_access"
	ActionSubmitForProcessing DocumentAction = "submit_for_processing"
	ActionProcess             DocumentAction = "process"
	ActionRetry               DocumentAction = "retry"
)

// statusActions is the single source of truth for which workflow actions are
// offered for a document in a given status. Rendering and request guarding
// both read this table; the backend remains authoritative and may still
// reject a transition.
var statusActions = map[DocumentStatus][]DocumentAction{
	StatusUploaded:            {ActionApprove, ActionReject, ActionRequestAccess},
	StatusRequestAccess:       {ActionRequestAccess},
	StatusAccessRequested:     {},
	StatusAccessGranted:       {ActionApprove, ActionReject},
	StatusAwaitingApproval:    {ActionApprove, ActionReject},
	StatusApproved:            {ActionSubmitForProcessing},
	StatusProcessingRequested: {ActionProcess},
	StatusProcessing:          {},
	StatusProcessed:           {},
	StatusFailed:              {ActionRetry},
	StatusQuarantined:         {},
}

// AllowedActions returns the workflow actions offered for a status.
// Unknown statuses get no actions.
func AllowedActions(status DocumentStatus) []DocumentAction {
	actions, ok := statusActions[status]
	if !ok {
		return nil
	}
	out := make([]DocumentAction, len(actions))
	copy(out, actions)
	return out
}

// ActionAllowed reports whether an action is offered for a status
func ActionAllowed(status DocumentStatus, action DocumentAction) bool {
	for _, a := range statusActions[status] {
		if a == action {
			return true
		}
	}
	return false
}

// AllowsManagement reports whether management actions (delete, classify,
// add source) are offered. They are hidden while the backend is actively
// processing the document.
func AllowsManagement(status DocumentStatus) bool {
	return status != StatusProcessing && status != StatusProcessingRequested
}

// PermissionStatus tracks the Drive-style access sub-workflow on pending documents
type PermissionStatus string

const (
	PermissionNone      PermissionStatus = ""
	PermissionRequested PermissionStatus = "requested"
	PermissionGranted   PermissionStatus = "granted"
	PermissionDenied    PermissionStatus = "denied"
)

// InventoryItem is a document record as listed by the backend inventory
type InventoryItem struct {
	DocID     string         `json:"doc_id"`
	Title     string         `json:"title"`
	DocType   DocType        `json:"doc_type"`
	Status    DocumentStatus `json:"status"`
	CreatedBy string         `json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
	Thumbnail string         `json:"thumbnail,omitempty"`
}

// PendingDocument is an inventory item awaiting human review, carrying the
// permission workflow and index-origin metadata
type PendingDocument struct {
	InventoryItem
	RequiresPermission bool             `json:"requires_permission"`
	PermissionStatus   PermissionStatus `json:"permission_status,omitempty"`
	DriveFileID        string           `json:"drive_file_id,omitempty"`
	FromIndex          bool             `json:"from_index"`
	IndexSource        string           `json:"index_source,omitempty"`
	SOWNumber          string           `json:"sow_number,omitempty"`
	Deliverable        string           `json:"deliverable,omitempty"`
	ResponsibleParty   string           `json:"responsible_party,omitempty"`
	Confidence         string           `json:"confidence,omitempty"`
	Notes              string           `json:"notes,omitempty"`
}

// ClassificationOption is one selectable {value, label} taxonomy entry
type ClassificationOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ClassificationOptions is the server-provided taxonomy. Categories are keyed
// by doc type and subcategories by category, so a selection is only
// meaningful relative to its parent.
type ClassificationOptions struct {
	DocTypes      []ClassificationOption            `json:"doc_types"`
	Categories    map[string][]ClassificationOption `json:"categories"`
	Subcategories map[string][]ClassificationOption `json:"subcategories"`
}

// HasCategory reports whether category is valid for the given doc type
func (o *ClassificationOptions) HasCategory(docType, category string) bool {
	for _, c := range o.Categories[docType] {
		if c.Value == category {
			return true
		}
	}
	return false
}

// HasSubcategory reports whether subcategory is valid for the given category
func (o *ClassificationOptions) HasSubcategory(category, subcategory string) bool {
	for _, s := range o.Subcategories[category] {
		if s.Value == subcategory {
			return true
		}
	}
	return false
}

// FixedCategories is the non-cascading category enum used by the simple
// classification variant.
var FixedCategories = []ClassificationOption{
	{Value: "contract", Label: "Contract"},
	{Value: "invoice", Label: "Invoice"},
	{Value: "report", Label: "Report"},
	{Value: "correspondence", Label: "Correspondence"},
}

// IsFixedCategory checks membership in the fixed category enum
func IsFixedCategory(value string) bool {
	for _, c := range FixedCategories {
		if c.Value == value {
			return true
		}
	}
	return false
}

// Client is a tenant record managed through the RBAC admin endpoints
type Client struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Domain       string    `json:"domain,omitempty"`
	Status       string    `json:"status"`
	ContactName  string    `json:"contact_name,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	Industry     string    `json:"industry,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ClientWithStats adds the backend's derived counts. The counts are read-only
// projections and never mutated by the console.
type ClientWithStats struct {
	Client
	ProjectCount int `json:"project_count"`
	UserCount    int `json:"user_count"`
}

// InventoryFilters is the console's inventory query state
type InventoryFilters struct {
	Page      int    `json:"page"`
	PageSize  int    `json:"page_size"`
	DocType   string `json:"doc_type,omitempty"`
	MediaType string `json:"media_type,omitempty"`
	Status    string `json:"status,omitempty"`
	Query     string `json:"q,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
}

// sameScope reports whether two filter sets differ only in page
func (f InventoryFilters) sameScope(other InventoryFilters) bool {
	f.Page, other.Page = 0, 0
	return f == other
}

// ResolvePage applies the page-reset invariant: any change to a non-page
// filter resets page to 1.
func ResolvePage(prev, next InventoryFilters) InventoryFilters {
	if !next.sameScope(prev) {
		next.Page = 1
	}
	if next.Page < 1 {
		next.Page = 1
	}
	if next.PageSize < 1 {
		next.PageSize = DefaultPageSize
	}
	return next
}

// DefaultPageSize matches the backend's default inventory page size
const DefaultPageSize = 20

// Pagination mirrors the backend's paging envelope. The console never
// recomputes it beyond clamping for prev/next navigation.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// HasPrev reports whether a previous page exists
func (p Pagination) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a next page exists
func (p Pagination) HasNext() bool { return p.Page < p.TotalPages }

// AuditAction classifies a recorded console mutation
type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

// AuditLog is a locally persisted record of a successful console mutation
type AuditLog struct {
	ID         uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	Action     AuditAction `json:"action" gorm:"size:20;not null;index"`
	EntityType string      `json:"entityType" gorm:"size:50;index"`
	EntityID   string      `json:"entityId,omitempty" gorm:"size:100;index"`
	UserID     string      `json:"userId,omitempty" gorm:"size:100;index"`
	UserName   string      `json:"userName,omitempty" gorm:"size:200"`
	Method     string      `json:"method" gorm:"size:10"`
	Path       string      `json:"path" gorm:"size:500"`
	IPAddress  string      `json:"ipAddress,omitempty" gorm:"size:45"`
	NewValues  string      `json:"newValues,omitempty" gorm:"type:text"`
	CreatedAt  time.Time   `json:"createdAt" gorm:"index"`
}

// Session is the server-side replacement for the browser's localStorage pair
// (auth token scope, selected project). One row per console user.
type Session struct {
	UserID            string    `json:"userId" gorm:"primaryKey;size:100"`
	SelectedProjectID string    `json:"selectedProjectId" gorm:"size:100"`
	InventoryFilters  string    `json:"-" gorm:"type:text"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// AdminRole is a console user role
type AdminRole string

const (
	RoleAdmin    AdminRole = "admin"
	RoleOperator AdminRole = "operator"
	RoleViewer   AdminRole = "viewer"
)

// IsValidAdminRole checks if a string is a known console role
func IsValidAdminRole(s string) bool {
	switch AdminRole(s) {
	case RoleAdmin, RoleOperator, RoleViewer:
		return true
	}
	return false
}
