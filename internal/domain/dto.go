package domain

// Request and response DTOs for the console API

// InventoryPage is one page of inventory results plus the allowed-action
// matrix resolved per item
type InventoryPage struct {
	Items      []InventoryItemDTO `json:"items"`
	Pagination Pagination         `json:"pagination"`
	ProjectID  string             `json:"projectId,omitempty"`
}

// InventoryItemDTO decorates a backend inventory item with the actions the
// console offers for its current status
type InventoryItemDTO struct {
	InventoryItem
	AllowedActions   []DocumentAction `json:"allowedActions"`
	AllowsManagement bool             `json:"allowsManagement"`
}

// ApprovalQueuePage is one page of pending documents
type ApprovalQueuePage struct {
	Items      []PendingDocumentDTO `json:"items"`
	Pagination Pagination           `json:"pagination"`
}

// PendingDocumentDTO decorates a pending document with its allowed actions
type PendingDocumentDTO struct {
	PendingDocument
	AllowedActions []DocumentAction `json:"allowedActions"`
}

// RejectRequest carries the mandatory rejection reason
type RejectRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// AccessMessageRequest carries the access-request message composer payload
type AccessMessageRequest struct {
	Message string `json:"message,omitempty"`
}

// GrantAccessRequest carries reviewer notes for an access grant
type GrantAccessRequest struct {
	Notes string `json:"notes,omitempty"`
}

// DenyAccessRequest carries the mandatory denial reason
type DenyAccessRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// AssignClassificationRequest is the cascading taxonomy classification payload.
// Category and subcategory are optional; when unset they are omitted from the
// backend call rather than sent as empty strings.
type AssignClassificationRequest struct {
	DocType     string `json:"docType" validate:"required"`
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
}

// AssignCategoryRequest is the simple fixed-enum classification payload
type AssignCategoryRequest struct {
	Category string `json:"category" validate:"required"`
}

// AddSourceURLRequest attaches a source URI to an existing document
type AddSourceURLRequest struct {
	SourceURI string `json:"sourceUri" validate:"required"`
}

// IngestDocumentRequest creates a single document record.
// Tags arrive as a comma-separated string and are split before submission.
type IngestDocumentRequest struct {
	Title     string `json:"title" validate:"required"`
	DocType   string `json:"docType" validate:"required"`
	SourceURI string `json:"sourceUri" validate:"required"`
	Owner     string `json:"owner,omitempty"`
	Version   string `json:"version,omitempty"`
	Tags      string `json:"tags,omitempty"`
}

// UpdateMetadataRequest is the partial metadata correction payload for a
// pending document. Nil fields are left untouched.
type UpdateMetadataRequest struct {
	Title            *string `json:"title,omitempty"`
	DocType          *string `json:"docType,omitempty"`
	SOWNumber        *string `json:"sowNumber,omitempty"`
	Deliverable      *string `json:"deliverable,omitempty"`
	ResponsibleParty *string `json:"responsibleParty,omitempty"`
	DeliverableID    *string `json:"deliverableId,omitempty"`
	Confidence       *string `json:"confidence,omitempty"`
	Link             *string `json:"link,omitempty"`
	Notes            *string `json:"notes,omitempty"`
}

// DriveSyncRequest triggers a server-side Drive folder sync. Folders may be
// raw folder IDs or full Drive URLs.
type DriveSyncRequest struct {
	Folders   string `json:"folders" validate:"required"`
	Recursive bool   `json:"recursive"`
}

// DriveSyncResponse reports how many folders the backend processed
type DriveSyncResponse struct {
	FoldersProcessed int    `json:"foldersProcessed"`
	Message          string `json:"message,omitempty"`
}

// DriveSearchRequest searches a single Drive folder for candidate documents
type DriveSearchRequest struct {
	Folder string `json:"folder" validate:"required"`
}

// DriveSearchResponse lists documents discovered in a Drive folder
type DriveSearchResponse struct {
	FolderID  string            `json:"folderId"`
	Documents []PendingDocument `json:"documents"`
}

// AnalyzeIndexRequest submits a document index (spreadsheet or CSV) for analysis
type AnalyzeIndexRequest struct {
	IndexURL  string `json:"indexUrl" validate:"required"`
	IndexType string `json:"indexType" validate:"required,oneof=spreadsheet csv"`
}

// IndexAnalysisOutcome distinguishes the three mutually exclusive index
// analysis results
type IndexAnalysisOutcome string

const (
	IndexOutcomeCreated           IndexAnalysisOutcome = "created"
	IndexOutcomeAccessRequired    IndexAnalysisOutcome = "access_required"
	IndexOutcomeAccessAlreadySent IndexAnalysisOutcome = "access_request_sent"
)

// AnalyzeIndexResponse is the console's unified index-analysis result
type AnalyzeIndexResponse struct {
	Outcome          IndexAnalysisOutcome `json:"outcome"`
	DocumentsCreated int                  `json:"documentsCreated,omitempty"`
	Details          string               `json:"details,omitempty"`
}

// RequestIndexAccessRequest is the follow-up access request for a denied index
type RequestIndexAccessRequest struct {
	IndexURL string `json:"indexUrl" validate:"required"`
	Message  string `json:"message,omitempty"`
}

// CreateClientRequest creates a tenant. Only the name is required.
type CreateClientRequest struct {
	Name         string `json:"name" validate:"required"`
	Domain       string `json:"domain,omitempty"`
	ContactName  string `json:"contactName,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty" validate:"omitempty,email"`
	Industry     string `json:"industry,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// ClientListResponse lists tenants with derived counts
type ClientListResponse struct {
	Clients []ClientWithStats `json:"clients"`
	Total   int               `json:"total"`
}

// MigrationResult reports the outcome of the one-shot RBAC migration
type MigrationResult struct {
	Migrated  int    `json:"migrated"`
	Skipped   int    `json:"skipped"`
	ClientID  string `json:"clientId"`
	ProjectID string `json:"projectId"`
}

// SelectProjectRequest sets the session's project scope
type SelectProjectRequest struct {
	ProjectID string `json:"projectId"`
}

// MessageResponse is a generic success envelope
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}
