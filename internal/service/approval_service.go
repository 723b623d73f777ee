package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/bsimkins11/project-agent-admin/internal/backend"
	"github.com/bsimkins11/project-agent-admin/internal/domain"
)

// ApprovalService drives the document review workflow: the pending queue,
// approval decisions, the permission handshake and the processing
// transitions. Every action is gated on the document's reported status
// before the backend is called.
type ApprovalService struct {
	backend *backend.Client
	logger  *zap.Logger
}

// NewApprovalService creates a new approval service
func NewApprovalService(backendClient *backend.Client, logger *zap.Logger) *ApprovalService {
	return &ApprovalService{
		backend: backendClient,
		logger:  logger,
	}
}

// Pending returns one page of documents awaiting review, each decorated with
// the actions its status permits
func (s *ApprovalService) Pending(ctx context.Context, page, pageSize int) (*domain.ApprovalQueuePage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}

	result, err := s.backend.ListPending(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	queue := &domain.ApprovalQueuePage{
		Items: make([]domain.PendingDocumentDTO, 0, len(result.Items)),
		Pagination: domain.Pagination{
			Total:      result.Total,
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalPages: result.TotalPages,
		},
	}

	for _, doc := range result.Items {
		queue.Items = append(queue.Items, domain.PendingDocumentDTO{
			PendingDocument: doc,
			AllowedActions:  domain.AllowedActions(doc.Status),
		})
	}

	return queue, nil
}

// Approve approves a document
func (s *ApprovalService) Approve(ctx context.Context, docID string, status domain.DocumentStatus) error {
	if err := s.gate(status, domain.ActionApprove); err != nil {
		return err
	}
	return s.backend.ApproveDocument(ctx, docID)
}

// Reject rejects a document. The reason is mandatory and must not be blank.
func (s *ApprovalService) Reject(ctx context.Context, docID, reason string, status domain.DocumentStatus) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("%w: rejection reason is required", ErrInvalidInput)
	}
	if err := s.gate(status, domain.ActionReject); err != nil {
		return err
	}
	return s.backend.RejectDocument(ctx, docID, reason)
}

// RequestAccess asks the document owner for read access, with an optional
// message from the reviewer
func (s *ApprovalService) RequestAccess(ctx context.Context, docID, message string, status domain.DocumentStatus) error {
	if err := s.gate(status, domain.ActionRequestAccess); err != nil {
		return err
	}
	return s.backend.RequestAccess(ctx, docID, message)
}

// GrantAccess records that access was granted, with optional reviewer notes
func (s *ApprovalService) GrantAccess(ctx context.Context, docID, notes string) error {
	return s.backend.GrantAccess(ctx, docID, notes)
}

// DenyAccess records an access denial. The reason is mandatory and must not
// be blank.
func (s *ApprovalService) DenyAccess(ctx context.Context, docID, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("%w: denial reason is required", ErrInvalidInput)
	}
	return s.backend.DenyAccess(ctx, docID, reason)
}

// SubmitForProcessing queues an approved document for processing
func (s *ApprovalService) SubmitForProcessing(ctx context.Context, docID string, status domain.DocumentStatus) error {
	if err := s.gate(status, domain.ActionSubmitForProcessing); err != nil {
		return err
	}
	return s.backend.SubmitForProcessing(ctx, docID)
}

// Process starts processing of a queued document
func (s *ApprovalService) Process(ctx context.Context, docID string, status domain.DocumentStatus) error {
	if err := s.gate(status, domain.ActionProcess); err != nil {
		return err
	}
	return s.backend.ProcessDocument(ctx, docID)
}

// Retry re-runs processing for a failed document
func (s *ApprovalService) Retry(ctx context.Context, docID string, status domain.DocumentStatus) error {
	if err := s.gate(status, domain.ActionRetry); err != nil {
		return err
	}
	return s.backend.RetryProcessing(ctx, docID)
}

// Delete removes a document record
func (s *ApprovalService) Delete(ctx context.Context, docID string) error {
	return s.backend.DeleteDocument(ctx, docID)
}

// UpdateMetadata applies a partial metadata correction. Only the fields the
// reviewer actually changed are sent; an empty update is rejected.
func (s *ApprovalService) UpdateMetadata(ctx context.Context, docID string, req domain.UpdateMetadataRequest) error {
	fields := make(map[string]interface{})

	set := func(key string, val *string) {
		if val != nil {
			fields[key] = *val
		}
	}
	set("title", req.Title)
	set("doc_type", req.DocType)
	set("sow_number", req.SOWNumber)
	set("deliverable", req.Deliverable)
	set("responsible_party", req.ResponsibleParty)
	set("deliverable_id", req.DeliverableID)
	set("confidence", req.Confidence)
	set("link", req.Link)
	set("notes", req.Notes)

	if len(fields) == 0 {
		return fmt.Errorf("%w: no metadata fields to update", ErrInvalidInput)
	}

	return s.backend.UpdateMetadata(ctx, docID, fields)
}

// gate rejects an action the document's current status does not permit. An
// unknown status skips the check: the backend remains the authority and the
// console must not block actions it cannot reason about.
func (s *ApprovalService) gate(status domain.DocumentStatus, action domain.DocumentAction) error {
	if status == "" {
		return nil
	}
	if !domain.ActionAllowed(status, action) {
		return fmt.Errorf("%w: %s in status %s", ErrActionNotAllowed, action, status)
	}
	return nil
}
