package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/bsimkins11/project-agent-admin/internal/backend"
	"github.com/bsimkins11/project-agent-admin/internal/domain"
)

// folderIDPattern extracts the folder ID from a full Drive folder URL
var folderIDPattern = regexp.MustCompile(`/folders/([a-zA-Z0-9_-]+)`)

// DriveService handles Drive folder sync, folder search and document index
// analysis. Folder references are normalized locally; an empty set is
// rejected before any backend call.
type DriveService struct {
	backend *backend.Client
	logger  *zap.Logger
}

// NewDriveService creates a new Drive service
func NewDriveService(backendClient *backend.Client, logger *zap.Logger) *DriveService {
	return &DriveService{
		backend: backendClient,
		logger:  logger,
	}
}

// Sync normalizes the submitted folder references and triggers a backend
// sync. Folders arrive as one newline- or comma-separated string of IDs
// and/or full Drive URLs.
func (s *DriveService) Sync(ctx context.Context, req domain.DriveSyncRequest) (*domain.DriveSyncResponse, error) {
	folderIDs := ParseFolderIDs(req.Folders)
	if len(folderIDs) == 0 {
		return nil, ErrNoFolders
	}

	result, err := s.backend.SyncDrive(ctx, folderIDs, req.Recursive)
	if err != nil {
		return nil, err
	}

	s.logger.Info("drive sync completed",
		zap.Int("folders_submitted", len(folderIDs)),
		zap.Int("folders_processed", result.FoldersProcessed),
	)

	return &domain.DriveSyncResponse{
		FoldersProcessed: result.FoldersProcessed,
		Message:          result.Message,
	}, nil
}

// Search lists candidate documents in a single Drive folder
func (s *DriveService) Search(ctx context.Context, folder string) (*domain.DriveSearchResponse, error) {
	folderID := NormalizeFolderID(folder)
	if folderID == "" {
		return nil, ErrNoFolders
	}

	docs, err := s.backend.SearchDrive(ctx, folderID)
	if err != nil {
		return nil, err
	}

	return &domain.DriveSearchResponse{
		FolderID:  folderID,
		Documents: docs,
	}, nil
}

// AnalyzeIndex submits a document index for analysis. The three outcomes are
// mutually exclusive: documents created, access required (a request can be
// sent), or an access request was already sent.
func (s *DriveService) AnalyzeIndex(ctx context.Context, req domain.AnalyzeIndexRequest) (*domain.AnalyzeIndexResponse, error) {
	result, err := s.backend.AnalyzeIndex(ctx, req.IndexURL, req.IndexType)
	if err != nil {
		var accessErr *backend.AccessRequiredError
		if errors.As(err, &accessErr) {
			outcome := domain.IndexOutcomeAccessRequired
			if accessErr.AlreadyRequested {
				outcome = domain.IndexOutcomeAccessAlreadySent
			}
			return &domain.AnalyzeIndexResponse{
				Outcome: outcome,
				Details: accessErr.Details,
			}, nil
		}
		return nil, err
	}

	return &domain.AnalyzeIndexResponse{
		Outcome:          domain.IndexOutcomeCreated,
		DocumentsCreated: result.DocumentsCreated,
		Details:          result.Message,
	}, nil
}

// RequestIndexAccess sends the follow-up access request for a denied index
func (s *DriveService) RequestIndexAccess(ctx context.Context, req domain.RequestIndexAccessRequest) (string, error) {
	return s.backend.RequestIndexAccess(ctx, req.IndexURL, req.Message)
}

// ParseFolderIDs splits a free-form folder list into clean folder IDs.
// Entries may be separated by newlines or commas; full Drive URLs are reduced
// to their folder ID, blanks are dropped.
func ParseFolderIDs(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == ','
	})

	ids := make([]string, 0, len(fields))
	for _, f := range fields {
		if id := NormalizeFolderID(f); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// NormalizeFolderID turns a folder reference (raw ID or Drive URL) into a
// bare folder ID, or "" when nothing usable remains
func NormalizeFolderID(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if m := folderIDPattern.FindStringSubmatch(ref); m != nil {
		return m[1]
	}
	// URLs we cannot parse are dropped rather than passed through
	if strings.Contains(ref, "://") {
		return ""
	}
	return ref
}
