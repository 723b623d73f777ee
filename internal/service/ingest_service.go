package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/bsimkins11/project-agent-admin/internal/backend"
	"github.com/bsimkins11/project-agent-admin/internal/domain"
	"github.com/bsimkins11/project-agent-admin/internal/storage"
)

// allowedUploadExtensions is the set of file types accepted for document
// sources. Checked before any bytes leave the console.
var allowedUploadExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
	".md":   true,
	".html": true,
	".csv":  true,
	".xlsx": true,
	".xls":  true,
}

// IngestService handles document creation: single-record ingest, bulk CSV
// ingest and source file uploads. Uploaded files are validated locally, then
// spooled to storage before being forwarded to the backend.
type IngestService struct {
	backend  *backend.Client
	spool    storage.Storage
	maxBytes int64
	logger   *zap.Logger
}

// NewIngestService creates a new ingest service
func NewIngestService(backendClient *backend.Client, spool storage.Storage, maxUploadBytes int64, logger *zap.Logger) *IngestService {
	return &IngestService{
		backend:  backendClient,
		spool:    spool,
		maxBytes: maxUploadBytes,
		logger:   logger,
	}
}

// Ingest creates a single document record. Tags arrive as one comma-separated
// string and are split, trimmed and de-blanked before submission.
func (s *IngestService) Ingest(ctx context.Context, req domain.IngestDocumentRequest) error {
	payload := backend.IngestPayload{
		Title:     req.Title,
		DocType:   req.DocType,
		SourceURI: req.SourceURI,
		Owner:     req.Owner,
		Version:   req.Version,
		Tags:      SplitTags(req.Tags),
	}
	return s.backend.IngestDocument(ctx, payload)
}

// IngestCSV validates and forwards a bulk ingest CSV
func (s *IngestService) IngestCSV(ctx context.Context, filename string, size int64, file io.Reader) error {
	if !strings.EqualFold(filepath.Ext(filename), ".csv") {
		return fmt.Errorf("%w: expected a .csv file", ErrUnsupportedFileType)
	}
	return s.forwardUpload(ctx, filename, size, file, func(ctx context.Context, spooled io.Reader) error {
		return s.backend.IngestCSV(ctx, filename, spooled)
	})
}

// UploadSource validates and forwards a source file for an existing document
func (s *IngestService) UploadSource(ctx context.Context, docID, filename string, size int64, file io.Reader) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedUploadExtensions[ext] {
		return fmt.Errorf("%w: %s", ErrUnsupportedFileType, ext)
	}
	return s.forwardUpload(ctx, filename, size, file, func(ctx context.Context, spooled io.Reader) error {
		return s.backend.UploadSource(ctx, docID, filename, spooled)
	})
}

// AddSourceURL attaches a source URI to an existing document
func (s *IngestService) AddSourceURL(ctx context.Context, docID, sourceURI string) error {
	return s.backend.AddSourceURL(ctx, docID, sourceURI)
}

// forwardUpload spools the file locally, then streams the spooled copy to the
// backend. The spooled copy is kept for replay; only the forward can fail.
func (s *IngestService) forwardUpload(ctx context.Context, filename string, size int64, file io.Reader, forward func(context.Context, io.Reader) error) error {
	if size > s.maxBytes {
		return fmt.Errorf("%w: %d bytes (limit %d)", ErrFileTooLarge, size, s.maxBytes)
	}

	// Cap the read as well in case the declared size was wrong
	limited := io.LimitReader(file, s.maxBytes+1)

	spoolPath, written, err := s.spool.Upload(ctx, filename, "application/octet-stream", limited)
	if err != nil {
		return fmt.Errorf("failed to spool upload: %w", err)
	}
	if written > s.maxBytes {
		if delErr := s.spool.Delete(ctx, spoolPath); delErr != nil {
			s.logger.Warn("failed to remove oversized spooled upload",
				zap.String("spool_path", spoolPath),
				zap.Error(delErr),
			)
		}
		return fmt.Errorf("%w: %d bytes (limit %d)", ErrFileTooLarge, written, s.maxBytes)
	}

	spooled, err := s.spool.Download(ctx, spoolPath)
	if err != nil {
		return fmt.Errorf("failed to reopen spooled upload: %w", err)
	}
	defer spooled.Close()

	if err := forward(ctx, spooled); err != nil {
		s.logger.Error("upload forward failed, spooled copy retained",
			zap.String("filename", filename),
			zap.String("spool_path", spoolPath),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("upload forwarded",
		zap.String("filename", filename),
		zap.String("spool_path", spoolPath),
		zap.Int64("size", written),
	)

	return nil
}

// SplitTags turns a comma-separated tag string into a clean slice: trimmed,
// blanks dropped, nil for no tags
func SplitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
