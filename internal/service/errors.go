package service

import "errors"

// Common service errors
var (
	// ErrPermissionDenied is returned when a user doesn't have permission for an action
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrActionNotAllowed is returned when a document's status does not permit the requested action
	ErrActionNotAllowed = errors.New("action not allowed in current document status")

	// ErrStaleScope is returned when an inventory result belongs to a superseded project scope
	ErrStaleScope = errors.New("result belongs to a superseded project scope")

	// ErrFileTooLarge is returned when an upload exceeds the size cap
	ErrFileTooLarge = errors.New("file exceeds maximum upload size")

	// ErrUnsupportedFileType is returned when an upload's extension is not allowed
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrNoFolders is returned when a Drive sync request contains no usable folder references
	ErrNoFolders = errors.New("no folder IDs or URLs provided")

	// ErrUnknownDocType is returned when a classification names a document type outside the taxonomy
	ErrUnknownDocType = errors.New("unknown document type")

	// ErrUnknownCategory is returned when a category does not exist for the chosen document type
	ErrUnknownCategory = errors.New("unknown category for document type")

	// ErrUnknownSubcategory is returned when a subcategory does not exist for the chosen category
	ErrUnknownSubcategory = errors.New("unknown subcategory for category")
)
