package domain

import "errors"

var (
	// ErrPersistence indicates the backing key-value store failed to read or write.
	// On write the in-memory mutation has already been applied.
	ErrPersistence = errors.New("persistence failed")

	// ErrInvalidInput indicates malformed input such as a document without an id.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedType indicates an upload with a MIME type outside the allow-list.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrUploadFailed indicates the upload collaborator could not produce a document.
	ErrUploadFailed = errors.New("upload failed")

	// ErrBackendUnavailable indicates the remote backend could not be reached
	// or answered with a non-success status.
	ErrBackendUnavailable = errors.New("backend unavailable")
)
