package constants

import "time"

// File upload constants
const (
	// MaxUploadSize is the maximum file upload size in bytes (100MB)
	MaxUploadSize = 100 << 20

	// MaxMemoryUpload is the part of an upload kept in memory before spilling to disk (32MB)
	MaxMemoryUpload = 32 << 20
)

// Server constants
const (
	// RequestTimeout bounds a single conversion request
	RequestTimeout = 120 * time.Second

	// ShutdownTimeout is how long the server waits for in-flight requests on shutdown
	ShutdownTimeout = 30 * time.Second

	// DefaultDocumentName is used when an upload does not provide a name
	DefaultDocumentName = "document"
)
