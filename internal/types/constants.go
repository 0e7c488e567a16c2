package types

const (
	ContextRequestIDKey = "request_id"
	RequestIDHeader     = "X-Request-ID"
)
