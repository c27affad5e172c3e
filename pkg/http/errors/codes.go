package errors

// Error codes for standardized error responses
const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeInvalidPayload   = "invalid_payload"
	ErrCodeMissingField     = "missing_field"
	ErrCodeNotFound         = "not_found"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeUnprocessable    = "unprocessable"
	ErrCodeInternalError    = "internal_error"
	ErrCodeUpstreamError    = "upstream_error"
)

// Human-readable messages shared by every endpoint.
const (
	MsgBadRequest       = "Bad request"
	MsgNotFound         = "Resource not found"
	MsgMethodNotAllowed = "method not allowed"
	MsgUnprocessable    = "unprocessable request"
	MsgInternalError    = "internal server error"
)
