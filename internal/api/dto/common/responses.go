package common

// APIResponse is the standard wrapper for all API responses
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Client-facing error messages
const (
	MsgNotConfigured   = "Email service not configured. Admin must set RESEND_API_KEY in the server environment."
	MsgInvalidBody     = "Invalid request body"
	MsgMissingFields   = "Name, email, and message are required"
	MsgMessageShort    = "Message must be at least 10 characters"
	MsgSendFailed      = "Failed to send notification email"
	MsgServerError     = "Server error occurred"
	MsgNotFound        = "Not found"
	MsgForbiddenOrigin = "Origin not allowed"
)

// NewSuccessResponse creates a new successful API response
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
	}
}

// NewMessageResponse creates a new success response with a simple message
func NewMessageResponse(message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
	}
}

// NewErrorResponse creates a new error API response
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Error:   message,
	}
}
