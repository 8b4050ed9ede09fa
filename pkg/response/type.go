package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

const (
	// MessageSuccess is the message for successful responses.
	MessageSuccess = "success"

	// DefaultErrorMessage hides internal detail on 500s.
	DefaultErrorMessage = "internal server error"

	// InternalServerErrorCode is the error_code for unexpected failures.
	InternalServerErrorCode = 500
)
