package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends a 400 error response.
func Error(c *gin.Context, err error) {
	ErrorWithCode(c, http.StatusBadRequest, 1, err)
}

// ErrorWithCode sends an error response with an explicit HTTP status and
// application error_code so clients can tell failure kinds apart.
func ErrorWithCode(c *gin.Context, status, errorCode int, err error) {
	c.JSON(status, Resp{
		ErrorCode: errorCode,
		Message:   err.Error(),
	})
}

// InternalError sends a 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests sends a 429 response.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "rate limit exceeded",
	})
}
