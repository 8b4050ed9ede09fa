package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-daily-planner/internal/planner"
	"ai-daily-planner/pkg/response"
)

// Application error codes for the planner domain.
const (
	errCodeInvalidInput       = 11
	errCodeIndexOutOfRange    = 12
	errCodeMissingCredential  = 13
	errCodeServiceUnavailable = 14
	errCodeMalformedResponse  = 15
	errCodeOverlap            = 16
	errCodeOutOfWindow        = 17
	errCodeScheduleEmpty      = 18
	errCodeCalendar           = 19
)

// respondError translates domain errors into HTTP responses. Model
// misbehavior (bad JSON, overlaps, out-of-window entries) is a bad
// gateway: the upstream model failed us, not the client.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrInvalidInput):
		response.ErrorWithCode(c, http.StatusBadRequest, errCodeInvalidInput, err)
	case errors.Is(err, planner.ErrIndexOutOfRange):
		response.ErrorWithCode(c, http.StatusBadRequest, errCodeIndexOutOfRange, err)
	case errors.Is(err, planner.ErrMissingCredential):
		response.ErrorWithCode(c, http.StatusUnauthorized, errCodeMissingCredential, err)
	case errors.Is(err, planner.ErrServiceUnavailable):
		response.ErrorWithCode(c, http.StatusServiceUnavailable, errCodeServiceUnavailable, err)
	case errors.Is(err, planner.ErrMalformedResponse):
		response.ErrorWithCode(c, http.StatusBadGateway, errCodeMalformedResponse, err)
	case errors.Is(err, planner.ErrOverlap):
		response.ErrorWithCode(c, http.StatusBadGateway, errCodeOverlap, err)
	case errors.Is(err, planner.ErrOutOfWindow):
		response.ErrorWithCode(c, http.StatusBadGateway, errCodeOutOfWindow, err)
	case errors.Is(err, planner.ErrScheduleEmpty):
		response.ErrorWithCode(c, http.StatusBadGateway, errCodeScheduleEmpty, err)
	case errors.Is(err, planner.ErrCalendarUnavailable):
		response.ErrorWithCode(c, http.StatusServiceUnavailable, errCodeCalendar, err)
	default:
		response.InternalError(c, err)
	}
}
