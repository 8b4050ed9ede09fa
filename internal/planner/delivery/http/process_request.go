package http

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"ai-daily-planner/internal/planner"
)

// processAddTaskReq binds and validates the add-task request body.
func (h *handler) processAddTaskReq(c *gin.Context) (addTaskReq, error) {
	var req addTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", planner.ErrInvalidInput, err)
	}
	return req, nil
}

// processIndexParam parses the :index path parameter.
func (h *handler) processIndexParam(c *gin.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, fmt.Errorf("%w: index must be an integer", planner.ErrInvalidInput)
	}
	return index, nil
}

// processSetWindowReq binds the window request body.
func (h *handler) processSetWindowReq(c *gin.Context) (setWindowReq, error) {
	var req setWindowReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", planner.ErrInvalidInput, err)
	}
	return req, nil
}

// processExportReq binds the optional export request body.
func (h *handler) processExportReq(c *gin.Context) (exportReq, error) {
	var req exportReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", planner.ErrInvalidInput, err)
	}
	return req, nil
}
