package http

import (
	"github.com/gin-gonic/gin"

	"ai-daily-planner/pkg/response"
)

// AddTask godoc
// @Summary     Add a task
// @Description Appends a task (name, duration in minutes, priority) to the planning list.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body addTaskReq true "Task data"
// @Success     200 {object} addTaskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/tasks [POST]
func (h *handler) AddTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddTaskReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	output, err := h.uc.AddTask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddTask: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newAddTaskResp(output))
}

// ListTasks godoc
// @Summary     List tasks
// @Description Returns the ordered task list and the availability window.
// @Tags        Planner
// @Produce     json
// @Success     200 {object} listTasksResp
// @Router      /api/v1/planner/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	response.OK(c, h.newListTasksResp(h.uc.ListTasks(c.Request.Context())))
}

// RemoveTask godoc
// @Summary     Remove a task
// @Description Deletes the task at the given list position.
// @Tags        Planner
// @Produce     json
// @Param       index path int true "Task position"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/tasks/{index} [DELETE]
func (h *handler) RemoveTask(c *gin.Context) {
	ctx := c.Request.Context()

	index, err := h.processIndexParam(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.uc.RemoveTask(ctx, index); err != nil {
		h.l.Errorf(ctx, "uc.RemoveTask: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// SetWindow godoc
// @Summary     Set the availability window
// @Description Replaces the window within which all schedule entries must fall.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body setWindowReq true "Window bounds as HH:MM"
// @Success     200 {object} windowResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/window [PUT]
func (h *handler) SetWindow(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetWindowReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	window, err := h.uc.SetWindow(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetWindow: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newWindowResp(window))
}

// Generate godoc
// @Summary     Generate a schedule
// @Description Sends the task list and window to the language model and returns the validated schedule.
// @Tags        Planner
// @Produce     json
// @Success     200 {object} generateResp
// @Failure     400 {object} response.Resp "Bad Request - no tasks"
// @Failure     401 {object} response.Resp "Unauthorized - no model credential"
// @Failure     502 {object} response.Resp "Bad Gateway - model returned an unusable schedule"
// @Failure     503 {object} response.Resp "Service Unavailable - model call failed"
// @Router      /api/v1/planner/schedule/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Generate(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// LastSchedule godoc
// @Summary     Get the current schedule
// @Description Returns the most recent validated schedule, possibly empty.
// @Tags        Planner
// @Produce     json
// @Success     200 {object} scheduleResp
// @Router      /api/v1/planner/schedule [GET]
func (h *handler) LastSchedule(c *gin.Context) {
	response.OK(c, h.newScheduleResp(h.uc.LastSchedule(c.Request.Context())))
}

// Analytics godoc
// @Summary     Schedule analytics
// @Description Summarizes the schedule: utilization, per-task shares and a timeline.
// @Tags        Planner
// @Produce     json
// @Success     200 {object} analyticsResp
// @Router      /api/v1/planner/schedule/analytics [GET]
func (h *handler) Analytics(c *gin.Context) {
	response.OK(c, h.newAnalyticsResp(h.uc.Analytics(c.Request.Context())))
}

// Export godoc
// @Summary     Export schedule to Google Calendar
// @Description Creates one calendar event per schedule entry on the given date.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body exportReq false "Export options"
// @Success     200 {object} exportResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Service Unavailable - calendar not configured"
// @Router      /api/v1/planner/schedule/export [POST]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	output, err := h.uc.ExportToCalendar(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportToCalendar: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newExportResp(output))
}
