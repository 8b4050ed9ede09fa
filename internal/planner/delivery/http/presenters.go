package http

import (
	"ai-daily-planner/internal/model"
	"ai-daily-planner/internal/planner"
)

// --- Request DTOs ---

type addTaskReq struct {
	Name        string `json:"name"             binding:"required"`
	DurationMin int    `json:"duration_min"     binding:"required"`
	Priority    string `json:"priority"         binding:"omitempty"`
}

func (r addTaskReq) toInput() planner.AddTaskInput {
	return planner.AddTaskInput{
		Name:        r.Name,
		DurationMin: r.DurationMin,
		Priority:    r.Priority,
	}
}

type setWindowReq struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end"   binding:"required"`
}

func (r setWindowReq) toInput() planner.SetWindowInput {
	return planner.SetWindowInput{Start: r.Start, End: r.End}
}

type exportReq struct {
	Date       string `json:"date"        binding:"omitempty"`
	CalendarID string `json:"calendar_id" binding:"omitempty"`
}

func (r exportReq) toInput() planner.ExportInput {
	return planner.ExportInput{Date: r.Date, CalendarID: r.CalendarID}
}

// --- Response DTOs ---

type taskResp struct {
	Name        string `json:"name"`
	DurationMin int    `json:"duration_min"`
	Priority    string `json:"priority"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		Name:        t.Name,
		DurationMin: t.DurationMin,
		Priority:    string(t.Priority),
	}
}

type windowResp struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func newWindowResp(w model.TimeWindow) windowResp {
	return windowResp{Start: w.Start.String(), End: w.End.String()}
}

type entryResp struct {
	TaskName string `json:"task_name"`
	Start    string `json:"start_time"`
	End      string `json:"end_time"`
}

func newEntriesResp(s model.Schedule) []entryResp {
	entries := make([]entryResp, len(s))
	for i, e := range s {
		entries[i] = entryResp{
			TaskName: e.TaskName,
			Start:    e.Start.String(),
			End:      e.End.String(),
		}
	}
	return entries
}

type addTaskResp struct {
	Task  taskResp `json:"task"`
	Index int      `json:"index"`
}

func (h *handler) newAddTaskResp(out planner.AddTaskOutput) addTaskResp {
	return addTaskResp{Task: newTaskResp(out.Task), Index: out.Index}
}

type listTasksResp struct {
	Tasks  []taskResp `json:"tasks"`
	Window windowResp `json:"window"`
}

func (h *handler) newListTasksResp(out planner.ListTasksOutput) listTasksResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listTasksResp{Tasks: tasks, Window: newWindowResp(out.Window)}
}

type generateResp struct {
	Schedule     []entryResp `json:"schedule"`
	Window       windowResp  `json:"window"`
	OmittedTasks []string    `json:"omitted_tasks,omitempty"`
	Provider     string      `json:"provider,omitempty"`
	Model        string      `json:"model,omitempty"`
	Cached       bool        `json:"cached"`
}

func (h *handler) newGenerateResp(out planner.GenerateOutput) generateResp {
	return generateResp{
		Schedule:     newEntriesResp(out.Schedule),
		Window:       newWindowResp(out.Window),
		OmittedTasks: out.OmittedTasks,
		Provider:     out.Provider,
		Model:        out.Model,
		Cached:       out.Cached,
	}
}

type scheduleResp struct {
	Schedule []entryResp `json:"schedule"`
	Window   windowResp  `json:"window"`
}

func (h *handler) newScheduleResp(out planner.ScheduleOutput) scheduleResp {
	return scheduleResp{
		Schedule: newEntriesResp(out.Schedule),
		Window:   newWindowResp(out.Window),
	}
}

type shareResp struct {
	TaskName    string  `json:"task_name"`
	DurationMin int     `json:"duration_min"`
	SharePct    float64 `json:"share_pct"`
}

type timelineRowResp struct {
	TaskName    string `json:"task_name"`
	Start       string `json:"start_time"`
	End         string `json:"end_time"`
	OffsetMin   int    `json:"offset_min"`
	DurationMin int    `json:"duration_min"`
}

type analyticsResp struct {
	Window            windowResp        `json:"window"`
	EntryCount        int               `json:"entry_count"`
	TotalAvailableMin int               `json:"total_available_min"`
	TotalScheduledMin int               `json:"total_scheduled_min"`
	UtilizationPct    float64           `json:"utilization_pct"`
	Shares            []shareResp       `json:"shares"`
	Timeline          []timelineRowResp `json:"timeline"`
}

func (h *handler) newAnalyticsResp(out planner.AnalyticsOutput) analyticsResp {
	shares := make([]shareResp, len(out.Shares))
	for i, s := range out.Shares {
		shares[i] = shareResp{
			TaskName:    s.TaskName,
			DurationMin: s.DurationMin,
			SharePct:    s.SharePct,
		}
	}
	timeline := make([]timelineRowResp, len(out.Timeline))
	for i, r := range out.Timeline {
		timeline[i] = timelineRowResp{
			TaskName:    r.TaskName,
			Start:       r.Start.String(),
			End:         r.End.String(),
			OffsetMin:   r.OffsetMin,
			DurationMin: r.DurationMin,
		}
	}
	return analyticsResp{
		Window:            newWindowResp(out.Window),
		EntryCount:        out.EntryCount,
		TotalAvailableMin: out.TotalAvailableMin,
		TotalScheduledMin: out.TotalScheduledMin,
		UtilizationPct:    out.UtilizationPct,
		Shares:            shares,
		Timeline:          timeline,
	}
}

type exportedEventResp struct {
	TaskName string `json:"task_name"`
	HtmlLink string `json:"html_link"`
}

type exportResp struct {
	Created []exportedEventResp `json:"created"`
	Failed  []string            `json:"failed,omitempty"`
}

func (h *handler) newExportResp(out planner.ExportOutput) exportResp {
	created := make([]exportedEventResp, len(out.Created))
	for i, e := range out.Created {
		created[i] = exportedEventResp{TaskName: e.TaskName, HtmlLink: e.HtmlLink}
	}
	return exportResp{Created: created, Failed: out.Failed}
}
