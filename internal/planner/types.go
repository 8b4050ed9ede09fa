package planner

import "ai-daily-planner/internal/model"

// --- UseCase inputs ---

// AddTaskInput is the input for adding a single task.
type AddTaskInput struct {
	Name        string
	DurationMin int
	Priority    string // Low/Medium/High; empty defaults to Medium
}

// SetWindowInput carries the window bounds as "HH:MM" strings.
type SetWindowInput struct {
	Start string
	End   string
}

// ExportInput is the input for calendar export.
type ExportInput struct {
	Date       string // "YYYY-MM-DD"; the day the schedule applies to
	CalendarID string // optional, defaults to the configured calendar
}

// --- UseCase outputs ---

// AddTaskOutput reports the stored task and its position.
type AddTaskOutput struct {
	Task  model.Task
	Index int
}

// ListTasksOutput is the current task list plus the governing window.
type ListTasksOutput struct {
	Tasks  []model.Task
	Window model.TimeWindow
}

// GenerateOutput is the result of one scheduling pipeline run.
type GenerateOutput struct {
	Schedule     model.Schedule
	Window       model.TimeWindow
	OmittedTasks []string // submitted task names absent from the schedule
	Provider     string
	Model        string
	Cached       bool // served from the prompt-keyed cache
}

// ScheduleOutput is the last validated schedule, if any.
type ScheduleOutput struct {
	Schedule model.Schedule
	Window   model.TimeWindow
}

// TaskShare is one task's slice of the scheduled time.
type TaskShare struct {
	TaskName    string
	DurationMin int
	SharePct    float64
}

// TimelineRow is one gantt-style row of the schedule.
type TimelineRow struct {
	TaskName    string
	Start       model.Clock
	End         model.Clock
	OffsetMin   int // minutes after window start
	DurationMin int
}

// AnalyticsOutput summarizes the schedule against the window.
type AnalyticsOutput struct {
	Window            model.TimeWindow
	EntryCount        int
	TotalAvailableMin int
	TotalScheduledMin int
	UtilizationPct    float64
	Shares            []TaskShare
	Timeline          []TimelineRow
}

// ExportedEvent is one created calendar event.
type ExportedEvent struct {
	TaskName string
	HtmlLink string
}

// ExportOutput is the result of a calendar export.
type ExportOutput struct {
	Created []ExportedEvent
	Failed  []string // task names whose event creation failed
}
