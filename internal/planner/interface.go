package planner

import (
	"context"

	"ai-daily-planner/internal/model"
)

// UseCase defines the business logic interface for the planner domain.
type UseCase interface {
	// AddTask appends a task to the ordered task list.
	AddTask(ctx context.Context, input AddTaskInput) (AddTaskOutput, error)

	// RemoveTask deletes the task at the given list position.
	RemoveTask(ctx context.Context, index int) error

	// ListTasks returns the ordered task list and the current window.
	ListTasks(ctx context.Context) ListTasksOutput

	// SetWindow replaces the availability window.
	SetWindow(ctx context.Context, input SetWindowInput) (model.TimeWindow, error)

	// Generate runs the scheduling pipeline: prompt → model → validate.
	Generate(ctx context.Context) (GenerateOutput, error)

	// LastSchedule returns the most recent validated schedule.
	LastSchedule(ctx context.Context) ScheduleOutput

	// Analytics summarizes the current schedule against the window.
	Analytics(ctx context.Context) AnalyticsOutput

	// ExportToCalendar creates one calendar event per schedule entry.
	ExportToCalendar(ctx context.Context, input ExportInput) (ExportOutput, error)
}
