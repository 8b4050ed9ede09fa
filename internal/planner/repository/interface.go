package repository

import (
	"context"

	"ai-daily-planner/internal/model"
)

// Repository persists the planner's two documents: the task list and
// the last generated schedule. Loads degrade gracefully: a missing or
// malformed document yields empty state, never an error the caller has
// to recover from.
type Repository interface {
	LoadTasks(ctx context.Context) []model.Task
	SaveTasks(ctx context.Context, tasks []model.Task) error
	LoadSchedule(ctx context.Context) model.Schedule
	SaveSchedule(ctx context.Context, schedule model.Schedule) error
}
