package usecase

import (
	"context"
	"fmt"
	"strings"

	"ai-daily-planner/internal/model"
	"ai-daily-planner/internal/planner"
)

// AddTask validates and appends a task to the ordered list, then
// persists the full list.
func (uc *implUseCase) AddTask(ctx context.Context, input planner.AddTaskInput) (planner.AddTaskOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return planner.AddTaskOutput{}, fmt.Errorf("%w: task name must not be empty", planner.ErrInvalidInput)
	}
	if input.DurationMin <= 0 {
		return planner.AddTaskOutput{}, fmt.Errorf("%w: duration must be positive, got %d", planner.ErrInvalidInput, input.DurationMin)
	}
	if input.DurationMin > model.MaxTaskDurationMin {
		return planner.AddTaskOutput{}, fmt.Errorf("%w: duration %d exceeds %d minutes", planner.ErrInvalidInput, input.DurationMin, model.MaxTaskDurationMin)
	}

	priority, err := parsePriority(input.Priority)
	if err != nil {
		return planner.AddTaskOutput{}, err
	}

	t := model.Task{
		Name:        name,
		DurationMin: input.DurationMin,
		Priority:    priority,
	}

	uc.mu.Lock()
	uc.tasks = append(uc.tasks, t)
	index := len(uc.tasks) - 1
	snapshot := append([]model.Task(nil), uc.tasks...)
	uc.mu.Unlock()

	if err := uc.repo.SaveTasks(ctx, snapshot); err != nil {
		return planner.AddTaskOutput{}, fmt.Errorf("persist tasks: %w", err)
	}

	uc.l.Infof(ctx, "AddTask: added %q duration=%dm priority=%s index=%d", t.Name, t.DurationMin, t.Priority, index)

	return planner.AddTaskOutput{Task: t, Index: index}, nil
}

// RemoveTask deletes the task at index and persists the remaining list.
func (uc *implUseCase) RemoveTask(ctx context.Context, index int) error {
	uc.mu.Lock()
	if index < 0 || index >= len(uc.tasks) {
		n := len(uc.tasks)
		uc.mu.Unlock()
		return fmt.Errorf("%w: index %d with %d tasks", planner.ErrIndexOutOfRange, index, n)
	}
	removed := uc.tasks[index]
	uc.tasks = append(uc.tasks[:index], uc.tasks[index+1:]...)
	snapshot := append([]model.Task(nil), uc.tasks...)
	uc.mu.Unlock()

	if err := uc.repo.SaveTasks(ctx, snapshot); err != nil {
		return fmt.Errorf("persist tasks: %w", err)
	}

	uc.l.Infof(ctx, "RemoveTask: removed %q from index %d", removed.Name, index)
	return nil
}

// ListTasks returns a copy of the ordered task list plus the window.
func (uc *implUseCase) ListTasks(ctx context.Context) planner.ListTasksOutput {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return planner.ListTasksOutput{
		Tasks:  append([]model.Task(nil), uc.tasks...),
		Window: uc.window,
	}
}

// parsePriority normalizes the user string to a known priority.
// Empty input defaults to Medium, matching the entry form default.
func parsePriority(s string) (model.Priority, error) {
	if s == "" {
		return model.PriorityMedium, nil
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return model.PriorityLow, nil
	case "medium":
		return model.PriorityMedium, nil
	case "high":
		return model.PriorityHigh, nil
	}
	return "", fmt.Errorf("%w: unknown priority %q", planner.ErrInvalidInput, s)
}
