package usecase

import (
	"context"
	"fmt"

	"ai-daily-planner/internal/model"
	"ai-daily-planner/internal/planner"
	"ai-daily-planner/pkg/llmprovider"
)

// Generate runs the full scheduling pipeline: render the prompt, call
// the model once (no internal retry), sanitize and validate the JSON
// response, then persist and cache the result.
func (uc *implUseCase) Generate(ctx context.Context) (planner.GenerateOutput, error) {
	uc.mu.RLock()
	tasks := append([]model.Task(nil), uc.tasks...)
	window := uc.window
	uc.mu.RUnlock()

	if len(tasks) == 0 {
		return planner.GenerateOutput{}, fmt.Errorf("%w: no tasks to schedule", planner.ErrInvalidInput)
	}
	if !window.Valid() {
		return planner.GenerateOutput{}, fmt.Errorf("%w: window %s-%s is degenerate", planner.ErrInvalidInput, window.Start, window.End)
	}
	if uc.llm == nil {
		return planner.GenerateOutput{}, planner.ErrMissingCredential
	}

	// Snapshot the planning inputs before calling the model, so the
	// task document always reflects what the schedule was built from.
	if err := uc.repo.SaveTasks(ctx, tasks); err != nil {
		uc.l.Warnf(ctx, "Generate: failed to persist planning data: %v", err)
	}

	prompt := buildSchedulePrompt(tasks, window)
	key := cacheKey(prompt)

	if uc.cache != nil {
		if cached, ok := uc.cache.Get(key); ok {
			uc.l.Infof(ctx, "Generate: cache hit for %d tasks in %s-%s", len(tasks), window.Start, window.End)
			uc.commitSchedule(ctx, cached)
			return planner.GenerateOutput{
				Schedule:     cached,
				Window:       window,
				OmittedTasks: omittedTaskNames(tasks, cached),
				Cached:       true,
			}, nil
		}
	}

	uc.l.Infof(ctx, "Generate: requesting schedule for %d tasks in %s-%s", len(tasks), window.Start, window.End)

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: schedulingSystemInstruction,
		Messages: []llmprovider.Message{
			{Role: "user", Text: prompt},
		},
		Temperature: 0.2, // low temperature for deterministic JSON output
		MaxTokens:   2048,
	})
	if err != nil {
		return planner.GenerateOutput{}, fmt.Errorf("%w: %v", planner.ErrServiceUnavailable, err)
	}

	uc.l.Debugf(ctx, "Generate: raw model response: %s", resp.Text)

	schedule, err := validateSchedule(sanitizeModelJSON(resp.Text), tasks, window)
	if err != nil {
		uc.l.Errorf(ctx, "Generate: rejected model response: %v", err)
		return planner.GenerateOutput{}, err
	}

	if uc.cache != nil {
		uc.cache.Add(key, schedule)
	}
	uc.commitSchedule(ctx, schedule)

	return planner.GenerateOutput{
		Schedule:     schedule,
		Window:       window,
		OmittedTasks: omittedTaskNames(tasks, schedule),
		Provider:     resp.ProviderName,
		Model:        resp.ModelName,
	}, nil
}

// commitSchedule installs a validated schedule as current state and
// persists it. Persistence failure is logged but does not void the
// schedule, which stays available in memory.
func (uc *implUseCase) commitSchedule(ctx context.Context, schedule model.Schedule) {
	uc.mu.Lock()
	uc.schedule = schedule
	uc.mu.Unlock()

	if err := uc.repo.SaveSchedule(ctx, schedule); err != nil {
		uc.l.Warnf(ctx, "Generate: failed to persist schedule: %v", err)
	}
}

// LastSchedule returns the most recent validated schedule, which may be
// empty when nothing has been generated yet.
func (uc *implUseCase) LastSchedule(ctx context.Context) planner.ScheduleOutput {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return planner.ScheduleOutput{
		Schedule: append(model.Schedule(nil), uc.schedule...),
		Window:   uc.window,
	}
}
