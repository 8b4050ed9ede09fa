package usecase

import (
	"context"
	"fmt"

	"ai-daily-planner/internal/model"
	"ai-daily-planner/internal/planner"
)

// SetWindow replaces the availability window. The window is session
// state: it is not persisted and resets to the configured default on
// restart.
func (uc *implUseCase) SetWindow(ctx context.Context, input planner.SetWindowInput) (model.TimeWindow, error) {
	start, err := model.ParseClock(input.Start)
	if err != nil {
		return model.TimeWindow{}, fmt.Errorf("%w: start: %v", planner.ErrInvalidInput, err)
	}
	end, err := model.ParseClock(input.End)
	if err != nil {
		return model.TimeWindow{}, fmt.Errorf("%w: end: %v", planner.ErrInvalidInput, err)
	}

	w := model.TimeWindow{Start: start, End: end}
	if !w.Valid() {
		return model.TimeWindow{}, fmt.Errorf("%w: window start %s must be before end %s", planner.ErrInvalidInput, start, end)
	}

	uc.mu.Lock()
	uc.window = w
	uc.mu.Unlock()

	uc.l.Infof(ctx, "SetWindow: window set to %s-%s", w.Start, w.End)
	return w, nil
}
