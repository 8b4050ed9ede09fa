package usecase

import (
	"context"
	"sort"

	"ai-daily-planner/internal/planner"
)

// Analytics summarizes the current schedule against the window:
// utilization, per-task time shares and a timeline of blocks.
func (uc *implUseCase) Analytics(ctx context.Context) planner.AnalyticsOutput {
	uc.mu.RLock()
	schedule := uc.schedule
	window := uc.window
	uc.mu.RUnlock()

	out := planner.AnalyticsOutput{
		Window:            window,
		EntryCount:        len(schedule),
		TotalAvailableMin: window.DurationMin(),
		TotalScheduledMin: schedule.TotalScheduledMin(),
	}
	if out.TotalAvailableMin > 0 {
		out.UtilizationPct = float64(out.TotalScheduledMin) / float64(out.TotalAvailableMin) * 100
	}

	// Aggregate minutes per task name; duplicates in the schedule fold
	// into one share.
	minutes := make(map[string]int, len(schedule))
	order := make([]string, 0, len(schedule))
	for _, e := range schedule {
		if _, ok := minutes[e.TaskName]; !ok {
			order = append(order, e.TaskName)
		}
		minutes[e.TaskName] += e.DurationMin()
	}

	out.Shares = make([]planner.TaskShare, 0, len(order))
	for _, name := range order {
		share := planner.TaskShare{TaskName: name, DurationMin: minutes[name]}
		if out.TotalScheduledMin > 0 {
			share.SharePct = float64(minutes[name]) / float64(out.TotalScheduledMin) * 100
		}
		out.Shares = append(out.Shares, share)
	}
	sort.SliceStable(out.Shares, func(i, j int) bool {
		return out.Shares[i].DurationMin > out.Shares[j].DurationMin
	})

	out.Timeline = make([]planner.TimelineRow, 0, len(schedule))
	for _, e := range schedule {
		out.Timeline = append(out.Timeline, planner.TimelineRow{
			TaskName:    e.TaskName,
			Start:       e.Start,
			End:         e.End,
			OffsetMin:   int(e.Start - window.Start),
			DurationMin: e.DurationMin(),
		})
	}

	return out
}
