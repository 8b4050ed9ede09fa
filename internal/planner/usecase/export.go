package usecase

import (
	"context"
	"fmt"
	"time"

	"ai-daily-planner/internal/model"
	"ai-daily-planner/internal/planner"
	"ai-daily-planner/pkg/gcalendar"
)

// ExportToCalendar creates one Google Calendar event per schedule
// entry on the given date. Individual event failures are reported but
// do not abort the export.
func (uc *implUseCase) ExportToCalendar(ctx context.Context, input planner.ExportInput) (planner.ExportOutput, error) {
	if uc.calendar == nil {
		return planner.ExportOutput{}, planner.ErrCalendarUnavailable
	}

	uc.mu.RLock()
	schedule := append(model.Schedule(nil), uc.schedule...)
	uc.mu.RUnlock()

	if len(schedule) == 0 {
		return planner.ExportOutput{}, fmt.Errorf("%w: no schedule to export", planner.ErrInvalidInput)
	}

	loc, err := time.LoadLocation(uc.timezone)
	if err != nil {
		loc = time.UTC
	}

	day := time.Now().In(loc)
	if input.Date != "" {
		day, err = time.ParseInLocation("2006-01-02", input.Date, loc)
		if err != nil {
			return planner.ExportOutput{}, fmt.Errorf("%w: date must be YYYY-MM-DD: %v", planner.ErrInvalidInput, err)
		}
	}
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)

	calendarID := input.CalendarID
	if calendarID == "" {
		calendarID = uc.calendarID
	}

	var out planner.ExportOutput
	for _, e := range schedule {
		event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  calendarID,
			Summary:     e.TaskName,
			Description: fmt.Sprintf("Planned block %s to %s", e.Start, e.End),
			StartTime:   midnight.Add(time.Duration(e.Start.Minutes()) * time.Minute),
			EndTime:     midnight.Add(time.Duration(e.End.Minutes()) * time.Minute),
			Timezone:    uc.timezone,
		})
		if err != nil {
			uc.l.Warnf(ctx, "ExportToCalendar: event creation failed for %q (non-fatal): %v", e.TaskName, err)
			out.Failed = append(out.Failed, e.TaskName)
			continue
		}
		out.Created = append(out.Created, planner.ExportedEvent{
			TaskName: e.TaskName,
			HtmlLink: event.HtmlLink,
		})
	}

	uc.l.Infof(ctx, "ExportToCalendar: created %d events, %d failed", len(out.Created), len(out.Failed))
	return out, nil
}
