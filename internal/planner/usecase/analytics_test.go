package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"ai-daily-planner/internal/model"
	"ai-daily-planner/internal/planner"
)

func TestAnalytics(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{schedule: model.Schedule{
		{TaskName: "Write report", Start: 9 * 60, End: 10 * 60},
		{TaskName: "Email replies", Start: 10 * 60, End: 10*60 + 30},
		{TaskName: "Write report", Start: 11 * 60, End: 11*60 + 30},
	}}
	uc := newTestUseCase(repo, nil, nil)

	out := uc.Analytics(ctx)

	if out.EntryCount != 3 {
		t.Errorf("EntryCount = %d, want 3", out.EntryCount)
	}
	if out.TotalAvailableMin != 480 {
		t.Errorf("TotalAvailableMin = %d, want 480", out.TotalAvailableMin)
	}
	if out.TotalScheduledMin != 120 {
		t.Errorf("TotalScheduledMin = %d, want 120", out.TotalScheduledMin)
	}
	if math.Abs(out.UtilizationPct-25) > 0.01 {
		t.Errorf("UtilizationPct = %f, want 25", out.UtilizationPct)
	}

	if len(out.Shares) != 2 {
		t.Fatalf("Shares = %+v, want 2 aggregated entries", out.Shares)
	}
	if out.Shares[0].TaskName != "Write report" || out.Shares[0].DurationMin != 90 {
		t.Errorf("top share = %+v, want Write report with 90m", out.Shares[0])
	}
	if math.Abs(out.Shares[0].SharePct-75) > 0.01 {
		t.Errorf("top share pct = %f, want 75", out.Shares[0].SharePct)
	}

	if len(out.Timeline) != 3 {
		t.Fatalf("Timeline has %d rows, want 3", len(out.Timeline))
	}
	if out.Timeline[1].OffsetMin != 60 || out.Timeline[1].DurationMin != 30 {
		t.Errorf("timeline row = %+v, want offset 60 duration 30", out.Timeline[1])
	}
}

func TestAnalyticsEmptySchedule(t *testing.T) {
	uc := newTestUseCase(&memRepo{}, nil, nil)
	out := uc.Analytics(context.Background())

	if out.EntryCount != 0 || out.TotalScheduledMin != 0 || out.UtilizationPct != 0 {
		t.Errorf("empty analytics = %+v", out)
	}
	if len(out.Shares) != 0 || len(out.Timeline) != 0 {
		t.Errorf("empty analytics has shares or timeline: %+v", out)
	}
}

func TestExportToCalendar(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{schedule: model.Schedule{
		{TaskName: "Write report", Start: 9 * 60, End: 10 * 60},
		{TaskName: "Email replies", Start: 10 * 60, End: 10*60 + 30},
	}}
	cal := &mockCalendar{failFor: map[string]bool{"Email replies": true}}
	uc := newTestUseCase(repo, nil, cal)

	out, err := uc.ExportToCalendar(ctx, planner.ExportInput{Date: "2026-08-26"})
	if err != nil {
		t.Fatalf("ExportToCalendar: %v", err)
	}
	if len(out.Created) != 1 || out.Created[0].TaskName != "Write report" {
		t.Errorf("created = %+v", out.Created)
	}
	if len(out.Failed) != 1 || out.Failed[0] != "Email replies" {
		t.Errorf("failed = %+v", out.Failed)
	}

	req := cal.created[0]
	if req.StartTime.Hour() != 9 || req.StartTime.Minute() != 0 {
		t.Errorf("event start = %v, want 09:00", req.StartTime)
	}
	if req.EndTime.Sub(req.StartTime).Minutes() != 60 {
		t.Errorf("event length = %v, want 1h", req.EndTime.Sub(req.StartTime))
	}
	if req.CalendarID != "primary" {
		t.Errorf("calendar ID = %q, want primary default", req.CalendarID)
	}
}

func TestExportToCalendarErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("no calendar configured", func(t *testing.T) {
		repo := &memRepo{schedule: model.Schedule{{TaskName: "a", Start: 540, End: 600}}}
		uc := newTestUseCase(repo, nil, nil)
		if _, err := uc.ExportToCalendar(ctx, planner.ExportInput{}); !errors.Is(err, planner.ErrCalendarUnavailable) {
			t.Errorf("error = %v, want ErrCalendarUnavailable", err)
		}
	})

	t.Run("no schedule", func(t *testing.T) {
		uc := newTestUseCase(&memRepo{}, nil, &mockCalendar{})
		if _, err := uc.ExportToCalendar(ctx, planner.ExportInput{}); !errors.Is(err, planner.ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		repo := &memRepo{schedule: model.Schedule{{TaskName: "a", Start: 540, End: 600}}}
		uc := newTestUseCase(repo, nil, &mockCalendar{})
		if _, err := uc.ExportToCalendar(ctx, planner.ExportInput{Date: "26/08/2026"}); !errors.Is(err, planner.ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
	})
}
