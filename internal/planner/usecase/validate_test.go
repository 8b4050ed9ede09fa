package usecase

import (
	"errors"
	"testing"

	"ai-daily-planner/internal/model"
	"ai-daily-planner/internal/planner"
)

var validateTasks = []model.Task{
	{Name: "A", DurationMin: 60, Priority: model.PriorityHigh},
	{Name: "B", DurationMin: 60, Priority: model.PriorityLow},
}

var validateWindow = model.TimeWindow{Start: 9 * 60, End: 17 * 60}

func TestValidateScheduleAccepts(t *testing.T) {
	input := `[
		{"task": "B", "start": "10:30", "end": "11:30"},
		{"task": "A", "start": "09:00", "end": "10:00"}
	]`

	got, err := validateSchedule(input, validateTasks, validateWindow)
	if err != nil {
		t.Fatalf("validateSchedule: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0].TaskName != "A" || got[1].TaskName != "B" {
		t.Errorf("entries not sorted by start time: %+v", got)
	}
	if got[0].Start.String() != "09:00" || got[0].End.String() != "10:00" {
		t.Errorf("first entry times wrong: %+v", got[0])
	}
}

func TestValidateScheduleRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{
			"overlapping entries",
			`[{"task": "A", "start": "09:00", "end": "10:00"}, {"task": "B", "start": "09:30", "end": "10:30"}]`,
			planner.ErrOverlap,
		},
		{
			"identical starts",
			`[{"task": "A", "start": "09:00", "end": "10:00"}, {"task": "B", "start": "09:00", "end": "09:30"}]`,
			planner.ErrOverlap,
		},
		{
			"starts before window",
			`[{"task": "A", "start": "08:00", "end": "09:30"}]`,
			planner.ErrOutOfWindow,
		},
		{
			"ends after window",
			`[{"task": "A", "start": "16:30", "end": "17:30"}]`,
			planner.ErrOutOfWindow,
		},
		{
			"not JSON",
			`the schedule is 9am to 10am`,
			planner.ErrMalformedResponse,
		},
		{
			"object not array",
			`{"task": "A", "start": "09:00", "end": "10:00"}`,
			planner.ErrMalformedResponse,
		},
		{
			"missing key",
			`[{"task": "A", "start": "09:00"}]`,
			planner.ErrMalformedResponse,
		},
		{
			"bad time string",
			`[{"task": "A", "start": "24:00", "end": "25:00"}]`,
			planner.ErrMalformedResponse,
		},
		{
			"end before start",
			`[{"task": "A", "start": "10:00", "end": "09:00"}]`,
			planner.ErrMalformedResponse,
		},
		{
			"unknown task name",
			`[{"task": "C", "start": "09:00", "end": "10:00"}]`,
			planner.ErrMalformedResponse,
		},
		{
			"empty schedule for non-empty tasks",
			`[]`,
			planner.ErrScheduleEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateSchedule(tt.input, validateTasks, validateWindow)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidateScheduleEmptyForEmptyTasks(t *testing.T) {
	got, err := validateSchedule(`[]`, nil, validateWindow)
	if err != nil {
		t.Fatalf("validateSchedule: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %+v, want empty schedule", got)
	}
}

func TestSanitizeModelJSON(t *testing.T) {
	want := `[{"task": "A", "start": "09:00", "end": "10:00"}]`

	tests := []struct {
		name  string
		input string
	}{
		{"bare", want},
		{"json fence", "```json\n" + want + "\n```"},
		{"plain fence", "```\n" + want + "\n```"},
		{"surrounding prose", "Here is your schedule:\n" + want + "\nLet me know if you want changes."},
		{"fence with prose", "Sure!\n```json\n" + want + "\n```\nEnjoy your day."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeModelJSON(tt.input); got != want {
				t.Errorf("sanitizeModelJSON = %q, want %q", got, want)
			}
		})
	}
}
