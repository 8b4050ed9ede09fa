package usecase

import (
	"encoding/json"
	"fmt"
	"sort"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"ai-daily-planner/internal/model"
	"ai-daily-planner/internal/planner"
)

// scheduleEntryDTO is the wire shape the model is instructed to emit.
type scheduleEntryDTO struct {
	Task  string `json:"task"`
	Start string `json:"start"`
	End   string `json:"end"`
}

const scheduleSchemaJSON = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["task", "start", "end"],
		"properties": {
			"task":  {"type": "string", "minLength": 1},
			"start": {"type": "string", "pattern": "^[0-9]{1,2}:[0-9]{2}$"},
			"end":   {"type": "string", "pattern": "^[0-9]{1,2}:[0-9]{2}$"}
		}
	}
}`

var scheduleSchema = jsonschema.MustCompileString("schedule.json", scheduleSchemaJSON)

// validateSchedule turns sanitized model output into a Schedule,
// enforcing shape, known task names, ordering, non-overlap and window
// containment. The returned schedule is sorted by start time.
func validateSchedule(cleaned string, tasks []model.Task, window model.TimeWindow) (model.Schedule, error) {
	var raw interface{}
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("%w: not valid JSON: %v", planner.ErrMalformedResponse, err)
	}
	if err := scheduleSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", planner.ErrMalformedResponse, err)
	}

	var dtos []scheduleEntryDTO
	if err := json.Unmarshal([]byte(cleaned), &dtos); err != nil {
		return nil, fmt.Errorf("%w: %v", planner.ErrMalformedResponse, err)
	}

	if len(dtos) == 0 {
		if len(tasks) == 0 {
			return model.Schedule{}, nil
		}
		return nil, planner.ErrScheduleEmpty
	}

	known := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		known[t.Name] = true
	}

	schedule := make(model.Schedule, 0, len(dtos))
	for _, d := range dtos {
		start, err := model.ParseClock(d.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %q: %v", planner.ErrMalformedResponse, d.Task, err)
		}
		end, err := model.ParseClock(d.End)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %q: %v", planner.ErrMalformedResponse, d.Task, err)
		}
		if start >= end {
			return nil, fmt.Errorf("%w: entry %q starts at %s but ends at %s", planner.ErrMalformedResponse, d.Task, start, end)
		}
		if !known[d.Task] {
			return nil, fmt.Errorf("%w: unknown task %q in schedule", planner.ErrMalformedResponse, d.Task)
		}
		schedule = append(schedule, model.ScheduleEntry{TaskName: d.Task, Start: start, End: end})
	}

	sort.SliceStable(schedule, func(i, j int) bool {
		return schedule[i].Start < schedule[j].Start
	})

	for i := 1; i < len(schedule); i++ {
		prev, cur := schedule[i-1], schedule[i]
		if cur.Start < prev.End || cur.Start == prev.Start {
			return nil, fmt.Errorf("%w: %q (%s-%s) overlaps %q (%s-%s)",
				planner.ErrOverlap, prev.TaskName, prev.Start, prev.End, cur.TaskName, cur.Start, cur.End)
		}
	}

	for _, e := range schedule {
		if !window.Contains(e.Start, e.End) {
			return nil, fmt.Errorf("%w: %q (%s-%s) outside window %s-%s",
				planner.ErrOutOfWindow, e.TaskName, e.Start, e.End, window.Start, window.End)
		}
	}

	return schedule, nil
}
