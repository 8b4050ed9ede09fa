package model

// TimeWindow is the user-declared availability bounding all schedule entries.
type TimeWindow struct {
	Start Clock `json:"start"`
	End   Clock `json:"end"`
}

// Valid reports whether the window is non-degenerate (start strictly
// before end).
func (w TimeWindow) Valid() bool {
	return w.Start < w.End
}

// DurationMin returns the window length in minutes.
func (w TimeWindow) DurationMin() int {
	return int(w.End - w.Start)
}

// Contains reports whether [start, end] lies entirely inside the window.
func (w TimeWindow) Contains(start, end Clock) bool {
	return start >= w.Start && end <= w.End
}

// ScheduleEntry is one task placed at a concrete start/end time.
// The JSON shape matches the persisted schedule document.
type ScheduleEntry struct {
	TaskName string `json:"task_name"`
	Start    Clock  `json:"start_time"`
	End      Clock  `json:"end_time"`
}

// DurationMin returns the entry length in minutes.
func (e ScheduleEntry) DurationMin() int {
	return int(e.End - e.Start)
}

// Schedule is an ordered, non-overlapping sequence of entries inside a
// single time window. It is only ever produced by the validator and is
// replaced wholesale on each successful generation.
type Schedule []ScheduleEntry

// TotalScheduledMin sums the durations of all entries.
func (s Schedule) TotalScheduledMin() int {
	total := 0
	for _, e := range s {
		total += e.DurationMin()
	}
	return total
}
