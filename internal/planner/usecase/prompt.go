package usecase

import (
	"fmt"
	"strings"

	"ai-daily-planner/internal/model"
)

// schedulingSystemInstruction is the system instruction sent with every
// scheduling request.
const schedulingSystemInstruction = `You are a daily planning assistant. Your job is to arrange tasks inside a time window.

RULES:
1. Place every task you can inside the availability window. Higher priority tasks come first when not everything fits.
2. Use the exact task names given. Do not rename, merge or invent tasks.
3. Each scheduled block must last exactly the task's stated duration.
4. Blocks must not overlap and must lie entirely inside the window.
5. Times are 24-hour "HH:MM" strings.
6. Return ONLY a valid JSON array of objects with keys "task", "start" and "end". No markdown, no code blocks, no explanation text.

EXAMPLE OUTPUT:
[
  {"task": "Write report", "start": "09:00", "end": "10:00"},
  {"task": "Email replies", "start": "10:00", "end": "10:30"}
]`

// buildSchedulePrompt renders the task list and window into the user
// prompt. The output is deterministic for a given list and window so it
// can double as a cache key.
func buildSchedulePrompt(tasks []model.Task, window model.TimeWindow) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Availability window: %s to %s\n\nTasks:\n", window.Start, window.End))
	for i, t := range tasks {
		sb.WriteString(fmt.Sprintf("%d. %q, %d minutes, priority %s\n", i+1, t.Name, t.DurationMin, t.Priority))
	}
	sb.WriteString("\nReturn ONLY the JSON array with the schedule:")

	return sb.String()
}
