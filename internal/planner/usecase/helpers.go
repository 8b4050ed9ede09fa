package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"

	"ai-daily-planner/internal/model"
)

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeModelJSON removes markdown code fences and leading/trailing
// prose that models often add around JSON output.
func sanitizeModelJSON(text string) string {
	if matches := fenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: take everything between the first [ or { and the
	// last ] or }.
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}

// cacheKey derives the schedule-cache key from the rendered prompt.
func cacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}

// omittedTaskNames returns the names of submitted tasks the model left
// out of the schedule, in submission order, deduplicated.
func omittedTaskNames(tasks []model.Task, schedule model.Schedule) []string {
	scheduled := make(map[string]bool, len(schedule))
	for _, e := range schedule {
		scheduled[e.TaskName] = true
	}

	var omitted []string
	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if scheduled[t.Name] || seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		omitted = append(omitted, t.Name)
	}
	return omitted
}
