package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ai-daily-planner/internal/model"
	pkgLog "ai-daily-planner/pkg/log"
)

const (
	tasksFile    = "tasks.json"
	scheduleFile = "schedule.json"
)

// Store persists the task list and last schedule as two JSON documents
// in a data directory. The documents are user-editable, so malformed
// content is treated as empty state rather than a fatal condition.
type Store struct {
	l       pkgLog.Logger
	dataDir string
}

// New creates a Store rooted at dataDir, creating the directory if needed.
func New(dataDir string, l pkgLog.Logger) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dataDir, err)
	}
	return &Store{l: l, dataDir: dataDir}, nil
}

// LoadTasks reads the task document. Missing or malformed content
// yields an empty list.
func (s *Store) LoadTasks(ctx context.Context) []model.Task {
	var tasks []model.Task
	if !s.loadDocument(ctx, tasksFile, &tasks) {
		return nil
	}

	// Drop entries that would never pass input validation; the file is
	// hand-editable and partial garbage should not poison the session.
	valid := tasks[:0]
	for _, t := range tasks {
		if t.Name != "" && t.DurationMin > 0 && t.Priority.Valid() {
			valid = append(valid, t)
		}
	}
	return valid
}

// SaveTasks writes the task document. An empty list is written as [].
func (s *Store) SaveTasks(ctx context.Context, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	return s.saveDocument(tasksFile, tasks)
}

// LoadSchedule reads the last schedule document. Missing or malformed
// content yields an empty schedule. The content is not re-validated:
// it only feeds the last-schedule debug view.
func (s *Store) LoadSchedule(ctx context.Context) model.Schedule {
	var schedule model.Schedule
	if !s.loadDocument(ctx, scheduleFile, &schedule) {
		return nil
	}
	return schedule
}

// SaveSchedule writes the schedule document.
func (s *Store) SaveSchedule(ctx context.Context, schedule model.Schedule) error {
	if schedule == nil {
		schedule = model.Schedule{}
	}
	return s.saveDocument(scheduleFile, schedule)
}

// loadDocument reports whether the document was read and decoded cleanly.
func (s *Store) loadDocument(ctx context.Context, name string, v any) bool {
	path := filepath.Join(s.dataDir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.l.Warnf(ctx, "jsonfile: failed to read %s, starting empty: %v", name, err)
		}
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		s.l.Warnf(ctx, "jsonfile: malformed %s, starting empty: %v", name, err)
		return false
	}
	return true
}

func (s *Store) saveDocument(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	path := filepath.Join(s.dataDir, name)

	// Write-then-rename so a crash mid-write never corrupts the document.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}
