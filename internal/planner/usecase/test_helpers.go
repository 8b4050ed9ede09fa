package usecase

import (
	"context"
	"errors"

	"ai-daily-planner/internal/model"
	"ai-daily-planner/pkg/gcalendar"
	"ai-daily-planner/pkg/llmprovider"
)

// mockLogger is a no-op logger for tests.
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// memRepo keeps tasks and schedule in memory.
type memRepo struct {
	tasks     []model.Task
	schedule  model.Schedule
	saveTasks int
	saveSched int
	failSave  bool
}

func (r *memRepo) LoadTasks(ctx context.Context) []model.Task {
	return append([]model.Task(nil), r.tasks...)
}

func (r *memRepo) SaveTasks(ctx context.Context, tasks []model.Task) error {
	if r.failSave {
		return errors.New("disk full")
	}
	r.saveTasks++
	r.tasks = append([]model.Task(nil), tasks...)
	return nil
}

func (r *memRepo) LoadSchedule(ctx context.Context) model.Schedule {
	return append(model.Schedule(nil), r.schedule...)
}

func (r *memRepo) SaveSchedule(ctx context.Context, schedule model.Schedule) error {
	if r.failSave {
		return errors.New("disk full")
	}
	r.saveSched++
	r.schedule = append(model.Schedule(nil), schedule...)
	return nil
}

// mockRequester returns a canned response or error and records calls.
type mockRequester struct {
	resp    *llmprovider.Response
	err     error
	calls   int
	lastReq *llmprovider.Request
}

func (m *mockRequester) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

// mockCalendar records created events and can fail selected summaries.
type mockCalendar struct {
	created []gcalendar.CreateEventRequest
	failFor map[string]bool
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.failFor[req.Summary] {
		return nil, errors.New("quota exceeded")
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{
		ID:       "evt-1",
		Summary:  req.Summary,
		HtmlLink: "https://calendar.google.com/event?eid=evt-1",
	}, nil
}

func newTestUseCase(repo *memRepo, llm Requester, calendar CalendarClient) *implUseCase {
	window := model.TimeWindow{Start: 9 * 60, End: 17 * 60}
	return New(&mockLogger{}, llm, calendar, repo, 8, "UTC", "primary", window)
}
