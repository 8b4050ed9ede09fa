package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ai-daily-planner/internal/model"
	"ai-daily-planner/internal/planner"
	"ai-daily-planner/pkg/llmprovider"
)

func twoTaskRepo() *memRepo {
	return &memRepo{tasks: []model.Task{
		{Name: "Write report", DurationMin: 60, Priority: model.PriorityHigh},
		{Name: "Email replies", DurationMin: 30, Priority: model.PriorityLow},
	}}
}

func TestGenerateHappyPath(t *testing.T) {
	ctx := context.Background()
	repo := twoTaskRepo()
	llm := &mockRequester{resp: &llmprovider.Response{
		Text: "```json\n" +
			`[{"task": "Write report", "start": "09:00", "end": "10:00"},` +
			`{"task": "Email replies", "start": "10:00", "end": "10:30"}]` +
			"\n```",
		ProviderName: "gemini",
		ModelName:    "gemini-2.5-flash",
	}}
	uc := newTestUseCase(repo, llm, nil)

	out, err := uc.Generate(ctx)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(out.Schedule) != 2 {
		t.Fatalf("schedule has %d entries, want 2", len(out.Schedule))
	}
	if out.Cached {
		t.Error("first generation reported as cached")
	}
	if out.Provider != "gemini" || out.Model != "gemini-2.5-flash" {
		t.Errorf("provenance = %s/%s", out.Provider, out.Model)
	}
	if len(out.OmittedTasks) != 0 {
		t.Errorf("omitted = %v, want none", out.OmittedTasks)
	}
	if repo.saveSched != 1 {
		t.Errorf("schedule persisted %d times, want 1", repo.saveSched)
	}
	if repo.saveTasks != 1 {
		t.Errorf("planning data persisted %d times, want 1", repo.saveTasks)
	}
	if llm.lastReq == nil || !strings.Contains(llm.lastReq.Messages[0].Text, `"Write report"`) {
		t.Error("prompt did not carry the task list")
	}

	got := uc.LastSchedule(ctx)
	if len(got.Schedule) != 2 {
		t.Errorf("LastSchedule has %d entries, want 2", len(got.Schedule))
	}
}

func TestGenerateCacheHitSkipsModel(t *testing.T) {
	ctx := context.Background()
	llm := &mockRequester{resp: &llmprovider.Response{
		Text: `[{"task": "Write report", "start": "09:00", "end": "10:00"},
			{"task": "Email replies", "start": "10:00", "end": "10:30"}]`,
	}}
	uc := newTestUseCase(twoTaskRepo(), llm, nil)

	if _, err := uc.Generate(ctx); err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	out, err := uc.Generate(ctx)
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if !out.Cached {
		t.Error("second generation not served from cache")
	}
	if llm.calls != 1 {
		t.Errorf("model called %d times, want 1", llm.calls)
	}
}

func TestGenerateCacheMissOnChangedInput(t *testing.T) {
	ctx := context.Background()
	llm := &mockRequester{resp: &llmprovider.Response{
		Text: `[{"task": "Write report", "start": "09:00", "end": "10:00"},
			{"task": "Email replies", "start": "10:00", "end": "10:30"}]`,
	}}
	uc := newTestUseCase(twoTaskRepo(), llm, nil)

	if _, err := uc.Generate(ctx); err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	if _, err := uc.SetWindow(ctx, planner.SetWindowInput{Start: "08:00", End: "17:00"}); err != nil {
		t.Fatalf("SetWindow: %v", err)
	}
	if _, err := uc.Generate(ctx); err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if llm.calls != 2 {
		t.Errorf("model called %d times, want 2 after window change", llm.calls)
	}
}

func TestGenerateErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("no tasks", func(t *testing.T) {
		uc := newTestUseCase(&memRepo{}, &mockRequester{}, nil)
		if _, err := uc.Generate(ctx); !errors.Is(err, planner.ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("degenerate window", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockRequester{}, nil, twoTaskRepo(), 0, "UTC", "", model.TimeWindow{})
		if _, err := uc.Generate(ctx); !errors.Is(err, planner.ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("no credential", func(t *testing.T) {
		uc := newTestUseCase(twoTaskRepo(), nil, nil)
		if _, err := uc.Generate(ctx); !errors.Is(err, planner.ErrMissingCredential) {
			t.Errorf("error = %v, want ErrMissingCredential", err)
		}
	})

	t.Run("model call fails", func(t *testing.T) {
		llm := &mockRequester{err: errors.New("connection refused")}
		uc := newTestUseCase(twoTaskRepo(), llm, nil)
		if _, err := uc.Generate(ctx); !errors.Is(err, planner.ErrServiceUnavailable) {
			t.Errorf("error = %v, want ErrServiceUnavailable", err)
		}
	})

	t.Run("malformed response not persisted", func(t *testing.T) {
		repo := twoTaskRepo()
		llm := &mockRequester{resp: &llmprovider.Response{Text: "cannot help with that"}}
		uc := newTestUseCase(repo, llm, nil)
		if _, err := uc.Generate(ctx); !errors.Is(err, planner.ErrMalformedResponse) {
			t.Errorf("error = %v, want ErrMalformedResponse", err)
		}
		if repo.saveSched != 0 {
			t.Error("rejected schedule was persisted")
		}
	})

	t.Run("empty schedule", func(t *testing.T) {
		llm := &mockRequester{resp: &llmprovider.Response{Text: "[]"}}
		uc := newTestUseCase(twoTaskRepo(), llm, nil)
		if _, err := uc.Generate(ctx); !errors.Is(err, planner.ErrScheduleEmpty) {
			t.Errorf("error = %v, want ErrScheduleEmpty", err)
		}
	})
}

func TestGeneratePartialScheduleReportsOmitted(t *testing.T) {
	ctx := context.Background()
	llm := &mockRequester{resp: &llmprovider.Response{
		Text: `[{"task": "Write report", "start": "09:00", "end": "10:00"}]`,
	}}
	uc := newTestUseCase(twoTaskRepo(), llm, nil)

	out, err := uc.Generate(ctx)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(out.OmittedTasks) != 1 || out.OmittedTasks[0] != "Email replies" {
		t.Errorf("omitted = %v, want [Email replies]", out.OmittedTasks)
	}
}

func TestBuildSchedulePromptDeterministic(t *testing.T) {
	tasks := []model.Task{
		{Name: "Write report", DurationMin: 60, Priority: model.PriorityHigh},
		{Name: "Email replies", DurationMin: 30, Priority: model.PriorityLow},
	}
	window := model.TimeWindow{Start: 9 * 60, End: 12 * 60}

	a := buildSchedulePrompt(tasks, window)
	b := buildSchedulePrompt(tasks, window)
	if a != b {
		t.Error("prompt is not deterministic for identical input")
	}
	for _, want := range []string{`"Write report"`, "60 minutes", "priority High", "09:00 to 12:00"} {
		if !strings.Contains(a, want) {
			t.Errorf("prompt missing %q:\n%s", want, a)
		}
	}
	if buildSchedulePrompt(tasks[:1], window) == a {
		t.Error("prompt identical for different task lists")
	}
}
