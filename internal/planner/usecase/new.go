package usecase

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"ai-daily-planner/internal/model"
	"ai-daily-planner/internal/planner/repository"
	"ai-daily-planner/pkg/gcalendar"
	"ai-daily-planner/pkg/llmprovider"
	pkgLog "ai-daily-planner/pkg/log"
)

// Requester sends one normalized generation request to a language model.
// *llmprovider.Manager satisfies it.
type Requester interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// CalendarClient creates calendar events. *gcalendar.Client satisfies it.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	llm        Requester
	calendar   CalendarClient
	repo       repository.Repository
	cache      *lru.Cache[string, model.Schedule]
	timezone   string
	calendarID string

	mu       sync.RWMutex
	tasks    []model.Task
	window   model.TimeWindow
	schedule model.Schedule
}

// New creates a planner UseCase, restoring persisted tasks and schedule
// from the repository. llm and calendar may be nil when the matching
// credentials are not configured; the affected operations then fail
// with their domain errors instead of panicking.
func New(
	l pkgLog.Logger,
	llm Requester,
	calendar CalendarClient,
	repo repository.Repository,
	cacheSize int,
	timezone string,
	calendarID string,
	window model.TimeWindow,
) *implUseCase {
	uc := &implUseCase{
		l:          l,
		llm:        llm,
		calendar:   calendar,
		repo:       repo,
		timezone:   timezone,
		calendarID: calendarID,
		window:     window,
	}

	if cacheSize > 0 {
		// lru.New only fails on non-positive sizes, which the guard excludes.
		uc.cache, _ = lru.New[string, model.Schedule](cacheSize)
	}

	ctx := context.Background()
	uc.tasks = repo.LoadTasks(ctx)
	uc.schedule = repo.LoadSchedule(ctx)
	if len(uc.tasks) > 0 || len(uc.schedule) > 0 {
		l.Infof(ctx, "planner: restored %d tasks and %d schedule entries", len(uc.tasks), len(uc.schedule))
	}

	return uc
}
