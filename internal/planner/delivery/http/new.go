package http

import (
	"ai-daily-planner/internal/planner"
	pkgLog "ai-daily-planner/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc planner.UseCase
}

// New creates the HTTP handler for the planner domain.
func New(l pkgLog.Logger, uc planner.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
