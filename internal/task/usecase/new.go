package usecase

import (
	"context"

	"life-manager/internal/task/repository"
	"life-manager/pkg/gcalendar"
	pkgLog "life-manager/pkg/log"
	"life-manager/pkg/openai"
)

// CalendarClient is the slice of the calendar API the use case needs.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	llm        openai.IOpenAI
	repo       repository.TaskRepository
	calendar   CalendarClient // optional, nil disables event scheduling
	calendarID string
	timezone   string
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	llm openai.IOpenAI,
	repo repository.TaskRepository,
	calendar CalendarClient,
	calendarID string,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		llm:        llm,
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
