package usecase

import (
	"context"
	"sort"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

type ListEventsUseCase struct {
	events port.EventStoragePort
}

func NewListEventsUseCase(events port.EventStoragePort) *ListEventsUseCase {
	return &ListEventsUseCase{events: events}
}

// Execute возвращает активности, отсортированные по времени начала.
// Если задан realtorID - только активности этого риэлтора.
func (uc *ListEventsUseCase) Execute(ctx context.Context, realtorID *uuid.UUID) ([]domain.Event, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ListEvents"})

	var (
		events []domain.Event
		err    error
	)
	if realtorID != nil {
		events, err = uc.events.ListByRealtor(ctx, *realtorID)
	} else {
		events, err = uc.events.List(ctx)
	}
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].DateTime.Before(events[j].DateTime)
	})

	return events, nil
}
