package usecase

import (
	"context"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

type CreateEventUseCase struct {
	events   port.EventStoragePort
	realtors port.RealtorStoragePort
}

func NewCreateEventUseCase(events port.EventStoragePort, realtors port.RealtorStoragePort) *CreateEventUseCase {
	return &CreateEventUseCase{events: events, realtors: realtors}
}

// Execute создает активность риэлтора (встреча, показ или звонок).
func (uc *CreateEventUseCase) Execute(ctx context.Context, params domain.CreateEventParams) (*domain.Event, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateEvent"})

	switch params.Type {
	case domain.EventTypeClientMeeting, domain.EventTypeShowing, domain.EventTypeScheduledCall:
	default:
		return nil, fmt.Errorf("%w: unknown event type %q", domain.ErrValidation, params.Type)
	}
	if params.DateTime.IsZero() {
		return nil, fmt.Errorf("%w: event date and time are required", domain.ErrValidation)
	}
	if params.Duration != nil && *params.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", domain.ErrValidation)
	}

	if _, err := uc.realtors.GetByID(ctx, params.RealtorID); err != nil {
		return nil, fmt.Errorf("realtor %s: %w", params.RealtorID, err)
	}

	event := domain.Event{
		ID:        uuid.New(),
		RealtorID: params.RealtorID,
		DateTime:  params.DateTime,
		Duration:  params.Duration,
		Type:      params.Type,
		Comment:   params.Comment,
	}

	if err := uc.events.Create(ctx, event); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Event created", port.Fields{"event_id": event.ID.String()})
	return &event, nil
}
