package usecase

import (
	"testing"
	"time"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEvents_SortedByDateTime(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewListEventsUseCase(env.events)

	events, err := uc.Execute(ctx, nil)
	require.NoError(t, err)
	require.Len(t, events, 3)

	for i := 1; i < len(events); i++ {
		assert.True(t, events[i-1].DateTime.Before(events[i].DateTime),
			"события должны идти по возрастанию времени")
	}
}

func TestListEvents_FilterByRealtor(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewListEventsUseCase(env.events)

	events, err := uc.Execute(ctx, &realtorSmirnovID)
	require.NoError(t, err)
	assert.Len(t, events, 3)

	other := uuid.New()
	events, err = uc.Execute(ctx, &other)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestCreateEvent(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewCreateEventUseCase(env.events, env.realtors)

	t.Run("успех", func(t *testing.T) {
		event, err := uc.Execute(ctx, domain.CreateEventParams{
			RealtorID: realtorSmirnovID,
			DateTime:  time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC),
			Duration:  f64Ptr(45),
			Type:      domain.EventTypeShowing,
			Comment:   strPtr("Показ квартиры на Гагарина"),
		})
		require.NoError(t, err)

		stored, err := env.events.GetByID(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.EventTypeShowing, stored.Type)
	})

	t.Run("неизвестный тип", func(t *testing.T) {
		_, err := uc.Execute(ctx, domain.CreateEventParams{
			RealtorID: realtorSmirnovID,
			DateTime:  time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC),
			Type:      domain.EventType("vacation"),
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("нулевое время", func(t *testing.T) {
		_, err := uc.Execute(ctx, domain.CreateEventParams{
			RealtorID: realtorSmirnovID,
			Type:      domain.EventTypeScheduledCall,
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("отрицательная длительность", func(t *testing.T) {
		_, err := uc.Execute(ctx, domain.CreateEventParams{
			RealtorID: realtorSmirnovID,
			DateTime:  time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC),
			Duration:  f64Ptr(-10),
			Type:      domain.EventTypeClientMeeting,
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("несуществующий риэлтор", func(t *testing.T) {
		_, err := uc.Execute(ctx, domain.CreateEventParams{
			RealtorID: uuid.New(),
			DateTime:  time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC),
			Type:      domain.EventTypeClientMeeting,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
