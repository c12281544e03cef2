package usecase

import (
	"testing"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteClient_Guard(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewDeleteClientUseCase(env.clients, env.needs, env.offers)

	t.Run("клиент с предложениями не удаляется", func(t *testing.T) {
		err := uc.Execute(ctx, clientIvanovID)
		assert.ErrorIs(t, err, domain.ErrHasDependents)

		_, err = env.clients.GetByID(ctx, clientIvanovID)
		assert.NoError(t, err)
	})

	t.Run("клиент без зависимостей удаляется", func(t *testing.T) {
		fresh, err := NewCreateClientUseCase(env.clients).Execute(ctx, domain.CreateClientParams{
			Phone: strPtr("+7 (999) 777-77-77"),
		})
		require.NoError(t, err)

		require.NoError(t, uc.Execute(ctx, fresh.ID))

		_, err = env.clients.GetByID(ctx, fresh.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("несуществующий клиент", func(t *testing.T) {
		err := uc.Execute(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDeleteRealtor_Guard(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewDeleteRealtorUseCase(env.realtors, env.offers, env.needs, env.events)

	// У Смирнова есть и предложения, и активности.
	err := uc.Execute(ctx, realtorSmirnovID)
	assert.ErrorIs(t, err, domain.ErrHasDependents)
}

func TestDeleteProperty_Guard(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewDeletePropertyUseCase(env.properties, env.offers)

	t.Run("объект с предложениями не удаляется", func(t *testing.T) {
		err := uc.Execute(ctx, propertyLeninaID)
		assert.ErrorIs(t, err, domain.ErrHasDependents)
	})

	t.Run("объект без предложений удаляется", func(t *testing.T) {
		created, err := NewCreatePropertyUseCase(env.properties).Execute(ctx, domain.CreatePropertyParams{
			Type:    domain.PropertyTypeLand,
			Details: &domain.LandDetails{Area: f64Ptr(600)},
		})
		require.NoError(t, err)

		require.NoError(t, uc.Execute(ctx, created.Property.ID))
	})
}

func TestDeleteOffer_Guard(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewDeleteOfferUseCase(env.offers, env.deals)

	t.Run("предложение в сделке не удаляется", func(t *testing.T) {
		err := uc.Execute(ctx, inDealOfferID)
		assert.ErrorIs(t, err, domain.ErrHasDependents)
	})

	t.Run("свободное предложение удаляется", func(t *testing.T) {
		require.NoError(t, uc.Execute(ctx, apartmentOfferID))

		_, err := env.offers.GetByID(ctx, apartmentOfferID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDeleteNeed_Guard(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewDeleteNeedUseCase(env.needs, env.deals)

	t.Run("потребность в сделке не удаляется", func(t *testing.T) {
		err := uc.Execute(ctx, satisfiedNeedID)
		assert.ErrorIs(t, err, domain.ErrHasDependents)
	})

	t.Run("свободная потребность удаляется", func(t *testing.T) {
		require.NoError(t, uc.Execute(ctx, landNeedID))
	})
}
