package usecase

import (
	"testing"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOffer(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewCreateOfferUseCase(env.offers, env.clients, env.realtors, env.properties)

	t.Run("успех", func(t *testing.T) {
		offer, err := uc.Execute(ctx, domain.CreateOfferParams{
			ClientID:   clientIvanovID,
			RealtorID:  realtorSmirnovID,
			PropertyID: propertyLeninaID,
			Price:      9000000,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.OfferStatusActive, offer.Status)

		stored, err := env.offers.GetByID(ctx, offer.ID)
		require.NoError(t, err)
		assert.Equal(t, float64(9000000), stored.Price)
	})

	t.Run("неположительная цена", func(t *testing.T) {
		_, err := uc.Execute(ctx, domain.CreateOfferParams{
			ClientID:   clientIvanovID,
			RealtorID:  realtorSmirnovID,
			PropertyID: propertyLeninaID,
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("несуществующий клиент", func(t *testing.T) {
		_, err := uc.Execute(ctx, domain.CreateOfferParams{
			ClientID:   uuid.New(),
			RealtorID:  realtorSmirnovID,
			PropertyID: propertyLeninaID,
			Price:      9000000,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("несуществующий объект", func(t *testing.T) {
		_, err := uc.Execute(ctx, domain.CreateOfferParams{
			ClientID:   clientIvanovID,
			RealtorID:  realtorSmirnovID,
			PropertyID: uuid.New(),
			Price:      9000000,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCreateNeed(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewCreateNeedUseCase(env.needs, env.clients, env.realtors)

	t.Run("успех без деталей", func(t *testing.T) {
		need, err := uc.Execute(ctx, domain.CreateNeedParams{
			ClientID:     clientIvanovID,
			RealtorID:    realtorSmirnovID,
			PropertyType: domain.PropertyTypeHouse,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.NeedStatusActive, need.Status)
	})

	t.Run("детали не того типа", func(t *testing.T) {
		_, err := uc.Execute(ctx, domain.CreateNeedParams{
			ClientID:     clientIvanovID,
			RealtorID:    realtorSmirnovID,
			PropertyType: domain.PropertyTypeHouse,
			Details:      &domain.ApartmentNeedDetails{},
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("вывернутый диапазон цены", func(t *testing.T) {
		_, err := uc.Execute(ctx, domain.CreateNeedParams{
			ClientID:     clientIvanovID,
			RealtorID:    realtorSmirnovID,
			PropertyType: domain.PropertyTypeApartment,
			PriceRange:   &domain.Range{Min: f64Ptr(10000000), Max: f64Ptr(7000000)},
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestListOffers_StatusFilter(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewListOffersUseCase(env.offers, env.clients, env.realtors, env.properties)

	all, err := uc.Execute(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	// Связи каждого фикстурного предложения разрешаются.
	for _, item := range all {
		assert.NotNil(t, item.Client)
		assert.NotNil(t, item.Realtor)
		assert.NotNil(t, item.Property)
	}

	active := domain.OfferStatusActive
	filtered, err := uc.Execute(ctx, &active)
	require.NoError(t, err)
	assert.Len(t, filtered, 3)
}

func TestListNeeds_StatusFilter(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewListNeedsUseCase(env.needs, env.clients, env.realtors)

	all, err := uc.Execute(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	satisfied := domain.NeedStatusSatisfied
	filtered, err := uc.Execute(ctx, &satisfied)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, satisfiedNeedID, filtered[0].Need.ID)
}

func TestGetClientDetails(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewGetClientDetailsUseCase(env.clients, env.needs, env.offers)

	view, err := uc.Execute(ctx, clientIvanovID)
	require.NoError(t, err)

	assert.Len(t, view.Offers, 2)
	assert.Empty(t, view.Needs)
	assert.False(t, view.Deletable)
}

func TestGetRealtorDetails(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewGetRealtorDetailsUseCase(env.realtors, env.offers, env.needs, env.events)

	view, err := uc.Execute(ctx, realtorSmirnovID)
	require.NoError(t, err)

	assert.Equal(t, "Смирнов", view.Realtor.LastName)
	assert.Len(t, view.Offers, 2)
	assert.Len(t, view.Needs, 1)
	assert.Len(t, view.Events, 3)
	assert.False(t, view.Deletable)
}
