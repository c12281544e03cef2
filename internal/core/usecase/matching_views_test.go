package usecase

import (
	"testing"

	"brokerage-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNeedDetails_MatchingOffers(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewGetNeedDetailsUseCase(env.needs, env.offers, env.clients, env.realtors, env.properties, env.deals)

	// Потребность: квартира в Москве, 7-10 млн, 45-70 м2, 2-3 комнаты.
	view, err := uc.Execute(ctx, apartmentNeedID)
	require.NoError(t, err)

	// Подходит только предложение 1 (квартира на Ленина за 8.5 млн):
	// предложение 2 дороже максимума, 3 - в сделке, 4 - участок.
	require.Len(t, view.MatchingOffers, 1)
	match := view.MatchingOffers[0]
	assert.Equal(t, apartmentOfferID, match.Offer.ID)
	require.NotNil(t, match.Property)
	assert.Equal(t, propertyLeninaID, match.Property.ID)
	require.NotNil(t, match.Client)
	require.NotNil(t, match.Realtor)

	assert.True(t, view.Deletable)
}

func TestGetNeedDetails_SatisfiedNotDeletable(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewGetNeedDetailsUseCase(env.needs, env.offers, env.clients, env.realtors, env.properties, env.deals)

	view, err := uc.Execute(ctx, satisfiedNeedID)
	require.NoError(t, err)

	assert.False(t, view.Deletable)
}

func TestGetOfferDetails_MatchingNeeds(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewGetOfferDetailsUseCase(env.offers, env.clients, env.realtors, env.properties, env.needs, env.deals)

	view, err := uc.Execute(ctx, apartmentOfferID)
	require.NoError(t, err)

	// Для квартиры на Ленина подходит только активная потребность 1.
	require.Len(t, view.MatchingNeeds, 1)
	assert.Equal(t, apartmentNeedID, view.MatchingNeeds[0].ID)
	assert.True(t, view.Deletable)
}

func TestGetOfferDetails_InDealNotDeletable(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewGetOfferDetailsUseCase(env.offers, env.clients, env.realtors, env.properties, env.needs, env.deals)

	view, err := uc.Execute(ctx, inDealOfferID)
	require.NoError(t, err)

	assert.False(t, view.Deletable)
}

func TestSearch(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewSearchUseCase(env.clients, env.realtors, env.properties)

	t.Run("по фамилии с опечаткой", func(t *testing.T) {
		result, err := uc.Execute(ctx, "Иваноф")
		require.NoError(t, err)

		require.Len(t, result.Clients, 1)
		assert.Equal(t, "Иванов", *result.Clients[0].LastName)
	})

	t.Run("по улице", func(t *testing.T) {
		result, err := uc.Execute(ctx, "Садовая")
		require.NoError(t, err)

		require.Len(t, result.Properties, 1)
		assert.Equal(t, domain.PropertyTypeHouse, result.Properties[0].Type)
	})

	t.Run("риэлтор по имени", func(t *testing.T) {
		result, err := uc.Execute(ctx, "Ольга")
		require.NoError(t, err)

		require.Len(t, result.Realtors, 1)
		assert.Equal(t, "Новикова", result.Realtors[0].LastName)
	})
}

func TestFindProperties(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewFindPropertiesUseCase(env.properties)

	t.Run("по типу", func(t *testing.T) {
		landType := domain.PropertyTypeLand
		properties, err := uc.Execute(ctx, domain.PropertyFilters{Type: &landType})
		require.NoError(t, err)
		require.Len(t, properties, 1)
		assert.Equal(t, domain.PropertyTypeLand, properties[0].Type)
	})

	t.Run("по типу и адресу", func(t *testing.T) {
		apartmentType := domain.PropertyTypeApartment
		properties, err := uc.Execute(ctx, domain.PropertyFilters{
			Type:         &apartmentType,
			AddressQuery: "Гагарина",
		})
		require.NoError(t, err)
		require.Len(t, properties, 1)
		assert.Equal(t, "Гагарина", *properties[0].Address.Street)
	})

	t.Run("без фильтров - все", func(t *testing.T) {
		properties, err := uc.Execute(ctx, domain.PropertyFilters{})
		require.NoError(t, err)
		assert.Len(t, properties, 5)
	})
}

func TestGetDashboardStats(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewGetDashboardStatsUseCase(env.clients, env.realtors, env.properties, env.offers, env.needs, env.deals)

	stats, err := uc.Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Clients)
	assert.Equal(t, 3, stats.Realtors)
	assert.Equal(t, 5, stats.Properties)
	assert.Equal(t, 3, stats.ActiveOffers)
	assert.Equal(t, 2, stats.ActiveNeeds)
	assert.Equal(t, 1, stats.Deals)
}

func TestGetPropertyDetails_Geohash(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewGetPropertyDetailsUseCase(env.properties, env.offers)

	t.Run("с координатами", func(t *testing.T) {
		view, err := uc.Execute(ctx, propertyLeninaID)
		require.NoError(t, err)

		assert.NotEmpty(t, view.Geohash)
		assert.Len(t, view.Offers, 1)
		assert.False(t, view.Deletable)
	})

	t.Run("без координат", func(t *testing.T) {
		created, err := NewCreatePropertyUseCase(env.properties).Execute(ctx, domain.CreatePropertyParams{
			Type:    domain.PropertyTypeLand,
			Details: &domain.LandDetails{},
		})
		require.NoError(t, err)

		view, err := uc.Execute(ctx, created.Property.ID)
		require.NoError(t, err)

		assert.Empty(t, view.Geohash)
		assert.True(t, view.Deletable)
	})
}

func TestCreateProperty_DuplicateHint(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewCreatePropertyUseCase(env.properties)

	// Та же точка и характеристики, что у квартиры на Ленина.
	created, err := uc.Execute(ctx, domain.CreatePropertyParams{
		Type: domain.PropertyTypeApartment,
		Coordinates: &domain.Coordinates{
			Latitude:  f64Ptr(55.7558),
			Longitude: f64Ptr(37.6173),
		},
		Details: &domain.ApartmentDetails{Floor: f64Ptr(5), Rooms: f64Ptr(2), Area: f64Ptr(54)},
	})
	require.NoError(t, err)

	require.NotNil(t, created.PossibleDuplicateID)
	assert.Equal(t, propertyLeninaID, *created.PossibleDuplicateID)
}

func TestCreateProperty_Validation(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewCreatePropertyUseCase(env.properties)

	t.Run("детали не того типа", func(t *testing.T) {
		_, err := uc.Execute(ctx, domain.CreatePropertyParams{
			Type:    domain.PropertyTypeLand,
			Details: &domain.ApartmentDetails{},
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("широта вне диапазона", func(t *testing.T) {
		_, err := uc.Execute(ctx, domain.CreatePropertyParams{
			Type:        domain.PropertyTypeLand,
			Details:     &domain.LandDetails{},
			Coordinates: &domain.Coordinates{Latitude: f64Ptr(120), Longitude: f64Ptr(37)},
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
