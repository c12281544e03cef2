package usecase

import (
	"testing"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDeal(t *testing.T) {
	t.Run("активная пара заключает сделку", func(t *testing.T) {
		env, ctx := newTestEnv(t)
		uc := NewCreateDealUseCase(env.deals, env.needs, env.offers)

		deal, err := uc.Execute(ctx, domain.CreateDealParams{
			NeedID:  apartmentNeedID,
			OfferID: apartmentOfferID,
		})
		require.NoError(t, err)

		offer, err := env.offers.GetByID(ctx, apartmentOfferID)
		require.NoError(t, err)
		assert.Equal(t, domain.OfferStatusInDeal, offer.Status)

		need, err := env.needs.GetByID(ctx, apartmentNeedID)
		require.NoError(t, err)
		assert.Equal(t, domain.NeedStatusSatisfied, need.Status)

		got, err := env.deals.GetByID(ctx, deal.ID)
		require.NoError(t, err)
		assert.Equal(t, apartmentOfferID, got.OfferID)
	})

	t.Run("удовлетворенная потребность недоступна", func(t *testing.T) {
		env, ctx := newTestEnv(t)
		uc := NewCreateDealUseCase(env.deals, env.needs, env.offers)

		_, err := uc.Execute(ctx, domain.CreateDealParams{
			NeedID:  satisfiedNeedID,
			OfferID: apartmentOfferID,
		})
		assert.ErrorIs(t, err, domain.ErrNotAvailable)
	})

	t.Run("предложение в другой сделке недоступно", func(t *testing.T) {
		env, ctx := newTestEnv(t)
		uc := NewCreateDealUseCase(env.deals, env.needs, env.offers)

		_, err := uc.Execute(ctx, domain.CreateDealParams{
			NeedID:  apartmentNeedID,
			OfferID: inDealOfferID,
		})
		assert.ErrorIs(t, err, domain.ErrNotAvailable)
	})

	t.Run("несуществующая потребность", func(t *testing.T) {
		env, ctx := newTestEnv(t)
		uc := NewCreateDealUseCase(env.deals, env.needs, env.offers)

		_, err := uc.Execute(ctx, domain.CreateDealParams{
			NeedID:  uuid.New(),
			OfferID: apartmentOfferID,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestListDeals_Commissions(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewListDealsUseCase(env.deals, env.needs, env.offers, env.properties, env.realtors)

	items, err := uc.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	require.NotNil(t, item.Need)
	require.NotNil(t, item.Offer)
	require.NotNil(t, item.Commissions)

	// Дом за 15 000 000: продавцу 30000 + 1%, покупателю 3%.
	// Продающий риэлтор Смирнов (50%), покупающий - тоже Смирнов (50%).
	assert.InDelta(t, 180000, item.Commissions.SellerServiceCost, 0.01)
	assert.InDelta(t, 450000, item.Commissions.BuyerServiceCost, 0.01)
	assert.InDelta(t, 90000, item.Commissions.SellerRealtorPayment, 0.01)
	assert.InDelta(t, 225000, item.Commissions.BuyerRealtorPayment, 0.01)
	assert.InDelta(t, 315000, item.Commissions.CompanyIncome, 0.01)
}

func TestGetDealDetails(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewGetDealDetailsUseCase(env.deals, env.needs, env.offers, env.properties, env.realtors, env.clients)

	dealID := uuid.MustParse("60000000-0000-0000-0000-000000000001")
	view, err := uc.Execute(ctx, dealID)
	require.NoError(t, err)

	require.NotNil(t, view.Property)
	assert.Equal(t, domain.PropertyTypeHouse, view.Property.Type)

	require.NotNil(t, view.SellerClient)
	assert.Equal(t, "Сидоров", *view.SellerClient.LastName)
	require.NotNil(t, view.BuyerClient)
	assert.Equal(t, "Морозов", *view.BuyerClient.LastName)

	require.NotNil(t, view.Commissions)
	assert.InDelta(t, 180000, view.Commissions.SellerServiceCost, 0.01)
}

func TestGetDealDetails_NotFound(t *testing.T) {
	env, ctx := newTestEnv(t)
	uc := NewGetDealDetailsUseCase(env.deals, env.needs, env.offers, env.properties, env.realtors, env.clients)

	_, err := uc.Execute(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
