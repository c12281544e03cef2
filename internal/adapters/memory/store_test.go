package memory

import (
	"context"
	"testing"
	"time"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestLoadFixtures(t *testing.T) {
	store := NewStore()
	require.NoError(t, LoadFixtures(store))

	ctx := context.Background()

	clients, err := NewClientStorageAdapter(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 5)

	realtors, err := NewRealtorStorageAdapter(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, realtors, 3)

	properties, err := NewPropertyStorageAdapter(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, properties, 5)

	offers, err := NewOfferStorageAdapter(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, offers, 4)

	needs, err := NewNeedStorageAdapter(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, needs, 3)

	deals, err := NewDealStorageAdapter(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, deals, 1)

	events, err := NewEventStorageAdapter(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestLoadFixtures_DealConsistency(t *testing.T) {
	store := NewStore()
	require.NoError(t, LoadFixtures(store))

	ctx := context.Background()

	// Предложение, участвующее в сделке, уже имеет статус in_deal,
	// а потребность - satisfied.
	deal, err := NewDealStorageAdapter(store).GetByID(ctx, uuid.MustParse("60000000-0000-0000-0000-000000000001"))
	require.NoError(t, err)

	offer, err := NewOfferStorageAdapter(store).GetByID(ctx, deal.OfferID)
	require.NoError(t, err)
	assert.Equal(t, domain.OfferStatusInDeal, offer.Status)

	need, err := NewNeedStorageAdapter(store).GetByID(ctx, deal.NeedID)
	require.NoError(t, err)
	assert.Equal(t, domain.NeedStatusSatisfied, need.Status)
}

func TestClientAdapter_CRUD(t *testing.T) {
	store := NewStore()
	adapter := NewClientStorageAdapter(store)
	ctx := context.Background()

	client := domain.Client{
		ID:        uuid.New(),
		LastName:  strPtr("Тестов"),
		Phone:     strPtr("+7 (999) 000-00-00"),
		CreatedAt: time.Now(),
	}
	require.NoError(t, adapter.Create(ctx, client))

	got, err := adapter.GetByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, client.ID, got.ID)

	require.NoError(t, adapter.Delete(ctx, client.ID))

	_, err = adapter.GetByID(ctx, client.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = adapter.Delete(ctx, client.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOfferAdapter_ListBy(t *testing.T) {
	store := NewStore()
	require.NoError(t, LoadFixtures(store))
	adapter := NewOfferStorageAdapter(store)
	ctx := context.Background()

	// У клиента 1 два предложения (объекты 1 и 4).
	clientID := uuid.MustParse("10000000-0000-0000-0000-000000000001")
	byClient, err := adapter.ListByClient(ctx, clientID)
	require.NoError(t, err)
	assert.Len(t, byClient, 2)

	realtorID := uuid.MustParse("20000000-0000-0000-0000-000000000001")
	byRealtor, err := adapter.ListByRealtor(ctx, realtorID)
	require.NoError(t, err)
	assert.Len(t, byRealtor, 2)

	propertyID := uuid.MustParse("30000000-0000-0000-0000-000000000002")
	byProperty, err := adapter.ListByProperty(ctx, propertyID)
	require.NoError(t, err)
	assert.Len(t, byProperty, 1)
}

func newActivePair(t *testing.T, store *Store) (domain.Need, domain.Offer) {
	t.Helper()
	ctx := context.Background()

	offer := domain.Offer{
		ID:         uuid.New(),
		ClientID:   uuid.New(),
		RealtorID:  uuid.New(),
		PropertyID: uuid.New(),
		Price:      5000000,
		Status:     domain.OfferStatusActive,
		CreatedAt:  time.Now(),
	}
	require.NoError(t, NewOfferStorageAdapter(store).Create(ctx, offer))

	need := domain.Need{
		ID:           uuid.New(),
		ClientID:     uuid.New(),
		RealtorID:    uuid.New(),
		PropertyType: domain.PropertyTypeApartment,
		Details:      &domain.ApartmentNeedDetails{},
		Status:       domain.NeedStatusActive,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, NewNeedStorageAdapter(store).Create(ctx, need))

	return need, offer
}

func TestDealAdapter_CreateFlipsStatuses(t *testing.T) {
	store := NewStore()
	need, offer := newActivePair(t, store)
	ctx := context.Background()

	deal := domain.Deal{ID: uuid.New(), NeedID: need.ID, OfferID: offer.ID, CreatedAt: time.Now()}
	require.NoError(t, NewDealStorageAdapter(store).Create(ctx, deal))

	gotOffer, err := NewOfferStorageAdapter(store).GetByID(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OfferStatusInDeal, gotOffer.Status)

	gotNeed, err := NewNeedStorageAdapter(store).GetByID(ctx, need.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.NeedStatusSatisfied, gotNeed.Status)
}

func TestDealAdapter_CreateRejectsUsedPair(t *testing.T) {
	store := NewStore()
	need, offer := newActivePair(t, store)
	adapter := NewDealStorageAdapter(store)
	ctx := context.Background()

	require.NoError(t, adapter.Create(ctx, domain.Deal{ID: uuid.New(), NeedID: need.ID, OfferID: offer.ID}))

	// Пара уже занята, повторная сделка невозможна.
	err := adapter.Create(ctx, domain.Deal{ID: uuid.New(), NeedID: need.ID, OfferID: offer.ID})
	assert.ErrorIs(t, err, domain.ErrNotAvailable)

	// То же самое, если занята только одна сторона.
	otherNeed, otherOffer := newActivePair(t, store)
	err = adapter.Create(ctx, domain.Deal{ID: uuid.New(), NeedID: otherNeed.ID, OfferID: offer.ID})
	assert.ErrorIs(t, err, domain.ErrNotAvailable)
	err = adapter.Create(ctx, domain.Deal{ID: uuid.New(), NeedID: need.ID, OfferID: otherOffer.ID})
	assert.ErrorIs(t, err, domain.ErrNotAvailable)
}

func TestDealAdapter_CreateRejectsInactive(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	offer := domain.Offer{ID: uuid.New(), Status: domain.OfferStatusClosed}
	require.NoError(t, NewOfferStorageAdapter(store).Create(ctx, offer))
	need := domain.Need{ID: uuid.New(), Status: domain.NeedStatusActive}
	require.NoError(t, NewNeedStorageAdapter(store).Create(ctx, need))

	err := NewDealStorageAdapter(store).Create(ctx, domain.Deal{ID: uuid.New(), NeedID: need.ID, OfferID: offer.ID})
	assert.ErrorIs(t, err, domain.ErrNotAvailable)
}

func TestDealAdapter_CreateUnknownIDs(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	err := NewDealStorageAdapter(store).Create(ctx, domain.Deal{ID: uuid.New(), NeedID: uuid.New(), OfferID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDealAdapter_UsedIDs(t *testing.T) {
	store := NewStore()
	need, offer := newActivePair(t, store)
	adapter := NewDealStorageAdapter(store)
	ctx := context.Background()

	require.NoError(t, adapter.Create(ctx, domain.Deal{ID: uuid.New(), NeedID: need.ID, OfferID: offer.ID}))

	usedNeeds, err := adapter.UsedNeedIDs(ctx)
	require.NoError(t, err)
	assert.Contains(t, usedNeeds, need.ID)

	usedOffers, err := adapter.UsedOfferIDs(ctx)
	require.NoError(t, err)
	assert.Contains(t, usedOffers, offer.ID)
}

func TestPropertyAdapter_FindSimilar(t *testing.T) {
	store := NewStore()
	adapter := NewPropertyStorageAdapter(store)
	ctx := context.Background()

	existing := domain.Property{
		ID:   uuid.New(),
		Type: domain.PropertyTypeApartment,
		Coordinates: &domain.Coordinates{
			Latitude:  f64Ptr(55.7558),
			Longitude: f64Ptr(37.6173),
		},
		Details: &domain.ApartmentDetails{Floor: f64Ptr(5), Rooms: f64Ptr(2), Area: f64Ptr(54)},
	}
	require.NoError(t, adapter.Create(ctx, existing))

	t.Run("похожий объект рядом", func(t *testing.T) {
		candidate := domain.Property{
			ID:   uuid.New(),
			Type: domain.PropertyTypeApartment,
			Coordinates: &domain.Coordinates{
				Latitude:  f64Ptr(55.7559), // та же ячейка геохэша
				Longitude: f64Ptr(37.6174),
			},
			Details: &domain.ApartmentDetails{Floor: f64Ptr(5), Rooms: f64Ptr(2), Area: f64Ptr(54.5)},
		}
		duplicateID, err := adapter.FindSimilar(ctx, candidate)
		require.NoError(t, err)
		require.NotNil(t, duplicateID)
		assert.Equal(t, existing.ID, *duplicateID)
	})

	t.Run("далекие координаты", func(t *testing.T) {
		candidate := domain.Property{
			ID:   uuid.New(),
			Type: domain.PropertyTypeApartment,
			Coordinates: &domain.Coordinates{
				Latitude:  f64Ptr(59.9311),
				Longitude: f64Ptr(30.3609),
			},
			Details: &domain.ApartmentDetails{Floor: f64Ptr(5), Rooms: f64Ptr(2), Area: f64Ptr(54)},
		}
		duplicateID, err := adapter.FindSimilar(ctx, candidate)
		require.NoError(t, err)
		assert.Nil(t, duplicateID)
	})

	t.Run("другой тип объекта", func(t *testing.T) {
		candidate := domain.Property{
			ID:   uuid.New(),
			Type: domain.PropertyTypeHouse,
			Coordinates: &domain.Coordinates{
				Latitude:  f64Ptr(55.7558),
				Longitude: f64Ptr(37.6173),
			},
			Details: &domain.HouseDetails{Floors: f64Ptr(2), Rooms: f64Ptr(2), Area: f64Ptr(54)},
		}
		duplicateID, err := adapter.FindSimilar(ctx, candidate)
		require.NoError(t, err)
		assert.Nil(t, duplicateID)
	})

	t.Run("без координат ключ не строится", func(t *testing.T) {
		candidate := domain.Property{
			ID:      uuid.New(),
			Type:    domain.PropertyTypeApartment,
			Details: &domain.ApartmentDetails{Floor: f64Ptr(5), Rooms: f64Ptr(2), Area: f64Ptr(54)},
		}
		duplicateID, err := adapter.FindSimilar(ctx, candidate)
		require.NoError(t, err)
		assert.Nil(t, duplicateID)
	})
}
