package usecase

import (
	"context"
	"testing"

	"brokerage-service/internal/adapters/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Тесты use case'ов работают против настоящего in-memory хранилища
// с демонстрационными данными: это те же адаптеры, что и в продакшене.

var (
	clientIvanovID   = uuid.MustParse("10000000-0000-0000-0000-000000000001")
	realtorSmirnovID = uuid.MustParse("20000000-0000-0000-0000-000000000001")
	apartmentNeedID  = uuid.MustParse("50000000-0000-0000-0000-000000000001")
	satisfiedNeedID  = uuid.MustParse("50000000-0000-0000-0000-000000000002")
	landNeedID       = uuid.MustParse("50000000-0000-0000-0000-000000000003")
	apartmentOfferID = uuid.MustParse("40000000-0000-0000-0000-000000000001")
	inDealOfferID    = uuid.MustParse("40000000-0000-0000-0000-000000000003")
	landOfferID      = uuid.MustParse("40000000-0000-0000-0000-000000000004")
	propertyLeninaID = uuid.MustParse("30000000-0000-0000-0000-000000000001")
)

type testEnv struct {
	clients    *memory.ClientStorageAdapter
	realtors   *memory.RealtorStorageAdapter
	properties *memory.PropertyStorageAdapter
	offers     *memory.OfferStorageAdapter
	needs      *memory.NeedStorageAdapter
	deals      *memory.DealStorageAdapter
	events     *memory.EventStorageAdapter
}

func newTestEnv(t *testing.T) (*testEnv, context.Context) {
	t.Helper()

	store := memory.NewStore()
	require.NoError(t, memory.LoadFixtures(store))

	return &testEnv{
		clients:    memory.NewClientStorageAdapter(store),
		realtors:   memory.NewRealtorStorageAdapter(store),
		properties: memory.NewPropertyStorageAdapter(store),
		offers:     memory.NewOfferStorageAdapter(store),
		needs:      memory.NewNeedStorageAdapter(store),
		deals:      memory.NewDealStorageAdapter(store),
		events:     memory.NewEventStorageAdapter(store),
	}, context.Background()
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }
