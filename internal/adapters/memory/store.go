package memory

import (
	"sync"

	"brokerage-service/internal/core/domain"
)

// Store - хранилище всех коллекций в памяти. Данных одного офиса
// немного, поэтому обходимся срезами и линейным поиском.
// Мутации защищены RWMutex: ядро получает снимки и само ничего
// не меняет, поэтому конкурентные читатели безопасны.
type Store struct {
	mu sync.RWMutex

	clients    []domain.Client
	realtors   []domain.Realtor
	properties []domain.Property
	offers     []domain.Offer
	needs      []domain.Need
	deals      []domain.Deal
	events     []domain.Event
}

// NewStore создает пустое хранилище.
func NewStore() *Store {
	return &Store{}
}
