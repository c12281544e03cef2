package memory

import (
	"embed"
	"encoding/json"
	"fmt"
	"time"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

//go:embed fixtures/fixtures.json
var fixturesFS embed.FS

// Промежуточные структуры под формат fixtures.json.
// Поля-указатели сохраняют разницу между отсутствующим и нулевым значением.
type fixtureAddress struct {
	City            *string `json:"city"`
	Street          *string `json:"street"`
	HouseNumber     *string `json:"houseNumber"`
	ApartmentNumber *string `json:"apartmentNumber"`
}

type fixtureCoordinates struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type fixtureRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

type fixtureClient struct {
	ID         uuid.UUID `json:"id"`
	LastName   *string   `json:"lastName"`
	FirstName  *string   `json:"firstName"`
	MiddleName *string   `json:"middleName"`
	Phone      *string   `json:"phone"`
	Email      *string   `json:"email"`
	CreatedAt  time.Time `json:"createdAt"`
}

type fixtureRealtor struct {
	ID              uuid.UUID `json:"id"`
	LastName        string    `json:"lastName"`
	FirstName       string    `json:"firstName"`
	MiddleName      string    `json:"middleName"`
	CommissionShare *float64  `json:"commissionShare"`
	CreatedAt       time.Time `json:"createdAt"`
}

type fixturePropertyDetails struct {
	Floor  *float64 `json:"floor"`
	Floors *float64 `json:"floors"`
	Rooms  *float64 `json:"rooms"`
	Area   *float64 `json:"area"`
}

type fixtureProperty struct {
	ID          uuid.UUID               `json:"id"`
	Type        domain.PropertyType     `json:"type"`
	Address     fixtureAddress          `json:"address"`
	Coordinates *fixtureCoordinates     `json:"coordinates"`
	Details     *fixturePropertyDetails `json:"details"`
	CreatedAt   time.Time               `json:"createdAt"`
}

type fixtureOffer struct {
	ID         uuid.UUID          `json:"id"`
	ClientID   uuid.UUID          `json:"clientId"`
	RealtorID  uuid.UUID          `json:"realtorId"`
	PropertyID uuid.UUID          `json:"propertyId"`
	Price      float64            `json:"price"`
	Status     domain.OfferStatus `json:"status"`
	CreatedAt  time.Time          `json:"createdAt"`
}

type fixtureNeedDetails struct {
	AreaRange   *fixtureRange `json:"areaRange"`
	RoomsRange  *fixtureRange `json:"roomsRange"`
	FloorRange  *fixtureRange `json:"floorRange"`
	FloorsRange *fixtureRange `json:"floorsRange"`
}

type fixtureNeed struct {
	ID           uuid.UUID           `json:"id"`
	ClientID     uuid.UUID           `json:"clientId"`
	RealtorID    uuid.UUID           `json:"realtorId"`
	PropertyType domain.PropertyType `json:"propertyType"`
	Address      *fixtureAddress     `json:"address"`
	PriceRange   *fixtureRange       `json:"priceRange"`
	Details      *fixtureNeedDetails `json:"details"`
	Status       domain.NeedStatus   `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
}

type fixtureDeal struct {
	ID        uuid.UUID `json:"id"`
	NeedID    uuid.UUID `json:"needId"`
	OfferID   uuid.UUID `json:"offerId"`
	CreatedAt time.Time `json:"createdAt"`
}

type fixtureEvent struct {
	ID        uuid.UUID        `json:"id"`
	RealtorID uuid.UUID        `json:"realtorId"`
	DateTime  time.Time        `json:"dateTime"`
	Duration  *float64         `json:"duration"`
	Type      domain.EventType `json:"type"`
	Comment   *string          `json:"comment"`
}

type fixtureFile struct {
	Clients    []fixtureClient   `json:"clients"`
	Realtors   []fixtureRealtor  `json:"realtors"`
	Properties []fixtureProperty `json:"properties"`
	Offers     []fixtureOffer    `json:"offers"`
	Needs      []fixtureNeed     `json:"needs"`
	Deals      []fixtureDeal     `json:"deals"`
	Events     []fixtureEvent    `json:"events"`
}

// LoadFixtures наполняет хранилище демонстрационными данными.
// Используется при старте с флагом LOAD_FIXTURES и в тестах.
func LoadFixtures(store *Store) error {
	raw, err := fixturesFS.ReadFile("fixtures/fixtures.json")
	if err != nil {
		return fmt.Errorf("read fixtures: %w", err)
	}

	var file fixtureFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("unmarshal fixtures: %w", err)
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	for _, c := range file.Clients {
		store.clients = append(store.clients, domain.Client{
			ID:         c.ID,
			LastName:   c.LastName,
			FirstName:  c.FirstName,
			MiddleName: c.MiddleName,
			Phone:      c.Phone,
			Email:      c.Email,
			CreatedAt:  c.CreatedAt,
		})
	}

	for _, r := range file.Realtors {
		store.realtors = append(store.realtors, domain.Realtor{
			ID:              r.ID,
			LastName:        r.LastName,
			FirstName:       r.FirstName,
			MiddleName:      r.MiddleName,
			CommissionShare: r.CommissionShare,
			CreatedAt:       r.CreatedAt,
		})
	}

	for _, p := range file.Properties {
		details, err := p.domainDetails()
		if err != nil {
			return err
		}
		property := domain.Property{
			ID:        p.ID,
			Type:      p.Type,
			Address:   p.Address.domain(),
			Details:   details,
			CreatedAt: p.CreatedAt,
		}
		if p.Coordinates != nil {
			property.Coordinates = &domain.Coordinates{
				Latitude:  p.Coordinates.Latitude,
				Longitude: p.Coordinates.Longitude,
			}
		}
		store.properties = append(store.properties, property)
	}

	for _, o := range file.Offers {
		store.offers = append(store.offers, domain.Offer{
			ID:         o.ID,
			ClientID:   o.ClientID,
			RealtorID:  o.RealtorID,
			PropertyID: o.PropertyID,
			Price:      o.Price,
			Status:     o.Status,
			CreatedAt:  o.CreatedAt,
		})
	}

	for _, n := range file.Needs {
		need := domain.Need{
			ID:           n.ID,
			ClientID:     n.ClientID,
			RealtorID:    n.RealtorID,
			PropertyType: n.PropertyType,
			PriceRange:   n.PriceRange.domain(),
			Details:      n.domainDetails(),
			Status:       n.Status,
			CreatedAt:    n.CreatedAt,
		}
		if n.Address != nil {
			addr := n.Address.domain()
			need.Address = &addr
		}
		store.needs = append(store.needs, need)
	}

	for _, d := range file.Deals {
		store.deals = append(store.deals, domain.Deal{
			ID:        d.ID,
			NeedID:    d.NeedID,
			OfferID:   d.OfferID,
			CreatedAt: d.CreatedAt,
		})
	}

	for _, e := range file.Events {
		store.events = append(store.events, domain.Event{
			ID:        e.ID,
			RealtorID: e.RealtorID,
			DateTime:  e.DateTime,
			Duration:  e.Duration,
			Type:      e.Type,
			Comment:   e.Comment,
		})
	}

	return nil
}

func (a fixtureAddress) domain() domain.Address {
	return domain.Address{
		City:            a.City,
		Street:          a.Street,
		HouseNumber:     a.HouseNumber,
		ApartmentNumber: a.ApartmentNumber,
	}
}

func (r *fixtureRange) domain() *domain.Range {
	if r == nil {
		return nil
	}
	return &domain.Range{Min: r.Min, Max: r.Max}
}

func (p fixtureProperty) domainDetails() (domain.PropertyDetails, error) {
	d := p.Details
	if d == nil {
		d = &fixturePropertyDetails{}
	}
	switch p.Type {
	case domain.PropertyTypeApartment:
		return &domain.ApartmentDetails{Floor: d.Floor, Rooms: d.Rooms, Area: d.Area}, nil
	case domain.PropertyTypeHouse:
		return &domain.HouseDetails{Floors: d.Floors, Rooms: d.Rooms, Area: d.Area}, nil
	case domain.PropertyTypeLand:
		return &domain.LandDetails{Area: d.Area}, nil
	default:
		return nil, fmt.Errorf("fixture property %s: unknown type %q", p.ID, p.Type)
	}
}

func (n fixtureNeed) domainDetails() domain.NeedDetails {
	d := n.Details
	if d == nil {
		d = &fixtureNeedDetails{}
	}
	switch n.PropertyType {
	case domain.PropertyTypeHouse:
		return &domain.HouseNeedDetails{
			AreaRange:   d.AreaRange.domain(),
			RoomsRange:  d.RoomsRange.domain(),
			FloorsRange: d.FloorsRange.domain(),
		}
	case domain.PropertyTypeLand:
		return &domain.LandNeedDetails{AreaRange: d.AreaRange.domain()}
	default:
		return &domain.ApartmentNeedDetails{
			AreaRange:  d.AreaRange.domain(),
			RoomsRange: d.RoomsRange.domain(),
			FloorRange: d.FloorRange.domain(),
		}
	}
}
