package domain

import (
	"time"

	"github.com/google/uuid"
)

// Параметры создания сущностей. Идентификаторы и метки времени
// назначаются в use case, а не передаются снаружи.

type CreateClientParams struct {
	LastName   *string
	FirstName  *string
	MiddleName *string
	Phone      *string
	Email      *string
}

type CreateRealtorParams struct {
	LastName        string
	FirstName       string
	MiddleName      string
	CommissionShare *float64
}

type CreatePropertyParams struct {
	Type        PropertyType
	Address     Address
	Coordinates *Coordinates
	Details     PropertyDetails
}

type CreateOfferParams struct {
	ClientID   uuid.UUID
	RealtorID  uuid.UUID
	PropertyID uuid.UUID
	Price      float64
}

type CreateNeedParams struct {
	ClientID     uuid.UUID
	RealtorID    uuid.UUID
	PropertyType PropertyType
	Address      *Address
	PriceRange   *Range
	Details      NeedDetails
}

type CreateDealParams struct {
	NeedID  uuid.UUID
	OfferID uuid.UUID
}

type CreateEventParams struct {
	RealtorID uuid.UUID
	DateTime  time.Time
	Duration  *float64
	Type      EventType
	Comment   *string
}
