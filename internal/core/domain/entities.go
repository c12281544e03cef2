package domain

import (
	"time"

	"github.com/google/uuid"
)

// PropertyType - тип объекта недвижимости (квартира, дом, участок)
type PropertyType string

const (
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeLand      PropertyType = "land"
)

type OfferStatus string

const (
	OfferStatusActive OfferStatus = "active"
	OfferStatusInDeal OfferStatus = "in_deal"
	OfferStatusClosed OfferStatus = "closed"
)

type NeedStatus string

const (
	NeedStatusActive    NeedStatus = "active"
	NeedStatusSatisfied NeedStatus = "satisfied"
)

type EventType string

const (
	EventTypeClientMeeting EventType = "client_meeting"
	EventTypeShowing       EventType = "showing"
	EventTypeScheduledCall EventType = "scheduled_call"
)

// Client - клиент агентства (продавец или покупатель).
// Все поля ФИО и контакты опциональны, но форма требует хотя бы один контакт.
type Client struct {
	ID         uuid.UUID
	LastName   *string
	FirstName  *string
	MiddleName *string
	Phone      *string
	Email      *string
	CreatedAt  time.Time
}

// Realtor - риэлтор агентства.
// CommissionShare - личная доля риэлтора в процентах (0-100).
// Если не указана, при расчетах используется DefaultCommissionShare.
type Realtor struct {
	ID              uuid.UUID
	LastName        string
	FirstName       string
	MiddleName      string
	CommissionShare *float64
	CreatedAt       time.Time
}

// Address - частично заполненный адрес.
// Используется и как фактическое местоположение объекта,
// и как желаемое местоположение в потребности.
type Address struct {
	City            *string
	Street          *string
	HouseNumber     *string
	ApartmentNumber *string
}

type Coordinates struct {
	Latitude  *float64 // -90 .. +90
	Longitude *float64 // -180 .. +180
}

// Property - объект недвижимости. Общие поля + Details,
// зависящие от типа (*ApartmentDetails, *HouseDetails, *LandDetails).
type Property struct {
	ID          uuid.UUID
	Type        PropertyType
	Address     Address
	Coordinates *Coordinates
	Details     PropertyDetails
	CreatedAt   time.Time
}

// PropertyDetails - "запечатанный" интерфейс деталей объекта.
// Потребители обязаны делать type switch по всем трем вариантам.
type PropertyDetails interface {
	isPropertyDetails()
}

type ApartmentDetails struct {
	Floor *float64
	Rooms *float64
	Area  *float64
}

type HouseDetails struct {
	Floors *float64
	Rooms  *float64
	Area   *float64
}

type LandDetails struct {
	Area *float64
}

func (*ApartmentDetails) isPropertyDetails() {}
func (*HouseDetails) isPropertyDetails()     {}
func (*LandDetails) isPropertyDetails()      {}

// Offer - предложение о продаже: объект выставлен клиентом через риэлтора по цене.
type Offer struct {
	ID         uuid.UUID
	ClientID   uuid.UUID
	RealtorID  uuid.UUID
	PropertyID uuid.UUID
	Price      float64
	Status     OfferStatus
	CreatedAt  time.Time
}

// Range - диапазон желаемого значения. nil-граница не накладывает ограничений.
type Range struct {
	Min *float64
	Max *float64
}

// Need - потребность покупателя: желаемый тип объекта с опциональным
// адресом, ценовым диапазоном и деталями, зависящими от типа.
type Need struct {
	ID           uuid.UUID
	ClientID     uuid.UUID
	RealtorID    uuid.UUID
	PropertyType PropertyType
	Address      *Address
	PriceRange   *Range
	Details      NeedDetails
	Status       NeedStatus
	CreatedAt    time.Time
}

type NeedDetails interface {
	isNeedDetails()
}

type ApartmentNeedDetails struct {
	AreaRange  *Range
	RoomsRange *Range
	FloorRange *Range
}

type HouseNeedDetails struct {
	AreaRange   *Range
	RoomsRange  *Range
	FloorsRange *Range
}

type LandNeedDetails struct {
	AreaRange *Range
}

func (*ApartmentNeedDetails) isNeedDetails() {}
func (*HouseNeedDetails) isNeedDetails()     {}
func (*LandNeedDetails) isNeedDetails()      {}

// Deal - заключенная сделка: связывает ровно одну потребность и одно предложение.
// После создания сделки потребность и предложение считаются использованными.
type Deal struct {
	ID        uuid.UUID
	NeedID    uuid.UUID
	OfferID   uuid.UUID
	CreatedAt time.Time
}

// DealCommissions - вычисляемая (не хранимая) финансовая разбивка сделки.
type DealCommissions struct {
	SellerServiceCost    float64
	BuyerServiceCost     float64
	SellerRealtorPayment float64
	BuyerRealtorPayment  float64
	CompanyIncome        float64
}

// Event - запланированная активность риэлтора.
type Event struct {
	ID        uuid.UUID
	RealtorID uuid.UUID
	DateTime  time.Time
	Duration  *float64 // в минутах
	Type      EventType
	Comment   *string
}
