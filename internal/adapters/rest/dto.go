package rest

import (
	"time"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// --- Общие DTO ---

type AddressDTO struct {
	City            *string `json:"city"`
	Street          *string `json:"street"`
	HouseNumber     *string `json:"houseNumber"`
	ApartmentNumber *string `json:"apartmentNumber"`
}

type CoordinatesDTO struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type RangeDTO struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// PropertyDetailsDTO - плоское представление деталей объекта.
// Какие поля заполнены, зависит от типа объекта.
type PropertyDetailsDTO struct {
	Floor  *float64 `json:"floor,omitempty"`
	Floors *float64 `json:"floors,omitempty"`
	Rooms  *float64 `json:"rooms,omitempty"`
	Area   *float64 `json:"area,omitempty"`
}

type NeedDetailsDTO struct {
	AreaRange   *RangeDTO `json:"areaRange,omitempty"`
	RoomsRange  *RangeDTO `json:"roomsRange,omitempty"`
	FloorRange  *RangeDTO `json:"floorRange,omitempty"`
	FloorsRange *RangeDTO `json:"floorsRange,omitempty"`
}

// --- DTO сущностей ---

type ClientResponse struct {
	ID         string    `json:"id"`
	LastName   *string   `json:"lastName"`
	FirstName  *string   `json:"firstName"`
	MiddleName *string   `json:"middleName"`
	Phone      *string   `json:"phone"`
	Email      *string   `json:"email"`
	FullName   string    `json:"fullName"`
	CreatedAt  time.Time `json:"createdAt"`
}

type RealtorResponse struct {
	ID              string    `json:"id"`
	LastName        string    `json:"lastName"`
	FirstName       string    `json:"firstName"`
	MiddleName      string    `json:"middleName"`
	CommissionShare *float64  `json:"commissionShare"`
	FullName        string    `json:"fullName"`
	CreatedAt       time.Time `json:"createdAt"`
}

type PropertyResponse struct {
	ID           string              `json:"id"`
	Type         string              `json:"type"`
	Address      AddressDTO          `json:"address"`
	Coordinates  *CoordinatesDTO     `json:"coordinates"`
	Details      *PropertyDetailsDTO `json:"details"`
	ShortAddress string              `json:"shortAddress"`
	CreatedAt    time.Time           `json:"createdAt"`
}

type OfferResponse struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"clientId"`
	RealtorID  string    `json:"realtorId"`
	PropertyID string    `json:"propertyId"`
	Price      float64   `json:"price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type NeedResponse struct {
	ID           string          `json:"id"`
	ClientID     string          `json:"clientId"`
	RealtorID    string          `json:"realtorId"`
	PropertyType string          `json:"propertyType"`
	Address      *AddressDTO     `json:"address"`
	PriceRange   *RangeDTO       `json:"priceRange"`
	Details      *NeedDetailsDTO `json:"details"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type DealResponse struct {
	ID        string    `json:"id"`
	NeedID    string    `json:"needId"`
	OfferID   string    `json:"offerId"`
	CreatedAt time.Time `json:"createdAt"`
}

type CommissionsResponse struct {
	SellerServiceCost    float64 `json:"sellerServiceCost"`
	BuyerServiceCost     float64 `json:"buyerServiceCost"`
	SellerRealtorPayment float64 `json:"sellerRealtorPayment"`
	BuyerRealtorPayment  float64 `json:"buyerRealtorPayment"`
	CompanyIncome        float64 `json:"companyIncome"`
}

type EventResponse struct {
	ID        string    `json:"id"`
	RealtorID string    `json:"realtorId"`
	DateTime  time.Time `json:"dateTime"`
	Duration  *float64  `json:"duration"`
	Type      string    `json:"type"`
	Comment   *string   `json:"comment"`
}

// --- DTO представлений ---

type ClientDetailsResponse struct {
	Client    ClientResponse  `json:"client"`
	Needs     []NeedResponse  `json:"needs"`
	Offers    []OfferResponse `json:"offers"`
	Deletable bool            `json:"deletable"`
}

type RealtorDetailsResponse struct {
	Realtor   RealtorResponse `json:"realtor"`
	Offers    []OfferResponse `json:"offers"`
	Needs     []NeedResponse  `json:"needs"`
	Events    []EventResponse `json:"events"`
	Deletable bool            `json:"deletable"`
}

type PropertyDetailsResponse struct {
	Property  PropertyResponse `json:"property"`
	Geohash   string           `json:"geohash,omitempty"`
	Offers    []OfferResponse  `json:"offers"`
	Deletable bool             `json:"deletable"`
}

type PropertyCreatedResponse struct {
	Property            PropertyResponse `json:"property"`
	PossibleDuplicateID *string          `json:"possibleDuplicateId"`
}

type OfferListItemResponse struct {
	Offer    OfferResponse     `json:"offer"`
	Client   *ClientResponse   `json:"client"`
	Realtor  *RealtorResponse  `json:"realtor"`
	Property *PropertyResponse `json:"property"`
}

type OfferDetailsResponse struct {
	Offer         OfferResponse     `json:"offer"`
	Client        *ClientResponse   `json:"client"`
	Realtor       *RealtorResponse  `json:"realtor"`
	Property      *PropertyResponse `json:"property"`
	MatchingNeeds []NeedResponse    `json:"matchingNeeds"`
	Deletable     bool              `json:"deletable"`
}

type NeedListItemResponse struct {
	Need    NeedResponse     `json:"need"`
	Client  *ClientResponse  `json:"client"`
	Realtor *RealtorResponse `json:"realtor"`
}

type NeedDetailsResponse struct {
	Need           NeedResponse            `json:"need"`
	Client         *ClientResponse         `json:"client"`
	Realtor        *RealtorResponse        `json:"realtor"`
	MatchingOffers []OfferListItemResponse `json:"matchingOffers"`
	Deletable      bool                    `json:"deletable"`
}

type DealListItemResponse struct {
	Deal        DealResponse         `json:"deal"`
	Need        *NeedResponse        `json:"need"`
	Offer       *OfferResponse       `json:"offer"`
	Commissions *CommissionsResponse `json:"commissions"`
}

type DealDetailsResponse struct {
	Deal          DealResponse         `json:"deal"`
	Need          *NeedResponse        `json:"need"`
	Offer         *OfferResponse       `json:"offer"`
	Property      *PropertyResponse    `json:"property"`
	SellerClient  *ClientResponse      `json:"sellerClient"`
	BuyerClient   *ClientResponse      `json:"buyerClient"`
	SellerRealtor *RealtorResponse     `json:"sellerRealtor"`
	BuyerRealtor  *RealtorResponse     `json:"buyerRealtor"`
	Commissions   *CommissionsResponse `json:"commissions"`
}

type SearchResponse struct {
	Clients    []ClientResponse   `json:"clients"`
	Realtors   []RealtorResponse  `json:"realtors"`
	Properties []PropertyResponse `json:"properties"`
}

type DashboardStatsResponse struct {
	Clients      int `json:"clients"`
	Realtors     int `json:"realtors"`
	Properties   int `json:"properties"`
	ActiveOffers int `json:"activeOffers"`
	ActiveNeeds  int `json:"activeNeeds"`
	Deals        int `json:"deals"`
}

// --- Маппинг domain -> DTO ---

func toAddressDTO(a domain.Address) AddressDTO {
	return AddressDTO{
		City:            a.City,
		Street:          a.Street,
		HouseNumber:     a.HouseNumber,
		ApartmentNumber: a.ApartmentNumber,
	}
}

func toRangeDTO(r *domain.Range) *RangeDTO {
	if r == nil {
		return nil
	}
	return &RangeDTO{Min: r.Min, Max: r.Max}
}

func toClientResponse(c domain.Client) ClientResponse {
	return ClientResponse{
		ID:         c.ID.String(),
		LastName:   c.LastName,
		FirstName:  c.FirstName,
		MiddleName: c.MiddleName,
		Phone:      c.Phone,
		Email:      c.Email,
		FullName:   domain.FullName(c.LastName, c.FirstName, c.MiddleName),
		CreatedAt:  c.CreatedAt,
	}
}

func toClientResponsePtr(c *domain.Client) *ClientResponse {
	if c == nil {
		return nil
	}
	resp := toClientResponse(*c)
	return &resp
}

func toClientResponses(clients []domain.Client) []ClientResponse {
	out := make([]ClientResponse, len(clients))
	for i, c := range clients {
		out[i] = toClientResponse(c)
	}
	return out
}

func toRealtorResponse(r domain.Realtor) RealtorResponse {
	return RealtorResponse{
		ID:              r.ID.String(),
		LastName:        r.LastName,
		FirstName:       r.FirstName,
		MiddleName:      r.MiddleName,
		CommissionShare: r.CommissionShare,
		FullName:        domain.FullName(&r.LastName, &r.FirstName, &r.MiddleName),
		CreatedAt:       r.CreatedAt,
	}
}

func toRealtorResponsePtr(r *domain.Realtor) *RealtorResponse {
	if r == nil {
		return nil
	}
	resp := toRealtorResponse(*r)
	return &resp
}

func toRealtorResponses(realtors []domain.Realtor) []RealtorResponse {
	out := make([]RealtorResponse, len(realtors))
	for i, r := range realtors {
		out[i] = toRealtorResponse(r)
	}
	return out
}

func toPropertyDetailsDTO(details domain.PropertyDetails) *PropertyDetailsDTO {
	switch d := details.(type) {
	case *domain.ApartmentDetails:
		return &PropertyDetailsDTO{Floor: d.Floor, Rooms: d.Rooms, Area: d.Area}
	case *domain.HouseDetails:
		return &PropertyDetailsDTO{Floors: d.Floors, Rooms: d.Rooms, Area: d.Area}
	case *domain.LandDetails:
		return &PropertyDetailsDTO{Area: d.Area}
	default:
		return nil
	}
}

func toPropertyResponse(p domain.Property) PropertyResponse {
	resp := PropertyResponse{
		ID:           p.ID.String(),
		Type:         string(p.Type),
		Address:      toAddressDTO(p.Address),
		Details:      toPropertyDetailsDTO(p.Details),
		ShortAddress: domain.ShortAddress(p.Address),
		CreatedAt:    p.CreatedAt,
	}
	if p.Coordinates != nil {
		resp.Coordinates = &CoordinatesDTO{
			Latitude:  p.Coordinates.Latitude,
			Longitude: p.Coordinates.Longitude,
		}
	}
	return resp
}

func toPropertyResponsePtr(p *domain.Property) *PropertyResponse {
	if p == nil {
		return nil
	}
	resp := toPropertyResponse(*p)
	return &resp
}

func toPropertyResponses(properties []domain.Property) []PropertyResponse {
	out := make([]PropertyResponse, len(properties))
	for i, p := range properties {
		out[i] = toPropertyResponse(p)
	}
	return out
}

func toOfferResponse(o domain.Offer) OfferResponse {
	return OfferResponse{
		ID:         o.ID.String(),
		ClientID:   o.ClientID.String(),
		RealtorID:  o.RealtorID.String(),
		PropertyID: o.PropertyID.String(),
		Price:      o.Price,
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt,
	}
}

func toOfferResponsePtr(o *domain.Offer) *OfferResponse {
	if o == nil {
		return nil
	}
	resp := toOfferResponse(*o)
	return &resp
}

func toOfferResponses(offers []domain.Offer) []OfferResponse {
	out := make([]OfferResponse, len(offers))
	for i, o := range offers {
		out[i] = toOfferResponse(o)
	}
	return out
}

func toNeedDetailsDTO(details domain.NeedDetails) *NeedDetailsDTO {
	switch d := details.(type) {
	case *domain.ApartmentNeedDetails:
		return &NeedDetailsDTO{
			AreaRange:  toRangeDTO(d.AreaRange),
			RoomsRange: toRangeDTO(d.RoomsRange),
			FloorRange: toRangeDTO(d.FloorRange),
		}
	case *domain.HouseNeedDetails:
		return &NeedDetailsDTO{
			AreaRange:   toRangeDTO(d.AreaRange),
			RoomsRange:  toRangeDTO(d.RoomsRange),
			FloorsRange: toRangeDTO(d.FloorsRange),
		}
	case *domain.LandNeedDetails:
		return &NeedDetailsDTO{AreaRange: toRangeDTO(d.AreaRange)}
	default:
		return nil
	}
}

func toNeedResponse(n domain.Need) NeedResponse {
	resp := NeedResponse{
		ID:           n.ID.String(),
		ClientID:     n.ClientID.String(),
		RealtorID:    n.RealtorID.String(),
		PropertyType: string(n.PropertyType),
		PriceRange:   toRangeDTO(n.PriceRange),
		Details:      toNeedDetailsDTO(n.Details),
		Status:       string(n.Status),
		CreatedAt:    n.CreatedAt,
	}
	if n.Address != nil {
		addr := toAddressDTO(*n.Address)
		resp.Address = &addr
	}
	return resp
}

func toNeedResponsePtr(n *domain.Need) *NeedResponse {
	if n == nil {
		return nil
	}
	resp := toNeedResponse(*n)
	return &resp
}

func toNeedResponses(needs []domain.Need) []NeedResponse {
	out := make([]NeedResponse, len(needs))
	for i, n := range needs {
		out[i] = toNeedResponse(n)
	}
	return out
}

func toDealResponse(d domain.Deal) DealResponse {
	return DealResponse{
		ID:        d.ID.String(),
		NeedID:    d.NeedID.String(),
		OfferID:   d.OfferID.String(),
		CreatedAt: d.CreatedAt,
	}
}

func toCommissionsResponse(c *domain.DealCommissions) *CommissionsResponse {
	if c == nil {
		return nil
	}
	return &CommissionsResponse{
		SellerServiceCost:    c.SellerServiceCost,
		BuyerServiceCost:     c.BuyerServiceCost,
		SellerRealtorPayment: c.SellerRealtorPayment,
		BuyerRealtorPayment:  c.BuyerRealtorPayment,
		CompanyIncome:        c.CompanyIncome,
	}
}

func toEventResponse(e domain.Event) EventResponse {
	return EventResponse{
		ID:        e.ID.String(),
		RealtorID: e.RealtorID.String(),
		DateTime:  e.DateTime,
		Duration:  e.Duration,
		Type:      string(e.Type),
		Comment:   e.Comment,
	}
}

func toEventResponses(events []domain.Event) []EventResponse {
	out := make([]EventResponse, len(events))
	for i, e := range events {
		out[i] = toEventResponse(e)
	}
	return out
}

func toOfferListItemResponse(item domain.OfferListItem) OfferListItemResponse {
	return OfferListItemResponse{
		Offer:    toOfferResponse(item.Offer),
		Client:   toClientResponsePtr(item.Client),
		Realtor:  toRealtorResponsePtr(item.Realtor),
		Property: toPropertyResponsePtr(item.Property),
	}
}

// --- DTO запросов ---

type CreateClientRequest struct {
	LastName   *string `json:"lastName"`
	FirstName  *string `json:"firstName"`
	MiddleName *string `json:"middleName"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
}

func (req CreateClientRequest) toParams() domain.CreateClientParams {
	return domain.CreateClientParams{
		LastName:   req.LastName,
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		Phone:      req.Phone,
		Email:      req.Email,
	}
}

type CreateRealtorRequest struct {
	LastName        string   `json:"lastName"`
	FirstName       string   `json:"firstName"`
	MiddleName      string   `json:"middleName"`
	CommissionShare *float64 `json:"commissionShare"`
}

func (req CreateRealtorRequest) toParams() domain.CreateRealtorParams {
	return domain.CreateRealtorParams{
		LastName:        req.LastName,
		FirstName:       req.FirstName,
		MiddleName:      req.MiddleName,
		CommissionShare: req.CommissionShare,
	}
}

type CreatePropertyRequest struct {
	Type        string              `json:"type"`
	Address     *AddressDTO         `json:"address"`
	Coordinates *CoordinatesDTO     `json:"coordinates"`
	Details     *PropertyDetailsDTO `json:"details"`
}

func (req CreatePropertyRequest) toParams() domain.CreatePropertyParams {
	params := domain.CreatePropertyParams{
		Type: domain.PropertyType(req.Type),
	}
	if req.Address != nil {
		params.Address = domain.Address{
			City:            req.Address.City,
			Street:          req.Address.Street,
			HouseNumber:     req.Address.HouseNumber,
			ApartmentNumber: req.Address.ApartmentNumber,
		}
	}
	if req.Coordinates != nil {
		params.Coordinates = &domain.Coordinates{
			Latitude:  req.Coordinates.Latitude,
			Longitude: req.Coordinates.Longitude,
		}
	}

	d := req.Details
	if d == nil {
		d = &PropertyDetailsDTO{}
	}
	switch params.Type {
	case domain.PropertyTypeApartment:
		params.Details = &domain.ApartmentDetails{Floor: d.Floor, Rooms: d.Rooms, Area: d.Area}
	case domain.PropertyTypeHouse:
		params.Details = &domain.HouseDetails{Floors: d.Floors, Rooms: d.Rooms, Area: d.Area}
	case domain.PropertyTypeLand:
		params.Details = &domain.LandDetails{Area: d.Area}
	}
	return params
}

type CreateOfferRequest struct {
	ClientID   uuid.UUID `json:"clientId"`
	RealtorID  uuid.UUID `json:"realtorId"`
	PropertyID uuid.UUID `json:"propertyId"`
	Price      float64   `json:"price"`
}

func (req CreateOfferRequest) toParams() domain.CreateOfferParams {
	return domain.CreateOfferParams{
		ClientID:   req.ClientID,
		RealtorID:  req.RealtorID,
		PropertyID: req.PropertyID,
		Price:      req.Price,
	}
}

type CreateNeedRequest struct {
	ClientID     uuid.UUID       `json:"clientId"`
	RealtorID    uuid.UUID       `json:"realtorId"`
	PropertyType string          `json:"propertyType"`
	Address      *AddressDTO     `json:"address"`
	PriceRange   *RangeDTO       `json:"priceRange"`
	Details      *NeedDetailsDTO `json:"details"`
}

func (req CreateNeedRequest) toParams() domain.CreateNeedParams {
	params := domain.CreateNeedParams{
		ClientID:     req.ClientID,
		RealtorID:    req.RealtorID,
		PropertyType: domain.PropertyType(req.PropertyType),
	}
	if req.Address != nil {
		params.Address = &domain.Address{
			City:            req.Address.City,
			Street:          req.Address.Street,
			HouseNumber:     req.Address.HouseNumber,
			ApartmentNumber: req.Address.ApartmentNumber,
		}
	}
	if req.PriceRange != nil {
		params.PriceRange = &domain.Range{Min: req.PriceRange.Min, Max: req.PriceRange.Max}
	}

	d := req.Details
	if d == nil {
		d = &NeedDetailsDTO{}
	}
	toRange := func(r *RangeDTO) *domain.Range {
		if r == nil {
			return nil
		}
		return &domain.Range{Min: r.Min, Max: r.Max}
	}
	switch params.PropertyType {
	case domain.PropertyTypeHouse:
		params.Details = &domain.HouseNeedDetails{
			AreaRange:   toRange(d.AreaRange),
			RoomsRange:  toRange(d.RoomsRange),
			FloorsRange: toRange(d.FloorsRange),
		}
	case domain.PropertyTypeLand:
		params.Details = &domain.LandNeedDetails{AreaRange: toRange(d.AreaRange)}
	default:
		params.Details = &domain.ApartmentNeedDetails{
			AreaRange:  toRange(d.AreaRange),
			RoomsRange: toRange(d.RoomsRange),
			FloorRange: toRange(d.FloorRange),
		}
	}
	return params
}

type CreateDealRequest struct {
	NeedID  uuid.UUID `json:"needId"`
	OfferID uuid.UUID `json:"offerId"`
}

func (req CreateDealRequest) toParams() domain.CreateDealParams {
	return domain.CreateDealParams{NeedID: req.NeedID, OfferID: req.OfferID}
}

type CreateEventRequest struct {
	RealtorID uuid.UUID `json:"realtorId"`
	DateTime  time.Time `json:"dateTime"`
	Duration  *float64  `json:"duration"`
	Type      string    `json:"type"`
	Comment   *string   `json:"comment"`
}

func (req CreateEventRequest) toParams() domain.CreateEventParams {
	return domain.CreateEventParams{
		RealtorID: req.RealtorID,
		DateTime:  req.DateTime,
		Duration:  req.Duration,
		Type:      domain.EventType(req.Type),
		Comment:   req.Comment,
	}
}
