package domain

import "github.com/google/uuid"

// Представления для детальных экранов. Связанные сущности разрешаются
// по идентификаторам; "битая" ссылка дает nil, а не ошибку - экран
// отображает "не найдено".

// ClientDetailsView - клиент вместе с его потребностями и предложениями.
type ClientDetailsView struct {
	Client    Client
	Needs     []Need
	Offers    []Offer
	Deletable bool
}

// RealtorDetailsView - риэлтор вместе с его предложениями, потребностями и активностями.
type RealtorDetailsView struct {
	Realtor   Realtor
	Offers    []Offer
	Needs     []Need
	Events    []Event
	Deletable bool
}

// PropertyDetailsView - объект недвижимости, предложения по нему
// и геохэш координат (если координаты заданы).
type PropertyDetailsView struct {
	Property  Property
	Geohash   string
	Offers    []Offer
	Deletable bool
}

// PropertyCreated - результат создания объекта. PossibleDuplicateID
// заполняется, если в хранилище уже есть похожий объект.
type PropertyCreated struct {
	Property            Property
	PossibleDuplicateID *uuid.UUID
}

// OfferListItem - предложение с разрешенными связями для списка.
type OfferListItem struct {
	Offer    Offer
	Client   *Client
	Realtor  *Realtor
	Property *Property
}

// OfferDetailsView - предложение со связями и подходящими активными потребностями.
type OfferDetailsView struct {
	Offer         Offer
	Client        *Client
	Realtor       *Realtor
	Property      *Property
	MatchingNeeds []Need
	Deletable     bool
}

// NeedListItem - потребность с разрешенными связями для списка.
type NeedListItem struct {
	Need    Need
	Client  *Client
	Realtor *Realtor
}

// NeedDetailsView - потребность со связями и подходящими активными предложениями.
type NeedDetailsView struct {
	Need           Need
	Client         *Client
	Realtor        *Realtor
	MatchingOffers []OfferListItem
	Deletable      bool
}

// DealListItem - сделка со связями и комиссиями.
// Commissions == nil означает "рассчитать невозможно": какая-то из
// ссылок (объект или один из риэлторов) не разрешилась.
type DealListItem struct {
	Deal        Deal
	Need        *Need
	Offer       *Offer
	Commissions *DealCommissions
}

// DealDetailsView - полная картина сделки для детального экрана.
type DealDetailsView struct {
	Deal          Deal
	Need          *Need
	Offer         *Offer
	Property      *Property
	SellerClient  *Client
	BuyerClient   *Client
	SellerRealtor *Realtor
	BuyerRealtor  *Realtor
	Commissions   *DealCommissions
}
