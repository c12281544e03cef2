package domain

// DefaultCommissionShare - доля риэлтора по умолчанию, процентов.
const DefaultCommissionShare = 45.0

// Фиксированные составляющие стоимости услуг продавца по типам объектов.
const (
	apartmentSellerBase = 36000.0
	houseSellerBase     = 30000.0
	landSellerBase      = 30000.0

	apartmentSellerRate = 0.01
	houseSellerRate     = 0.01
	landSellerRate      = 0.02

	buyerServiceRate = 0.03
)

// CalculateDealCommissions вычисляет пятикомпонентную финансовую разбивку
// сделки. Чистая тотальная функция: вызывающая сторона обязана заранее
// разрешить объект и обоих риэлторов; ошибок здесь не бывает.
// Вся арифметика в float64, округление - забота слоя представления.
func CalculateDealCommissions(offer Offer, property Property, sellerRealtor, buyerRealtor Realtor) DealCommissions {
	price := offer.Price

	var sellerServiceCost float64
	switch property.Type {
	case PropertyTypeApartment:
		sellerServiceCost = apartmentSellerBase + price*apartmentSellerRate
	case PropertyTypeLand:
		sellerServiceCost = landSellerBase + price*landSellerRate
	case PropertyTypeHouse:
		sellerServiceCost = houseSellerBase + price*houseSellerRate
	}

	buyerServiceCost := price * buyerServiceRate

	sellerShare := realtorShare(sellerRealtor)
	buyerShare := realtorShare(buyerRealtor)

	sellerRealtorPayment := sellerServiceCost * sellerShare
	buyerRealtorPayment := buyerServiceCost * buyerShare

	return DealCommissions{
		SellerServiceCost:    sellerServiceCost,
		BuyerServiceCost:     buyerServiceCost,
		SellerRealtorPayment: sellerRealtorPayment,
		BuyerRealtorPayment:  buyerRealtorPayment,
		CompanyIncome:        (sellerServiceCost - sellerRealtorPayment) + (buyerServiceCost - buyerRealtorPayment),
	}
}

// realtorShare - личная доля риэлтора как множитель [0..1].
// Границы [0,100] обеспечивает валидация на входе, здесь значение не ограничивается.
func realtorShare(r Realtor) float64 {
	if r.CommissionShare != nil {
		return *r.CommissionShare / 100
	}
	return DefaultCommissionShare / 100
}
