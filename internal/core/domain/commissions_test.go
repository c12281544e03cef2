package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDealCommissions_Apartment(t *testing.T) {
	// Квартира за 8 500 000: услуги продавцу 36000 + 1%,
	// покупателю 3%; доли риэлторов 45%.
	offer := Offer{Price: 8500000}
	property := Property{Type: PropertyTypeApartment}
	seller := Realtor{CommissionShare: f64Ptr(45)}
	buyer := Realtor{CommissionShare: f64Ptr(45)}

	c := CalculateDealCommissions(offer, property, seller, buyer)

	assert.InDelta(t, 121000, c.SellerServiceCost, 0.01)
	assert.InDelta(t, 255000, c.BuyerServiceCost, 0.01)
	assert.InDelta(t, 54450, c.SellerRealtorPayment, 0.01)
	assert.InDelta(t, 114750, c.BuyerRealtorPayment, 0.01)
	assert.InDelta(t, 206800, c.CompanyIncome, 0.01)
}

func TestCalculateDealCommissions_ByPropertyType(t *testing.T) {
	seller := Realtor{CommissionShare: f64Ptr(50)}
	buyer := Realtor{CommissionShare: f64Ptr(50)}

	tests := []struct {
		name           string
		propertyType   PropertyType
		price          float64
		wantSellerCost float64
		wantBuyerCost  float64
	}{
		{"квартира", PropertyTypeApartment, 1000000, 36000 + 10000, 30000},
		{"дом", PropertyTypeHouse, 1000000, 30000 + 10000, 30000},
		{"участок", PropertyTypeLand, 1000000, 30000 + 20000, 30000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CalculateDealCommissions(Offer{Price: tt.price}, Property{Type: tt.propertyType}, seller, buyer)

			assert.InDelta(t, tt.wantSellerCost, c.SellerServiceCost, 0.01)
			assert.InDelta(t, tt.wantBuyerCost, c.BuyerServiceCost, 0.01)
			assert.InDelta(t, tt.wantSellerCost/2, c.SellerRealtorPayment, 0.01)
			assert.InDelta(t, tt.wantBuyerCost/2, c.BuyerRealtorPayment, 0.01)

			total := c.SellerRealtorPayment + c.BuyerRealtorPayment + c.CompanyIncome
			assert.InDelta(t, tt.wantSellerCost+tt.wantBuyerCost, total, 0.01)
		})
	}
}

func TestCalculateDealCommissions_DefaultShare(t *testing.T) {
	// Риэлтор без личной доли получает долю по умолчанию (45%).
	offer := Offer{Price: 1000000}
	property := Property{Type: PropertyTypeHouse}
	withoutShare := Realtor{}
	withShare := Realtor{CommissionShare: f64Ptr(50)}

	c := CalculateDealCommissions(offer, property, withoutShare, withShare)

	assert.InDelta(t, 40000*0.45, c.SellerRealtorPayment, 0.01)
	assert.InDelta(t, 30000*0.50, c.BuyerRealtorPayment, 0.01)
}

func TestCalculateDealCommissions_DifferentRealtorShares(t *testing.T) {
	offer := Offer{Price: 2000000}
	property := Property{Type: PropertyTypeLand}
	seller := Realtor{CommissionShare: f64Ptr(30)}
	buyer := Realtor{CommissionShare: f64Ptr(60)}

	c := CalculateDealCommissions(offer, property, seller, buyer)

	// участок: 30000 + 2% от цены
	assert.InDelta(t, 70000, c.SellerServiceCost, 0.01)
	assert.InDelta(t, 60000, c.BuyerServiceCost, 0.01)
	assert.InDelta(t, 21000, c.SellerRealtorPayment, 0.01)
	assert.InDelta(t, 36000, c.BuyerRealtorPayment, 0.01)
	assert.InDelta(t, 49000+24000, c.CompanyIncome, 0.01)
}
